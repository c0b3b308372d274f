package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/challengehub/internal/flagx"
	"github.com/dmitrijs2005/challengehub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointers
// distinguish "absent" from "zero" so a partial file only overrides what
// it names.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LoginTimeout   *timex.Duration `json:"login_timeout"`
	Storage        *struct {
		Backend       *string `json:"backend"`
		Path          *string `json:"path"`
		RedisAddr     *string `json:"redis_addr"`
		RedisPassword *string `json:"redis_password"`
		RedisDB       *int    `json:"redis_db"`
		RedisPrefix   *string `json:"redis_prefix"`
		Passphrase    *string `json:"passphrase"`
	} `json:"storage"`
	Log *struct {
		Level  *string `json:"level"`
		Format *string `json:"format"`
	} `json:"log"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// No flag means no change.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LoginTimeout != nil {
		cfg.LoginTimeout = jc.LoginTimeout.Duration
	}
	if s := jc.Storage; s != nil {
		setIf(&cfg.Storage.Backend, s.Backend)
		setIf(&cfg.Storage.Path, s.Path)
		setIf(&cfg.Storage.RedisAddr, s.RedisAddr)
		setIf(&cfg.Storage.RedisPassword, s.RedisPassword)
		setIf(&cfg.Storage.RedisDB, s.RedisDB)
		setIf(&cfg.Storage.RedisPrefix, s.RedisPrefix)
		setIf(&cfg.Storage.Passphrase, s.Passphrase)
	}
	if l := jc.Log; l != nil {
		setIf(&cfg.Log.Level, l.Level)
		setIf(&cfg.Log.Format, l.Format)
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
