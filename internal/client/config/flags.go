package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/challengehub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags listed here are looked at; anything else in args is left
// for other consumers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-l", "-s", "-p", "-v"})

	fs := flag.NewFlagSet("challenge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	loginTimeout := fs.Int("l", int(cfg.LoginTimeout.Seconds()), "login timeout (in seconds)")
	fs.StringVar(&cfg.Storage.Backend, "s", cfg.Storage.Backend, "storage backend: memory, file, sqlite, redis")
	fs.StringVar(&cfg.Storage.Path, "p", cfg.Storage.Path, "storage path")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.LoginTimeout = time.Duration(*loginTimeout) * time.Second
	if *verbose {
		cfg.Log.Level = "debug"
	}
	return nil
}
