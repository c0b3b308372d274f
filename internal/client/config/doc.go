// Package config loads runtime configuration for the challenge client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with CHALLENGE_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL, e.g. http://localhost:8080/api
//	-t int      request timeout (seconds)
//	-l int      login timeout (seconds)
//	-s string   storage backend: memory, file, sqlite, redis
//	-p string   storage path (SQLite file or directory)
//	-v          debug logging
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "login_timeout": "15s",
//	  "storage": {"backend": "sqlite", "path": "session.db"},
//	  "log": {"level": "info", "format": "text"}
//	}
//
// # Environment
//
//	CHALLENGE_API_URL, CHALLENGE_REQUEST_TIMEOUT, CHALLENGE_LOGIN_TIMEOUT,
//	CHALLENGE_STORAGE_BACKEND, CHALLENGE_STORAGE_PATH,
//	CHALLENGE_STORAGE_REDIS_ADDR, CHALLENGE_STORAGE_REDIS_PASSWORD,
//	CHALLENGE_STORAGE_REDIS_DB, CHALLENGE_STORAGE_REDIS_PREFIX,
//	CHALLENGE_STORAGE_PASSPHRASE, CHALLENGE_LOG_LEVEL, CHALLENGE_LOG_FORMAT
package config
