// Package config loads runtime configuration for the campusctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the platform gateway
//	-t int      per-request timeout (seconds)
//	-i int      health check probe interval (seconds)
//	-d string   path to the local session database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "health_check_interval": "30s",
//	  "db_path": "campus.db"
//	}
package config
