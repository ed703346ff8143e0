// Package config loads runtime configuration for the portfolio admin console
// and carries the static API table (endpoint paths, storage key, skill-level
// labels).
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   API base URL
//	-d string   path of the local SQLite session database
//	-l string   log level (debug|info|warn|error)
//	-t int      toast display time (seconds)
//	-b string   S3 bucket for backups
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//	-k string   S3 access key
//	-s string   S3 secret key
//
// # JSON schema
//
//	{
//	  "base_url": "https://api.example.com/api/v1",
//	  "database_path": "/var/lib/portfolio-admin/admin.db",
//	  "log_level": "debug",
//	  "toast_duration": "3s",
//	  "s3_bucket": "portfolio-backups"
//	}
//
// Durations use timex.Duration, so "3s" and integer nanoseconds both work.
package config
