// Package config loads runtime configuration for the borelog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the report service API
//	-t int      request timeout (seconds)
//	-d string   path of the local snapshot database
//
// # JSON schema
//
// Durations accept either strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "15s",
//	  "store_path": "borelog.db"
//	}
package config
