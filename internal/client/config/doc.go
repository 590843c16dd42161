// Package config loads runtime configuration for the TripBuddy CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database
//	-l string   log level (debug, info, warn, error)
//	-m string   currency shown next to budgets
//
// # JSON schema
//
// Every key is optional; missing keys keep the default:
//
//	{
//	  "database_path": "/var/lib/tripbuddy/tripbuddy.db",
//	  "log_level": "info",
//	  "currency": "RON"
//	}
package config
