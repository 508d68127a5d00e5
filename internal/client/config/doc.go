// Package config loads runtime configuration for the StudyPrep CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional dotenv file (-e or -env,
//     otherwise ./.env if it exists) filling in what the process lacks.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Environment
//
//	STUDYPREP_API_URL       API base URL (falls back to EXPO_PUBLIC_API_URL)
//	STUDYPREP_DB_PATH       database path
//	STUDYPREP_STORE_SECRET  secure store secret
//	STUDYPREP_LOG_LEVEL     log level
//
// Supported flags
//
//	-a string   API base URL
//	-d string   database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.studyprep.example",
//	  "database_path": "/var/lib/studyprep/client.db",
//	  "request_timeout": "10s",
//	  "store_secret": "...",
//	  "log_level": "debug"
//	}
package config
