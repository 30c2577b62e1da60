// Package config builds the single Config value used for one run of the CLI.
//
// Sources, highest precedence first:
//   - command-line flags
//   - process environment (NUMBEO_API_KEY, NUMBEO_BASE_URL)
//   - a .env file loaded with godotenv (never overrides variables already set)
//   - an optional YAML file with ${VAR} environment variable interpolation
//   - built-in defaults
package config
