// Package config handles configuration management for heyps.
// Configuration is layered: embedded defaults, then the user's TOML file,
// then HEYPS_* environment variables. Command-line flags are applied on top
// by the CLI.
package config
