// Package paths provides centralized path handling for heyps.
//
// Directories follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/heyps (config.toml)
//   - Data:   $XDG_DATA_HOME (scripts live in $XDG_DATA_HOME/scripts)
//   - State:  $XDG_STATE_HOME/heyps (heyps.log)
//
// # Environment Variables
//
//   - HEYPS_CONFIG_DIR: Override the config directory
//   - HEYPS_DATA_DIR: Override the data directory the scripts folder lives in
//   - HEYPS_STATE_DIR: Override the state directory
//
// The environment is read once per process; use Default() rather than
// calling New() repeatedly.
package paths
