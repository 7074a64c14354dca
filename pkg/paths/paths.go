package paths

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/heyps/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for heyps
	EnvConfigDir = "HEYPS_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory
	EnvDataDir = "HEYPS_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for heyps
	EnvStateDir = "HEYPS_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for heyps-specific files
	AppDirName = "heyps"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// ScriptsDirName is the data subdirectory scripts are looked up in
	ScriptsDirName = "scripts"

	// LogFileName is the name of the log file
	LogFileName = "heyps.log"
)

// Paths holds the directories heyps reads from and writes to
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

var defaultPaths = sync.OnceValue(New)

// Default returns the process-wide Paths, computed on first use
func Default() *Paths {
	return defaultPaths()
}

// New computes the heyps directories from the environment
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = ExpandHome(dir)
	} else {
		p.dataDir = xdg.DataHome
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the heyps configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of the user configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// DataDir returns the data directory
func (p *Paths) DataDir() string {
	return p.dataDir
}

// ScriptsDir returns the default directory scripts are looked up in
func (p *Paths) ScriptsDir() string {
	return filepath.Join(p.dataDir, ScriptsDirName)
}

// StateDir returns the heyps state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths that cannot be expanded are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrInternal, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}
