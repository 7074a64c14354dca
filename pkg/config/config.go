package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/heyps/pkg/errors"
	"github.com/arthur-debert/heyps/pkg/paths"
	"github.com/arthur-debert/heyps/pkg/types"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "HEYPS_"

// Config is the effective heyps configuration
type Config struct {
	Resolve  Resolve  `koanf:"resolve" toml:"resolve"`
	Commands Commands `koanf:"commands" toml:"commands"`
	Scripts  Scripts  `koanf:"scripts" toml:"scripts"`
	Log      Log      `koanf:"log" toml:"log"`
}

// Resolve controls how installed versions are picked
type Resolve struct {
	// Target is the default version selector
	Target string `koanf:"target" toml:"target"`
	// Prerelease is the substring marking beta bundles
	Prerelease string `koanf:"prerelease" toml:"prerelease"`
}

// Commands names the host utilities heyps runs
type Commands struct {
	Mdfind    string `koanf:"mdfind" toml:"mdfind"`
	Open      string `koanf:"open" toml:"open"`
	Osascript string `koanf:"osascript" toml:"osascript"`
}

// Scripts controls where scripts are looked up
type Scripts struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// Log controls log output
type Log struct {
	File bool `koanf:"file" toml:"file"`
}

// Selector returns the parsed default version selector
func (c *Config) Selector() (types.Selector, error) {
	return types.ParseSelector(c.Resolve.Target)
}

// Load reads the configuration for the directories in p
func Load(p *paths.Paths) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, if it exists
	configFile := p.ConfigFile()
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
	}

	// 3. Environment, HEYPS_RESOLVE_TARGET -> resolve.target
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg, p); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// postProcess fills derived values and validates the result
func postProcess(cfg *Config, p *paths.Paths) error {
	if cfg.Scripts.Dir == "" {
		cfg.Scripts.Dir = p.ScriptsDir()
	} else {
		cfg.Scripts.Dir = paths.ExpandHome(cfg.Scripts.Dir)
	}

	if _, err := cfg.Selector(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid resolve.target")
	}

	if strings.TrimSpace(cfg.Resolve.Prerelease) == "" {
		return errors.New(errors.ErrConfigValid, "resolve.prerelease must not be empty")
	}

	for key, value := range map[string]string{
		"commands.mdfind":    cfg.Commands.Mdfind,
		"commands.open":      cfg.Commands.Open,
		"commands.osascript": cfg.Commands.Osascript,
	} {
		if strings.TrimSpace(value) == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key)
		}
	}

	return nil
}
