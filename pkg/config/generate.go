package config

import (
	gotoml "github.com/pelletier/go-toml/v2"
)

// TOML renders the effective configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
