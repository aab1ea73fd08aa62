package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

type UserConfig struct {
	Defaults Defaults `toml:"defaults"`
}

type Defaults struct {
	// Armor enables ASCII-armored output for encrypt by default.
	Armor bool `toml:"armor"`

	// AgePath and KeygenPath override executable discovery on PATH.
	AgePath    string `toml:"age_path"`
	KeygenPath string `toml:"age_keygen_path"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields a zero-value config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserAgevaultSettings.ConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserAgevaultSettings.ConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}
