package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/agevault/agevault/internal/utils"
)

type UserSettings struct {
	// ConfigsPath is the agevault directory under the user config dir.
	ConfigsPath string

	// VaultPath is the encrypted local key vault file.
	VaultPath string

	// PassphrasePath is the machine-local implicit passphrase file.
	PassphrasePath string

	Username string
}

var UserAgevaultSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// These paths are machine-wide, so it is ok to init here.
	base := filepath.Join(configDir, "agevault")
	UserAgevaultSettings = &UserSettings{
		ConfigsPath:    base,
		VaultPath:      filepath.Join(base, "keys.enc"),
		PassphrasePath: filepath.Join(base, "passphrase"),
		Username:       username,
	}
}

// EnsureConfigDir creates the agevault config directory if it does not exist.
func EnsureConfigDir() error {
	if err := os.MkdirAll(UserAgevaultSettings.ConfigsPath, 0700); err != nil {
		return fmt.Errorf("failed to create config directory at %s: %w", UserAgevaultSettings.ConfigsPath, err)
	}
	return nil
}
