package vault

import (
	"fmt"
	"os"
	"path/filepath"

	verrors "github.com/agevault/agevault/internal/errors"
)

// Exists reports whether a vault or export file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save seals records into the local-store layout and writes them to path.
func Save(path, passphrase string, records []KeyRecord) error {
	data, err := SealContainer(passphrase, records, KindLocal)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}

	return nil
}

// Load reads and opens the local vault file at path.
func Load(path, passphrase string) ([]KeyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", verrors.ErrVaultNotFound, path)
		}
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}

	return OpenContainer(passphrase, data, KindLocal)
}

// ExportToFile seals records into the portable layout and writes them to path.
func ExportToFile(path, passphrase string, records []KeyRecord) error {
	data, err := SealContainer(passphrase, records, KindExport)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// ImportFromFile reads and opens a portable export file.
func ImportFromFile(path, passphrase string) ([]KeyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	return OpenContainer(passphrase, data, KindExport)
}
