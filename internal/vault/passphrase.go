package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agevault/agevault/internal/utils"
)

// GetOrCreatePassphrase returns the machine-local implicit passphrase,
// generating and persisting it on first use.
//
// If the file at path exists it is read verbatim (surrounding whitespace
// trimmed) and never rewritten. Otherwise a new passphrase is derived by
// hashing the local username together with 16 random bytes through
// SHA-256, rendered as a 64-character hex string, and written with 0600
// permissions.
//
// There is no recovery path: if the file is deleted after a vault has
// been sealed with it, that vault cannot be opened this way again.
func GetOrCreatePassphrase(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read passphrase file: %w", err)
	}

	username, err := utils.GetUsername()
	if err != nil {
		return "", fmt.Errorf("failed to get username: %w", err)
	}

	seed := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return "", fmt.Errorf("failed to generate passphrase seed: %w", err)
	}

	digest := sha256.Sum256(append([]byte(username), seed...))
	passphrase := hex.EncodeToString(digest[:])

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create passphrase directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(passphrase+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to write passphrase file: %w", err)
	}

	return passphrase, nil
}
