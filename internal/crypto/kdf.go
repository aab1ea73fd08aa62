package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived symmetric key length (AES-256).
	KeySize = 32

	// kdfIterations imposes a deliberate per-attempt cost on offline
	// passphrase guessing.
	kdfIterations = 100_000
)

// Fixed domain-separation salts, one per container kind. A key derived for
// the local store can never open a portable export and vice versa. These
// are intentionally constant rather than random per-container salts: two
// containers of the same kind sealed under the same passphrase derive the
// same key. See the package documentation before changing this.
var (
	LocalStoreSalt = []byte("age-tool-salt")
	ExportSalt     = []byte("age-tool-export-salt")
)

// DeriveKey stretches a passphrase into a 256-bit key using
// PBKDF2-HMAC-SHA256. Deterministic: the same passphrase and salt always
// produce the same key.
func DeriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, kdfIterations, KeySize, sha256.New)
}
