package errors

import "errors"

// Container errors indicate problems with sealed vault or export data.
var (
	// ErrMalformedContainer indicates the container bytes are structurally
	// invalid: too short, wrong magic, or an unsupported format version.
	// This is detectable without a passphrase.
	ErrMalformedContainer = errors.New("malformed key container")

	// ErrAuthenticationFailed indicates the container could not be decrypted.
	// A wrong passphrase and corrupted ciphertext are deliberately reported
	// identically so failures cannot be used as a passphrase oracle.
	ErrAuthenticationFailed = errors.New("decryption failed: incorrect passphrase or corrupted data")

	// ErrPassphraseTooShort indicates an export passphrase below the minimum length.
	ErrPassphraseTooShort = errors.New("passphrase must be at least 4 characters")
)

// Vault errors indicate issues with the local key vault and its records.
var (
	// ErrVaultNotFound indicates no vault file exists at the expected path.
	ErrVaultNotFound = errors.New("key vault has not been created")

	// ErrKeyNotFound indicates no record matched the given id or name.
	ErrKeyNotFound = errors.New("key not found in vault")

	// ErrDuplicateKey indicates a record with the same id already exists.
	ErrDuplicateKey = errors.New("key already exists in vault")

	// ErrRecipientOnly indicates the record has no private key and cannot decrypt.
	ErrRecipientOnly = errors.New("key has no private half (recipient-only)")
)

// Backend errors indicate failures invoking the external age tooling.
var (
	// ErrBackendNotFound indicates the age or age-keygen executable could not be located.
	ErrBackendNotFound = errors.New("age executable not found")

	// ErrInvalidIdentity indicates a decryption identity in an unrecognized format.
	ErrInvalidIdentity = errors.New("identity must be an age key (AGE-SECRET-KEY-...) or an SSH key")

	// ErrKeygenParse indicates age-keygen output could not be parsed.
	ErrKeygenParse = errors.New("could not parse age-keygen output")
)
