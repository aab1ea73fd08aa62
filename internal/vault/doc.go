// Package vault implements the passphrase-protected key containers at the
// core of Agevault.
//
// # Record Model
//
// A KeyRecord holds one identity: an immutable id and creation timestamp,
// a user-assigned name, the public key string, and optionally the private
// key and a comment. Records without a private key are recipient-only —
// other people's keys stored for encryption. The absence of a private key
// is meaningful and round-trips as absence, never as an empty string.
//
// # Container Formats
//
// A record set is serialized to JSON ({"keys": [...], "version": 1}),
// sealed with AES-256-GCM under a PBKDF2-derived key, and framed in one
// of two binary layouts:
//
//	Local vault (keys.enc):  nonce(12) || ciphertext+tag
//	Portable export:         "AGEV" || version(4, LE) || nonce(12) || ciphertext+tag
//
// The export header is validated before any key derivation so unrelated
// or incompatible files are rejected cheaply. The payload version is the
// only compatibility signal for the local layout. Unrecognized versions
// are rejected, not partially decoded.
//
// # Failure Behavior
//
// OpenContainer reports exactly two classes of failure: structural
// problems (errors.ErrMalformedContainer — too short, bad magic,
// unsupported version) and cryptographic ones
// (errors.ErrAuthenticationFailed — wrong passphrase or tampered data,
// deliberately indistinguishable). A failed open never yields a partial
// record set.
//
// # Passphrase Lifecycle
//
// The local vault is sealed under an implicit machine passphrase created
// on first use and persisted in the user config directory. Reads never
// rewrite the file; deleting it orphans any vault sealed with it.
//
// # Concurrency
//
// All operations are synchronous. The Store type guards a loaded record
// set for shared use, but serializing writers to the same vault file is
// the caller's responsibility — this package does no file locking.
package vault
