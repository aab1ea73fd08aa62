// Package crypto provides the key derivation and authenticated encryption
// primitives underlying the Agevault key containers.
//
// # Key Derivation
//
// Passphrases are stretched into 256-bit keys with PBKDF2-HMAC-SHA256 at
// 100,000 iterations. The salt is a fixed, purpose-bound constant rather
// than a random per-container value: one salt for the local vault file,
// a different one for portable exports. This gives domain separation (a
// key derived for one container kind cannot be replayed against the
// other) but NOT the usual cross-container protection a random salt
// provides — identical passphrases on two exports derive identical keys.
// This matches the established on-disk format; a format revision that
// stores a random salt in the frame would be the stronger design.
//
// # Authenticated Encryption
//
// Containers are sealed with AES-256-GCM using a 12-byte nonce drawn from
// crypto/rand on every Seal call. Open never returns partial plaintext
// and reports every failure — truncation, tag mismatch, garbage input —
// as the single errors.ErrAuthenticationFailed sentinel, so callers
// cannot tell a wrong passphrase from tampered data.
package crypto
