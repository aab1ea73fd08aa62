// Package age drives the external age encryption tooling.
//
// Agevault does not implement the age format itself. Key generation and
// file encryption/decryption are delegated to the age and age-keygen
// executables through the Backend interface, keeping the vault core free
// of recipient-format details and letting a future in-process
// implementation slot in without touching callers.
//
// CLIBackend invokes the binaries as child processes with captured
// stdout/stderr. Identities are validated by prefix (AGE-SECRET-KEY-,
// ssh-, -----BEGIN) before being written to a short-lived identity file,
// which is removed after the decrypt completes.
package age
