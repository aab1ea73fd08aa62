// Package errors provides typed error values for the Agevault application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Container errors: sealed data problems (ErrMalformedContainer,
//     ErrAuthenticationFailed, ErrPassphraseTooShort)
//   - Vault errors: record lookup and storage issues (ErrKeyNotFound,
//     ErrDuplicateKey)
//   - Backend errors: external age tooling failures (ErrBackendNotFound)
//
// # The authentication sentinel
//
// ErrAuthenticationFailed covers both a wrong passphrase and tampered
// ciphertext. The two cases are intentionally not distinguishable: a more
// specific error would leak an oracle useful for offline passphrase
// guessing. Do not split this error.
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(data) < minExportLen {
//	    return nil, fmt.Errorf("%w: export file too short", errors.ErrMalformedContainer)
//	}
//
// Handle errors in the CLI layer:
//
//	records, err := vault.ImportFromFile(path, passphrase)
//	if errors.Is(err, verrors.ErrAuthenticationFailed) {
//	    // Prompt the user to retry with a different passphrase
//	}
package errors
