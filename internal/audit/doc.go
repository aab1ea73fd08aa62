// Package audit provides an append-only operation log for the key vault.
//
// Entries are JSON Lines records written to audit.jsonl in the agevault
// config directory, one object per line. Every mutating command (key
// generation, import, export, removal) and every file encryption or
// decryption appends an entry with the operation name, the acting
// username, and operation-specific details.
//
// Logging is best-effort: a vault operation never fails because its
// audit entry could not be written.
package audit
