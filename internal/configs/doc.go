// Package configs manages user configuration and fixed paths for Agevault.
//
// All state lives in a single per-user directory (os.UserConfigDir +
// "agevault"):
//
//   - keys.enc: the encrypted local key vault
//   - passphrase: the machine-local implicit passphrase (plain text, 0600)
//   - config.toml: optional user preferences in TOML format
//   - audit.jsonl: the operation audit log
//
// # User Configuration
//
// config.toml stores preferences consulted by the CLI layer:
//   - default armor setting for encryption output
//   - explicit paths to the age and age-keygen executables, for setups
//     where they are not on PATH
//
// # Settings
//
// UserAgevaultSettings is initialized at startup with the resolved paths
// and the current username. The paths are fixed per user and never depend
// on the working directory.
package configs
