// Package utils provides shared utility functions for the Agevault application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # System Utilities
//
// Functions for interacting with the operating system:
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//   - SanitizeKeyName: normalizes key names for safe storage
//   - GenerateKeyName: derives a default key name from the hostname
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - IsTerminal: checks if stdin is a terminal
//   - ReadPassphrase: prompts for a passphrase without echoing
package utils
