package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/agevault/agevault/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // System username performing the action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	KeyID      string   `json:"key_id,omitempty"`      // For generate/add/remove/rename.
	KeyName    string   `json:"key_name,omitempty"`    // For generate/add/remove/rename.
	NewName    string   `json:"new_name,omitempty"`    // For rename.
	Recipients []string `json:"recipients,omitempty"`  // For encrypt.
	InputPath  string   `json:"input_path,omitempty"`  // For encrypt/decrypt/import.
	OutputPath string   `json:"output_path,omitempty"` // For encrypt/decrypt/export.
	Mode       string   `json:"mode,omitempty"`        // For import (merge/replace).
	KeysCount  int      `json:"keys_count,omitempty"`  // For import/export.
}

// Log appends an entry to the audit log.
// If logging fails, the operation carries on; vault commands should not
// fail just because audit logging did.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.User == "" {
		entry.User = configs.UserAgevaultSettings.Username
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	// Marshal entry to JSON.
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// Write entry with newline.
	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.UserAgevaultSettings.ConfigsPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}
