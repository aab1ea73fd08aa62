package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetOrCreatePassphrase_CreatesOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agevault", "passphrase")

	passphrase, err := GetOrCreatePassphrase(path)
	if err != nil {
		t.Fatalf("GetOrCreatePassphrase failed: %v", err)
	}

	if len(passphrase) != 64 {
		t.Errorf("Expected 64-character hex passphrase, got %d characters", len(passphrase))
	}
	for _, c := range passphrase {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("Passphrase contains non-hex character %q", c)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Passphrase file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", perm)
	}
}

func TestGetOrCreatePassphrase_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passphrase")

	first, err := GetOrCreatePassphrase(path)
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}

	contentAfterFirst, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read passphrase file: %v", err)
	}

	second, err := GetOrCreatePassphrase(path)
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}

	if first != second {
		t.Errorf("Calls returned different passphrases: %q vs %q", first, second)
	}

	contentAfterSecond, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read passphrase file: %v", err)
	}
	if string(contentAfterFirst) != string(contentAfterSecond) {
		t.Error("Reading the passphrase must not rewrite the file")
	}
}

func TestGetOrCreatePassphrase_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passphrase")

	if err := os.WriteFile(path, []byte("  my-existing-passphrase \n"), 0600); err != nil {
		t.Fatalf("Failed to seed passphrase file: %v", err)
	}

	passphrase, err := GetOrCreatePassphrase(path)
	if err != nil {
		t.Fatalf("GetOrCreatePassphrase failed: %v", err)
	}
	if passphrase != "my-existing-passphrase" {
		t.Errorf("Expected trimmed passphrase, got %q", passphrase)
	}
}

func TestGetOrCreatePassphrase_RandomPerMachine(t *testing.T) {
	dir := t.TempDir()

	a, err := GetOrCreatePassphrase(filepath.Join(dir, "a"))
	if err != nil {
		t.Fatalf("GetOrCreatePassphrase failed: %v", err)
	}
	b, err := GetOrCreatePassphrase(filepath.Join(dir, "b"))
	if err != nil {
		t.Fatalf("GetOrCreatePassphrase failed: %v", err)
	}

	if a == b {
		t.Error("Fresh passphrase files must not collide (random seed missing?)")
	}
}
