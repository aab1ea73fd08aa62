package age

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	verrors "github.com/agevault/agevault/internal/errors"
)

// CLIBackend implements Backend by executing the age and age-keygen
// binaries as external processes with captured stdout/stderr.
type CLIBackend struct {
	AgePath    string
	KeygenPath string
}

// NewCLIBackend locates the age executables. Non-empty path arguments
// override discovery on PATH (set via config.toml for unusual installs).
func NewCLIBackend(agePath, keygenPath string) (*CLIBackend, error) {
	backend := &CLIBackend{AgePath: agePath, KeygenPath: keygenPath}

	if backend.AgePath == "" {
		path, err := exec.LookPath("age")
		if err != nil {
			return nil, fmt.Errorf("%w: age is not on PATH", verrors.ErrBackendNotFound)
		}
		backend.AgePath = path
	}

	if backend.KeygenPath == "" {
		path, err := exec.LookPath("age-keygen")
		if err != nil {
			return nil, fmt.Errorf("%w: age-keygen is not on PATH", verrors.ErrBackendNotFound)
		}
		backend.KeygenPath = path
	}

	return backend, nil
}

// GenerateKeyPair runs age-keygen and parses its output.
func (b *CLIBackend) GenerateKeyPair(comment string) (*KeyPair, error) {
	args := []string{}
	if comment != "" {
		args = append(args, "-c", comment)
	}

	stdout, err := b.run(b.KeygenPath, args...)
	if err != nil {
		return nil, fmt.Errorf("age-keygen failed: %w", err)
	}

	return parseKeygenOutput(stdout)
}

// EncryptFile runs age with one -r flag per recipient.
func (b *CLIBackend) EncryptFile(inputPath, outputPath string, recipients []string, armor bool) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	args := []string{}
	if armor {
		args = append(args, "--armor")
	}
	args = append(args, "-o", outputPath)
	for _, recipient := range recipients {
		args = append(args, "-r", recipient)
	}
	args = append(args, inputPath)

	if _, err := b.run(b.AgePath, args...); err != nil {
		return fmt.Errorf("age encryption failed: %w", err)
	}

	return nil
}

// DecryptFile validates the identity, writes it to a temporary identity
// file next to the input, and runs age -d.
func (b *CLIBackend) DecryptFile(inputPath, outputPath, identity string) error {
	identity = strings.TrimSpace(identity)
	if err := ValidateIdentity(identity); err != nil {
		return err
	}

	// age requires the identity file to end with a newline.
	identityPath := inputPath + ".identity"
	if err := os.WriteFile(identityPath, []byte(identity+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write temp identity file: %w", err)
	}
	defer os.Remove(identityPath)

	if _, err := b.run(b.AgePath, "-d", "-i", identityPath, "-o", outputPath, inputPath); err != nil {
		return fmt.Errorf("age decryption failed: %w", err)
	}

	return nil
}

// DerivePublicFromSSH converts an SSH public key to an age recipient with
// age-keygen -y.
func (b *CLIBackend) DerivePublicFromSSH(sshPublicKey string) (string, error) {
	tempFile, err := os.CreateTemp("", "agevault-ssh-*.pub")
	if err != nil {
		return "", fmt.Errorf("failed to create temp SSH key file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.WriteString(strings.TrimSpace(sshPublicKey) + "\n"); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to write SSH key to temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp SSH key file: %w", err)
	}

	stdout, err := b.run(b.KeygenPath, "-y", tempPath)
	if err != nil {
		return "", fmt.Errorf("SSH key derivation failed: %w", err)
	}

	return strings.TrimSpace(stdout), nil
}

// run executes a command with captured stdout/stderr. Stderr content is
// folded into the returned error.
func (b *CLIBackend) run(path string, args ...string) (string, error) {
	cmd := exec.Command(path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", err
		}
		return "", fmt.Errorf("%s: %w", msg, err)
	}

	return stdout.String(), nil
}

// ValidateIdentity checks the identity is an age secret key or an SSH key
// before it gets anywhere near a temp file.
func ValidateIdentity(identity string) error {
	identity = strings.TrimSpace(identity)
	if strings.HasPrefix(identity, "AGE-SECRET-KEY-") ||
		strings.HasPrefix(identity, "-----BEGIN") ||
		strings.HasPrefix(identity, "ssh-") {
		return nil
	}
	return verrors.ErrInvalidIdentity
}

// parseKeygenOutput extracts the key pair from age-keygen output:
//
//	# created: 2024-01-01T00:00:00+00:00
//	# public key: age1...
//	AGE-SECRET-KEY-1...
func parseKeygenOutput(output string) (*KeyPair, error) {
	var pair KeyPair

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "# public key: "):
			pair.PublicKey = strings.TrimPrefix(line, "# public key: ")
		case strings.HasPrefix(line, "AGE-SECRET-KEY-"):
			pair.PrivateKey = line
		case strings.Contains(line, "# created:"):
			comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			pair.Comment = &comment
		}
	}

	if pair.PublicKey == "" {
		return nil, fmt.Errorf("%w: no public key line", verrors.ErrKeygenParse)
	}
	if pair.PrivateKey == "" {
		return nil, fmt.Errorf("%w: no secret key line", verrors.ErrKeygenParse)
	}

	return &pair, nil
}
