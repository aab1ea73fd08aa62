package age

// KeyPair is a freshly generated age identity.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
	Comment    *string
}

// Backend abstracts the cryptographic operations Agevault delegates to
// external tooling. The CLI implementation shells out to age/age-keygen;
// a pure in-process implementation could satisfy the same interface
// without changing any caller.
type Backend interface {
	// GenerateKeyPair creates a new identity. The comment is optional and
	// passed through to the generator when non-empty.
	GenerateKeyPair(comment string) (*KeyPair, error)

	// EncryptFile encrypts inputPath for the given recipient public keys,
	// writing to outputPath. Armor selects ASCII-armored output.
	EncryptFile(inputPath, outputPath string, recipients []string, armor bool) error

	// DecryptFile decrypts inputPath with the given identity (an age
	// secret key or an SSH private key), writing to outputPath.
	DecryptFile(inputPath, outputPath, identity string) error

	// DerivePublicFromSSH converts an SSH public key into the equivalent
	// age recipient string.
	DerivePublicFromSSH(sshPublicKey string) (string, error)
}
