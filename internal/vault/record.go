package vault

import (
	"time"

	"github.com/google/uuid"
)

// KeyRecord is one stored identity. PrivateKey is nil for recipient-only
// records (someone else's public key); the distinction is preserved on the
// wire, never collapsed to an empty string.
type KeyRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PublicKey  string  `json:"publicKey"`
	PrivateKey *string `json:"privateKey,omitempty"`
	Comment    *string `json:"comment,omitempty"`
	CreatedAt  int64   `json:"createdAt"`
}

// NewKeyRecord creates a record with a fresh id and the current timestamp.
func NewKeyRecord(name, publicKey string, privateKey, comment *string) KeyRecord {
	return KeyRecord{
		ID:         uuid.New().String(),
		Name:       name,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Comment:    comment,
		CreatedAt:  time.Now().Unix(),
	}
}

// RecipientOnly reports whether the record holds no private key and can
// only be used as an encryption recipient.
func (r KeyRecord) RecipientOnly() bool {
	return r.PrivateKey == nil
}
