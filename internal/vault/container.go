package vault

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/agevault/agevault/internal/crypto"
	verrors "github.com/agevault/agevault/internal/errors"
)

// Kind selects the container framing and its domain-separated KDF salt.
type Kind int

const (
	// KindLocal is the machine-local vault layout: nonce || ciphertext+tag.
	KindLocal Kind = iota

	// KindExport is the portable layout with a magic/version header:
	// magic(4) || version(4, LE) || nonce || ciphertext+tag.
	KindExport
)

// exportMagic identifies a portable export file. Checked before any
// cryptographic work so unrelated files fail fast and cheaply.
var exportMagic = [4]byte{'A', 'G', 'E', 'V'}

const (
	exportHeaderLen = len(exportMagic) + 4

	// minLocalLen and minExportLen are the structural minimums; anything
	// shorter is malformed without needing a passphrase to tell.
	minLocalLen  = crypto.NonceSize + 1
	minExportLen = exportHeaderLen + crypto.NonceSize + crypto.TagSize

	// minExportPassphrase guards exports against trivially empty secrets.
	// The local vault has no minimum: its passphrase is machine-generated.
	minExportPassphrase = 4
)

func (k Kind) salt() []byte {
	if k == KindExport {
		return crypto.ExportSalt
	}
	return crypto.LocalStoreSalt
}

// SealContainer encodes records, seals them under a key derived from the
// passphrase with the kind's salt, and frames the result per the kind.
func SealContainer(passphrase string, records []KeyRecord, kind Kind) ([]byte, error) {
	if kind == KindExport && len(passphrase) < minExportPassphrase {
		return nil, verrors.ErrPassphraseTooShort
	}

	payload, err := EncodeRecords(records)
	if err != nil {
		return nil, err
	}

	key := crypto.DeriveKey(passphrase, kind.salt())
	sealed, err := crypto.Seal(key, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt container: %w", err)
	}

	if kind == KindLocal {
		return sealed, nil
	}

	out := make([]byte, 0, exportHeaderLen+len(sealed))
	out = append(out, exportMagic[:]...)
	out = binary.LittleEndian.AppendUint32(out, CurrentVersion)
	out = append(out, sealed...)
	return out, nil
}

// OpenContainer reverses SealContainer. Structural problems (length, magic,
// version) surface as ErrMalformedContainer before any key derivation;
// everything cryptographic collapses to ErrAuthenticationFailed. On any
// failure no records are returned.
func OpenContainer(passphrase string, data []byte, kind Kind) ([]KeyRecord, error) {
	switch kind {
	case KindLocal:
		if len(data) < minLocalLen {
			return nil, fmt.Errorf("%w: container too short (%d bytes)", verrors.ErrMalformedContainer, len(data))
		}
	case KindExport:
		if len(data) < minExportLen {
			return nil, fmt.Errorf("%w: export file too short (%d bytes)", verrors.ErrMalformedContainer, len(data))
		}
		if !bytes.Equal(data[:len(exportMagic)], exportMagic[:]) {
			return nil, fmt.Errorf("%w: not an agevault export file", verrors.ErrMalformedContainer)
		}
		version := binary.LittleEndian.Uint32(data[len(exportMagic):exportHeaderLen])
		if version != CurrentVersion {
			return nil, fmt.Errorf("%w: unsupported export version %d", verrors.ErrMalformedContainer, version)
		}
		data = data[exportHeaderLen:]
	default:
		return nil, fmt.Errorf("unknown container kind %d", kind)
	}

	key := crypto.DeriveKey(passphrase, kind.salt())
	payload, err := crypto.Open(key, data)
	if err != nil {
		return nil, err
	}

	return DecodeRecords(payload)
}
