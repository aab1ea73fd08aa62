package vault

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"strings"
	"testing"

	verrors "github.com/agevault/agevault/internal/errors"
)

func strPtr(s string) *string {
	return &s
}

func sampleRecords() []KeyRecord {
	return []KeyRecord{
		{
			ID:         "k1",
			Name:       "laptop",
			PublicKey:  "age1abcdefghijklmnopqrstuvwxyz0123456789",
			PrivateKey: strPtr("AGE-SECRET-KEY-1XYZXYZXYZXYZXYZ"),
			Comment:    nil,
			CreatedAt:  1700000000,
		},
		{
			ID:        "k2",
			Name:      "teammate",
			PublicKey: "age1teammateteammateteammate",
			Comment:   strPtr("imported from chat"),
			CreatedAt: 1700000100,
		},
	}
}

func TestSealOpenContainer_RoundTrip(t *testing.T) {
	records := sampleRecords()

	for _, tt := range []struct {
		name string
		kind Kind
	}{
		{"local", KindLocal},
		{"export", KindExport},
	} {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := SealContainer("correct horse", records, tt.kind)
			if err != nil {
				t.Fatalf("SealContainer failed: %v", err)
			}

			opened, err := OpenContainer("correct horse", sealed, tt.kind)
			if err != nil {
				t.Fatalf("OpenContainer failed: %v", err)
			}

			if !reflect.DeepEqual(opened, records) {
				t.Errorf("Round-trip mismatch:\n got: %+v\nwant: %+v", opened, records)
			}

			// Presence/absence of optional fields must survive.
			if opened[0].PrivateKey == nil || opened[0].Comment != nil {
				t.Error("Optional field presence did not round-trip for record k1")
			}
			if opened[1].PrivateKey != nil || opened[1].Comment == nil {
				t.Error("Optional field presence did not round-trip for record k2")
			}
		})
	}
}

func TestSealContainer_ExportLayout(t *testing.T) {
	// Concrete scenario: one full record, export kind.
	records := []KeyRecord{{
		ID:         "k1",
		Name:       "laptop",
		PublicKey:  "age1abc",
		PrivateKey: strPtr("AGE-SECRET-KEY-1XYZ"),
		CreatedAt:  1700000000,
	}}

	sealed, err := SealContainer("correct horse", records, KindExport)
	if err != nil {
		t.Fatalf("SealContainer failed: %v", err)
	}

	if !bytes.Equal(sealed[:4], []byte("AGEV")) {
		t.Errorf("Export must begin with the magic bytes, got % x", sealed[:4])
	}
	if version := binary.LittleEndian.Uint32(sealed[4:8]); version != 1 {
		t.Errorf("Expected little-endian version 1 after magic, got %d", version)
	}

	opened, err := OpenContainer("correct horse", sealed, KindExport)
	if err != nil {
		t.Fatalf("OpenContainer failed: %v", err)
	}
	if !reflect.DeepEqual(opened, records) {
		t.Errorf("Expected identical record list back, got %+v", opened)
	}

	if _, err := OpenContainer("wrong horse", sealed, KindExport); !errors.Is(err, verrors.ErrAuthenticationFailed) {
		t.Errorf("Wrong passphrase: expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestOpenContainer_WrongPassphrase(t *testing.T) {
	for _, kind := range []Kind{KindLocal, KindExport} {
		sealed, err := SealContainer("passphrase-one", sampleRecords(), kind)
		if err != nil {
			t.Fatalf("SealContainer failed: %v", err)
		}

		if _, err := OpenContainer("passphrase-two", sealed, kind); !errors.Is(err, verrors.ErrAuthenticationFailed) {
			t.Errorf("Kind %d: expected ErrAuthenticationFailed, got %v", kind, err)
		}
	}
}

func TestOpenContainer_TamperDetection(t *testing.T) {
	sealed, err := SealContainer("correct horse", sampleRecords(), KindExport)
	if err != nil {
		t.Fatalf("SealContainer failed: %v", err)
	}

	// Flip a single bit in each byte of the ciphertext region.
	for i := 8 + 12; i < len(sealed); i++ {
		tampered := make([]byte, len(sealed))
		copy(tampered, sealed)
		tampered[i] ^= 0x80

		if _, err := OpenContainer("correct horse", tampered, KindExport); !errors.Is(err, verrors.ErrAuthenticationFailed) {
			t.Fatalf("Bit flip at offset %d: expected ErrAuthenticationFailed, got %v", i, err)
		}
	}
}

func TestOpenContainer_BadMagic(t *testing.T) {
	sealed, err := SealContainer("correct horse", sampleRecords(), KindExport)
	if err != nil {
		t.Fatalf("SealContainer failed: %v", err)
	}

	corrupted := make([]byte, len(sealed))
	copy(corrupted, sealed)
	corrupted[0] = 'X'

	_, err = OpenContainer("correct horse", corrupted, KindExport)
	if !errors.Is(err, verrors.ErrMalformedContainer) {
		t.Errorf("Expected ErrMalformedContainer for bad magic, got %v", err)
	}
	if errors.Is(err, verrors.ErrAuthenticationFailed) {
		t.Error("Bad magic must be rejected before any decryption is attempted")
	}
}

func TestOpenContainer_UnsupportedVersion(t *testing.T) {
	sealed, err := SealContainer("correct horse", sampleRecords(), KindExport)
	if err != nil {
		t.Fatalf("SealContainer failed: %v", err)
	}

	corrupted := make([]byte, len(sealed))
	copy(corrupted, sealed)
	binary.LittleEndian.PutUint32(corrupted[4:8], 99)

	_, err = OpenContainer("correct horse", corrupted, KindExport)
	if !errors.Is(err, verrors.ErrMalformedContainer) {
		t.Fatalf("Expected ErrMalformedContainer for unsupported version, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("Error message should identify the unsupported version, got: %v", err)
	}
}

func TestOpenContainer_LengthGate(t *testing.T) {
	// Local: anything under 13 bytes is structurally malformed.
	for size := 0; size < 13; size++ {
		if _, err := OpenContainer("p", make([]byte, size), KindLocal); !errors.Is(err, verrors.ErrMalformedContainer) {
			t.Errorf("Local input of %d bytes: expected ErrMalformedContainer, got %v", size, err)
		}
	}

	// Export: anything under 36 bytes is structurally malformed, even with
	// a valid header prefix.
	short := append([]byte("AGEV"), 1, 0, 0, 0)
	if _, err := OpenContainer("p", short, KindExport); !errors.Is(err, verrors.ErrMalformedContainer) {
		t.Errorf("Export input of %d bytes: expected ErrMalformedContainer, got %v", len(short), err)
	}
	if _, err := OpenContainer("p", make([]byte, 35), KindExport); !errors.Is(err, verrors.ErrMalformedContainer) {
		t.Error("35-byte export input should be ErrMalformedContainer")
	}
}

func TestSealContainer_ExportPassphrasePolicy(t *testing.T) {
	records := sampleRecords()

	for _, passphrase := range []string{"", "a", "abc"} {
		if _, err := SealContainer(passphrase, records, KindExport); !errors.Is(err, verrors.ErrPassphraseTooShort) {
			t.Errorf("Export passphrase %q: expected ErrPassphraseTooShort, got %v", passphrase, err)
		}
	}

	// Length >= 4 succeeds regardless of content.
	if _, err := SealContainer("    ", records, KindExport); err != nil {
		t.Errorf("4-character export passphrase should be accepted, got %v", err)
	}

	// The local vault imposes no minimum: its passphrase is machine-generated.
	if _, err := SealContainer("", records, KindLocal); err != nil {
		t.Errorf("Local sealing must not enforce a passphrase minimum, got %v", err)
	}
}

func TestOpenContainer_EmptyRecordSet(t *testing.T) {
	sealed, err := SealContainer("correct horse", nil, KindLocal)
	if err != nil {
		t.Fatalf("SealContainer failed: %v", err)
	}

	opened, err := OpenContainer("correct horse", sealed, KindLocal)
	if err != nil {
		t.Fatalf("OpenContainer failed: %v", err)
	}
	if len(opened) != 0 {
		t.Errorf("Expected empty record set, got %d records", len(opened))
	}
}

func TestOpenContainer_OrderPreserved(t *testing.T) {
	var records []KeyRecord
	for _, name := range []string{"zeta", "alpha", "mike", "echo"} {
		records = append(records, KeyRecord{
			ID:        "id-" + name,
			Name:      name,
			PublicKey: "age1" + name,
			CreatedAt: 1700000000,
		})
	}

	sealed, err := SealContainer("correct horse", records, KindLocal)
	if err != nil {
		t.Fatalf("SealContainer failed: %v", err)
	}
	opened, err := OpenContainer("correct horse", sealed, KindLocal)
	if err != nil {
		t.Fatalf("OpenContainer failed: %v", err)
	}

	for i := range records {
		if opened[i].Name != records[i].Name {
			t.Fatalf("Record order not preserved: position %d is %q, want %q", i, opened[i].Name, records[i].Name)
		}
	}
}
