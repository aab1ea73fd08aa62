package vault

import (
	"encoding/json"
	"fmt"

	verrors "github.com/agevault/agevault/internal/errors"
)

// CurrentVersion is the only record-payload version this build reads or
// writes. Unrecognized versions are rejected outright rather than decoded
// with silently dropped fields.
const CurrentVersion uint32 = 1

// Container is the serialized form of a record set.
type Container struct {
	Keys    []KeyRecord `json:"keys"`
	Version uint32      `json:"version"`
}

// EncodeRecords serializes a record set to the JSON payload that gets
// sealed into a container.
func EncodeRecords(records []KeyRecord) ([]byte, error) {
	container := Container{
		Keys:    records,
		Version: CurrentVersion,
	}

	data, err := json.Marshal(container)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize keys: %w", err)
	}

	return data, nil
}

// DecodeRecords parses a decrypted container payload back into records.
func DecodeRecords(data []byte) ([]KeyRecord, error) {
	var container Container
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("%w: failed to parse decrypted data: %v", verrors.ErrMalformedContainer, err)
	}

	if container.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: unsupported container version %d", verrors.ErrMalformedContainer, container.Version)
	}

	return container.Keys, nil
}
