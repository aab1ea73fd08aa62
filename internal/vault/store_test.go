package vault

import (
	"errors"
	"testing"

	verrors "github.com/agevault/agevault/internal/errors"
)

func TestStore_AddAndFind(t *testing.T) {
	store := NewStore(nil)

	record := NewKeyRecord("laptop", "age1abc", strPtr("AGE-SECRET-KEY-1XYZ"), nil)
	if err := store.Add(record); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	byID, err := store.Find(record.ID)
	if err != nil {
		t.Fatalf("Find by id failed: %v", err)
	}
	if byID.Name != "laptop" {
		t.Errorf("Expected laptop, got %q", byID.Name)
	}

	byName, err := store.Find("laptop")
	if err != nil {
		t.Fatalf("Find by name failed: %v", err)
	}
	if byName.ID != record.ID {
		t.Errorf("Name lookup returned wrong record: %q", byName.ID)
	}

	if _, err := store.Find("missing"); !errors.Is(err, verrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_RejectsDuplicateID(t *testing.T) {
	record := NewKeyRecord("laptop", "age1abc", nil, nil)
	store := NewStore([]KeyRecord{record})

	if err := store.Add(record); !errors.Is(err, verrors.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Duplicate add must not grow the store, len=%d", store.Len())
	}
}

func TestStore_Remove(t *testing.T) {
	a := NewKeyRecord("laptop", "age1a", nil, nil)
	b := NewKeyRecord("desktop", "age1b", nil, nil)
	store := NewStore([]KeyRecord{a, b})

	removed, err := store.Remove("laptop")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed.ID != a.ID {
		t.Errorf("Removed wrong record: %q", removed.ID)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 record left, got %d", store.Len())
	}

	if _, err := store.Remove("laptop"); !errors.Is(err, verrors.ErrKeyNotFound) {
		t.Errorf("Removing a missing key: expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_Rename(t *testing.T) {
	record := NewKeyRecord("laptop", "age1abc", nil, nil)
	store := NewStore([]KeyRecord{record})

	renamed, err := store.Rename("laptop", "work-laptop")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "work-laptop" {
		t.Errorf("Expected new name, got %q", renamed.Name)
	}
	if renamed.ID != record.ID {
		t.Error("Rename must not change the record id")
	}

	found, err := store.Find("work-laptop")
	if err != nil {
		t.Fatalf("Find after rename failed: %v", err)
	}
	if found.ID != record.ID {
		t.Error("Renamed record not findable by new name")
	}
}

func TestStore_Merge(t *testing.T) {
	a := NewKeyRecord("laptop", "age1a", nil, nil)
	b := NewKeyRecord("desktop", "age1b", nil, nil)
	store := NewStore([]KeyRecord{a})

	added, skipped := store.Merge([]KeyRecord{a, b})
	if added != 1 || skipped != 1 {
		t.Errorf("Expected added=1 skipped=1, got added=%d skipped=%d", added, skipped)
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 records after merge, got %d", store.Len())
	}
}

func TestStore_Replace(t *testing.T) {
	store := NewStore([]KeyRecord{NewKeyRecord("old", "age1old", nil, nil)})

	replacement := []KeyRecord{
		NewKeyRecord("new-1", "age1n1", nil, nil),
		NewKeyRecord("new-2", "age1n2", nil, nil),
	}
	store.Replace(replacement)

	if store.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", store.Len())
	}
	if _, err := store.Find("old"); err == nil {
		t.Error("Replaced record should be gone")
	}
}

func TestStore_RecordsReturnsCopy(t *testing.T) {
	record := NewKeyRecord("laptop", "age1abc", nil, nil)
	store := NewStore([]KeyRecord{record})

	records := store.Records()
	records[0].Name = "mutated"

	found, err := store.Find(record.ID)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found.Name != "laptop" {
		t.Error("Mutating the returned slice must not affect the store")
	}
}
