package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "teachers.json")}
	creds, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(creds) != 0 {
		t.Fatalf("expected empty store, got %d entries", len(creds))
	}
}

func TestFileStoreReadsTeachers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teachers.json")
	payload := `{"teachers": {"rodriguez@mergington.edu": {"password": "art123", "name": "Ms. Rodriguez"}}}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := FileStore{Path: path}
	creds, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	cred, ok := creds["rodriguez@mergington.edu"]
	if !ok {
		t.Fatalf("expected teacher entry, got %v", creds)
	}
	if cred.Name != "Ms. Rodriguez" || cred.Password != "art123" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
}

func TestFileStoreRereadsPerCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teachers.json")
	store := FileStore{Path: path}

	creds, err := store.Snapshot()
	if err != nil || len(creds) != 0 {
		t.Fatalf("expected empty snapshot before write, got %v, %v", creds, err)
	}

	payload := `{"teachers": {"chen@mergington.edu": {"password": "pw", "name": "Mr. Chen"}}}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	creds, err = store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot after write: %v", err)
	}
	if _, ok := creds["chen@mergington.edu"]; !ok {
		t.Fatalf("expected new entry to be visible without restart")
	}
}

func TestFileStoreMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teachers.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := (FileStore{Path: path}).Snapshot(); err == nil {
		t.Fatal("expected parse error")
	}
}
