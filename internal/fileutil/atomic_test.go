package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "state.json")
	testData := []byte(`{"ok": true}`)

	if err := WriteFileAtomic(testFile, testData, 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("File content mismatch: got %q, want %q", string(data), string(testData))
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0644)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "state.json" {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "preflop-trainer", "nested", "state.json")
	if err := WriteFileAtomic(testFile, []byte("{}"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if _, err := os.Stat(testFile); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestWriteFileAtomicParentIsFile(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(filepath.Join(blocker, "state.json"), []byte("{}"), 0644); err == nil {
		t.Error("Expected error when parent path is a file")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "state.json")

	var missing map[string]bool
	found, err := ReadJSON(testFile, &missing)
	if err != nil || found {
		t.Fatalf("Expected missing file to be not found without error, got %v %v", found, err)
	}

	if err := WriteJSONAtomic(testFile, map[string]bool{"seen": true}, 0644); err != nil {
		t.Fatalf("WriteJSONAtomic failed: %v", err)
	}

	var got map[string]bool
	found, err = ReadJSON(testFile, &got)
	if err != nil || !found {
		t.Fatalf("ReadJSON failed: %v %v", found, err)
	}
	if !got["seen"] {
		t.Errorf("Expected seen flag, got %v", got)
	}
}

func TestReadJSONCorrupt(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(testFile, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var v map[string]bool
	found, err := ReadJSON(testFile, &v)
	if !found || err == nil {
		t.Errorf("Expected found with decode error, got %v %v", found, err)
	}
}
