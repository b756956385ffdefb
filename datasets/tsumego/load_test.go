package tsumego

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.bin")
	buf := append(record(0x80, 1), record(0xFF, 2)...)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
	images, labels, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if images.Dim(0) != 2 {
		t.Errorf("loaded %d records, want 2", images.Dim(0))
	}
	if labels.At(1, 0, 0, 2) != 1.0 {
		t.Errorf("record 1 label slot 2 not set")
	}
	// decoded tensors must stay valid after the mapping is gone
	if images.At(0, 0, 0, 0) != 1.0 {
		t.Errorf("record 0 first pixel not set")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	images, labels, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if images.Dim(0) != 0 || labels.Dim(0) != 0 {
		t.Errorf("empty file loaded to %d/%d records", images.Dim(0), labels.Dim(0))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.bin"), false); err == nil {
		t.Errorf("missing file did not error")
	}
}
