package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesUniqueJPGFiles(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new image store: %v", err)
	}

	first, err := store.Save(bytes.NewReader([]byte("scan-bytes")))
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := store.Save(bytes.NewReader([]byte("scan-bytes")))
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	if first == second {
		t.Fatalf("paths should be unique, both %q", first)
	}
	if !strings.HasSuffix(first, ".jpg") {
		t.Errorf("path %q should end in .jpg", first)
	}

	content, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "scan-bytes" {
		t.Errorf("content = %q, want %q", content, "scan-bytes")
	}
}

func TestNewImageStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewImageStore(dir); err != nil {
		t.Fatalf("new image store: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat dir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%q should be a directory", dir)
	}
}
