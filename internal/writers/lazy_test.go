package writers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLazyFileNotCreatedWithoutWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := NewLazyFile(path)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file exists after Close without Write: %v", err)
	}
}

func TestLazyFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a much longer previous content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewLazyFile(path)
	if _, err := w.Write([]byte("new\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("content = %q, want %q", got, "new\n")
	}
}

func TestLazyWriteCloserInitError(t *testing.T) {
	w := NewLazyFile(filepath.Join(t.TempDir(), "missing", "dir", "out.txt"))
	if _, err := w.Write([]byte("x")); err == nil {
		t.Error("expected error opening file in missing directory")
	}
}
