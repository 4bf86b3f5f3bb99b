package fsutil

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMemoryFileSystemReadWrite(t *testing.T) {
	t.Parallel()

	m := NewMemoryFileSystem()

	if err := m.WriteFile("data/conf.tsv", []byte("trans_x\n0.1\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := m.ReadFile("data/conf.tsv")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "trans_x\n0.1\n" {
		t.Errorf("ReadFile = %q, want %q", got, "trans_x\n0.1\n")
	}
}

func TestMemoryFileSystemReadMissing(t *testing.T) {
	t.Parallel()

	m := NewMemoryFileSystem()
	_, err := m.ReadFile("nope.tsv")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoryFileSystemReadReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewMemoryFileSystem()
	if err := m.WriteFile("f", []byte("abc"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, _ := m.ReadFile("f")
	got[0] = 'x'

	again, _ := m.ReadFile("f")
	if string(again) != "abc" {
		t.Errorf("stored data mutated through returned slice: %q", again)
	}
}

func TestMemoryFileSystemMkdirAll(t *testing.T) {
	t.Parallel()

	m := NewMemoryFileSystem()
	if err := m.MkdirAll("a/b/c", 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	for _, dir := range []string{"a", "a/b", "a/b/c"} {
		if !m.Exists(dir) {
			t.Errorf("Exists(%q) = false, want true", dir)
		}
	}
}

func TestMemoryFileSystemExists(t *testing.T) {
	t.Parallel()

	m := NewMemoryFileSystem()
	if m.Exists("ghost") {
		t.Error("Exists(ghost) = true before write")
	}

	if err := m.WriteFile("ghost", nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !m.Exists("ghost") {
		t.Error("Exists(ghost) = false after write")
	}
}
