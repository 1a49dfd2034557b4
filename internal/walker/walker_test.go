package walker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestListFilesFiltersAndRecurses(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "b.md"))
	writeFile(t, filepath.Join(root, "sub", "c.txt"))
	writeFile(t, filepath.Join(root, "sub", "deeper", "d.txt"))

	files, err := ListFiles(root, func(ext string) bool { return ext == ".txt" })
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.txt"),
		filepath.Join(root, "sub", "deeper", "d.txt"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("ListFiles = %v, want %v", files, want)
	}
}

func TestListFilesEmptyTree(t *testing.T) {
	files, err := ListFiles(t.TempDir(), func(string) bool { return true })
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("ListFiles = %v, want empty", files)
	}
}

func TestListFilesMissingRoot(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), func(string) bool { return true })
	if err == nil {
		t.Fatal("ListFiles should fail on a missing root")
	}
}

func TestListFilesSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory whose name matches the predicate must not be listed.
	if err := os.MkdirAll(filepath.Join(root, "dir.txt"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, "dir.txt", "inner.txt"))

	files, err := ListFiles(root, func(ext string) bool { return ext == ".txt" })
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{filepath.Join(root, "dir.txt", "inner.txt")}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("ListFiles = %v, want %v", files, want)
	}
}
