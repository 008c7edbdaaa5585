package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isMP3(path string) bool { return strings.HasSuffix(path, ".mp3") }

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCollect_FilesKeepArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	b := filepath.Join(dir, "b.mp3")
	a := filepath.Join(dir, "a.mp3")
	txt := filepath.Join(dir, "notes.txt")
	touch(t, a)
	touch(t, b)
	touch(t, txt)

	got, err := Collect([]string{b, txt, a}, isMP3)

	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	want := []string{b, a}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollect_DirectoryIsRecursiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.mp3"))
	touch(t, filepath.Join(dir, "album", "02.mp3"))
	touch(t, filepath.Join(dir, "album", "01.mp3"))
	touch(t, filepath.Join(dir, "album", "cover.jpg"))

	got, err := Collect([]string{dir}, isMP3)

	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "album", "01.mp3"),
		filepath.Join(dir, "album", "02.mp3"),
		filepath.Join(dir, "z.mp3"),
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollect_MissingPathReportedButOthersKept(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mp3")
	touch(t, a)

	got, err := Collect([]string{filepath.Join(dir, "missing.mp3"), a}, isMP3)

	if err == nil {
		t.Error("Collect() error = nil, want error for missing path")
	}
	if len(got) != 1 || got[0] != a {
		t.Errorf("Collect() = %v, want [%s]", got, a)
	}
}

// deepDir builds a chain of directories under parent whose full path is
// longer than PATH_MAX, so it cannot be opened by name.
func deepDir(t *testing.T, parent string) {
	t.Helper()
	t.Chdir(parent)
	name := strings.Repeat("d", 200)
	for range 25 {
		if err := os.Mkdir(name, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.Chdir(name); err != nil {
			t.Fatalf("chdir: %v", err)
		}
	}
	touch(t, "deep.mp3")
}

func TestCollect_UnreadableSubdirectoryDoesNotStopWalk(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "a"), 0o755); err != nil {
		t.Fatal(err)
	}
	deepDir(t, filepath.Join(dir, "a"))
	z := filepath.Join(dir, "z.mp3")
	touch(t, z)

	got, err := Collect([]string{dir}, isMP3)

	if err == nil {
		t.Error("Collect() error = nil, want the unreadable directory reported")
	}
	if len(got) != 1 || got[0] != z {
		t.Errorf("Collect() = %v, want [%s]", got, z)
	}
}
