package skill

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeSkill creates dir (relative to root) holding a marker plus the given
// sibling files. Names ending in "/" are created as directories.
func writeSkill(t *testing.T, root, dir string, siblings ...string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(dir))
	if err := os.MkdirAll(full, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(full, DefaultMarker), []byte("---\nname: test\n---\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, name := range siblings {
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(filepath.Join(full, name), 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.WriteFile(filepath.Join(full, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return full
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("creating symlink: %v", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
