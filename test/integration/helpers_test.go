//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// migrationEnv holds the two trees a skill migration compares.
type migrationEnv struct {
	SourceRoot string // snapshot the skills were copied from
	ImportRoot string // tree the skills were copied into
	RepoRoot   string // holds metadata files and the linked skills dir
}

// setupMigration creates isolated source and import roots under one repo dir
// and points the SKILLCHECK_* variables at them.
func setupMigration(t *testing.T) *migrationEnv {
	t.Helper()

	repo := t.TempDir()
	env := &migrationEnv{
		SourceRoot: filepath.Join(repo, ".github", "skills"),
		ImportRoot: filepath.Join(repo, "skills"),
		RepoRoot:   repo,
	}
	for _, dir := range []string{env.SourceRoot, env.ImportRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	t.Setenv("SKILLCHECK_SOURCE_ROOT", env.SourceRoot)
	t.Setenv("SKILLCHECK_IMPORT_ROOT", env.ImportRoot)
	return env
}

// writeSkill creates dir/SKILL.md with frontmatter plus the given sibling
// entries. Names ending in "/" become directories.
func writeSkill(t *testing.T, root, dir, name string, siblings ...string) {
	t.Helper()

	skillDir := filepath.Join(root, filepath.FromSlash(dir))
	writeFile(t, filepath.Join(skillDir, "SKILL.md"),
		"---\nname: "+name+"\ndescription: "+name+" skill\n---\n\n# "+name+"\n")
	for _, s := range siblings {
		p := filepath.Join(skillDir, filepath.FromSlash(s))
		if s[len(s)-1] == '/' {
			if err := os.MkdirAll(p, 0755); err != nil {
				t.Fatalf("creating %s: %v", p, err)
			}
			continue
		}
		writeFile(t, p, "content of "+s+"\n")
	}
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink %s -> %s: %v", link, target, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}
