package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsDir reports whether path exists and is a directory, following symlinks.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsSymlink reports whether path itself is a symbolic link. Links in
// ancestor components are followed as usual; only the final element is tested.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(trimSeparators(path))
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// ResolveReal returns the canonical absolute path of path with every
// symbolic link along the way resolved. Links are resolved before ".."
// segments are applied, so "link/.." is the parent of the link's target.
func ResolveReal(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks of %s: %w", path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path of %s: %w", resolved, err)
	}
	return abs, nil
}

// Under joins rel beneath root. Unlike filepath.Join it leaves root as
// given, so ".." segments in root still go through the filesystem.
func Under(root, rel string) string {
	root = filepath.FromSlash(root)
	rel = filepath.Clean(filepath.FromSlash(rel))
	switch {
	case rel == ".":
		return root
	case root == "":
		return rel
	case os.IsPathSeparator(root[len(root)-1]):
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}

// trimSeparators drops trailing separators so Lstat sees the link itself.
func trimSeparators(path string) string {
	trimmed := strings.TrimRight(path, `/`+string(filepath.Separator))
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		return path[:len(trimmed)+1]
	}
	return trimmed
}

// ReadSymlinkTarget returns the immediate target of a symlink as stored in
// the link, which may be relative to the link's directory.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}
