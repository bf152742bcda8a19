package skill

import (
	"fmt"
	"os"
	"slices"
)

// DefaultIgnoredNames are housekeeping entries never compared.
var DefaultIgnoredNames = []string{".DS_Store", "__pycache__"}

// IgnoreSet holds entry names excluded from comparison. The zero value ignores nothing.
type IgnoreSet map[string]bool

// NewIgnoreSet builds an IgnoreSet from names.
func NewIgnoreSet(names ...string) IgnoreSet {
	s := make(IgnoreSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Contains reports whether name is ignored.
func (s IgnoreSet) Contains(name string) bool {
	return s[name]
}

// EntrySet is the set of visible direct child names of a directory.
type EntrySet map[string]struct{}

// VisibleEntries lists the direct children of dir, minus ignored names.
func VisibleEntries(dir string, ignore IgnoreSet) (EntrySet, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	set := make(EntrySet, len(children))
	for _, c := range children {
		if ignore.Contains(c.Name()) {
			continue
		}
		set[c.Name()] = struct{}{}
	}
	return set, nil
}

// Difference returns the names in source that are absent from imported, sorted.
func Difference(source, imported EntrySet) []string {
	var missing []string
	for name := range source {
		if _, ok := imported[name]; !ok {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}

// MissingEntries compares two skill directories and returns the visible
// entries of sourceDir that importDir lacks. Both must be readable directories.
func MissingEntries(sourceDir, importDir string, ignore IgnoreSet) ([]string, error) {
	src, err := VisibleEntries(sourceDir, ignore)
	if err != nil {
		return nil, err
	}
	imp, err := VisibleEntries(importDir, ignore)
	if err != nil {
		return nil, err
	}
	return Difference(src, imp), nil
}
