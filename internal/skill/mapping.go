package skill

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentx-labs/skillcheck/internal/platform"
)

// RelDir returns the skill directory of a root-relative, slash-separated
// marker path in OS form. A marker at the root itself yields ".".
func RelDir(relMarker string) string {
	return filepath.FromSlash(path.Dir(relMarker))
}

// SourceDirFor maps a marker path relative to the import root onto the
// directory expected to hold the same skill under sourceRoot.
func SourceDirFor(sourceRoot, relMarker string) string {
	return platform.Under(sourceRoot, RelDir(relMarker))
}

// comparePaths orders slash paths component by component, so "a/b" sorts
// before "a-b".
func comparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}
