package skill

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agentx-labs/skillcheck/internal/platform"
)

// SymlinkedSkill is a skill unit whose own directory is a symbolic link.
type SymlinkedSkill struct {
	RelPath string // skill directory relative to the scanned root
	Target  string // canonical absolute path the link resolves to
}

// DetectSymlinked returns every skill unit under root whose immediate parent
// directory is a symlink, sorted by RelPath. A skill that merely sits beneath a
// symlinked ancestor is not reported.
func DetectSymlinked(root, marker string) ([]SymlinkedSkill, error) {
	var found []SymlinkedSkill

	for rel, err := range Scan(root, marker) {
		if err != nil {
			return nil, err
		}

		relDir := RelDir(rel)
		dir := platform.Under(root, relDir)

		isLink, err := platform.IsSymlink(dir)
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", dir, err)
		}
		if !isLink {
			continue
		}

		target, err := platform.ResolveReal(dir)
		if err != nil {
			return nil, err
		}
		found = append(found, SymlinkedSkill{RelPath: relDir, Target: target})
	}

	slices.SortFunc(found, func(a, b SymlinkedSkill) int {
		return strings.Compare(a.RelPath, b.RelPath)
	})
	return found, nil
}
