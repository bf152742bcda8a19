package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"slices"

	"github.com/agentx-labs/skillcheck/internal/platform"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMarker is the file name that identifies a skill unit.
const DefaultMarker = "SKILL.md"

var errStopScan = errors.New("scan stopped")

// Scan lazily yields the slash-separated path, relative to root, of every
// file named marker anywhere beneath root. A symlinked directory is entered
// once per real directory it resolves to, and never when it resolves to root,
// so link cycles terminate. The caller is expected to have checked root with
// RequireDir.
func Scan(root, marker string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		rootReal, err := platform.ResolveReal(root)
		if err != nil {
			yield("", fmt.Errorf("scanning %s for %s: %w", root, marker, err))
			return
		}

		w := &walker{
			marker:  marker,
			yield:   yield,
			entered: map[string]bool{rootReal: true},
		}
		if err := w.walk(root, ""); err != nil && !w.stopped {
			yield("", fmt.Errorf("scanning %s for %s: %w", root, marker, err))
		}
	}
}

type walker struct {
	marker  string
	yield   func(string, error) bool
	entered map[string]bool // real paths of directories walked so far via a link
	stopped bool
}

// walk lists dir without following links, then descends into each linked
// directory not yet entered. prefix is dir relative to the scan root.
func (w *walker) walk(dir, prefix string) error {
	var links []string

	err := doublestar.GlobWalk(os.DirFS(dir), "**", func(p string, d fs.DirEntry) error {
		if p == "." {
			return nil
		}
		if d.Type()&fs.ModeSymlink == 0 {
			if !d.IsDir() && d.Name() == w.marker {
				return w.emit(path.Join(prefix, p))
			}
			return nil
		}

		info, err := os.Stat(platform.Under(dir, p))
		if err != nil {
			// dangling
			return nil
		}
		if info.IsDir() {
			links = append(links, p)
			return nil
		}
		if d.Name() == w.marker {
			return w.emit(path.Join(prefix, p))
		}
		return nil
	}, doublestar.WithNoFollow())
	if err != nil {
		return err
	}

	for _, p := range links {
		linkPath := platform.Under(dir, p)
		resolved, err := platform.ResolveReal(linkPath)
		if err != nil || w.entered[resolved] {
			continue
		}
		w.entered[resolved] = true
		if err := w.walk(linkPath, path.Join(prefix, p)); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) emit(rel string) error {
	if !w.yield(rel, nil) {
		w.stopped = true
		return errStopScan
	}
	return nil
}

// ScanAll collects Scan into a slice ordered component by component.
func ScanAll(root, marker string) ([]string, error) {
	var found []string
	for p, err := range Scan(root, marker) {
		if err != nil {
			return nil, err
		}
		found = append(found, p)
	}
	slices.SortFunc(found, comparePaths)
	return found, nil
}
