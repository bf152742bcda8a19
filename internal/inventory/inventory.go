// Package inventory lists the skill units under a root together with the
// name and description declared in each marker file's YAML frontmatter.
package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/agentx-labs/skillcheck/internal/platform"
	"github.com/agentx-labs/skillcheck/internal/skill"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Entry describes one skill unit.
type Entry struct {
	RelDir      string
	Name        string
	Description string
	Symlinked   bool
	LinkTarget  string // raw link text when Symlinked
	Err         error  // frontmatter problem, if any
}

// Frontmatter is the subset of marker metadata skillcheck reads.
type Frontmatter struct {
	Name        string
	Description string
}

// List returns an Entry for every marker under root, in scan order.
// Unreadable or malformed frontmatter is recorded on the entry, not returned.
func List(root, marker string) ([]Entry, error) {
	if err := skill.RequireDir("", root); err != nil {
		return nil, err
	}

	markers, err := skill.ScanAll(root, marker)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(markers))
	for _, rel := range markers {
		relDir := skill.RelDir(rel)
		dir := platform.Under(root, relDir)
		e := Entry{RelDir: relDir}

		if isLink, err := platform.IsSymlink(dir); err == nil && isLink {
			e.Symlinked = true
			e.LinkTarget, _ = platform.ReadSymlinkTarget(dir)
		}

		fm, err := ReadFrontmatter(platform.Under(root, rel))
		if err != nil {
			e.Err = err
		} else {
			e.Name = fm.Name
			e.Description = fm.Description
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadFrontmatter parses the YAML frontmatter of a marker file.
func ReadFrontmatter(path string) (*Frontmatter, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseFrontmatter(content)
}

// ParseFrontmatter extracts name and description from markdown content.
func ParseFrontmatter(content []byte) (*Frontmatter, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}

	data := meta.Get(pctx)
	if len(data) == 0 {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := data["name"].(string)
	description, _ := data["description"].(string)
	if name == "" {
		return nil, errors.New("frontmatter has no name")
	}

	return &Frontmatter{Name: name, Description: description}, nil
}
