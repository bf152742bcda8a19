package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Issue is a single schema violation.
type Issue struct {
	Path    string // instance location, e.g. "/0/name"
	Message string
	Keyword string
}

// SchemaError reports a metadata file that parsed but violated its schema.
type SchemaError struct {
	File   string
	Issues []Issue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return fmt.Sprintf("%s does not match its schema: %s", e.File, strings.Join(parts, "; "))
}

// ValidateAll checks every file (relative to root) in order and stops at the
// first problem.
func ValidateAll(root string, files []string) error {
	for _, name := range files {
		if err := ValidateFile(filepath.Join(root, filepath.FromSlash(name))); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFile checks that path exists, holds valid JSON, and satisfies
// its sibling schema if there is one.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("missing required metadata file: %s", path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	schemaPath := SchemaPathFor(path)
	if _, err := os.Stat(schemaPath); err != nil {
		return nil
	}

	schema, err := compileSchema(schemaPath)
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("validating %s: %w", path, err)
		}
		return &SchemaError{File: path, Issues: extractIssues(ve)}
	}
	return nil
}

// SchemaPathFor returns the schema location for a metadata file:
// data/catalog.json → data/catalog.schema.json.
func SchemaPathFor(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".schema.json"
}

func compileSchema(schemaPath string) (*jsonschema.Schema, error) {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", schemaPath, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema %s: %w", schemaPath, err)
	}

	name := filepath.Base(schemaPath)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource %s: %w", schemaPath, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", schemaPath, err)
	}
	return schema, nil
}

// extractIssues flattens the validation error tree into leaf issues.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return dedupe(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
				keyword = kw[len(kw)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords only repeat what their causes say.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, Issue{Path: path, Message: msg, Keyword: keyword})
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

func dedupe(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var out []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			out = append(out, issue)
		}
	}
	return out
}
