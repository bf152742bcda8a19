package skill

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/skillcheck/internal/logger"
	"github.com/agentx-labs/skillcheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// FailureKind classifies a completeness failure.
type FailureKind string

const (
	// FailureMissingSource: the imported skill has no source counterpart.
	FailureMissingSource FailureKind = "missing-source"
	// FailureMissingEntries: the source skill has entries the import lacks.
	FailureMissingEntries FailureKind = "missing-entries"
	// FailureUnreadable: one side of the pair could not be listed.
	FailureUnreadable FailureKind = "unreadable"
)

// Failure is one pairing or comparison problem found by Check.
type Failure struct {
	RelDir    string
	Kind      FailureKind
	Marker    string
	SourceDir string
	Missing   []string
	Err       error
}

func (f Failure) String() string {
	switch f.Kind {
	case FailureMissingSource:
		marker := f.Marker
		if marker == "" {
			marker = DefaultMarker
		}
		return fmt.Sprintf("%s: imported %s exists but source skill directory is missing (%s)", f.RelDir, marker, f.SourceDir)
	case FailureMissingEntries:
		return fmt.Sprintf("%s: missing sibling entries from source snapshot: %s", f.RelDir, strings.Join(f.Missing, ", "))
	default:
		return fmt.Sprintf("%s: cannot compare skill directories: %v", f.RelDir, f.Err)
	}
}

// Report is the outcome of one completeness check.
type Report struct {
	SourceRoot string
	ImportRoot string
	Checked    int // pairs whose source directory existed
	Failures   []Failure
}

// OK reports whether no failures were recorded.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Messages returns the human-readable form of every failure, in order.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.String()
	}
	return out
}

// Checker verifies that imported skills carry every sibling entry of their source.
type Checker struct {
	Marker string
	Ignore IgnoreSet
	Log    *logrus.Entry
}

// NewChecker returns a Checker for marker that skips the ignored names.
func NewChecker(marker string, ignored []string) *Checker {
	return &Checker{
		Marker: marker,
		Ignore: NewIgnoreSet(ignored...),
		Log:    logger.L,
	}
}

// Check pairs every marker under importRoot with the same relative directory
// under sourceRoot and compares their visible entries. A missing root is
// returned as a *RootError before anything is scanned. Problems with
// individual pairs are collected in the report and never stop the run.
func (c *Checker) Check(sourceRoot, importRoot string) (*Report, error) {
	if err := RequireDir(RoleSource, sourceRoot); err != nil {
		return nil, err
	}
	if err := RequireDir(RoleImport, importRoot); err != nil {
		return nil, err
	}

	log := c.Log
	if log == nil {
		log = logger.L
	}

	markers, err := ScanAll(importRoot, c.Marker)
	if err != nil {
		return nil, err
	}
	log.WithField("import_root", importRoot).Debugf("found %d %s file(s)", len(markers), c.Marker)

	report := &Report{SourceRoot: sourceRoot, ImportRoot: importRoot}

	for _, rel := range markers {
		relDir := RelDir(rel)
		sourceDir := SourceDirFor(sourceRoot, rel)
		importDir := platform.Under(importRoot, relDir)

		if !platform.IsDir(sourceDir) {
			log.WithField("skill", relDir).Debug("source skill directory missing")
			report.Failures = append(report.Failures, Failure{
				RelDir:    relDir,
				Kind:      FailureMissingSource,
				Marker:    c.Marker,
				SourceDir: sourceDir,
			})
			continue
		}

		missing, err := MissingEntries(sourceDir, importDir, c.Ignore)
		if err != nil {
			log.WithField("skill", relDir).WithError(err).Warn("skill directory could not be listed")
			report.Failures = append(report.Failures, Failure{
				RelDir:    relDir,
				Kind:      FailureUnreadable,
				SourceDir: sourceDir,
				Err:       err,
			})
			continue
		}

		if len(missing) > 0 {
			log.WithField("skill", relDir).Debugf("missing %d entries", len(missing))
			report.Failures = append(report.Failures, Failure{
				RelDir:    relDir,
				Kind:      FailureMissingEntries,
				SourceDir: sourceDir,
				Missing:   missing,
			})
		}
		report.Checked++
	}

	return report, nil
}
