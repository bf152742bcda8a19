package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/agentx-labs/skillcheck/internal/branding"
	"github.com/agentx-labs/skillcheck/internal/config"
	"github.com/agentx-labs/skillcheck/internal/logger"
	"github.com/agentx-labs/skillcheck/internal/skill"
	"github.com/spf13/cobra"
)

var (
	verifySourceRoot string
	verifyImportRoot string
	verifyJSON       bool
)

func init() {
	verifyCmd.Flags().StringVar(&verifySourceRoot, "source-root", config.DefaultSourceRoot, "root directory containing source snapshot skills (env "+branding.EnvVar(config.KeySourceRoot)+")")
	verifyCmd.Flags().StringVar(&verifyImportRoot, "import-root", config.DefaultImportRoot, "root directory containing imported skills (env "+branding.EnvVar(config.KeyImportRoot)+")")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify-completeness",
	Short: "Verify imported skills include every sibling entry from the source snapshot",
	Long: `For each SKILL.md under --import-root, find the skill directory at the same
relative path under --source-root and check that every file and directory next
to the source SKILL.md was imported too. .DS_Store and __pycache__ are ignored
unless ignored_names is configured.

Exit 0 if every imported skill is complete; exit non-zero if a root is missing
or any skill is incomplete or has no source counterpart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceRoot := settings.SourceRoot
		if cmd.Flags().Changed("source-root") {
			sourceRoot = verifySourceRoot
		}
		importRoot := settings.ImportRoot
		if cmd.Flags().Changed("import-root") {
			importRoot = verifyImportRoot
		}

		checker := skill.NewChecker(settings.MarkerFile, settings.IgnoredNames)
		checker.Log = logger.G(cmd.Context())
		return runVerify(cmd.OutOrStdout(), cmd.ErrOrStderr(), checker, sourceRoot, importRoot, verifyJSON)
	},
}

func runVerify(out, errOut io.Writer, checker *skill.Checker, sourceRoot, importRoot string, asJSON bool) error {
	report, err := checker.Check(rootArg(sourceRoot), rootArg(importRoot))
	if err != nil {
		var rootErr *skill.RootError
		if errors.As(err, &rootErr) {
			errorLine(errOut, "", err)
			return errSilent
		}
		return err
	}

	if asJSON {
		if err := writeReportJSON(out, report); err != nil {
			return err
		}
		if !report.OK() {
			return errSilent
		}
		return nil
	}

	if !report.OK() {
		fmt.Fprintln(errOut, "Skill completeness check failed:")
		for _, msg := range report.Messages() {
			fmt.Fprintf(errOut, "- %s\n", msg)
		}
		return errSilent
	}

	okColor.Fprintf(out, "Skill completeness check passed (%d imported skill(s) verified).\n", report.Checked)
	return nil
}

type jsonFailure struct {
	Skill     string            `json:"skill"`
	Kind      skill.FailureKind `json:"kind"`
	SourceDir string            `json:"source_dir,omitempty"`
	Missing   []string          `json:"missing,omitempty"`
	Message   string            `json:"message"`
}

type jsonReport struct {
	SourceRoot string        `json:"source_root"`
	ImportRoot string        `json:"import_root"`
	Checked    int           `json:"checked"`
	OK         bool          `json:"ok"`
	Failures   []jsonFailure `json:"failures"`
}

func writeReportJSON(w io.Writer, r *skill.Report) error {
	out := jsonReport{
		SourceRoot: r.SourceRoot,
		ImportRoot: r.ImportRoot,
		Checked:    r.Checked,
		OK:         r.OK(),
		Failures:   []jsonFailure{},
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, jsonFailure{
			Skill:     filepath.ToSlash(f.RelDir),
			Kind:      f.Kind,
			SourceDir: f.SourceDir,
			Missing:   f.Missing,
			Message:   f.String(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
