package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/agentx-labs/skillcheck/internal/logger"
	"github.com/agentx-labs/skillcheck/internal/skill"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportSymlinksCmd)
}

var reportSymlinksCmd = &cobra.Command{
	Use:   "report-symlinks <root>...",
	Short: "Report skill directories that are symlinks",
	Long: `Scan one or more source snapshot roots (for example .github/skills) and list
every skill whose own directory is a symbolic link, with the real path it
resolves to. Skills that only sit beneath a symlinked parent are not listed.

Exits non-zero if any root does not exist; the remaining roots are still reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReportSymlinks(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.MarkerFile, args)
	},
}

func runReportSymlinks(ctx context.Context, out, errOut io.Writer, marker string, roots []string) error {
	log := logger.G(ctx)
	failed := false

	for _, raw := range roots {
		root := rootArg(raw)
		if err := skill.RequireDir("", root); err != nil {
			errorLine(errOut, "", err)
			failed = true
			continue
		}

		found, err := skill.DetectSymlinked(root, marker)
		if err != nil {
			errorLine(errOut, "", err)
			failed = true
			continue
		}
		log.WithField("root", root).Debugf("%d symlinked skill(s)", len(found))

		header(out, root)
		if len(found) == 0 {
			fmt.Fprintln(out, "(no symlinked skills found)")
			continue
		}
		for _, s := range found {
			fmt.Fprintf(out, "- %s -> %s\n", s.RelPath, s.Target)
		}
	}

	if failed {
		return errSilent
	}
	return nil
}
