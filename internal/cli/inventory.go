package cli

import (
	"fmt"
	"io"

	"github.com/agentx-labs/skillcheck/internal/inventory"
	"github.com/spf13/cobra"
)

var inventoryStrict bool

func init() {
	inventoryCmd.Flags().BoolVar(&inventoryStrict, "strict", false, "exit non-zero if any SKILL.md has unusable frontmatter")
	rootCmd.AddCommand(inventoryCmd)
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory <root>",
	Short: "List the skills under a root with their frontmatter name and description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInventory(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], settings.MarkerFile, inventoryStrict)
	},
}

func runInventory(out, errOut io.Writer, rawRoot, marker string, strict bool) error {
	root := rootArg(rawRoot)
	entries, err := inventory.List(root, marker)
	if err != nil {
		errorLine(errOut, "", err)
		return errSilent
	}

	header(out, root)
	invalid := 0
	for _, e := range entries {
		line := "- " + e.RelDir
		if e.Err != nil {
			invalid++
			line += fmt.Sprintf(" (invalid frontmatter: %v)", e.Err)
		} else {
			line += ": " + e.Name
			if e.Description != "" {
				line += " - " + e.Description
			}
		}
		if e.Symlinked {
			line += " [symlink -> " + e.LinkTarget + "]"
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, printer.Sprintf("%d skill(s), %d with invalid frontmatter", len(entries), invalid))

	if strict && invalid > 0 {
		return errSilent
	}
	return nil
}
