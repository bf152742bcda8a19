package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agentx-labs/skillcheck/internal/branding"
	"github.com/agentx-labs/skillcheck/internal/buildinfo"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print build details as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), build, versionShort, versionJSON)
	},
}

func writeVersion(w io.Writer, info buildinfo.Info, short, asJSON bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	suffix := ""
	if !info.IsRelease() {
		suffix = " [development build]"
	}
	_, err := fmt.Fprintf(w, "%s version %s%s\n", branding.CLIName(), info, suffix)
	return err
}
