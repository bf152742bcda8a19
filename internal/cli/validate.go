package cli

import (
	"fmt"
	"io"

	"github.com/agentx-labs/skillcheck/internal/metadata"
	"github.com/spf13/cobra"
)

var (
	validateWave string
	validateRoot string
)

func init() {
	validateCmd.Flags().StringVar(&validateWave, "wave", "all", "wave label for reporting (e.g. PR-0, PR-1)")
	validateCmd.Flags().StringVar(&validateRoot, "root", ".", "directory the metadata file paths are relative to")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate-metadata",
	Short: "Validate skill migration metadata files",
	Long: `Check that every metadata file required by a migration wave exists and parses
as JSON. By default these are skills_index.json, data/catalog.json, and
data/aliases.json; set metadata_files in the config file to change the list.
A file with a sibling <name>.schema.json is also validated against that schema.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), validateRoot, settings.MetadataFiles, validateWave)
	},
}

func runValidate(out, errOut io.Writer, root string, files []string, wave string) error {
	if err := metadata.ValidateAll(root, files); err != nil {
		errorLine(errOut, wave, err)
		return errSilent
	}
	fmt.Fprintf(out, "Validation passed for wave '%s'.\n", wave)
	return nil
}
