package cli

import (
	"fmt"
	"io"

	"github.com/agentx-labs/skillcheck/internal/branding"
	"github.com/agentx-labs/skillcheck/internal/config"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect resolved settings",
	Long: `Show the settings skillcheck resolved from ` + branding.ConfigFile() + `, ` + branding.EnvPrefix() + `_*
environment variables, and built-in defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all resolved settings as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSettingsYAML(cmd.OutOrStdout(), settings)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one resolved setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := settings.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func writeSettingsYAML(w io.Writer, s *config.Settings) error {
	if s.ConfigFile != "" {
		fmt.Fprintf(w, "# loaded from %s\n", s.ConfigFile)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	_, err = w.Write(data)
	return err
}
