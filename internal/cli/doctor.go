package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/skillcheck/internal/config"
	"github.com/agentx-labs/skillcheck/internal/platform"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	checkRoots    bool
	checkLinks    bool
	checkMetadata bool
	doctorRoot    string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRoots, "check-roots", false, "Verify source and import roots exist")
	doctorCmd.Flags().BoolVar(&checkLinks, "check-links", false, "Verify symlinks under the import root resolve")
	doctorCmd.Flags().BoolVar(&checkMetadata, "check-metadata", false, "Verify required metadata files are present")
	doctorCmd.Flags().StringVar(&doctorRoot, "root", ".", "Repository root holding the metadata files")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a skill migration workspace",
	Long:  `Run diagnostic checks on the configured roots, symlinks, and metadata files.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := &doctor{w: cmd.OutOrStdout(), settings: settings}

		// If no specific flag, run all checks.
		all := !checkRoots && !checkLinks && !checkMetadata
		if all {
			d.reportConfig()
		}
		if all || checkRoots {
			d.reportRoots()
		}
		if all || checkLinks {
			d.reportLinks()
		}
		if all || checkMetadata {
			d.reportMetadata(doctorRoot)
		}

		if d.failed > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", errorColor.Sprint(printer.Sprintf("%d problem(s) found", d.failed)))
			return errSilent
		}
		return nil
	},
}

type doctor struct {
	w        io.Writer
	settings *config.Settings
	failed   int
}

func (d *doctor) ok(format string, args ...any) {
	fmt.Fprintf(d.w, "  [ OK ] "+format+"\n", args...)
}

func (d *doctor) fail(format string, args ...any) {
	d.failed++
	fmt.Fprintf(d.w, "  [FAIL] "+format+"\n", args...)
}

func (d *doctor) reportConfig() {
	fmt.Fprintln(d.w, "Config check:")
	if d.settings.ConfigFile == "" {
		fmt.Fprintln(d.w, "  [INFO] No config file found, using defaults and environment")
		return
	}
	d.ok("loaded %s", d.settings.ConfigFile)
}

func (d *doctor) reportRoots() {
	fmt.Fprintln(d.w, "Roots check:")
	for _, r := range []struct{ role, path string }{
		{"source", d.settings.SourceRoot},
		{"import", d.settings.ImportRoot},
	} {
		if platform.IsDir(r.path) {
			d.ok("%s root %s", r.role, r.path)
			continue
		}
		d.fail("%s root does not exist: %s", r.role, r.path)
	}
}

// reportLinks reports every symlink under the import root whose target is gone.
func (d *doctor) reportLinks() {
	fmt.Fprintln(d.w, "Link check:")

	root := d.settings.ImportRoot
	if !platform.IsDir(root) {
		fmt.Fprintf(d.w, "  [MISS] import root %s not found\n", root)
		return
	}

	links := 0
	broken := 0
	err := doublestar.GlobWalk(os.DirFS(root), "**", func(p string, entry fs.DirEntry) error {
		if entry.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		path := platform.Under(root, p)
		target, err := platform.ReadSymlinkTarget(path)
		if err != nil {
			return nil
		}
		links++
		if _, statErr := os.Stat(path); statErr != nil {
			broken++
			d.fail("%s -> %s (broken)", path, target)
		}
		return nil
	}, doublestar.WithNoFollow())
	if err != nil {
		d.fail("walking %s: %v", root, err)
		return
	}

	if broken == 0 {
		d.ok("%s", printer.Sprintf("%d symlink(s) intact", links))
	}
}

func (d *doctor) reportMetadata(root string) {
	fmt.Fprintln(d.w, "Metadata check:")
	for _, name := range d.settings.MetadataFiles {
		path := filepath.Join(root, filepath.FromSlash(name))
		if _, err := os.Stat(path); err != nil {
			d.fail("missing %s", path)
			continue
		}
		d.ok("%s", path)
	}
}
