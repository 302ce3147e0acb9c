// Package cli provides the command-line interface for gplgen.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jmylchreest/gplgen/internal/config"
	"github.com/jmylchreest/gplgen/internal/i18n"
	"github.com/jmylchreest/gplgen/internal/palette"
	"github.com/jmylchreest/gplgen/internal/ui"
	"github.com/jmylchreest/gplgen/internal/version"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	verbose bool
	quiet   bool
	lang    string

	cfg     config.Config
	logger  hclog.Logger
	printer *message.Printer
}

// NewRootCmd creates the gplgen command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		logger:  hclog.NewNullLogger(),
		printer: i18n.NewPrinter(language.English),
	}

	cmd := &cobra.Command{
		Use:   "gplgen",
		Short: "Generate GIMP palettes from SVG objects",
		Long: `gplgen builds a GIMP palette (.gpl) from the fill and stroke colours of
selected objects in an SVG document and installs it in Inkscape's palette
directory.

Objects are selected by id, all at once, or by an external selection plugin.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVar(&a.lang, "lang", "", "message language (en, de, fr, es; default from locale)")

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd, a
}

// setup loads the configuration and builds the logger and message printer.
func (a *app) setup(logOutput io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Status lines go to stderr, so its terminal decides colour.
	ui.Configure(cfg.NoColor || !ui.IsTerminal(logOutput))

	lang := a.lang
	if lang == "" {
		lang = cfg.Lang
	}
	a.printer = i18n.NewPrinter(i18n.FromEnv(lang, os.Getenv))

	level := hclog.Warn
	if cfg.LogLevel != hclog.NoLevel {
		level = cfg.LogLevel
	}
	if a.verbose {
		level = hclog.Debug
	}
	if a.quiet {
		level = hclog.Off
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "gplgen",
		Level:  level,
		Output: logOutput,
	})
	return nil
}

// paletteDir resolves the palette directory: the flag value, then
// GPLGEN_PALETTE_DIR, then Inkscape's directory.
func (a *app) paletteDir(flag string) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case a.cfg.PaletteDir != "":
		return a.cfg.PaletteDir, nil
	default:
		return palette.Dir()
	}
}

// status prints a progress line to w unless --quiet is set.
func (a *app) status(w io.Writer, line string) {
	if a.quiet {
		return
	}
	fmt.Fprintln(w, line)
}

// Run executes gplgen with args and returns the process exit code. Errors
// are printed to stderr, localised where a translation exists.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd, a := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, ui.Error("%s", i18n.ErrorMessage(a.printer, err)))
		return 1
	}
	return 0
}

// Execute runs gplgen with the process arguments.
// This is called by main.main().
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
