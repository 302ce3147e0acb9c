package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/gplgen/internal/i18n"
	"github.com/jmylchreest/gplgen/internal/inkscape"
	"github.com/jmylchreest/gplgen/internal/palette"
	"github.com/jmylchreest/gplgen/internal/source"
	"github.com/jmylchreest/gplgen/internal/ui"
)

// generateOptions are the flags of the generate command.
type generateOptions struct {
	palette palette.Options

	ids        []string
	all        bool
	pluginPath string
	pluginArgs map[string]string
	outputDir  string
	dryRun     bool
	preview    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{palette: palette.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "generate [file.svg]",
		Short: "Generate a palette from selected objects",
		Long: `Generate a GIMP palette from the fill and/or stroke colours of selected objects.

Objects are read from an SVG document (plain, .svgz, .xz or .bz2) and selected
with --id (repeatable, in selection order) or --all, or they are provided by a
selection plugin given with --plugin.

Examples:
  # Palette from three objects, in selection order
  gplgen generate drawing.svg --id rect1 --id rect2 --id path3 -n "Brand"

  # Every object, strokes only, sorted by hue, with the default grays
  gplgen generate drawing.svg --all -n "Strokes" -p stroke -s hsl -d

  # Left to right, replacing an existing palette
  gplgen generate drawing.svg --all -n "Brand" -s x_location -r

  # Print the palette instead of installing it
  gplgen generate drawing.svg --all -n "Brand" --dry-run --preview

  # Selection from a plugin
  gplgen generate --plugin ./gplgen-random --plugin-arg count=12 -n "Random"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if o.pluginPath != "" {
				if len(args) > 0 {
					return errors.New("a document cannot be combined with --plugin")
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("requires an SVG document or --plugin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.palette.Name, "name", "n", "", "palette name")
	f.VarP(&o.palette.Property, "property", "p", "style property to read colours from (fill, stroke, both)")
	f.BoolVarP(&o.palette.Defaults, "default", "d", false, "include the default grays")
	f.VarP(&o.palette.Sort, "sort", "s", "sort order (index, x_location, y_location, rgb, hsl)")
	f.BoolVarP(&o.palette.Replace, "replace", "r", false, "replace an existing palette")

	f.StringArrayVar(&o.ids, "id", nil, "id of a selected object (repeatable, in selection order)")
	f.BoolVar(&o.all, "all", false, "select every object with an id")
	f.StringVar(&o.pluginPath, "plugin", "", "selection plugin executable")
	f.StringToStringVar(&o.pluginArgs, "plugin-arg", nil, "argument passed to the selection plugin (key=value, repeatable)")

	f.StringVar(&o.outputDir, "output-dir", "", "palette directory (default: Inkscape's palette directory)")
	f.BoolVar(&o.dryRun, "dry-run", false, "print the palette instead of writing it")
	f.BoolVar(&o.preview, "preview", false, "show a colour preview of the palette")

	cmd.MarkFlagsMutuallyExclusive("all", "plugin")
	cmd.MarkFlagsMutuallyExclusive("id", "plugin")

	return cmd
}

// newSource returns the selection source for the command line.
func (a *app) newSource(o *generateOptions, args []string) source.Source {
	if o.pluginPath != "" {
		return &source.PluginSource{
			Path:   o.pluginPath,
			Args:   o.pluginArgs,
			Logger: a.logger.Named("plugin"),
		}
	}
	return &source.DocumentSource{Path: args[0], IDs: o.ids, All: o.all}
}

func (a *app) runGenerate(cmd *cobra.Command, o *generateOptions, args []string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// The name is known before any document is loaded or plugin started.
	if err := palette.ValidateName(o.palette.Name); err != nil {
		return err
	}

	src := a.newSource(o, args)
	defer func() {
		if err := src.Close(); err != nil {
			a.logger.Warn("failed to close selection source", "error", err)
		}
	}()

	host, sel, err := src.Open(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("selection opened", "objects", sel.Len(), "property", o.palette.Property, "sort", o.palette.Sort)

	if err := palette.Validate(o.palette, sel); err != nil {
		if errors.Is(err, palette.ErrTooFewObjects) && o.pluginPath == "" && !o.all && len(o.ids) == 0 {
			a.status(stderr, ui.Muted("%s", a.printer.Sprintf(i18n.MsgSelectionRequired)))
		}
		return err
	}

	dir, err := a.paletteDir(o.outputDir)
	if err != nil {
		return err
	}
	writer := palette.NewWriter(dir, o.palette.Replace, a.logger)

	path, err := writer.Check(o.palette.Name)
	if err != nil && !(o.dryRun && errors.Is(err, palette.ErrPaletteExists)) {
		return err
	}

	p, err := palette.Generate(host, o.palette, sel)
	if err != nil {
		return err
	}

	if o.preview {
		fmt.Fprint(stdout, ui.RenderSwatches(stdout, p))
	}

	if o.dryRun {
		if _, err := p.WriteTo(stdout); err != nil {
			return fmt.Errorf("failed to write palette: %w", err)
		}
		if path == "" {
			path, _ = writer.Path(o.palette.Name)
		}
		a.status(stderr, ui.Muted("%s", a.printer.Sprintf(i18n.MsgDryRun, path)))
		return nil
	}

	path, err = writer.Write(p)
	if err != nil {
		return err
	}
	a.status(stderr, ui.Success("%s", a.printer.Sprintf(i18n.MsgWritten, p.Name, path)))

	running, err := inkscape.Running()
	if err != nil {
		a.logger.Debug("could not check for a running inkscape", "error", err)
	} else if running {
		a.status(stderr, ui.Warn("%s", a.printer.Sprintf(i18n.MsgRestartInkscape)))
	}

	return nil
}
