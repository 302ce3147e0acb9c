package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/gplgen/internal/i18n"
	"github.com/jmylchreest/gplgen/internal/palette"
	"github.com/jmylchreest/gplgen/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed palettes",
		Long:  `List the GIMP palettes in the palette directory with their names and swatch counts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "palette directory (default: Inkscape's palette directory)")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, flagDir string) error {
	dir, err := a.paletteDir(flagDir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read palette directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), palette.Extension) {
			continue
		}
		files = append(files, name)
	}
	slices.Sort(files)

	if len(files) == 0 {
		a.status(cmd.ErrOrStderr(), ui.Muted("%s", a.printer.Sprintf(i18n.MsgNoPalettes, dir)))
		return nil
	}

	table := NewTable([]string{"FILE", "NAME", "SWATCHES"})
	table.SetColumnMaxWidth(1, 40)
	table.SetColumnAlignRight(2)
	for _, name := range files {
		p, err := palette.ReadFile(filepath.Join(dir, name))
		if err != nil {
			a.logger.Warn("skipping unreadable palette", "file", name, "error", err)
			continue
		}
		table.AddRow([]string{name, p.Name, strconv.Itoa(len(p.Swatches))})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}
