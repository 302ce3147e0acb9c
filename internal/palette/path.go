package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jmylchreest/gplgen/internal/security"
)

// Extension is the file extension of GIMP palette files.
const Extension = ".gpl"

// Dir returns the Inkscape palette directory of the current user.
func Dir() (string, error) {
	return DirFor(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

// DirFor resolves the Inkscape palette directory for the given platform:
// %APPDATA%/inkscape/palettes on Windows, otherwise
// $XDG_CONFIG_HOME/inkscape/palettes with ~/.config as the default root.
func DirFor(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	if goos == "windows" {
		appData := getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "inkscape", "palettes"), nil
	}

	root := getenv("XDG_CONFIG_HOME")
	if root == "" {
		root = "~/.config"
	}

	root, err := expandHome(root, home)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "inkscape", "palettes"), nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string, home func() (string, error)) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	dir, err := home()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(dir, strings.TrimPrefix(path[1:], "/")), nil
}

// FileName returns the palette file name for a palette name: spaces become
// hyphens and the .gpl extension is appended.
func FileName(name string) (string, error) {
	if err := security.ValidatePaletteName(name); err != nil {
		return "", fmt.Errorf("invalid palette name: %w", err)
	}
	return strings.ReplaceAll(name, " ", "-") + Extension, nil
}
