// gplgen - GIMP palettes from SVG objects
//
// gplgen reads the fill and stroke colours of selected objects in an SVG
// document and installs them as a GIMP palette in Inkscape's palette
// directory.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/gplgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
