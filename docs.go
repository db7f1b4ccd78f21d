package main

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	Version = "dev"
)

func flag_usage() {
	ex, _ := os.Executable()
	usage := `Convert G-code to the GX format of FlashForge printers, in place.
%s

Usage: %s input.gcode

Example configuration in OrcaSlicer,
Go to Others -> Post-processing Scripts:

  %s;

DO NOT include spaces in the path.

Environment:
  GX_EXTRUDERS  1 (default) or 2 for the dual extruder layout
  GX_LOG_LEVEL  trace, debug, info (default), warn or error

`
	absPath, _ := filepath.Abs(ex)
	fmt.Printf(usage, Version, filepath.Base(ex), absPath)
	os.Exit(1)
}
