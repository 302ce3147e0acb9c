// Package inkscape detects a running Inkscape, which only loads palettes at
// start-up.
package inkscape

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-ps"
)

// executables are the process names Inkscape runs under.
var executables = []string{"inkscape", "inkscape.exe", "inkscape.com", "org.inkscape.Inkscape"}

// Running reports whether an Inkscape process is running.
func Running() (bool, error) {
	pids, err := findProcesses(ps.Processes)
	if err != nil {
		return false, err
	}
	return len(pids) > 0, nil
}

// findProcesses returns the pids of processes with an Inkscape executable name.
func findProcesses(list func() ([]ps.Process, error)) ([]int, error) {
	processes, err := list()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if isInkscape(p.Executable()) {
			pids = append(pids, p.Pid())
		}
	}

	return pids, nil
}

func isInkscape(executable string) bool {
	for _, name := range executables {
		if strings.EqualFold(executable, name) {
			return true
		}
	}
	return false
}
