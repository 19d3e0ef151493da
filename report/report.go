// Package report prints user-facing outcomes to the terminal.
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func Warn(msg string) {
	pterm.Warning.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit reports a fatal error and exits.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
