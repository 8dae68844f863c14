package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
	symWarn  = "!"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// ColorEnabled reports whether C emits escape codes.
func ColorEnabled() bool {
	if disableColor || current.Plain {
		return false
	}
	return forceColor || isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in color when colors are enabled.
func C(color, s string) string {
	if color == "" || !ColorEnabled() {
		return s
	}
	return color + s + reset
}

// Dim renders s faint.
func Dim(s string) string { return C(dim, s) }

// Status lines: success, warning and failure.
func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(fgGreen, symCheck+" "+msg)) }
func Warn(w io.Writer, msg string) { fmt.Fprintln(w, C(fgYellow, symWarn+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }
