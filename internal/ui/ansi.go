package ui

import (
	"fmt"
	"io"
	"os"
)

// SGR sequences the palettes are built from.
const (
	sgrReset = "\033[0m"
	bold     = "\033[1m"
	sgrDim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

type colorMode int

const (
	colorAuto colorMode = iota // color only when the destination is a terminal
	colorAlways
	colorNever
)

var colorSetting colorMode

// SetColorForcing applies --color / --no-color. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		colorSetting = colorNever
	case force:
		colorSetting = colorAlways
	default:
		colorSetting = colorAuto
	}
}

// isTerminal reports whether w is a file backed by a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Painter colors text bound for one destination. The zero value paints
// nothing.
type Painter struct{ on bool }

// For decides once whether text written to w gets escape codes.
func For(w io.Writer) Painter {
	switch colorSetting {
	case colorNever:
		return Painter{}
	case colorAlways:
		return Painter{on: true}
	}
	return Painter{on: isTerminal(w)}
}

func (p Painter) Paint(color, s string) string {
	if !p.on || color == "" {
		return s
	}
	return color + s + sgrReset
}

// Dim renders s faint; used for indexes and hints.
func (p Painter) Dim(s string) string { return p.Paint(sgrDim, s) }

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, For(w).Paint(fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, For(w).Paint(fgRed, symCross+" "+msg)) }
