package root

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successc = color.New(color.FgGreen)
	errc     = color.New(color.FgRed, color.Bold)
	notec    = color.New(color.FgYellow)
)

// Success prints a green status line.
func Success(w io.Writer, format string, args ...interface{}) {
	successc.Fprintf(w, format+"\n", args...)
}

// Note prints a yellow status line.
func Note(w io.Writer, format string, args ...interface{}) {
	notec.Fprintf(w, format+"\n", args...)
}

// PrintError prints err as the single user-visible failure message.
func PrintError(w io.Writer, err error) {
	errc.Fprintf(w, "Error: %s\n", err)
}

// Fprintln writes plain output.
func Fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}
