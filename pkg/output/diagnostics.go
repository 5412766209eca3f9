package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Diagnostics reports fatal errors on the diagnostic stream
type Diagnostics struct {
	w      io.Writer
	prefix *color.Color
}

// NewDiagnostics creates a Diagnostics writing to w. The "Error:" prefix is
// coloured only when w is a terminal and noColor is false.
func NewDiagnostics(w io.Writer, noColor bool) *Diagnostics {
	prefix := color.New(color.FgRed, color.Bold)
	if noColor || !isTerminal(w) {
		prefix.DisableColor()
	} else {
		prefix.EnableColor()
	}

	return &Diagnostics{
		w:      w,
		prefix: prefix,
	}
}

// Report writes err as a single "Error: <message>" line
func (d *Diagnostics) Report(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(d.w, "%s %v\n", d.prefix.Sprint("Error:"), err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
