/*
Package output writes search results and error diagnostics.

Matched lines go to the result stream exactly as they appeared in the source,
one per output line. Diagnostics go to a separate stream and may be coloured.

Basic usage:

	printer := output.NewPrinter(os.Stdout, log)
	if err := printer.Print(lines); err != nil {
		return err
	}

	output.NewDiagnostics(os.Stderr, noColor).Report(err)
*/
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sonemaro/minigrep/pkg/logger"
)

// Printer defines the interface for writing matched lines
type Printer interface {
	Print(lines []string) error
}

type printer struct {
	w   io.Writer
	log logger.Logger
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, log logger.Logger) Printer {
	return &printer{
		w:   w,
		log: log,
	}
}

// Print writes each line followed by a newline, in order, with no decoration
func (p *printer) Print(lines []string) error {
	bw := bufio.NewWriter(p.w)

	p.log.WithFields(logger.Fields{
		"matches": len(lines),
	}).Trace("Printing matches")

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		p.log.WithFields(logger.Fields{
			"error": err.Error(),
		}).Debug("Failed to flush output")
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
