package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// outputOptions selects where the report goes. Stdout is used when nothing
// else is set; PDF takes priority, then file, then clipboard.
type outputOptions struct {
	File      string
	Clipboard bool
	PDF       string
}

// clipboardWriteAll is swapped in tests; the real clipboard needs a display.
var clipboardWriteAll = clipboard.WriteAll

// emitReport renders records to the configured destination.
// Stdout is streamed line by line; the other destinations are only written
// once the whole report rendered without error.
func emitReport(stdout io.Writer, records Records, opts outputOptions) error {
	if opts.PDF != "" {
		return generatePDF(records, opts.PDF)
	}
	if opts.File == "" && !opts.Clipboard {
		return report(stdout, records)
	}

	var buf bytes.Buffer
	if err := report(&buf, records); err != nil {
		return err
	}

	if opts.File != "" {
		if err := os.WriteFile(opts.File, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", opts.File, err)
		}
		verbosef("Output saved to %s\n", opts.File)
		return nil
	}

	if err := clipboardWriteAll(buf.String()); err != nil {
		fmt.Fprintf(errOut, "Error writing to clipboard: %v\n", err)
		_, werr := stdout.Write(buf.Bytes())
		return werr
	}
	verbosef("Output copied to clipboard.\n")
	return nil
}
