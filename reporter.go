package main

import (
	"fmt"
	"io"
	"strings"
)

// report writes the screen summary to w: a count line followed by one
// "  - <basename>" line per record, in input order.
// Lines are written as the records are visited, so on an invalid record the
// lines before it have already reached w.
func report(w io.Writer, records Records) error {
	if _, err := fmt.Fprintf(w, "Need to update %d screens\n", len(records)); err != nil {
		return fmt.Errorf("failed to write summary line: %w", err)
	}

	for i, screen := range records {
		name, err := basename(screen.Path)
		if err != nil {
			return &InvalidRecordError{Index: i, Path: screen.Path, Reason: err.Error()}
		}
		if _, err := fmt.Fprintf(w, "  - %s\n", name); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return nil
}

// basename returns the final '/'-separated segment of path.
// A path with no separator is its own basename.
func basename(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	name := path[strings.LastIndex(path, "/")+1:]
	if name == "" {
		return "", fmt.Errorf("path has no final segment")
	}
	return name, nil
}
