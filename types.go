package main

import "fmt"

// ScreenRecord describes one screen source file that the theme-background
// pass would touch.
type ScreenRecord struct {
	Path       string `yaml:"path" mapstructure:"path"`
	Container  string `yaml:"container" mapstructure:"container"`     // e.g. View, ScrollView
	LineApprox int    `yaml:"line_approx" mapstructure:"line_approx"` // Hint only, not authoritative
}

// Records is an ordered set of screens. It is built once per run and only read afterwards.
type Records []ScreenRecord

// InvalidRecordError is returned when a record cannot be reported.
type InvalidRecordError struct {
	Index  int
	Path   string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("record %d (path %q): %s", e.Index, e.Path, e.Reason)
}
