package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// manifestFile is the on-disk layout written by `themelist discover`.
type manifestFile struct {
	Screens Records `yaml:"screens"`
}

// loadManifest reads a YAML manifest. Both a bare list of records and a
// mapping with a `screens:` list are accepted.
func loadManifest(path string) (Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}
	records, err := parseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}
	verbosef("Loaded %d screens from manifest: %s\n", len(records), path)
	return records, nil
}

func parseManifest(data []byte) (Records, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 { // Empty document
		return Records{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records Records
		if err := root.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case yaml.MappingNode:
		var mf manifestFile
		if err := root.Decode(&mf); err != nil {
			return nil, err
		}
		if mf.Screens == nil {
			return nil, fmt.Errorf("manifest has no screens list")
		}
		return mf.Screens, nil
	default:
		return nil, fmt.Errorf("manifest must be a list or a mapping with a screens key, got line %d: %q", root.Line, root.Value)
	}
}

// writeManifest encodes records in the `screens:` layout.
func writeManifest(w io.Writer, records Records) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(manifestFile{Screens: records}); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return enc.Close()
}
