package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// discoverOptions controls how a source tree is searched for screens.
type discoverOptions struct {
	Patterns   []string // Basename globs, e.g. *Screen.js
	Container  string   // Container label given to every hit
	ShowHidden bool
	NoIgnore   bool
	Relative   bool // Record paths relative to root instead of absolute
}

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// discoverScreens walks root and returns one record per file whose basename
// matches a pattern, sorted by path. File contents are never opened.
func discoverScreens(root string, opts discoverOptions) (Records, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("error resolving %s: %w", root, err)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	if !opts.NoIgnore {
		gitIgnorePath := filepath.Join(absRoot, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath, absRoot)
			if err != nil {
				fmt.Fprintf(errOut, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	var records Records
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(errOut, "Warning: error accessing path %s: %v\n", path, err)
			return nil
		}
		if path == absRoot {
			return nil
		}

		baseName := d.Name()
		isDir := d.IsDir()

		if !opts.ShowHidden && isHidden(baseName) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir && skippedDirs[baseName] {
			return fs.SkipDir
		}
		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir {
			return nil
		}

		matched, err := matchesAnyPattern(baseName, opts.Patterns)
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}

		recordPath := path
		if opts.Relative {
			rel, err := filepath.Rel(absRoot, path)
			if err != nil {
				return err
			}
			recordPath = rel
		}
		records = append(records, ScreenRecord{
			Path:      filepath.ToSlash(recordPath),
			Container: opts.Container,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})
	return records, nil
}

// parsePatterns splits a comma-separated string of patterns into a slice.
func parsePatterns(patterns string) []string {
	var out []string
	for _, p := range strings.Split(patterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// matchesAnyPattern checks if the given name matches any of the provided glob patterns.
func matchesAnyPattern(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// isHidden reports whether a base name starts with '.'.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
