package main

import (
	"errors"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// pickScreens lets the user multi-select from candidates. A nil result with a
// nil error means the selection was aborted.
func pickScreens(candidates Records) (Records, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no screens found to select from")
	}

	idx, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i].Path
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Tab to select screens, Enter to confirm."
			}
			screen := candidates[i]
			name, _ := basename(screen.Path)
			return fmt.Sprintf("Screen: %s\nPath: %s\nContainer: %s", name, screen.Path, screen.Container)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	// FindMulti returns indices in selection order; keep the candidates' order.
	selected := make(map[int]bool, len(idx))
	for _, i := range idx {
		selected[i] = true
	}
	picked := make(Records, 0, len(idx))
	for i, screen := range candidates {
		if selected[i] {
			picked = append(picked, screen)
		}
	}
	return picked, nil
}
