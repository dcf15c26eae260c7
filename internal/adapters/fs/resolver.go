package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements ports.InputResolver using filepath.Glob and a Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs expands each input relative to root. Globs are matched,
// directories are walked, and the result is sorted and deduplicated.
// An input with no matches is an error.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoInputs
	}

	var result []string
	for _, input := range inputs {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, input)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(os.ErrNotExist, "input not found"), "path", path)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
			}
			if !info.IsDir() {
				result = append(result, match)
				continue
			}
			for file := range r.walker.WalkFiles(match) {
				result = append(result, file)
			}
		}
	}

	slices.Sort(result)
	return slices.Compact(result), nil
}
