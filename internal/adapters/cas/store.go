// Package cas implements the content-addressed cache of per-file scan statistics.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StatsStore = (*Store)(nil)

// Store implements ports.StatsStore using a flat JSON file keyed by file path.
// Entries are only trusted by callers whose file digest matches.
type Store struct {
	mu    sync.RWMutex
	path  string
	cache map[string]domain.FileStats
	dirty bool
}

// NewStore creates an empty, unopened Store.
func NewStore() *Store {
	return &Store{cache: make(map[string]domain.FileStats)}
}

// Open loads the store from the file at path, replacing any entries held in memory.
func (s *Store) Open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.path = filepath.Clean(path)
	s.cache = make(map[string]domain.FileStats)
	s.dirty = false

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read stats store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal stats store"), "path", s.path)
	}
	return nil
}

// Get retrieves the stats recorded for path.
func (s *Store) Get(path string) (*domain.FileStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

// Put records stats in memory; Flush persists them.
func (s *Store) Put(stats domain.FileStats) error {
	if stats.Path == "" {
		return zerr.New("stats entry has no path")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[stats.Path] = stats
	s.dirty = true
	return nil
}

// Flush writes the store to disk if anything changed since it was opened.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if s.path == "" {
		return zerr.New("stats store was never opened")
	}

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal stats store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for stats store"), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write stats store"), "path", s.path)
	}

	s.dirty = false
	return nil
}
