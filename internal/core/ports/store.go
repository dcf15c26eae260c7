package ports

import "go.trai.ch/shortstr/internal/core/domain"

// StatsStore defines the interface for caching per-file scan statistics.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StatsStore interface {
	// Open loads the store from the file at path. A missing file yields an empty store.
	Open(path string) error

	// Get retrieves the stats recorded for a file path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.FileStats, error)

	// Put records the stats for stats.Path.
	Put(stats domain.FileStats) error

	// Flush writes the recorded stats back to disk.
	Flush() error
}
