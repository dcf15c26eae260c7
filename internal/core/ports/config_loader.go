package ports

import "go.trai.ch/shortstr/internal/core/domain"

// ConfigLoader defines the interface for loading the scan configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory.
	// When path is non-empty it names the file explicitly and must exist;
	// otherwise the directory is searched and missing files yield defaults.
	Load(cwd, path string) (domain.Config, error)
}
