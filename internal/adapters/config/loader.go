// Package config provides the configuration loader for shortstr.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML and TOML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load returns the configuration for cwd. An explicit path must exist; without
// one, cwd and its parents are searched and defaults are used if nothing is found.
func (l *Loader) Load(cwd, path string) (domain.Config, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		return LoadFile(path)
	}

	found, err := l.find(cwd)
	if err != nil {
		return domain.Config{}, err
	}
	if found == "" {
		cfg := domain.DefaultConfig()
		cfg.Cache = filepath.Join(cwd, cfg.Cache)
		return cfg, nil
	}
	return LoadFile(found)
}

// find walks up from dir and returns the first config file it sees.
func (l *Loader) find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", dir)
	}

	for {
		var matches []string
		for _, name := range Filenames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				matches = append(matches, candidate)
			}
		}
		if len(matches) > 0 {
			if len(matches) > 1 {
				l.logger.Warn("multiple config files found, using " + matches[0])
			}
			return matches[0], nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadFile reads and validates the config file at path. A relative cache path
// is resolved against the file's directory.
func LoadFile(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, zerr.With(zerr.Wrap(err, "config file not found"), "path", path)
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var cfg domain.Config
	switch formatOf(filepath.Ext(path)) {
	case formatYAML:
		err = decodeYAML(data, &cfg)
	case formatTOML:
		err = decodeTOML(data, &cfg)
	default:
		err = zerr.With(zerr.New("unsupported config file extension"), "extension", filepath.Ext(path))
	}
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if cfg.Workers < 0 {
		return domain.Config{}, zerr.With(zerr.New("workers must not be negative"), "workers", cfg.Workers)
	}

	cfg = cfg.WithDefaults()
	if !filepath.IsAbs(cfg.Cache) {
		cfg.Cache = filepath.Join(filepath.Dir(path), cfg.Cache)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *domain.Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

func decodeTOML(data []byte, cfg *domain.Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return zerr.With(zerr.New("unknown config keys"), "keys", strings.Join(keys, ", "))
	}
	return nil
}
