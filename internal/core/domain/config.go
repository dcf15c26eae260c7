package domain

import (
	"runtime"

	"go.trai.ch/zerr"
)

// DefaultCachePath is where scan results are stored when no cache path is configured.
const DefaultCachePath = ".shortstr/cache.json"

// SplitMode selects how file content is cut into tokens.
type SplitMode string

const (
	// SplitLines treats every line as one token.
	SplitLines SplitMode = "lines"
	// SplitWords treats every whitespace-separated word as one token.
	SplitWords SplitMode = "words"
)

// ParseSplitMode validates a split mode name.
func ParseSplitMode(s string) (SplitMode, error) {
	switch m := SplitMode(s); m {
	case SplitLines, SplitWords:
		return m, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownSplitMode, "invalid split mode"), "split", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SplitMode) UnmarshalText(text []byte) error {
	parsed, err := ParseSplitMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Format selects how results are written.
type Format string

const (
	// FormatText writes aligned human-readable lines.
	FormatText Format = "text"
	// FormatYAML writes a YAML document.
	FormatYAML Format = "yaml"
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"
	// FormatCBOR writes hex-encoded CBOR.
	FormatCBOR Format = "cbor"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatJSON, FormatCBOR:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "invalid output format"), "format", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Config holds the settings read from shortstr.yaml or shortstr.toml.
type Config struct {
	Split   SplitMode `yaml:"split" toml:"split"`
	Workers int       `yaml:"workers" toml:"workers"`
	Format  Format    `yaml:"format" toml:"format"`
	Cache   string    `yaml:"cache" toml:"cache"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Split:   SplitLines,
		Workers: runtime.NumCPU(),
		Format:  FormatText,
		Cache:   DefaultCachePath,
	}
}

// WithDefaults fills every zero field of c from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Split == "" {
		c.Split = def.Split
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Cache == "" {
		c.Cache = def.Cache
	}
	return c
}
