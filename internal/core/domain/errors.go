package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidUTF8 is returned when input bytes are not valid UTF-8.
	ErrInvalidUTF8 = zerr.New("invalid utf-8")

	// ErrInlineOverflow is returned when text longer than InlineCapacity is forced into inline storage.
	ErrInlineOverflow = zerr.New("text exceeds inline capacity")

	// ErrLengthOverflow is returned when a mutation would grow a string past the maximum int length.
	ErrLengthOverflow = zerr.New("string length overflow")

	// ErrNotScalar is returned when a YAML node holding a string is not a scalar.
	ErrNotScalar = zerr.New("yaml node is not a scalar")

	// ErrUnknownSplitMode is returned when a token split mode is not recognized.
	ErrUnknownSplitMode = zerr.New("unknown split mode")

	// ErrUnknownFormat is returned when an output format is not recognized.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrNoInputs is returned when a scan is requested without any input files.
	ErrNoInputs = zerr.New("no input files specified")
)
