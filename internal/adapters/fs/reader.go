package fs

import (
	"bufio"
	"context"
	"os"

	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TokenReader = (*TokenReader)(nil)

// maxTokenSize bounds a single line or word.
const maxTokenSize = 1 << 20

// TokenReader splits files into lines or words.
type TokenReader struct{}

// NewTokenReader creates a new TokenReader.
func NewTokenReader() *TokenReader {
	return &TokenReader{}
}

// ReadTokens streams the tokens of the file at path into fn. Each token is
// validated as UTF-8; lines keep no trailing newline or carriage return.
func (r *TokenReader) ReadTokens(
	ctx context.Context,
	path string,
	mode domain.SplitMode,
	fn func(*domain.ShortString) error,
) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	switch mode {
	case domain.SplitWords:
		scanner.Split(bufio.ScanWords)
	case domain.SplitLines:
		scanner.Split(bufio.ScanLines)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownSplitMode, "cannot read tokens"), "split", string(mode))
	}

	for index := 0; scanner.Scan(); index++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := domain.FromBytes(scanner.Bytes())
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to read token"), "path", path)
			return zerr.With(err, "token", index)
		}
		if err := fn(&tok); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to scan file"), "path", path)
	}
	return nil
}
