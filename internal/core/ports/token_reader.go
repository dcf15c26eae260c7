package ports

import (
	"context"

	"go.trai.ch/shortstr/internal/core/domain"
)

// TokenReader splits files into tokens.
//
//go:generate mockgen -source=token_reader.go -destination=mocks/mock_token_reader.go -package=mocks
type TokenReader interface {
	// ReadTokens calls fn for every token of the file at path, in order.
	// The token passed to fn is only valid for the duration of the call.
	// Reading stops at the first error returned by fn or by the reader.
	ReadTokens(ctx context.Context, path string, mode domain.SplitMode, fn func(*domain.ShortString) error) error
}
