package domain

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and o hold the same bytes, whatever their representation.
func (s *ShortString) Equal(o *ShortString) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// EqualString reports whether s holds exactly str.
func (s *ShortString) EqualString(str string) bool {
	return s.View() == str
}

// Compare orders s and o by their bytes, like strings.Compare.
func (s *ShortString) Compare(o *ShortString) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Hash returns the XXHash of the content. Equal strings hash equally regardless of
// representation, and the result matches HashString for the same text.
func (s *ShortString) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// HashString returns the hash a ShortString holding str would report.
func HashString(str string) uint64 {
	return xxhash.Sum64String(str)
}
