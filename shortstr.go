// Package shortstr provides a UTF-8 string value that keeps short content inline
// and moves longer content to the heap.
//
// The zero String is empty and ready to use:
//
//	var s shortstr.String
//	_ = s.PushStr("hello")
//	s.IsInline() // true
package shortstr

import "go.trai.ch/shortstr/internal/core/domain"

// String is a growable UTF-8 string with inline storage for short content.
type String = domain.ShortString

// Repr names the storage a String is currently using.
type Repr = domain.Repr

// InlineCapacity is the number of bytes a String stores without allocating.
const InlineCapacity = domain.InlineCapacity

const (
	// Inline means the bytes live inside the value itself.
	Inline = domain.ReprInline
	// Heap means the bytes live in a separately allocated buffer.
	Heap = domain.ReprHeap
)

var (
	// ErrInvalidUTF8 is returned when input bytes are not valid UTF-8.
	ErrInvalidUTF8 = domain.ErrInvalidUTF8
	// ErrLengthOverflow is returned when a mutation would grow a string past the maximum int length.
	ErrLengthOverflow = domain.ErrLengthOverflow
)

// New returns an empty inline String.
func New() String {
	return domain.NewShortString()
}

// FromString creates a String holding a copy of s.
func FromString(s string) (String, error) {
	return domain.FromString(s)
}

// MustFromString is like FromString but panics if s is not valid UTF-8.
func MustFromString(s string) String {
	return domain.MustFromString(s)
}

// FromBytes creates a String holding a copy of b.
func FromBytes(b []byte) (String, error) {
	return domain.FromBytes(b)
}

// Adopt takes ownership of buf, avoiding a copy when the content is too long to
// be stored inline. The caller must not use buf after a successful call.
func Adopt(buf []byte) (String, error) {
	return domain.Adopt(buf)
}

// Hash returns the hash a String with content str would report.
func Hash(str string) uint64 {
	return domain.HashString(str)
}
