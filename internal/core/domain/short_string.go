package domain

import (
	"slices"
	"unicode/utf8"
	"unsafe"

	"go.trai.ch/zerr"
)

// ShortString is a growable UTF-8 string value. Up to InlineCapacity bytes are
// stored inside the value itself; longer content moves to a heap buffer owned by
// the value. Moving to the heap is one-way: a heap-backed value stays on the heap
// until it is Reset, even when cleared.
//
// The zero value is an empty inline string ready to use.
//
// Like bytes.Buffer, a heap-backed ShortString shares its buffer when copied by
// plain assignment. Use Clone for an independent copy and Take to move ownership.
// A ShortString is not safe for concurrent mutation.
type ShortString struct {
	heap []byte
	in   inline
}

// NewShortString returns an empty inline ShortString.
func NewShortString() ShortString {
	return ShortString{}
}

// FromString creates a ShortString holding a copy of s.
// Text that fits InlineCapacity is stored inline, anything longer goes straight to the heap.
func FromString(s string) (ShortString, error) {
	if err := validateUTF8(s); err != nil {
		return ShortString{}, err
	}
	return fromValid(s), nil
}

// MustFromString is like FromString but panics if s is not valid UTF-8.
func MustFromString(s string) ShortString {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBytes creates a ShortString holding a copy of b.
func FromBytes(b []byte) (ShortString, error) {
	return FromString(unsafeString(b))
}

// Adopt takes ownership of buf. Short content is copied inline and buf is dropped;
// longer content keeps buf as the heap buffer without copying. The caller must not
// use buf after a successful call.
func Adopt(buf []byte) (ShortString, error) {
	if err := validateUTF8(unsafeString(buf)); err != nil {
		return ShortString{}, err
	}
	if len(buf) <= InlineCapacity {
		return fromValid(unsafeString(buf)), nil
	}
	return ShortString{heap: buf, in: inline{n: heapTag}}, nil
}

func fromValid(s string) ShortString {
	if len(s) <= InlineCapacity {
		in, _ := makeInline(s)
		return ShortString{in: in}
	}
	heap := make([]byte, len(s))
	copy(heap, s)
	return ShortString{heap: heap, in: inline{n: heapTag}}
}

// makeInline copies s into a fresh inline block. It never truncates.
func makeInline(s string) (inline, error) {
	if len(s) > InlineCapacity {
		return inline{}, zerr.With(zerr.Wrap(ErrInlineOverflow, "cannot build inline block"), "length", len(s))
	}
	var in inline
	in.n = uint8(copy(in.buf[:], s)) //nolint:gosec // bounded by InlineCapacity
	return in, nil
}

// IsInline reports whether the bytes are stored inside the value.
func (s *ShortString) IsInline() bool {
	return s.in.n != heapTag
}

// Repr returns the active representation.
func (s *ShortString) Repr() Repr {
	if s.IsInline() {
		return ReprInline
	}
	return ReprHeap
}

// Len returns the length in bytes.
func (s *ShortString) Len() int {
	if s.IsInline() {
		return int(s.in.n)
	}
	return len(s.heap)
}

// Cap returns the number of bytes the value can hold before it next allocates.
// Inline values always report InlineCapacity.
func (s *ShortString) Cap() int {
	if s.IsInline() {
		return InlineCapacity
	}
	return cap(s.heap)
}

// IsEmpty reports whether the string has no bytes.
func (s *ShortString) IsEmpty() bool {
	return s.Len() == 0
}

// Bytes returns the content without copying. The slice is only valid until the
// next mutation and must not be modified.
func (s *ShortString) Bytes() []byte {
	if s.IsInline() {
		return s.in.buf[:s.in.n:s.in.n]
	}
	return s.heap[:len(s.heap):len(s.heap)]
}

// View returns the content as a string without copying. Like Bytes, the result is
// only valid until the next mutation; use String for a copy that outlives it.
// It can be passed directly to os and path/filepath functions.
func (s *ShortString) View() string {
	return unsafeString(s.Bytes())
}

// String returns a copy of the content.
func (s ShortString) String() string {
	return string(s.Bytes())
}

// Clone returns an independent copy. A heap-backed value gets its own allocation.
func (s *ShortString) Clone() ShortString {
	if s.IsInline() {
		return ShortString{in: s.in}
	}
	return ShortString{heap: slices.Clone(s.heap), in: inline{n: heapTag}}
}

// Take moves the content out, leaving s empty and inline.
func (s *ShortString) Take() ShortString {
	t := *s
	*s = ShortString{}
	return t
}

// Reset releases any heap buffer and returns s to the empty inline state.
func (s *ShortString) Reset() {
	*s = ShortString{}
}

// IntoBytes consumes s and returns its content as an owned buffer. A heap-backed
// value hands over its buffer without copying; an inline value is copied into a
// fresh one. s is left empty and inline.
func (s *ShortString) IntoBytes() []byte {
	if !s.IsInline() {
		b := s.heap
		s.Reset()
		return b
	}
	b := make([]byte, s.in.n)
	copy(b, s.in.buf[:s.in.n])
	s.Reset()
	return b
}

// validateUTF8 reports the offset of the first invalid byte, if any.
func validateUTF8(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return zerr.With(zerr.Wrap(ErrInvalidUTF8, "rejected text"), "offset", i)
		}
		i += size
	}
	return ErrInvalidUTF8
}

// unsafeString views b as a string without copying. b must not change while the
// string is in use.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
