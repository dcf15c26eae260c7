package domain

import (
	"iter"
	"math"
	"slices"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// PushStr appends str. It fails with ErrInvalidUTF8 if str is not valid UTF-8,
// in which case s is left unchanged.
func (s *ShortString) PushStr(str string) error {
	if err := validateUTF8(str); err != nil {
		return err
	}
	return s.push(str)
}

// PushBytes appends a copy of b. It may alias s's own content.
func (s *ShortString) PushBytes(b []byte) error {
	return s.PushStr(unsafeString(b))
}

// PushRune appends the UTF-8 encoding of r. Invalid runes are appended as
// utf8.RuneError, so the content stays valid UTF-8.
func (s *ShortString) PushRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if err := s.push(unsafeString(buf[:n])); err != nil {
		panic(err)
	}
}

// Write implements io.Writer. p must be valid UTF-8 on its own; a rune split
// across two writes is rejected.
func (s *ShortString) Write(p []byte) (int, error) {
	if err := s.PushBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (s *ShortString) WriteString(str string) (int, error) {
	if err := s.PushStr(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// WriteRune appends r and returns the number of bytes written. The error is always nil.
func (s *ShortString) WriteRune(r rune) (int, error) {
	before := s.Len()
	s.PushRune(r)
	return s.Len() - before, nil
}

// Extend appends every string yielded by seq. If one of them is rejected, s is
// restored to its content before the call.
func (s *ShortString) Extend(seq iter.Seq[string]) error {
	n, wasInline := s.Len(), s.IsInline()
	for str := range seq {
		if err := s.PushStr(str); err != nil {
			s.rollback(n, wasInline)
			return err
		}
	}
	return nil
}

// ExtendRunes appends every rune yielded by seq.
func (s *ShortString) ExtendRunes(seq iter.Seq[rune]) {
	for r := range seq {
		s.PushRune(r)
	}
}

// Add returns a new value holding s followed by str; s is not modified.
// The result is inline whenever the combined content fits.
func (s *ShortString) Add(str string) (ShortString, error) {
	if err := validateUTF8(str); err != nil {
		return ShortString{}, err
	}
	n, err := addLen(s.Len(), len(str))
	if err != nil {
		return ShortString{}, err
	}

	var out ShortString
	if n > InlineCapacity {
		out = ShortString{heap: make([]byte, 0, n), in: inline{n: heapTag}}
	}
	_ = out.push(s.View())
	_ = out.push(str)
	return out, nil
}

// Clear drops the content but keeps the representation and any heap capacity.
func (s *ShortString) Clear() {
	if s.IsInline() {
		s.in.n = 0
		return
	}
	s.heap = s.heap[:0]
}

// Grow guarantees room for another n bytes without allocating. An inline value
// that cannot fit n more bytes is moved to the heap. Grow panics if n is negative.
func (s *ShortString) Grow(n int) {
	if n < 0 {
		panic("domain.ShortString.Grow: negative count")
	}
	need, err := addLen(s.Len(), n)
	if err != nil {
		panic(err)
	}
	if s.IsInline() {
		if need > InlineCapacity {
			s.promote(need, "")
		}
		return
	}
	s.heap = slices.Grow(s.heap, n)
}

// push appends str, which the caller has already validated.
func (s *ShortString) push(str string) error {
	n, err := addLen(s.Len(), len(str))
	if err != nil {
		return err
	}
	if !s.IsInline() {
		s.heap = append(s.heap, str...)
		return nil
	}
	if n <= InlineCapacity {
		copy(s.in.buf[s.in.n:], str)
		s.in.n = uint8(n) //nolint:gosec // bounded by InlineCapacity
		return nil
	}
	s.promote(n, str)
	return nil
}

// promote moves the inline bytes plus tail into a new heap buffer of at least
// size bytes. Both are copied out before the inline block is overwritten, so tail
// may point into it.
func (s *ShortString) promote(size int, tail string) {
	buf := make([]byte, 0, max(size, 2*InlineCapacity))
	buf = append(buf, s.in.buf[:s.in.n]...)
	buf = append(buf, tail...)
	s.heap = buf
	s.in = inline{n: heapTag}
}

// rollback restores the first n bytes and the representation s had before a
// failed multi-step mutation.
func (s *ShortString) rollback(n int, wasInline bool) {
	switch {
	case wasInline && !s.IsInline():
		in, _ := makeInline(unsafeString(s.heap[:n]))
		*s = ShortString{in: in}
	case s.IsInline():
		s.in.n = uint8(n) //nolint:gosec // n was an inline length
	default:
		s.heap = s.heap[:n]
	}
}

// addLen adds two lengths, failing instead of wrapping around.
func addLen(cur, add int) (int, error) {
	if add > math.MaxInt-cur {
		err := zerr.With(zerr.Wrap(ErrLengthOverflow, "cannot grow string"), "length", cur)
		return 0, zerr.With(err, "addition", add)
	}
	return cur + add, nil
}
