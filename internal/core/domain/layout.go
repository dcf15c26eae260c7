package domain

import "unsafe"

// InlineCapacity is the number of bytes a ShortString stores without allocating.
const InlineCapacity = 15

// heapTag is stored in the inline length byte while the heap buffer is active.
// No inline string can reach it, so the length byte doubles as the discriminant.
const heapTag = 0xFF

// inline is the in-value storage: the bytes followed by their length.
type inline struct {
	buf [InlineCapacity]byte
	n   uint8
}

// Compile-time layout checks. Each line fails to build if its invariant breaks.
const (
	// heapTag must stay out of reach of any inline length.
	_ = uint8(heapTag - InlineCapacity - 1)
)

var (
	// inline must be exactly its bytes plus the length byte, with no padding.
	_ [unsafe.Sizeof(inline{}) - (InlineCapacity + 1)]struct{}
	_ [(InlineCapacity + 1) - unsafe.Sizeof(inline{})]struct{}
)

// Repr names the storage a ShortString is currently using.
type Repr uint8

const (
	// ReprInline means the bytes live inside the value itself.
	ReprInline Repr = iota
	// ReprHeap means the bytes live in a separately allocated buffer.
	ReprHeap
)

// String returns the lower-case name of the representation.
func (r Repr) String() string {
	switch r {
	case ReprInline:
		return "inline"
	case ReprHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Repr) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
