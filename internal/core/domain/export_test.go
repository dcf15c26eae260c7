package domain

// HeapTag exposes the heap discriminant for tests.
const HeapTag = heapTag

// InlineLen builds an inline block from s and returns its recorded length.
func InlineLen(s string) (int, error) {
	in, err := makeInline(s)
	return int(in.n), err
}

// AddLen exposes the checked length addition for tests.
var AddLen = addLen
