package shortstr_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shortstr"
)

func TestPublicAPI(t *testing.T) {
	s := shortstr.New()
	assert.Equal(t, shortstr.Inline, s.Repr())

	require.NoError(t, s.PushStr(strings.Repeat("a", shortstr.InlineCapacity)))
	assert.True(t, s.IsInline())

	s.PushRune('b')
	assert.Equal(t, shortstr.Heap, s.Repr())
	assert.Equal(t, shortstr.Hash(s.String()), s.Hash())

	_, err := shortstr.FromBytes([]byte{0xff})
	require.ErrorIs(t, err, shortstr.ErrInvalidUTF8)

	owned, err := shortstr.Adopt([]byte("a buffer long enough for the heap"))
	require.NoError(t, err)
	assert.False(t, owned.IsInline())
}

func Example() {
	s := shortstr.MustFromString("hello")
	fmt.Println(s.View(), s.Repr(), s.Len())

	_ = s.PushStr(", wide world")
	fmt.Println(s.View(), s.Repr(), s.Len())
	// Output:
	// hello inline 5
	// hello, wide world heap 17
}
