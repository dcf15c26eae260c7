package domain_test

import (
	"math"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shortstr/internal/core/domain"
)

func TestHeapTag_UnreachableByInlineLength(t *testing.T) {
	assert.Greater(t, domain.HeapTag, domain.InlineCapacity)
	assert.LessOrEqual(t, domain.HeapTag, math.MaxUint8)
}

func TestInlineBlock(t *testing.T) {
	t.Run("fits exactly", func(t *testing.T) {
		n, err := domain.InlineLen(strings.Repeat("a", domain.InlineCapacity))
		require.NoError(t, err)
		assert.Equal(t, domain.InlineCapacity, n)
	})

	t.Run("rejects instead of truncating", func(t *testing.T) {
		_, err := domain.InlineLen(strings.Repeat("a", domain.InlineCapacity+1))
		require.ErrorIs(t, err, domain.ErrInlineOverflow)
	})
}

func TestAddLen(t *testing.T) {
	n, err := domain.AddLen(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	_, err = domain.AddLen(math.MaxInt-1, 2)
	require.ErrorIs(t, err, domain.ErrLengthOverflow)

	n, err = domain.AddLen(math.MaxInt-2, 2)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, n)
}

func TestShortString_Footprint(t *testing.T) {
	var s domain.ShortString
	var b []byte
	// Slice header plus the inline block, rounded up to pointer alignment.
	want := unsafe.Sizeof(b) + unsafe.Sizeof(uintptr(0))*((domain.InlineCapacity+1+unsafe.Sizeof(uintptr(0))-1)/unsafe.Sizeof(uintptr(0)))
	assert.Equal(t, want, unsafe.Sizeof(s))
}

func TestRepr_String(t *testing.T) {
	assert.Equal(t, "inline", domain.ReprInline.String())
	assert.Equal(t, "heap", domain.ReprHeap.String())
	assert.Equal(t, "unknown", domain.Repr(7).String())

	text, err := domain.ReprHeap.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "heap", string(text))
}
