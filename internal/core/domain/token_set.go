package domain

import "iter"

// TokenSet is a set of ShortStrings keyed by their hash.
// Collisions are resolved by comparing content, so it never merges distinct tokens.
type TokenSet struct {
	buckets map[uint64][]ShortString
	n       int
}

// NewTokenSet creates an empty TokenSet.
func NewTokenSet() *TokenSet {
	return &TokenSet{
		buckets: make(map[uint64][]ShortString),
	}
}

// Add inserts a clone of tok. It reports whether tok was not already present.
func (t *TokenSet) Add(tok *ShortString) bool {
	h := tok.Hash()
	bucket := t.buckets[h]
	for i := range bucket {
		if bucket[i].Equal(tok) {
			return false
		}
	}
	t.buckets[h] = append(bucket, tok.Clone())
	t.n++
	return true
}

// Contains reports whether tok is in the set.
func (t *TokenSet) Contains(tok *ShortString) bool {
	for _, v := range t.buckets[tok.Hash()] {
		if v.Equal(tok) {
			return true
		}
	}
	return false
}

// ContainsString reports whether a token with the text str is in the set.
func (t *TokenSet) ContainsString(str string) bool {
	for _, v := range t.buckets[HashString(str)] {
		if v.EqualString(str) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct tokens.
func (t *TokenSet) Len() int {
	return t.n
}

// All yields every token in unspecified order.
func (t *TokenSet) All() iter.Seq[*ShortString] {
	return func(yield func(*ShortString) bool) {
		for _, bucket := range t.buckets {
			for i := range bucket {
				if !yield(&bucket[i]) {
					return
				}
			}
		}
	}
}
