package domain

// FileStats summarizes how the tokens of one file fit into ShortString storage.
// It is persisted in the scan cache, keyed by Path.
type FileStats struct {
	Path        string    `json:"path,omitzero" yaml:"path,omitempty"`
	Digest      string    `json:"digest,omitzero" yaml:"digest,omitempty"`
	Split       SplitMode `json:"split,omitzero" yaml:"split,omitempty"`
	Tokens      int       `json:"tokens,omitzero" yaml:"tokens"`
	Inline      int       `json:"inline,omitzero" yaml:"inline"`
	Heap        int       `json:"heap,omitzero" yaml:"heap"`
	Unique      int       `json:"unique,omitzero" yaml:"unique"`
	InlineBytes int       `json:"inline_bytes,omitzero" yaml:"inline_bytes"`
	HeapBytes   int       `json:"heap_bytes,omitzero" yaml:"heap_bytes"`
	Longest     int       `json:"longest,omitzero" yaml:"longest"`
}

// Observe counts one token.
func (f *FileStats) Observe(tok *ShortString) {
	n := tok.Len()
	f.Tokens++
	if tok.IsInline() {
		f.Inline++
		f.InlineBytes += n
	} else {
		f.Heap++
		f.HeapBytes += n
	}
	f.Longest = max(f.Longest, n)
}

// InlineRatio returns the share of tokens that stayed inline, or 0 when there are none.
func (f *FileStats) InlineRatio() float64 {
	if f.Tokens == 0 {
		return 0
	}
	return float64(f.Inline) / float64(f.Tokens)
}

// merge adds o's counters into f. Path, Digest and Split are left alone.
func (f *FileStats) merge(o *FileStats) {
	f.Tokens += o.Tokens
	f.Inline += o.Inline
	f.Heap += o.Heap
	f.Unique += o.Unique
	f.InlineBytes += o.InlineBytes
	f.HeapBytes += o.HeapBytes
	f.Longest = max(f.Longest, o.Longest)
}
