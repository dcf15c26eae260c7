package domain

import "fmt"

// Inspection describes how one piece of text is stored as a ShortString.
type Inspection struct {
	Text ShortString `json:"text" yaml:"text" cbor:"text"`
	Len  int         `json:"len" yaml:"len" cbor:"len"`
	Cap  int         `json:"cap" yaml:"cap" cbor:"cap"`
	Repr string      `json:"repr" yaml:"repr" cbor:"repr"`
	Hash string      `json:"hash" yaml:"hash" cbor:"hash"`
}

// NewInspection captures the storage details of s. The text is cloned.
func NewInspection(s *ShortString) Inspection {
	return Inspection{
		Text: s.Clone(),
		Len:  s.Len(),
		Cap:  s.Cap(),
		Repr: s.Repr().String(),
		Hash: fmt.Sprintf("%016x", s.Hash()),
	}
}
