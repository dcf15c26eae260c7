package domain

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// GoString implements fmt.GoStringer.
func (s ShortString) GoString() string {
	return fmt.Sprintf("domain.MustFromString(%q)", s.View())
}

// MarshalText implements encoding.TextMarshaler.
// It returns a copy of the content.
func (s ShortString) MarshalText() ([]byte, error) {
	return []byte(s.View()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text must be valid UTF-8; on error s is left unchanged.
func (s *ShortString) UnmarshalText(text []byte) error {
	v, err := FromBytes(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s ShortString) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (s *ShortString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return zerr.With(zerr.Wrap(ErrNotScalar, "cannot decode short string"), "line", value.Line)
	}
	v, err := FromString(value.Value)
	if err != nil {
		return zerr.With(err, "line", value.Line)
	}
	*s = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler, encoding the content as a CBOR text string.
func (s ShortString) MarshalCBOR() ([]byte, error) {
	data, err := cbor.Marshal(s.View())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode cbor text")
	}
	return data, nil
}

// UnmarshalCBOR implements cbor.Unmarshaler. It accepts CBOR text strings only.
func (s *ShortString) UnmarshalCBOR(data []byte) error {
	var text string
	if err := cbor.Unmarshal(data, &text); err != nil {
		return zerr.Wrap(err, "failed to decode cbor text")
	}
	v, err := FromString(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
