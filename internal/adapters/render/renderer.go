// Package render writes inspection and scan results in the supported output formats.
package render

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderInspections writes items in format.
func (r *Renderer) RenderInspections(w io.Writer, items []domain.Inspection, format domain.Format) error {
	if format == domain.FormatText {
		return writeInspectionsText(w, items)
	}
	return encode(w, items, format)
}

// RenderReport writes report in format.
func (r *Renderer) RenderReport(w io.Writer, report *domain.Report, format domain.Format) error {
	if format == domain.FormatText {
		return writeReportText(w, report)
	}
	return encode(w, report, format)
}

// encode writes v with one of the structured encoders. CBOR is hex-encoded so
// the output stays printable.
func encode(w io.Writer, v any, format domain.Format) error {
	switch format {
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode yaml")
		}
		return zerr.Wrap(enc.Close(), "failed to flush yaml")
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return zerr.Wrap(enc.Encode(v), "failed to encode json")
	case domain.FormatCBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return zerr.Wrap(err, "failed to encode cbor")
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return zerr.Wrap(err, "failed to write cbor")
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "cannot render"), "format", string(format))
	}
}
