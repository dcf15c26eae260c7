package ports

import (
	"io"

	"go.trai.ch/shortstr/internal/core/domain"
)

// Renderer turns results into output in one of the supported formats.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderInspections writes one record per inspected string.
	RenderInspections(w io.Writer, items []domain.Inspection, format domain.Format) error

	// RenderReport writes a scan report.
	RenderReport(w io.Writer, report *domain.Report, format domain.Format) error
}
