package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/shortstr/internal/core/domain"
	"go.trai.ch/shortstr/internal/ui/output"
	"go.trai.ch/shortstr/internal/ui/style"
	"go.trai.ch/zerr"
)

// table collects rows of cells and writes them with padded columns.
type table struct {
	rows [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return zerr.Wrap(err, "failed to write table")
}

// newStyler returns a lipgloss renderer for w that honours NO_COLOR.
func newStyler(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if output.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func reprStyle(r *lipgloss.Renderer, repr string) lipgloss.Style {
	if repr == domain.ReprHeap.String() {
		return style.Heap.Renderer(r)
	}
	return style.Inline.Renderer(r)
}

func writeInspectionsText(w io.Writer, items []domain.Inspection) error {
	r := newStyler(w)
	header := style.Header.Renderer(r)

	var t table
	t.add(header.Render("TEXT"), header.Render("LEN"), header.Render("CAP"), header.Render("REPR"), header.Render("HASH"))
	for i := range items {
		it := &items[i]
		t.add(
			strconv.Quote(it.Text.View()),
			strconv.Itoa(it.Len),
			strconv.Itoa(it.Cap),
			reprStyle(r, it.Repr).Render(it.Repr),
			style.Muted.Renderer(r).Render(it.Hash),
		)
	}
	return t.write(w)
}

func writeReportText(w io.Writer, report *domain.Report) error {
	r := newStyler(w)
	header := style.Header.Renderer(r)

	var t table
	t.add("", header.Render("FILE"), header.Render("TOKENS"), header.Render("INLINE"),
		header.Render("HEAP"), header.Render("UNIQUE"), header.Render("LONGEST"))
	for i := range report.Files {
		f := &report.Files[i]
		t.add(
			statusIcon(r, f.Status),
			f.Path,
			strconv.Itoa(f.Tokens),
			style.Inline.Renderer(r).Render(strconv.Itoa(f.Inline)),
			style.Heap.Renderer(r).Render(strconv.Itoa(f.Heap)),
			strconv.Itoa(f.Unique),
			strconv.Itoa(f.Longest),
		)
	}
	if err := t.write(w); err != nil {
		return err
	}

	tot := &report.Totals
	_, err := fmt.Fprintf(w, "\n%d files, %d tokens, %.1f%% inline (%d bytes inline, %d bytes on heap)\n",
		len(report.Files), tot.Tokens, 100*tot.InlineRatio(), tot.InlineBytes, tot.HeapBytes)
	return zerr.Wrap(err, "failed to write summary")
}

func statusIcon(r *lipgloss.Renderer, status domain.VertexStatus) string {
	switch status {
	case domain.VertexStatusCompleted:
		return style.Inline.Renderer(r).Render(style.Check)
	case domain.VertexStatusCached:
		return style.Muted.Renderer(r).Render(style.Tilde)
	default:
		return style.Failed.Renderer(r).Render(style.Cross)
	}
}
