// Package pdf renders validated reports as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/andreaprogra/rapport-vocal/models"
)

//go:generate mockgen -source=pdf.go -destination=../mock/renderer_mock.go -package=mock

// Renderer produces the PDF form of a report. Rendering failures are
// non-fatal to the report lifecycle: a report without a PDF is still valid
// and can be shared as text.
type Renderer interface {
	Render(report models.Report) ([]byte, error)
}

type fpdfRenderer struct{}

func NewRenderer() Renderer {
	return &fpdfRenderer{}
}

// Render implements [Renderer]. Layout: bold title, a small generation date
// line, then the body wrapped over as many pages as needed.
func (r *fpdfRenderer) Render(report models.Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	// Core fonts are cp1252 only; the translator keeps French accents intact.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 8, tr(report.Title), "", "L", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	when := report.CreatedAt
	if when.IsZero() {
		when = time.Now()
	}
	doc.CellFormat(0, 6, tr(fmt.Sprintf("Généré le %s", when.Format("02/01/2006 à 15:04"))), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 6, tr(report.Body), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
