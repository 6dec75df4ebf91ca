package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Document describes a sectioned PDF such as a rendered resume.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

// Section is a titled block of body lines.
type Section struct {
	Heading string
	Lines   []string
}

// PDFExporter renders Documents into a simple single-column PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF for the document.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("pdf requires a title")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	for _, section := range doc.Sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, strings.ToUpper(section.Heading), "B", 1, "", false, 0, "")
		pdf.Ln(1)
		pdf.SetFont("Arial", "", 10)
		for _, line := range section.Lines {
			pdf.MultiCell(0, 5, line, "", "", false)
		}
		pdf.Ln(3)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
