package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/fredrikhm/artmatch/internal/match"
)

// DefaultFileName is the name the report has always been delivered under.
const DefaultFileName = "matched_frames.pdf"

const headerTitle = "Matched Frame Descriptions (Sorted by Article Number)"

// Render lays the report out as a PDF: a centered bold header on every
// page, the matched lines as black body text, then a red section listing
// every article number no match was retained for. The whole document is
// assembled in memory and returned as one byte slice.
func Render(rep match.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, headerTitle, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	for _, line := range rep.Lines {
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 10, line, "", "L", false)
	}

	if len(rep.NotFound) > 0 {
		pdf.Ln(10)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 10, "Articles NOT FOUND:", "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, n := range rep.NotFound {
			pdf.CellFormat(0, 10, fmt.Sprintf("NOT FOUND: %s", n), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the report to path and returns that path.
func WriteFile(rep match.Report, path string) (string, error) {
	data, err := Render(rep)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
