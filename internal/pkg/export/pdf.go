package export

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

// Layout constants for the hand-laid-out PDF table. Units are points
// (A4 portrait).
const (
	pdfMargin    = 40.0
	idColWidth   = 40.0
	cellPadding  = 5.0
	pdfLineHt    = 12.0
	headerBandHt = 20.0
	titleHt      = 24.0
)

// WritePDF serializes a dataset as a paginated PDF table: centered
// underlined title, filled header band with white text, bordered cells with
// centered wrapped text, row heights driven by the tallest cell.
func WritePDF(w io.Writer, ds report.Dataset, title string) error {
	return buildPDF(ds, title).Output(w)
}

func buildPDF(ds report.Dataset, title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, 0)
	// cp1254 covers the Turkish diacritics in names and department labels.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	printableW := pageW - 2*pdfMargin
	bottom := pageH - pdfMargin

	pdf.SetFont("Helvetica", "BU", 16)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(printableW, titleHt, tr(title), "", 1, "C", false, 0, "")

	if len(ds.Rows) == 0 {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetXY(pdfMargin, pageH/2)
		pdf.CellFormat(printableW, pdfLineHt, tr("No data available"), "", 0, "C", false, 0, "")
		return pdf
	}

	widths := columnWidths(ds.Columns, printableW)
	y := pdfMargin + titleHt + 10

	// Header band. Not repeated on continuation pages.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	x := pdfMargin
	for i, col := range ds.Columns {
		pdf.Rect(x, y, widths[i], headerBandHt, "F")
		pdf.SetXY(x, y+(headerBandHt-pdfLineHt)/2)
		pdf.CellFormat(widths[i], pdfLineHt, tr(col), "", 0, "C", false, 0, "")
		x += widths[i]
	}
	y += headerBandHt

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)

	for _, row := range ds.Rows {
		// Wrap every cell first; the tallest wrapped block sets the row
		// height, so no cell is ever clipped or split across pages.
		lines := make([][]string, len(row))
		rowHt := pdfLineHt + cellPadding
		for i, v := range row {
			text := tr(CellString(v))
			split := pdf.SplitText(text, widths[i]-2*cellPadding)
			if len(split) == 0 {
				split = []string{""}
			}
			lines[i] = split
			if h := float64(len(split))*pdfLineHt + cellPadding; h > rowHt {
				rowHt = h
			}
		}

		if y+rowHt > bottom {
			pdf.AddPage()
			y = pdfMargin
		}

		x = pdfMargin
		for i := range lines {
			pdf.Rect(x, y, widths[i], rowHt, "D")
			textHt := float64(len(lines[i])) * pdfLineHt
			lineY := y + (rowHt-textHt)/2
			for _, line := range lines[i] {
				pdf.SetXY(x+cellPadding, lineY)
				pdf.CellFormat(widths[i]-2*cellPadding, pdfLineHt, line, "", 0, "C", false, 0, "")
				lineY += pdfLineHt
			}
			x += widths[i]
		}
		y += rowHt
	}

	return pdf
}

// columnWidths gives a fixed narrow width to id-ish columns and splits the
// remaining printable width evenly across the rest.
func columnWidths(cols []string, printableW float64) []float64 {
	widths := make([]float64, len(cols))
	remaining := printableW
	flexible := 0
	for i, col := range cols {
		if strings.Contains(strings.ToLower(col), "id") {
			widths[i] = idColWidth
			remaining -= idColWidth
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := remaining / float64(flexible)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}
