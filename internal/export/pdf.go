package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// PDF writes a paginated A4 table. The header row repeats on every page.
type PDF struct{}

const (
	pdfRowHeight = 8.0
	pdfFontSize  = 10.0
)

// column widths in mm, A4 portrait minus 10mm margins
var pdfColWidths = []float64{14, 76, 70, 30}

func (PDF) Format() Format   { return FormatPDF }
func (PDF) FileName() string { return "todos.pdf" }

func (PDF) Export(w io.Writer, rows []Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Todo List", true)
	// core fonts are cp1252; this maps UTF-8 input onto it
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	header := func() {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(41, 128, 185)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(200, 200, 200)
		for i, h := range Headers {
			pdf.CellFormat(pdfColWidths[i], pdfRowHeight, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", pdfFontSize)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	header()

	_, pageH := pdf.GetPageSize()
	bottom := pageH - 20
	for i, r := range rows {
		if pdf.GetY()+pdfRowHeight > bottom {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		cells := []string{strconv.Itoa(r.Number), r.ID, tr(r.Title), r.Status}
		for j, c := range cells {
			pdf.CellFormat(pdfColWidths[j], pdfRowHeight, fit(pdf, c, pdfColWidths[j]-2), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// fit truncates s with an ellipsis so it renders within width.
// s is already single-byte encoded, so trimming bytes trims characters.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
