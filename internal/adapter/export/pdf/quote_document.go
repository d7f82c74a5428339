package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"quickquote/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a printable quote. Prices are the stored ones; nothing is
// recomputed against the current rate card.
func (g *Generator) Generate(q entities.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, "Window Cleaning Quote", "", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Quote %s, %s", q.ID, formatDate(q.CreatedAt))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Customer", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range []string{
		q.Customer.DisplayName(),
		q.Customer.BusinessName,
		q.Customer.Email,
		q.Customer.Address,
	} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Windows", "", 1, "L", false, 0, "")
	widths := []float64{60, 30}
	drawTableRow(pdf, []string{"Size", "Count"}, widths, true)
	for _, size := range entities.WindowSizes {
		drawTableRow(pdf, []string{string(size), fmt.Sprintf("%d", q.Windows[size])}, widths, false)
	}
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Options", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	d := q.QuoteDetails
	extra := 0.0
	if d.ExtraCharge != nil {
		extra = *d.ExtraCharge
	}
	for _, line := range []string{
		fmt.Sprintf("Interior cleaning: %s", yesNo(d.Interior)),
		fmt.Sprintf("Dirt level: %d", d.DirtLevel),
		fmt.Sprintf("Difficult access: %s", yesNo(d.IsAccessible)),
		fmt.Sprintf("Contract: %s", yesNo(d.HasContract)),
		fmt.Sprintf("Extra charge: %s", formatAmount(extra)),
	} {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: %s", formatAmount(q.FinalPrice)), "", 1, "R", false, 0, "")

	if len(q.Images) > 0 {
		pdf.Ln(2)
		pdf.SetFont(fontName, "B", 12)
		pdf.CellFormat(0, 8, "Attachments", "", 1, "L", false, 0, "")
		pdf.SetFont(fontName, "", 9)
		for i, img := range q.Images {
			line := fmt.Sprintf("%d. %s", i+1, img.ImageURL)
			if img.Comment != "" {
				line += " (" + img.Comment + ")"
			}
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", header, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

func formatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
