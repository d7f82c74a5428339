package excel

import (
	"fmt"
	"time"

	"quickquote/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Quotes"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes the quotes, in the given order, to a single-sheet workbook.
func (g *Generator) Generate(quotes []entities.Quote) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheetName, cell, value)
	}

	headers := []string{"Date", "Customer", "Business", "Email", "Address"}
	for _, size := range entities.WindowSizes {
		headers = append(headers, string(size))
	}
	headers = append(headers, "Interior", "Dirt level", "Accessible", "Contract", "Extra charge", "Final price", "Images", "Quote ID")

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = file.SetCellStyle(sheetName, "A1", last, style)
	}

	total := 0.0
	for i, q := range quotes {
		row := i + 2
		values := []interface{}{
			formatDate(q.CreatedAt),
			q.Customer.DisplayName(),
			q.Customer.BusinessName,
			q.Customer.Email,
			q.Customer.Address,
		}
		for _, size := range entities.WindowSizes {
			values = append(values, q.Windows[size])
		}
		extra := 0.0
		if q.QuoteDetails.ExtraCharge != nil {
			extra = *q.QuoteDetails.ExtraCharge
		}
		values = append(values,
			yesNo(q.QuoteDetails.Interior),
			int(q.QuoteDetails.DirtLevel),
			yesNo(q.QuoteDetails.IsAccessible),
			yesNo(q.QuoteDetails.HasContract),
			extra,
			q.FinalPrice,
			len(q.Images),
			q.ID,
		)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, v)
		}
		total += q.FinalPrice
	}

	summaryRow := len(quotes) + 3
	set(fmt.Sprintf("A%d", summaryRow), "Quotes")
	set(fmt.Sprintf("B%d", summaryRow), len(quotes))
	set(fmt.Sprintf("A%d", summaryRow+1), "Total")
	set(fmt.Sprintf("B%d", summaryRow+1), total)

	_ = file.SetColWidth(sheetName, "A", "A", 18)
	_ = file.SetColWidth(sheetName, "B", "E", 28)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
