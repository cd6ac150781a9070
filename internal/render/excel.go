package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/quote"
)

// SheetName is the single sheet a quote workbook carries.
const SheetName = "Quotes"

var workbookHeader = []string{"Line ID", "SKU", "Qty", "Net sell", "Margin %", "Price breakdown"}

// BuildWorkbook renders a quote's lines into a six-column workbook. The
// breakdown lands in one cell per line, newline-joined, exactly the
// formatter's join so the cell text matches every other channel.
func BuildWorkbook(out *quote.Output) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range workbookHeader {
		if err := setCell(f, col+1, 1, h); err != nil {
			return nil, err
		}
	}

	for row, l := range out.Lines {
		values := []any{
			l.LineID,
			l.SKU,
			l.Qty.String(),
			l.NetSell,
			l.MarginPct,
			explain.JoinNewlines(l.PriceBreakdown),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row+2, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// WriteWorkbook renders and saves the workbook.
func WriteWorkbook(out *quote.Output, path string) error {
	f, err := BuildWorkbook(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
