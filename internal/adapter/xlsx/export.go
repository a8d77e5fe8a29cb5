// Package xlsx exports the report log as an Excel workbook.
package xlsx

import (
	"fmt"
	"io"

	"github.com/couchcryptid/ocean-defender/internal/adapter/csvstore"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the reports.
const SheetName = "Laporan"

// ContentType is the MIME type of the exported workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteReports writes reports newest first under the report log headers.
func WriteReports(w io.Writer, reports []domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, header := range csvstore.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("write header %s: %w", header, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "D", 30); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	row := 2
	for i := len(reports) - 1; i >= 0; i-- {
		r := reports[i]
		values := []any{r.DateString(), r.Location, r.Description, r.PhotoFilename}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
