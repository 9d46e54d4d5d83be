package export

import (
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

// maxSheetName is the worksheet name limit imposed by the XLSX format.
const maxSheetName = 31

// WriteXLSX serializes a dataset as a single-sheet workbook named after the
// report title. Columns are sized to max(12, header length + 2) character
// units; numeric values are written as numeric cells.
func WriteXLSX(w io.Writer, ds report.Dataset, title string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, col := range ds.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}

		width := float64(utf8.RuneCountInString(col) + 2)
		if width < 12 {
			width = 12
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	for r, row := range ds.Rows {
		for c, v := range row {
			value := cellValue(v)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func sheetName(title string) string {
	if title == "" {
		return "Report"
	}
	runes := []rune(title)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}
