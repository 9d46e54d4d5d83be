package export

import (
	"encoding/csv"
	"io"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

// Leading byte-order marker so Excel and friends read Turkish names as
// UTF-8 instead of the local code page.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV serializes a dataset as comma-delimited text: BOM, header row,
// one record per data row. Zero rows yield a header-only file.
func WriteCSV(w io.Writer, ds report.Dataset) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if len(ds.Columns) > 0 {
		if err := writer.Write(ds.Columns); err != nil {
			return err
		}
	}

	for _, row := range ds.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = CellString(v)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
