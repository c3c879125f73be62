// Package export writes sleep tables to spreadsheet files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the exported table.
const SheetName = "Sleep"

// Filename is the suggested download name of an exported table.
const Filename = "sleep.xlsx"

// WriteXLSX writes the table as a single worksheet with a header row of
// dateOfSleep followed by the table columns. Non-finite numbers are left blank.
func WriteXLSX(w io.Writer, table *domain.SleepTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, 0, len(table.Columns)+1)
	header = append(header, domain.ColumnDateOfSleep)
	for _, c := range table.Columns {
		header = append(header, c)
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze: true, XSplit: 1, YSplit: 1, TopLeftCell: "B2", ActivePane: "bottomRight",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	for i, r := range table.Rows {
		row := make([]any, 0, len(header))
		row = append(row, r.Date.Format(domain.DateLayout))
		for _, c := range table.Columns {
			row = append(row, cellValue(r.Values[c]))
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case string, bool:
		return x
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
