package timesheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Табель"
	totalHeader = "ИТОГО"
)

// WriteXLSX renders the matrix to a spreadsheet: one header row, one row
// per (department, employee), day columns in order, total column last.
// Thin borders, centered cells, wide first two columns.
func WriteXLSX(m *Matrix) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := []any{"Отдел", "Сотрудник"}
	for _, d := range m.Days {
		headers = append(headers, d)
	}
	headers = append(headers, totalHeader)
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range m.Rows {
		cells := []any{row.Department, row.FullName}
		for _, d := range m.Days {
			cells = append(cells, row.HoursOn(d))
		}
		cells = append(cells, row.Total)
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, addr, &cells); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), len(m.Rows)+1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 30); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
