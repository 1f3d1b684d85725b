// Package parser reads workbooks into the named-table form the engine
// consumes.
package parser

import (
	"github.com/ukaji3/permuta-go/pkg/permuta/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of an open workbook into named tables,
// preserving the workbook's sheet order. Sheet order matters: it is the
// discovery order the classifier and the sheet_priority precedence mode
// observe.
func ReadWorkbook(f *excelize.File) ([]models.Table, error) {
	sheetList := f.GetSheetList()
	tables := make([]models.Table, 0, len(sheetList))
	for _, sheetName := range sheetList {
		t, err := readSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// readSheet reads one sheet as a table: the first grid row is the header
// row, every following row is data. Cells missing from the grid and
// cells excelize reports as "" both become blank cells; rows shorter
// than the header row are blank-padded on the right.
func readSheet(f *excelize.File, sheetName string) (models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	t := models.Table{Name: sheetName}
	if len(rows) == 0 {
		return t, nil
	}

	t.Headers = rows[0]
	for _, row := range rows[1:] {
		cells := make([]models.Cell, len(t.Headers))
		for col := range t.Headers {
			if col < len(row) && row[col] != "" {
				cells[col] = models.String(row[col])
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}
