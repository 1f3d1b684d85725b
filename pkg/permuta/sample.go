package permuta

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteSample writes an example workbook demonstrating the expected
// layout: an "ID" sheet whose columns are the option axes, a "GENERAL"
// sheet with attributes shared by every combination, and one override
// sheet keyed by the Color axis.
func WriteSample(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"ID", [][]interface{}{
			{"Model number", "Brakes", "Wheels", "Frame size", "Groupset", "Suspension", "Color"},
			{"CITY", "R", "26", "16", "Acera", "FALSE", "RED"},
			{"CITY", "D", "27", "18", "Tourney", "TRUE", "CYAN"},
		}},
		{"GENERAL", [][]interface{}{
			{"Manufacturer", "Type"},
			{"Bikes INC", "City"},
		}},
		{"Color", [][]interface{}{
			{"Color", "Frame color", "Logo"},
			{"RED", "RED", "TRUE"},
			{"CYAN", "CYAN", "FALSE"},
		}},
	}

	for i, sheet := range sheets {
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.name)
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet.name, err)
			}
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return fmt.Errorf("write sheet %s: %w", sheet.name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save sample workbook: %w", err)
	}
	return nil
}
