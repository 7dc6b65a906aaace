// Package report renders a batch result as a consolidated xlsx workbook:
// one row per student, one column per recognized internship code, plus an
// errors sheet listing per-file failures and warnings.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mhakala/internsheet/pkg/internsheet"
	"github.com/mhakala/internsheet/pkg/internsheet/models"
)

const (
	// DataSheet is the consolidated data sheet name.
	DataSheet = "Consolidated_Report"
	// ErrorSheet lists per-file failures and warnings.
	ErrorSheet = "Errors"
)

// Build renders res into a new workbook. Columns follow the template's
// code order; unresolved hours are written as 0 and a missing student
// identifier as an empty cell. The caller owns the returned file and must
// close it.
func Build(res *models.BatchResult, tpl internsheet.Template) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeData(f, res, tpl); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeErrors(f, res); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Write renders res to an xlsx file on disk.
func Write(path string, res *models.BatchResult, tpl internsheet.Template) error {
	f, err := Build(res, tpl)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteTo renders res as xlsx bytes to w.
func WriteTo(w io.Writer, res *models.BatchResult, tpl internsheet.Template) error {
	f, err := Build(res, tpl)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeData(f *excelize.File, res *models.BatchResult, tpl internsheet.Template) error {
	if err := setCell(f, DataSheet, 1, 1, "Student_ID"); err != nil {
		return err
	}
	for i, code := range tpl.Codes {
		if err := setCell(f, DataSheet, 1, i+2, code); err != nil {
			return err
		}
	}

	row := 2
	for _, entry := range res.Entries {
		if entry.Record == nil {
			continue
		}
		id := ""
		if entry.Record.StudentID != nil {
			id = *entry.Record.StudentID
		}
		if err := setCell(f, DataSheet, row, 1, id); err != nil {
			return err
		}
		for i, code := range tpl.Codes {
			v := 0.0
			if h := entry.Record.Hours[code]; h != nil {
				v = *h
			}
			if err := setCell(f, DataSheet, row, i+2, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func writeErrors(f *excelize.File, res *models.BatchResult) error {
	if _, err := f.NewSheet(ErrorSheet); err != nil {
		return err
	}
	if err := setCell(f, ErrorSheet, 1, 1, "source_name"); err != nil {
		return err
	}
	if err := setCell(f, ErrorSheet, 1, 2, "detail"); err != nil {
		return err
	}

	row := 2
	for _, entry := range res.Entries {
		if entry.Error != "" {
			if err := writeDetail(f, row, entry.SourceName, entry.Error); err != nil {
				return err
			}
			row++
		}
		for _, warn := range entry.Warnings {
			if err := writeDetail(f, row, entry.SourceName, warn.String()); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeDetail(f *excelize.File, row int, source, detail string) error {
	if err := setCell(f, ErrorSheet, row, 1, source); err != nil {
		return err
	}
	return setCell(f, ErrorSheet, row, 2, detail)
}

func setCell(f *excelize.File, sheet string, row, col int, value any) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", row, col, err)
	}
	return f.SetCellValue(sheet, ref, value)
}
