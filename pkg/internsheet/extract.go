package internsheet

import (
	"bytes"

	"github.com/mhakala/internsheet/pkg/internsheet/models"
	"github.com/mhakala/internsheet/pkg/internsheet/parser"
	"github.com/mhakala/internsheet/pkg/internsheet/workbook"
)

// Extract reads the template-defined fields out of an opened workbook.
// Missing sheets, missing cells, and malformed values degrade to nil
// fields plus warnings; Extract itself never fails. The workbook is not
// mutated, so repeated calls yield identical records.
func Extract(wb *workbook.Workbook, tpl Template) (*models.Record, []models.Warning) {
	id, warnings := parser.StudentID(wb, parser.IDParams{
		Sheet: tpl.AdvisingSheet,
		Cell:  tpl.StudentIDCell,
	})

	hours, hourWarnings := parser.Hours(wb, parser.ScanParams{
		Sheets:      tpl.HoursSheets,
		CodeHeader:  tpl.CodeHeader,
		HoursHeader: tpl.HoursHeader,
		CodeColumn:  tpl.CodeColumn,
		HoursColumn: tpl.HoursColumn,
		Codes:       tpl.Codes,
	})

	rec := &models.Record{StudentID: id, Hours: hours}
	return rec, append(warnings, hourWarnings...)
}

// ExtractResource opens a spreadsheet from raw bytes, extracts its fields,
// and releases the workbook before returning. A container that cannot be
// parsed fails with an error wrapping ErrInvalidWorkbook.
func ExtractResource(name string, data []byte, tpl Template) (*models.Record, []models.Warning, error) {
	wb, err := workbook.Open(name, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	defer wb.Close()

	rec, warnings := Extract(wb, tpl)
	return rec, warnings, nil
}
