// Package parser reads template-defined fields out of opened workbooks.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mhakala/internsheet/pkg/internsheet/models"
)

// Book is the subset of workbook access the parser needs. It is satisfied
// by *workbook.Workbook.
type Book interface {
	// SheetNames returns the workbook's sheet names in workbook order.
	SheetNames() []string
	// HasSheet reports whether a sheet with the given name exists.
	HasSheet(name string) bool
	// Cell returns the value at the given 1-based row and column; the
	// second return value is false when the sheet does not exist.
	Cell(sheet string, row, col int) (string, bool)
	// Rows returns all populated rows of the named sheet.
	Rows(sheet string) ([][]string, error)
}

// IDParams locates the student identifier field.
type IDParams struct {
	// Sheet is the sheet holding the identifier.
	Sheet string
	// Cell is the identifier cell reference, e.g. "C5".
	Cell string
}

// StudentID reads the fixed identifier cell. A missing sheet yields a nil
// identifier plus a missing_sheet warning; an empty cell yields nil with no
// warning. It never fails.
func StudentID(wb Book, p IDParams) (*string, []models.Warning) {
	if !wb.HasSheet(p.Sheet) {
		return nil, []models.Warning{{
			Kind:   models.WarnMissingSheet,
			Sheet:  p.Sheet,
			Detail: "advising sheet not found",
		}}
	}

	col, row, err := excelize.CellNameToCoordinates(p.Cell)
	if err != nil {
		return nil, []models.Warning{{
			Kind:   models.WarnMissingCell,
			Sheet:  p.Sheet,
			Cell:   p.Cell,
			Detail: fmt.Sprintf("bad cell reference: %v", err),
		}}
	}

	v, _ := wb.Cell(p.Sheet, row, col)
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	return &v, nil
}
