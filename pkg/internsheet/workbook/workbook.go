// Package workbook opens spreadsheet containers and exposes sheet and
// cell access to the extraction layer.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook indicates the input is not a parseable xlsx container.
var ErrInvalidWorkbook = errors.New("invalid workbook format")

// Workbook is an opened spreadsheet container. It is owned by a single
// extraction call and must be closed when that call returns.
type Workbook struct {
	f    *excelize.File
	name string
}

// Open decodes an xlsx container from r. The stream must be positioned at
// offset 0. Corrupt, password-protected, or non-xlsx input fails with an
// error wrapping ErrInvalidWorkbook.
func Open(name string, r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidWorkbook, err)
	}
	return &Workbook{f: f, name: name}, nil
}

// OpenFile opens an xlsx file from disk.
func OpenFile(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Open(path, f)
}

// Name returns the display name the workbook was opened under.
func (w *Workbook) Name() string {
	return w.name
}

// SheetNames returns the workbook's sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether a sheet with the given name exists.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// Cell returns the formatted value at the given 1-based row and column of
// the named sheet. Reads beyond the populated range return an empty string.
// The second return value is false when the sheet does not exist.
func (w *Workbook) Cell(sheet string, row, col int) (string, bool) {
	if !w.HasSheet(sheet) {
		return "", false
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", true
	}
	v, err := w.f.GetCellValue(sheet, ref)
	if err != nil {
		return "", true
	}
	return v, true
}

// Rows returns all populated rows of the named sheet as formatted strings.
// Trailing empty cells within a row may be omitted, matching the underlying
// decoder.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	return w.f.GetRows(sheet)
}

// Close releases the workbook's in-memory buffers.
func (w *Workbook) Close() error {
	return w.f.Close()
}
