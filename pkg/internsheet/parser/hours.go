package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mhakala/internsheet/pkg/internsheet/models"
)

// ScanParams locates the internship hours table.
type ScanParams struct {
	// Sheets lists the sheets to scan. Empty means every sheet in the
	// workbook, in workbook order.
	Sheets []string
	// CodeHeader and HoursHeader are the labels identifying the header
	// row, matched case-insensitively after trimming.
	CodeHeader  string
	HoursHeader string
	// CodeColumn and HoursColumn are 1-based column indexes of the code
	// and completed-hours cells within the table.
	CodeColumn  int
	HoursColumn int
	// Codes lists the recognized internship codes. Codes found in the
	// table but not listed here are ignored.
	Codes []string
}

// Hours scans for the internship hours table and returns completed hours
// per recognized code. Every code in p.Codes has an entry in the result;
// unresolved codes map to nil. Anomalies are absorbed into warnings and the
// scan never fails.
func Hours(wb Book, p ScanParams) (map[string]*float64, []models.Warning) {
	hours := make(map[string]*float64, len(p.Codes))
	recognized := make(map[string]bool, len(p.Codes))
	for _, code := range p.Codes {
		hours[code] = nil
		recognized[code] = true
	}

	var warnings []models.Warning
	sheets := p.Sheets
	if len(sheets) == 0 {
		sheets = wb.SheetNames()
	}

	scanned := 0
	for _, sheet := range sheets {
		if !wb.HasSheet(sheet) {
			warnings = append(warnings, models.Warning{
				Kind:   models.WarnMissingSheet,
				Sheet:  sheet,
				Detail: "hours sheet not found",
			})
			continue
		}

		rows, err := wb.Rows(sheet)
		if err != nil {
			warnings = append(warnings, models.Warning{
				Kind:   models.WarnMissingCell,
				Sheet:  sheet,
				Detail: fmt.Sprintf("unreadable sheet: %v", err),
			})
			continue
		}
		scanned++

		header := findHeaderRow(rows, p)
		if header < 0 {
			continue
		}

		// Data rows follow the header until the first blank code cell.
		for i := header + 1; i < len(rows); i++ {
			code := cellAt(rows[i], p.CodeColumn)
			if code == "" {
				break
			}
			if !recognized[code] {
				continue
			}
			raw := cellAt(rows[i], p.HoursColumn)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				ref, _ := excelize.CoordinatesToCellName(p.HoursColumn, i+1)
				warnings = append(warnings, models.Warning{
					Kind:   models.WarnMalformedValue,
					Sheet:  sheet,
					Cell:   ref,
					Detail: "non-numeric hours for code " + code,
				})
				continue
			}
			if hours[code] == nil {
				hours[code] = &v
			}
		}

		// Rigid template: the first sheet carrying the table is the table.
		return hours, warnings
	}

	if scanned > 0 {
		warnings = append(warnings, models.Warning{
			Kind:   models.WarnMissingCell,
			Detail: "no hours table header found",
		})
	}
	return hours, warnings
}

// findHeaderRow returns the index of the row whose code and hours columns
// carry the header labels, or -1 when no such row exists.
func findHeaderRow(rows [][]string, p ScanParams) int {
	for i, row := range rows {
		if strings.EqualFold(cellAt(row, p.CodeColumn), p.CodeHeader) &&
			strings.EqualFold(cellAt(row, p.HoursColumn), p.HoursHeader) {
			return i
		}
	}
	return -1
}

// cellAt returns the trimmed value of a 1-based column, empty when the row
// is shorter than the requested column.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}
