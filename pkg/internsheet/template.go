// Package internsheet extracts student internship completion hours from
// standardized advising workbooks, singly or in zip bundles, into a
// consolidated batch result.
package internsheet

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"
)

// Template defines where expected data resides in a conforming workbook:
// sheet names, the identifier cell, and the hours-table layout. Swapping
// the template adapts the extractor to a revised institutional layout
// without touching extraction logic.
type Template struct {
	// AdvisingSheet is the sheet holding the student identifier.
	AdvisingSheet string `yaml:"advising_sheet"`
	// StudentIDCell is the identifier cell reference, e.g. "C5".
	StudentIDCell string `yaml:"student_id_cell"`
	// HoursSheets lists the sheets scanned for the hours table. Empty
	// means every sheet.
	HoursSheets []string `yaml:"hours_sheets,omitempty"`
	// CodeHeader and HoursHeader label the hours-table header row.
	CodeHeader  string `yaml:"code_header"`
	HoursHeader string `yaml:"hours_header"`
	// CodeColumn and HoursColumn are 1-based table column indexes.
	CodeColumn  int `yaml:"code_column"`
	HoursColumn int `yaml:"hours_column"`
	// Codes lists the recognized internship codes, in report column order.
	Codes []string `yaml:"codes"`
}

// DefaultTemplate returns the standard institutional layout: identifier in
// C5 of "Current Semester Advising", hours table headed by
// "Internship Code" / "Completed" with codes in column 1 and completed
// hours in column 3.
func DefaultTemplate() Template {
	return Template{
		AdvisingSheet: "Current Semester Advising",
		StudentIDCell: "C5",
		CodeHeader:    "Internship Code",
		HoursHeader:   "Completed",
		CodeColumn:    1,
		HoursColumn:   3,
		Codes:         []string{"SPTH290", "SPTH291", "SPTH292", "SPTH293"},
	}
}

// LoadTemplate reads a YAML template file. Fields absent from the file keep
// their DefaultTemplate values.
func LoadTemplate(path string) (Template, error) {
	tpl := DefaultTemplate()
	data, err := os.ReadFile(path)
	if err != nil {
		return tpl, fmt.Errorf("reading template: %w", err)
	}
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return tpl, fmt.Errorf("parsing template %s: %w", path, err)
	}
	if err := tpl.Validate(); err != nil {
		return tpl, fmt.Errorf("template %s: %w", path, err)
	}
	return tpl, nil
}

// Validate checks the template for values the extractor cannot work with.
func (t Template) Validate() error {
	if t.AdvisingSheet == "" {
		return fmt.Errorf("advising_sheet must not be empty")
	}
	if _, _, err := excelize.CellNameToCoordinates(t.StudentIDCell); err != nil {
		return fmt.Errorf("student_id_cell %q: %w", t.StudentIDCell, err)
	}
	if t.CodeHeader == "" || t.HoursHeader == "" {
		return fmt.Errorf("code_header and hours_header must not be empty")
	}
	if t.CodeColumn < 1 || t.HoursColumn < 1 {
		return fmt.Errorf("code_column and hours_column are 1-based and must be >= 1")
	}
	if len(t.Codes) == 0 {
		return fmt.Errorf("codes must list at least one internship code")
	}
	seen := make(map[string]bool, len(t.Codes))
	for _, code := range t.Codes {
		if code == "" {
			return fmt.Errorf("codes must not contain empty entries")
		}
		if seen[code] {
			return fmt.Errorf("duplicate code %q", code)
		}
		seen[code] = true
	}
	return nil
}
