package internsheet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTemplate(t *testing.T) {
	tpl := DefaultTemplate()
	if tpl.AdvisingSheet != "Current Semester Advising" {
		t.Errorf("AdvisingSheet = %q", tpl.AdvisingSheet)
	}
	if tpl.StudentIDCell != "C5" {
		t.Errorf("StudentIDCell = %q, want C5", tpl.StudentIDCell)
	}
	if tpl.CodeColumn != 1 || tpl.HoursColumn != 3 {
		t.Errorf("columns = %d, %d; want 1, 3", tpl.CodeColumn, tpl.HoursColumn)
	}
	if err := tpl.Validate(); err != nil {
		t.Errorf("default template invalid: %v", err)
	}
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	content := `advising_sheet: Advising 2026
student_id_cell: B2
codes:
  - INT101
  - INT102
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing template file: %v", err)
	}

	tpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}
	if tpl.AdvisingSheet != "Advising 2026" {
		t.Errorf("AdvisingSheet = %q, want override", tpl.AdvisingSheet)
	}
	if tpl.StudentIDCell != "B2" {
		t.Errorf("StudentIDCell = %q, want B2", tpl.StudentIDCell)
	}
	if len(tpl.Codes) != 2 || tpl.Codes[0] != "INT101" {
		t.Errorf("Codes = %v, want [INT101 INT102]", tpl.Codes)
	}
	// Fields absent from the file keep their defaults.
	if tpl.CodeHeader != "Internship Code" || tpl.HoursColumn != 3 {
		t.Errorf("defaults lost: header %q, column %d", tpl.CodeHeader, tpl.HoursColumn)
	}
}

func TestLoadTemplateMissingFile(t *testing.T) {
	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTemplateValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Template)
	}{
		{"empty advising sheet", func(tpl *Template) { tpl.AdvisingSheet = "" }},
		{"bad cell reference", func(tpl *Template) { tpl.StudentIDCell = "nope" }},
		{"empty code header", func(tpl *Template) { tpl.CodeHeader = "" }},
		{"zero code column", func(tpl *Template) { tpl.CodeColumn = 0 }},
		{"zero hours column", func(tpl *Template) { tpl.HoursColumn = 0 }},
		{"no codes", func(tpl *Template) { tpl.Codes = nil }},
		{"empty code", func(tpl *Template) { tpl.Codes = []string{"INT101", ""} }},
		{"duplicate code", func(tpl *Template) { tpl.Codes = []string{"INT101", "INT101"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := DefaultTemplate()
			tt.mutate(&tpl)
			if err := tpl.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
