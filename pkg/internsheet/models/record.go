// Package models defines data structures for internship-hours extraction.
package models

// Record represents the normalized data extracted from one student workbook.
type Record struct {
	// StudentID is the identifier read from the advising sheet, nil when
	// the sheet or the cell carried no value.
	StudentID *string `json:"student_id"`
	// Hours maps internship code to completed hours. Every code the
	// template recognizes has an entry; nil means the value was not
	// resolved from the workbook.
	Hours map[string]*float64 `json:"internship_hours"`
}
