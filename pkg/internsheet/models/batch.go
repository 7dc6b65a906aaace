package models

// Entry holds the outcome for one spreadsheet discovered in a batch.
type Entry struct {
	// SourceName is the display name of the spreadsheet (archive member
	// base name, or the input's own name for a single workbook).
	SourceName string `json:"source_name"`
	// Record is the extracted data, nil when extraction failed outright.
	Record *Record `json:"record"`
	// Warnings lists non-fatal anomalies absorbed during extraction.
	Warnings []Warning `json:"warnings,omitempty"`
	// Error is the fatal failure for this entry, empty on success.
	Error string `json:"error,omitempty"`
}

// Failed reports whether this entry produced no record.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// BatchResult aggregates per-spreadsheet outcomes for one batch run.
// Entries appear in discovery order, one per spreadsheet, failures included.
type BatchResult struct {
	Entries []Entry `json:"entries"`
}

// Total returns the number of spreadsheets discovered.
func (r *BatchResult) Total() int {
	return len(r.Entries)
}

// Failed returns the number of entries that produced no record.
func (r *BatchResult) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

// Succeeded returns the number of entries with a record.
func (r *BatchResult) Succeeded() int {
	return r.Total() - r.Failed()
}

// HasFailures reports whether any entry failed.
func (r *BatchResult) HasFailures() bool {
	return r.Failed() > 0
}
