package models

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal extraction anomaly.
type WarningKind string

const (
	// WarnMissingSheet indicates an expected sheet was absent from the workbook.
	WarnMissingSheet WarningKind = "missing_sheet"
	// WarnMissingCell indicates an expected cell or header row was not found.
	WarnMissingCell WarningKind = "missing_cell"
	// WarnMalformedValue indicates a cell expected to be numeric was not parseable.
	WarnMalformedValue WarningKind = "malformed_value"
)

// Warning describes a non-fatal anomaly recorded alongside a partial Record.
type Warning struct {
	// Kind is the anomaly category.
	Kind WarningKind `json:"kind"`
	// Sheet is the sheet name the anomaly refers to, if any.
	Sheet string `json:"sheet,omitempty"`
	// Cell is the cell reference the anomaly refers to, if any.
	Cell string `json:"cell,omitempty"`
	// Detail is a human-readable description.
	Detail string `json:"detail,omitempty"`
}

func (w Warning) String() string {
	parts := []string{string(w.Kind)}
	if w.Sheet != "" {
		parts = append(parts, fmt.Sprintf("sheet %q", w.Sheet))
	}
	if w.Cell != "" {
		parts = append(parts, fmt.Sprintf("cell %s", w.Cell))
	}
	if w.Detail != "" {
		parts = append(parts, w.Detail)
	}
	return strings.Join(parts, ": ")
}
