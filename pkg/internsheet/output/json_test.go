package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mhakala/internsheet/pkg/internsheet/models"
)

func TestToJSON(t *testing.T) {
	id := "S1"
	res := &models.BatchResult{Entries: []models.Entry{
		{SourceName: "a.xlsx", Record: &models.Record{StudentID: &id, Hours: map[string]*float64{"INT101": nil}}},
		{SourceName: "b.xlsx", Error: "invalid workbook format"},
	}}

	data, err := ToJSON(res, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded models.BatchResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded.Entries))
	}
	if decoded.Entries[0].SourceName != "a.xlsx" {
		t.Errorf("source_name = %q, want a.xlsx", decoded.Entries[0].SourceName)
	}
	// An unresolved code still appears, as an explicit null.
	if _, ok := decoded.Entries[0].Record.Hours["INT101"]; !ok {
		t.Error("unresolved code missing from JSON mapping")
	}

	pretty, err := ToJSON(res, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("pretty output is not indented")
	}
}
