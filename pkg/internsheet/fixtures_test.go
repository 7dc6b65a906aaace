package internsheet

import (
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

const (
	testAdvisingSheet = "Current Semester Advising"
	testHoursSheet    = "Internship Tracking"
)

// hoursRow is one data row of the internship table fixture. A nil done
// value leaves the completed-hours cell empty.
type hoursRow struct {
	code string
	done any
}

// studentBook builds an xlsx fixture in memory. An empty studentID leaves
// C5 blank; withAdvising=false omits the advising sheet entirely; a nil
// rows slice omits the hours table (the sheet itself is still created when
// rows is non-nil).
func studentBook(t *testing.T, withAdvising bool, studentID string, rows []hoursRow) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if withAdvising {
		if err := f.SetSheetName("Sheet1", testAdvisingSheet); err != nil {
			t.Fatalf("SetSheetName failed: %v", err)
		}
		if studentID != "" {
			f.SetCellValue(testAdvisingSheet, "C5", studentID)
		}
	}

	if rows != nil {
		if _, err := f.NewSheet(testHoursSheet); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
		f.SetCellValue(testHoursSheet, "A3", "Internship Code")
		f.SetCellValue(testHoursSheet, "B3", "Total Hours")
		f.SetCellValue(testHoursSheet, "C3", "Completed")
		f.SetCellValue(testHoursSheet, "D3", "Remaining")
		for i, r := range rows {
			f.SetCellValue(testHoursSheet, fmt.Sprintf("A%d", 4+i), r.code)
			f.SetCellValue(testHoursSheet, fmt.Sprintf("B%d", 4+i), 50)
			if r.done != nil {
				f.SetCellValue(testHoursSheet, fmt.Sprintf("C%d", 4+i), r.done)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

// testTemplate returns the default template restricted to the given codes.
func testTemplate(codes ...string) Template {
	tpl := DefaultTemplate()
	tpl.Codes = codes
	return tpl
}
