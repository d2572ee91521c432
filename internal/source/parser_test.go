package source

import (
	"errors"
	"strings"
	"testing"
)

func parseCSV(t *testing.T, csv string) *Dataset {
	t.Helper()
	ds, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ds
}

func TestParse_FullTable(t *testing.T) {
	// 2 departments x 3 years, no missing cells -> exactly 6 records.
	ds := parseCSV(t,
		"Department,2014,2015,2016\n"+
			"Defence,100,200,300\n"+
			"Health,50,150,250\n")

	if got := len(ds.Records); got != 6 {
		t.Errorf("records = %d, want 6", got)
	}
	if got := len(ds.Years); got != 3 {
		t.Errorf("year columns = %d, want 3", got)
	}
	if ds.MinYear() != 2014 || ds.MaxYear() != 2016 {
		t.Errorf("year range = %d-%d, want 2014-2016", ds.MinYear(), ds.MaxYear())
	}
	if got := len(ds.Wide.Rows); got != 2 {
		t.Errorf("wide rows = %d, want 2", got)
	}
}

func TestParse_FirstColumnAlwaysDepartment(t *testing.T) {
	// Header text of the first column is irrelevant.
	ds := parseCSV(t, "Ministry/Dept.,2014\nDefence,100\n")

	if ds.Records[0].Department != "Defence" {
		t.Errorf("department = %q, want Defence", ds.Records[0].Department)
	}
}

func TestParse_MissingCellDropsExactlyOneRecord(t *testing.T) {
	ds := parseCSV(t,
		"Department,2014,2015,2016\n"+
			"Defence,100,n/a,300\n"+
			"Health,50,150,250\n")

	if got := len(ds.Records); got != 5 {
		t.Fatalf("records = %d, want 5 (one cell dropped)", got)
	}
	// Defence keeps its other years.
	var defenceYears []int
	for _, r := range ds.Records {
		if r.Department == "Defence" {
			defenceYears = append(defenceYears, r.Year)
		}
	}
	if len(defenceYears) != 2 || defenceYears[0] != 2014 || defenceYears[1] != 2016 {
		t.Errorf("Defence years = %v, want [2014 2016]", defenceYears)
	}
	// The wide cell is invalid, not zero-filled.
	row := ds.Wide.Row("Defence")
	if row.Cells[1].Valid {
		t.Error("dropped cell should be invalid in the wide table")
	}
}

func TestParse_NoDuplicatePairs(t *testing.T) {
	// A repeated department row must not create duplicate (dept, year) pairs.
	ds := parseCSV(t,
		"Department,2014,2015\n"+
			"Defence,100,200\n"+
			"Defence,999,999\n")

	seen := make(map[[2]interface{}]bool)
	for _, r := range ds.Records {
		key := [2]interface{}{r.Department, r.Year}
		if seen[key] {
			t.Fatalf("duplicate record for %s/%d", r.Department, r.Year)
		}
		seen[key] = true
	}
	// First occurrence wins.
	if ds.Records[0].Budget != 100 {
		t.Errorf("Budget = %v, want 100 (first row wins)", ds.Records[0].Budget)
	}
}

func TestParse_NonYearHeaderSkipped(t *testing.T) {
	ds := parseCSV(t,
		"Department,2014,Notes,2015\n"+
			"Defence,100,irrelevant,200\n")

	if got := len(ds.Years); got != 2 {
		t.Fatalf("year columns = %d, want 2", got)
	}
	if got := len(ds.Records); got != 2 {
		t.Errorf("records = %d, want 2", got)
	}
}

func TestParse_ShortRowReadsAsMissing(t *testing.T) {
	ds := parseCSV(t,
		"Department,2014,2015\n"+
			"Defence,100\n")

	if got := len(ds.Records); got != 1 {
		t.Errorf("records = %d, want 1", got)
	}
}

func TestParse_MalformedInputs(t *testing.T) {
	tests := []struct {
		name   string
		csv    string
		reason string
	}{
		{"empty document", "", ReasonEmptyDocument},
		{"single column", "Department\nDefence\n", ReasonNoDepartmentCol},
		{"no year headers", "Department,Notes,More\nDefence,a,b\n", ReasonNoYearColumns},
		{"no usable cells", "Department,2014\nDefence,n/a\n", ReasonNoUsableRecords},
		{"header only", "Department,2014\n", ReasonNoUsableRecords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.csv))
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("err = %v, want MalformedInputError", err)
			}
			if malformed.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", malformed.Reason, tt.reason)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"100", 100, true},
		{"100.5", 100.5, true},
		{" 42 ", 42, true},
		{"1,23,456", 123456, true},
		{"-12", -12, true},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseNumber(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
