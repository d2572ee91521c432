package pipeline

import (
	"reflect"
	"testing"

	"budgetlens/internal/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{Department: "A", Year: 2014, Budget: 100},
		{Department: "A", Year: 2015, Budget: 200},
		{Department: "B", Year: 2014, Budget: 50},
		{Department: "B", Year: 2015, Budget: 150},
	}
}

func TestFilterByYears_Inclusive(t *testing.T) {
	got := FilterByYears(sampleRecords(), 2015, 2015)
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Year != 2015 {
			t.Errorf("year = %d, want 2015", r.Year)
		}
	}
}

func TestFilterByYears_ClampsToObservedRange(t *testing.T) {
	all := sampleRecords()
	got := FilterByYears(all, 1900, 3000)
	if len(got) != len(all) {
		t.Errorf("records = %d, want %d (bounds clamp)", len(got), len(all))
	}
}

func TestFilterByYears_Idempotent(t *testing.T) {
	once := FilterByYears(sampleRecords(), 2014, 2015)
	twice := FilterByYears(once, 2014, 2015)
	if !reflect.DeepEqual(once, twice) {
		t.Error("filtering the same window twice changed the result")
	}
}

func TestFilterByYears_Monotonic(t *testing.T) {
	narrow := FilterByYears(sampleRecords(), 2015, 2015)
	wide := FilterByYears(sampleRecords(), 2014, 2016)

	inWide := make(map[model.Record]bool)
	for _, r := range wide {
		inWide[r] = true
	}
	for _, r := range narrow {
		if !inWide[r] {
			t.Errorf("record %v in narrow window but not in wider one", r)
		}
	}
}

func TestFilterByYears_EmptyIntersection(t *testing.T) {
	// Inverted window after clamping -> empty result, not an error.
	if got := FilterByYears(sampleRecords(), 2016, 2013); len(got) != 0 {
		t.Errorf("records = %d, want 0", len(got))
	}
	if got := FilterByYears(nil, 2014, 2015); got != nil {
		t.Errorf("filter of empty set = %v, want nil", got)
	}
}

func TestTotalByYear(t *testing.T) {
	got := TotalByYear(sampleRecords())
	want := []model.YearTotal{
		{Year: 2014, Total: 150},
		{Year: 2015, Total: 350},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TotalByYear = %v, want %v", got, want)
	}
}

func TestComputeHeadline(t *testing.T) {
	h := ComputeHeadline(sampleRecords())

	if h.FirstYear != 2014 || h.LatestYear != 2015 {
		t.Errorf("span = %d-%d, want 2014-2015", h.FirstYear, h.LatestYear)
	}
	if h.FirstTotal != 150 || h.LatestTotal != 350 {
		t.Errorf("totals = %v/%v, want 150/350", h.FirstTotal, h.LatestTotal)
	}
	if h.AbsoluteChange != 200 {
		t.Errorf("absolute change = %v, want 200", h.AbsoluteChange)
	}
	wantPct := 200.0 / 150.0 * 100
	if h.PercentChange != wantPct {
		t.Errorf("percent change = %v, want %v", h.PercentChange, wantPct)
	}
	if h.Departments != 2 {
		t.Errorf("departments = %d, want 2", h.Departments)
	}
}

func TestComputeHeadline_ZeroStartReadsAsZeroPercent(t *testing.T) {
	records := []model.Record{
		{Department: "A", Year: 2014, Budget: 0},
		{Department: "A", Year: 2015, Budget: 100},
	}
	h := ComputeHeadline(records)
	if h.PercentChange != 0 {
		t.Errorf("percent change = %v, want 0 (headline policy)", h.PercentChange)
	}
	if h.AbsoluteChange != 100 {
		t.Errorf("absolute change = %v, want 100", h.AbsoluteChange)
	}
}

func TestComputeHeadline_Empty(t *testing.T) {
	h := ComputeHeadline(nil)
	if h != (model.Headline{}) {
		t.Errorf("headline of empty set = %+v, want zero value", h)
	}
}

func TestTopByYear_OrderAndTruncation(t *testing.T) {
	records := []model.Record{
		{Department: "Small", Year: 2015, Budget: 10},
		{Department: "Big", Year: 2015, Budget: 500},
		{Department: "Mid", Year: 2015, Budget: 100},
		{Department: "Other", Year: 2014, Budget: 9999},
	}

	got := TopByYear(records, 2015, 2)
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	if got[0].Department != "Big" || got[1].Department != "Mid" {
		t.Errorf("ranking = %v, want Big then Mid", got)
	}
}

func TestTopByYear_StableTies(t *testing.T) {
	records := []model.Record{
		{Department: "First", Year: 2015, Budget: 100},
		{Department: "Second", Year: 2015, Budget: 100},
		{Department: "Third", Year: 2015, Budget: 100},
	}

	first := TopByYear(records, 2015, 3)
	for i := 0; i < 10; i++ {
		again := TopByYear(records, 2015, 3)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("ranking of tied budgets is not reproducible")
		}
	}
	if first[0].Department != "First" || first[2].Department != "Third" {
		t.Errorf("tied ranking = %v, want input order", first)
	}
}

func TestGrowthOverFullRange(t *testing.T) {
	years := []model.YearColumn{
		{Label: "2014", Year: 2014},
		{Label: "2015", Year: 2015},
		{Label: "2016", Year: 2016},
	}

	t.Run("basic", func(t *testing.T) {
		row := &model.WideRow{
			Department: "A",
			Cells: []model.Cell{
				{Value: 100, Valid: true},
				{Value: 180, Valid: true},
				{Value: 150, Valid: true},
			},
		}
		g := GrowthOverFullRange(row, years)
		if g.Start != 100 || g.End != 150 || g.AbsoluteChange != 50 {
			t.Errorf("growth = %+v, want start 100 end 150 change 50", g)
		}
		if g.PercentChange == nil || *g.PercentChange != 50 {
			t.Errorf("percent = %v, want 50", g.PercentChange)
		}
	})

	t.Run("zero start is undefined", func(t *testing.T) {
		row := &model.WideRow{
			Department: "A",
			Cells: []model.Cell{
				{Value: 0, Valid: true},
				{Value: 100, Valid: true},
				{Value: 100, Valid: true},
			},
		}
		g := GrowthOverFullRange(row, years)
		if g.AbsoluteChange != 100 {
			t.Errorf("absolute change = %v, want 100", g.AbsoluteChange)
		}
		if g.PercentChange != nil {
			t.Errorf("percent = %v, want nil", *g.PercentChange)
		}
	})

	t.Run("missing edge cells", func(t *testing.T) {
		// First and last columns invalid: span is first-to-last valid.
		row := &model.WideRow{
			Department: "A",
			Cells: []model.Cell{
				{},
				{Value: 40, Valid: true},
				{},
			},
		}
		g := GrowthOverFullRange(row, years)
		if g.Start != 40 || g.End != 40 || g.AbsoluteChange != 0 {
			t.Errorf("growth = %+v, want 40/40/0", g)
		}
	})

	t.Run("nil row", func(t *testing.T) {
		g := GrowthOverFullRange(nil, years)
		if g != (model.Growth{}) {
			t.Errorf("growth = %+v, want zero value", g)
		}
	})
}

func TestFilterByDepartments(t *testing.T) {
	got := FilterByDepartments(sampleRecords(), []string{"B"})
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Department != "B" {
			t.Errorf("department = %q, want B", r.Department)
		}
	}

	if got := FilterByDepartments(sampleRecords(), nil); got != nil {
		t.Errorf("empty selection = %v, want nil", got)
	}
}

func TestPivotLatestYear(t *testing.T) {
	// B has no 2015 record: it must be absent, not zero-filled.
	records := []model.Record{
		{Department: "A", Year: 2015, Budget: 100},
		{Department: "B", Year: 2014, Budget: 999},
	}
	got := PivotLatestYear(records, 2015)
	if len(got) != 1 || got[0].Department != "A" {
		t.Errorf("pivot = %v, want only A", got)
	}
}

func TestPivotLatestYear_SumsDuplicates(t *testing.T) {
	// Duplicates should not occur, but the reduction must be a sum.
	records := []model.Record{
		{Department: "A", Year: 2015, Budget: 100},
		{Department: "A", Year: 2015, Budget: 50},
	}
	got := PivotLatestYear(records, 2015)
	if len(got) != 1 || got[0].Budget != 150 {
		t.Errorf("pivot = %v, want single A with 150", got)
	}
}

func TestDepartments_SortedDistinct(t *testing.T) {
	records := []model.Record{
		{Department: "Zeta", Year: 2014, Budget: 1},
		{Department: "Alpha", Year: 2014, Budget: 1},
		{Department: "Zeta", Year: 2015, Budget: 1},
	}
	got := Departments(records)
	want := []string{"Alpha", "Zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Departments = %v, want %v", got, want)
	}
}
