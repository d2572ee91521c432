package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"budgetlens/internal/model"
	"budgetlens/internal/source"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "datasets.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func testDataset() *source.Dataset {
	years := []model.YearColumn{
		{Label: "2014", Year: 2014},
		{Label: "2015", Year: 2015},
	}
	records := []model.Record{
		{Department: "Defence", Year: 2014, Budget: 100},
		{Department: "Defence", Year: 2015, Budget: 200},
		{Department: "Health", Year: 2015, Budget: 150},
	}
	return &source.Dataset{
		Wide: &model.WideTable{
			Years: years,
			Rows: []model.WideRow{
				{Department: "Defence", Cells: []model.Cell{
					{Value: 100, Valid: true},
					{Value: 200, Valid: true},
				}},
				{Department: "Health", Cells: []model.Cell{
					{},
					{Value: 150, Valid: true},
				}},
			},
		},
		Records: records,
		Years:   years,
	}
}

func TestCache_SaveAndLookup(t *testing.T) {
	cache := openTestCache(t)
	ds := testDataset()

	if err := cache.Save("/data/budget.csv", "abc123", 42, 1000, ds); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := cache.Lookup("/data/budget.csv", 42, 1000)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if !reflect.DeepEqual(got.Records, ds.Records) {
		t.Errorf("records = %v, want %v", got.Records, ds.Records)
	}
	if !reflect.DeepEqual(got.Years, ds.Years) {
		t.Errorf("years = %v, want %v", got.Years, ds.Years)
	}
	// Wide table is rebuilt from records, missing cells stay invalid.
	if !reflect.DeepEqual(got.Wide, ds.Wide) {
		t.Errorf("wide = %+v, want %+v", got.Wide, ds.Wide)
	}
}

func TestCache_StaleEntryMisses(t *testing.T) {
	cache := openTestCache(t)
	if err := cache.Save("/data/budget.csv", "abc123", 42, 1000, testDataset()); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := cache.Lookup("/data/budget.csv", 43, 1000); err != nil || ok {
		t.Errorf("changed mtime: ok = %v err = %v, want miss", ok, err)
	}
	if _, ok, err := cache.Lookup("/data/budget.csv", 42, 999); err != nil || ok {
		t.Errorf("changed size: ok = %v err = %v, want miss", ok, err)
	}
	if _, ok, err := cache.Lookup("/data/other.csv", 42, 1000); err != nil || ok {
		t.Errorf("unknown path: ok = %v err = %v, want miss", ok, err)
	}
}

func TestCache_SaveReplacesPreviousEntry(t *testing.T) {
	cache := openTestCache(t)
	ds := testDataset()

	if err := cache.Save("/data/budget.csv", "v1", 1, 100, ds); err != nil {
		t.Fatal(err)
	}

	smaller := &source.Dataset{
		Wide: &model.WideTable{
			Years: ds.Years[:1],
			Rows: []model.WideRow{
				{Department: "Rail", Cells: []model.Cell{{Value: 7, Valid: true}}},
			},
		},
		Records: []model.Record{{Department: "Rail", Year: 2014, Budget: 7}},
		Years:   ds.Years[:1],
	}
	if err := cache.Save("/data/budget.csv", "v2", 2, 50, smaller); err != nil {
		t.Fatal(err)
	}

	got, ok, err := cache.Lookup("/data/budget.csv", 2, 50)
	if err != nil || !ok {
		t.Fatalf("lookup after replace: ok = %v err = %v", ok, err)
	}
	if len(got.Records) != 1 || got.Records[0].Department != "Rail" {
		t.Errorf("records = %v, want single Rail row", got.Records)
	}

	s, err := cache.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if s.Datasets != 1 || s.Records != 1 {
		t.Errorf("stats = %+v, want 1 dataset / 1 record", s)
	}
}

func TestCache_Clear(t *testing.T) {
	cache := openTestCache(t)
	if err := cache.Save("/data/budget.csv", "abc", 1, 1, testDataset()); err != nil {
		t.Fatal(err)
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	s, err := cache.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if s.Datasets != 0 || s.Records != 0 {
		t.Errorf("stats after clear = %+v, want empty", s)
	}
}
