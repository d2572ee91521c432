// Package pipeline orchestrates dataset loading, caching, and metric
// aggregation. All query functions here are pure: given the same record
// slice they produce the same result, never an error. Empty selections
// degrade to empty results.
package pipeline

import (
	"sort"

	"budgetlens/internal/model"
)

// FilterByYears keeps records whose year lies in [from, to] inclusive.
// Bounds are clamped to the observed year range of the records, so a
// window wider than the data is a no-op and an inverted or disjoint
// window yields an empty slice.
func FilterByYears(records []model.Record, from, to int) []model.Record {
	if len(records) == 0 {
		return nil
	}

	minYear, maxYear := records[0].Year, records[0].Year
	for _, r := range records[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	if from < minYear {
		from = minYear
	}
	if to > maxYear {
		to = maxYear
	}

	var result []model.Record
	for _, r := range records {
		if r.Year >= from && r.Year <= to {
			result = append(result, r)
		}
	}
	return result
}

// TotalByYear groups records by year and sums budget across all
// departments, ascending by year.
func TotalByYear(records []model.Record) []model.YearTotal {
	byYear := make(map[int]float64)
	for _, r := range records {
		byYear[r.Year] += r.Budget
	}

	totals := make([]model.YearTotal, 0, len(byYear))
	for year, total := range byYear {
		totals = append(totals, model.YearTotal{Year: year, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Year < totals[j].Year
	})
	return totals
}

// ComputeHeadline derives the overview metrics for the filtered span:
// first- and latest-year totals, their delta, and the department count.
// A zero first-year total reads as 0% growth rather than undefined;
// the headline must always render.
func ComputeHeadline(records []model.Record) model.Headline {
	totals := TotalByYear(records)
	if len(totals) == 0 {
		return model.Headline{}
	}

	first := totals[0]
	latest := totals[len(totals)-1]

	h := model.Headline{
		FirstYear:      first.Year,
		LatestYear:     latest.Year,
		FirstTotal:     first.Total,
		LatestTotal:    latest.Total,
		AbsoluteChange: latest.Total - first.Total,
	}
	if first.Total != 0 {
		h.PercentChange = h.AbsoluteChange / first.Total * 100
	}

	depts := make(map[string]struct{})
	for _, r := range records {
		depts[r.Department] = struct{}{}
	}
	h.Departments = len(depts)

	return h
}

// TopByYear ranks departments by budget for one year, descending,
// truncated to n. The sort is stable, so equal budgets keep the input
// (department) order and repeated calls return the same ranking.
func TopByYear(records []model.Record, year, n int) []model.DepartmentBudget {
	var ranked []model.DepartmentBudget
	for _, r := range records {
		if r.Year == year {
			ranked = append(ranked, model.DepartmentBudget{
				Department: r.Department,
				Budget:     r.Budget,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Budget > ranked[j].Budget
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// GrowthOverFullRange computes lifetime change for one department row.
// It always spans the full year-column range, not any active filter:
// headline aggregates respect the user's window, per-department growth
// does not. Start and end come from the first and last year columns
// holding a valid cell.
func GrowthOverFullRange(row *model.WideRow, years []model.YearColumn) model.Growth {
	var g model.Growth
	if row == nil || len(years) == 0 || len(row.Cells) == 0 {
		return g
	}

	firstIdx, lastIdx := -1, -1
	for i := range row.Cells {
		if !row.Cells[i].Valid {
			continue
		}
		if firstIdx < 0 {
			firstIdx = i
		}
		lastIdx = i
	}
	if firstIdx < 0 {
		return g
	}

	g.Start = row.Cells[firstIdx].Value
	g.End = row.Cells[lastIdx].Value
	g.AbsoluteChange = g.End - g.Start
	if g.Start != 0 {
		pct := g.AbsoluteChange / g.Start * 100
		g.PercentChange = &pct
	}
	return g
}

// FilterByDepartments keeps records whose department is in names,
// preserving all (department, year, budget) triples.
func FilterByDepartments(records []model.Record, names []string) []model.Record {
	if len(names) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}

	var result []model.Record
	for _, r := range records {
		if _, ok := want[r.Department]; ok {
			result = append(result, r)
		}
	}
	return result
}

// PivotLatestYear reduces records for one year to a single row per
// department, descending by budget. The reduction is a sum, not a
// last-value pick: duplicate (department, year) records should not
// occur, but a sum stays correct if they ever do. Departments with no
// record for the year are absent, not zero-filled.
func PivotLatestYear(records []model.Record, year int) []model.DepartmentBudget {
	sums := make(map[string]float64)
	var order []string
	for _, r := range records {
		if r.Year != year {
			continue
		}
		if _, ok := sums[r.Department]; !ok {
			order = append(order, r.Department)
		}
		sums[r.Department] += r.Budget
	}

	pivot := make([]model.DepartmentBudget, 0, len(order))
	for _, dept := range order {
		pivot = append(pivot, model.DepartmentBudget{Department: dept, Budget: sums[dept]})
	}
	sort.SliceStable(pivot, func(i, j int) bool {
		return pivot[i].Budget > pivot[j].Budget
	})
	return pivot
}

// Departments returns the sorted distinct department names in records.
func Departments(records []model.Record) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range records {
		if _, ok := seen[r.Department]; ok {
			continue
		}
		seen[r.Department] = struct{}{}
		names = append(names, r.Department)
	}
	sort.Strings(names)
	return names
}
