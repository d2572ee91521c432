package model

// YearTotal is the summed budget across all departments for one year.
type YearTotal struct {
	Year  int
	Total float64
}

// DepartmentBudget is one entry of a ranking or pivot table.
type DepartmentBudget struct {
	Department string
	Budget     float64
}

// Growth holds first-vs-last-year change for one department, always
// computed over the full year range of the input (never the filtered
// window). PercentChange is nil when Start is zero: the change is
// undefined, not infinite.
type Growth struct {
	Start          float64
	End            float64
	AbsoluteChange float64
	PercentChange  *float64
}

// Headline holds the filtered-span summary shown at the top of the
// overview. Unlike Growth, PercentChange here is a plain float: a zero
// first-year total reads as 0% because the metric must always render.
type Headline struct {
	FirstYear      int
	LatestYear     int
	FirstTotal     float64
	LatestTotal    float64
	AbsoluteChange float64
	PercentChange  float64
	Departments    int
}
