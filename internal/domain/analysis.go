package domain

import "time"

// Summary aggregates a set of readings.
type Summary struct {
	Count        int
	TotalKWh     float64
	TotalCostUSD float64
	AverageKWh   float64
	MaxKWh       float64
	MinKWh       float64
}

// Efficiency labels a week relative to the average week.
type Efficiency string

const (
	EfficiencyEfficient  Efficiency = "eficiente"
	EfficiencyImprovable Efficiency = "mejorable"
)

// WeekStats is one 7-day bucket of the weekly analysis.
type WeekStats struct {
	// Number counts from 1 for the oldest week.
	Number       int
	Start        time.Time
	End          time.Time
	TotalKWh     float64
	TotalCostUSD float64
	Days         int
	AverageKWh   float64
	// PercentOfAverage is AverageKWh relative to the mean weekly average.
	PercentOfAverage float64
	Efficiency       Efficiency
}

// WeeklyReport is the weekly breakdown, oldest week first.
type WeeklyReport struct {
	Weeks []WeekStats
	// AverageKWh is the mean of the weekly daily averages.
	AverageKWh       float64
	ConsumptionTrend float64
	CostTrend        float64
}
