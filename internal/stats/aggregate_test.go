package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/stairtrek/internal/record"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestComputeAverages_Empty(t *testing.T) {
	got := ComputeAverages(nil, Grouping{QualifyByYear: true})
	assert.Equal(t, Averages{}, got)
}

func TestComputeAverages_Daily(t *testing.T) {
	records := []record.Record{
		{Date: date("2024-01-01"), Flights: 100},
		{Date: date("2024-01-02"), Flights: 50},
	}

	got := ComputeAverages(records, Grouping{QualifyByYear: true})

	assert.InDelta(t, 75.0, got.Daily, 1e-9)
}

func TestComputeAverages_DailyTimesDatesEqualsTotal(t *testing.T) {
	records := []record.Record{
		{Date: date("2024-01-01"), Flights: 13},
		{Date: date("2024-01-02"), Flights: 7},
		{Date: date("2024-01-05"), Flights: 21},
		{Date: date("2024-02-11"), Flights: 2},
	}

	got := ComputeAverages(records, Grouping{QualifyByYear: true})

	distinctDates := 4.0
	assert.InDelta(t, 43.0, got.Daily*distinctDates, 1e-9)
	assert.GreaterOrEqual(t, got.Daily, 0.0)
	assert.GreaterOrEqual(t, got.Weekly, 0.0)
	assert.GreaterOrEqual(t, got.Monthly, 0.0)
}

func TestComputeAverages_WeeklySumsThenMeans(t *testing.T) {
	// 2024-01-01 (Mon) and 2024-01-03 share ISO week 1; 2024-01-08 is week 2.
	records := []record.Record{
		{Date: date("2024-01-01"), Flights: 10},
		{Date: date("2024-01-03"), Flights: 20},
		{Date: date("2024-01-08"), Flights: 30},
	}

	got := ComputeAverages(records, Grouping{QualifyByYear: true})

	// Week sums are 30 and 30, so the weekly mean is 30 while the daily
	// mean is 20. Weekly is a sum-then-mean, not a daily rate times seven.
	assert.InDelta(t, 30.0, got.Weekly, 1e-9)
	assert.InDelta(t, 20.0, got.Daily, 1e-9)
}

func TestComputeAverages_QualifyByYear(t *testing.T) {
	// Same calendar month, two years apart.
	records := []record.Record{
		{Date: date("2023-02-10"), Flights: 40},
		{Date: date("2024-02-10"), Flights: 60},
	}

	qualified := ComputeAverages(records, Grouping{QualifyByYear: true})
	legacy := ComputeAverages(records, Grouping{QualifyByYear: false})

	// Qualified: two monthly buckets of 40 and 60.
	assert.InDelta(t, 50.0, qualified.Monthly, 1e-9)
	// Legacy: both Februaries merge into one bucket of 100.
	assert.InDelta(t, 100.0, legacy.Monthly, 1e-9)
}

func TestComputeAverages_ISOWeekSpansYearBoundary(t *testing.T) {
	// 2024-12-31 belongs to ISO week 1 of 2025, the same week as 2025-01-01.
	records := []record.Record{
		{Date: date("2024-12-31"), Flights: 10},
		{Date: date("2025-01-01"), Flights: 20},
	}

	got := ComputeAverages(records, Grouping{QualifyByYear: true})

	assert.InDelta(t, 30.0, got.Weekly, 1e-9, "one ISO week even with year qualification")
}

func TestDailyTotals_SortedByDate(t *testing.T) {
	records := []record.Record{
		{Date: date("2024-01-03"), Flights: 3},
		{Date: date("2024-01-01"), Flights: 1},
		{Date: date("2024-01-02"), Flights: 2},
	}

	points := DailyTotals(records)

	require.Len(t, points, 3)
	assert.Equal(t, Point{Label: "2024-01-01", Value: 1}, points[0])
	assert.Equal(t, Point{Label: "2024-01-02", Value: 2}, points[1])
	assert.Equal(t, Point{Label: "2024-01-03", Value: 3}, points[2])
}

func TestWeeklyTotals_Labels(t *testing.T) {
	records := []record.Record{
		{Date: date("2024-01-01"), Flights: 10},
		{Date: date("2024-01-08"), Flights: 30},
	}

	qualified := WeeklyTotals(records, Grouping{QualifyByYear: true})
	require.Len(t, qualified, 2)
	assert.Equal(t, "2024-W01", qualified[0].Label)
	assert.Equal(t, "2024-W02", qualified[1].Label)

	legacy := WeeklyTotals(records, Grouping{QualifyByYear: false})
	require.Len(t, legacy, 2)
	assert.Equal(t, "W01", legacy[0].Label)
}

func TestMonthlyTotals(t *testing.T) {
	records := []record.Record{
		{Date: date("2023-02-10"), Flights: 40},
		{Date: date("2024-02-10"), Flights: 60},
		{Date: date("2024-03-01"), Flights: 5},
	}

	qualified := MonthlyTotals(records, Grouping{QualifyByYear: true})
	require.Len(t, qualified, 3)
	assert.Equal(t, Point{Label: "2023-02", Value: 40}, qualified[0])
	assert.Equal(t, Point{Label: "2024-02", Value: 60}, qualified[1])
	assert.Equal(t, Point{Label: "2024-03", Value: 5}, qualified[2])

	legacy := MonthlyTotals(records, Grouping{QualifyByYear: false})
	require.Len(t, legacy, 2)
	assert.Equal(t, Point{Label: "Feb", Value: 100}, legacy[0])
	assert.Equal(t, Point{Label: "Mar", Value: 5}, legacy[1])
}

func TestValues(t *testing.T) {
	points := []Point{{Label: "a", Value: 1.5}, {Label: "b", Value: 0}}
	assert.Equal(t, []float64{1.5, 0}, Values(points))
	assert.Empty(t, Values(nil))
}
