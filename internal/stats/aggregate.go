package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/fyrsmithlabs/stairtrek/internal/record"
)

// Averages holds the mean flights per bucket across the whole history.
// Each value is a sum-then-mean: flights are summed per bucket, then
// averaged across the buckets that exist. A day with no entry is absent
// from the grouping, not imputed as zero.
type Averages struct {
	Daily   float64
	Weekly  float64
	Monthly float64
}

// Grouping controls how weekly and monthly buckets are keyed.
//
// The legacy behavior grouped by ISO week-of-year and month-of-year numbers
// alone, so histories spanning multiple years merged buckets (February 2023
// and February 2024 became one "month 2"). With QualifyByYear buckets are
// keyed by (ISO week-year, week) and (year, month) instead. The default
// configuration enables it; the legacy merge stays available for continuity
// with numbers from old installs.
type Grouping struct {
	QualifyByYear bool
}

type bucketKey struct {
	year int // zero when unqualified
	num  int
}

func weekKey(d time.Time, g Grouping) bucketKey {
	y, w := d.ISOWeek()
	if !g.QualifyByYear {
		y = 0
	}
	return bucketKey{year: y, num: w}
}

func monthKey(d time.Time, g Grouping) bucketKey {
	y := d.Year()
	if !g.QualifyByYear {
		y = 0
	}
	return bucketKey{year: y, num: int(d.Month())}
}

// ComputeAverages computes daily, weekly, and monthly mean throughput over
// records. Empty input yields all zeros. The means are plain arithmetic,
// with no weighting or outlier handling.
func ComputeAverages(records []record.Record, g Grouping) Averages {
	if len(records) == 0 {
		return Averages{}
	}

	daily := make(map[time.Time]struct{})
	weekly := make(map[bucketKey]struct{})
	monthly := make(map[bucketKey]struct{})
	total := 0
	for _, r := range records {
		d := record.Normalize(r.Date)
		daily[d] = struct{}{}
		weekly[weekKey(d, g)] = struct{}{}
		monthly[monthKey(d, g)] = struct{}{}
		total += r.Flights
	}

	// The sum of per-bucket sums is the grand total, so each mean is the
	// total divided by the bucket count.
	return Averages{
		Daily:   float64(total) / float64(len(daily)),
		Weekly:  float64(total) / float64(len(weekly)),
		Monthly: float64(total) / float64(len(monthly)),
	}
}

// Point is one chart bucket: a short label and the summed flights.
type Point struct {
	Label string
	Value float64
}

// DailyTotals returns per-date flight sums in date order.
func DailyTotals(records []record.Record) []Point {
	sums := make(map[time.Time]int)
	for _, r := range records {
		sums[record.Normalize(r.Date)] += r.Flights
	}

	dates := make([]time.Time, 0, len(sums))
	for d := range sums {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	points := make([]Point, 0, len(dates))
	for _, d := range dates {
		points = append(points, Point{Label: record.FormatDate(d), Value: float64(sums[d])})
	}
	return points
}

// WeeklyTotals returns per-week flight sums in bucket order, labeled like
// "2024-W07" (or "W07" when the grouping is unqualified).
func WeeklyTotals(records []record.Record, g Grouping) []Point {
	return bucketTotals(records, g, weekKey, func(k bucketKey) string {
		if k.year == 0 {
			return fmt.Sprintf("W%02d", k.num)
		}
		return fmt.Sprintf("%d-W%02d", k.year, k.num)
	})
}

// MonthlyTotals returns per-month flight sums in bucket order, labeled like
// "2024-02" (or "Feb" when the grouping is unqualified).
func MonthlyTotals(records []record.Record, g Grouping) []Point {
	return bucketTotals(records, g, monthKey, func(k bucketKey) string {
		if k.year == 0 {
			return time.Month(k.num).String()[:3]
		}
		return fmt.Sprintf("%d-%02d", k.year, k.num)
	})
}

func bucketTotals(records []record.Record, g Grouping, key func(time.Time, Grouping) bucketKey, label func(bucketKey) string) []Point {
	sums := make(map[bucketKey]int)
	for _, r := range records {
		sums[key(record.Normalize(r.Date), g)] += r.Flights
	}

	keys := make([]bucketKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].num < keys[j].num
	})

	points := make([]Point, 0, len(keys))
	for _, k := range keys {
		points = append(points, Point{Label: label(k), Value: float64(sums[k])})
	}
	return points
}

// Values extracts just the numeric series from points, in order.
// Sparklines take raw values; the labels are for tabular output.
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
