package stats

import (
	"time"

	"github.com/fyrsmithlabs/stairtrek/internal/record"
)

// Projection is a linear extrapolation of when the target flight count will
// be reached at the historical daily-average rate.
type Projection struct {
	// TotalFlights is the cumulative count over all records.
	TotalFlights int

	// DailyAverage is the mean of per-date summed flights, the same
	// definition ComputeAverages uses.
	DailyAverage float64

	// Remaining is targetFlights minus TotalFlights. Negative once the
	// target is exceeded.
	Remaining float64

	// DaysRemaining is Remaining divided by DailyAverage. Negative means
	// the target was already surpassed that many days' worth of climbing ago.
	DaysRemaining float64

	// CompletionDate is the calendar date the extrapolation lands on:
	// now plus DaysRemaining days, truncated to the start of that day.
	CompletionDate time.Time
}

// WholeDays truncates DaysRemaining toward zero, matching how the
// remaining-day count is displayed.
func (p Projection) WholeDays() int {
	return int(p.DaysRemaining)
}

// Predict extrapolates a completion date from cumulative progress and the
// daily average rate. ok is false when no projection is possible: an empty
// history, or a daily average of zero, would divide by zero and produce a
// nonsensical ETA.
//
// An already-exceeded target is not special-cased: Remaining and
// DaysRemaining go negative and CompletionDate lands in the past. Callers
// get the honest number, not a clamp.
func Predict(records []record.Record, targetFlights float64, now time.Time) (Projection, bool) {
	if len(records) == 0 {
		return Projection{}, false
	}

	dailyAvg := ComputeAverages(records, Grouping{}).Daily
	if dailyAvg <= 0 {
		return Projection{}, false
	}

	total := record.TotalFlights(records)
	remaining := targetFlights - float64(total)
	days := remaining / dailyAvg

	completion := record.Normalize(now).Add(time.Duration(days * float64(24*time.Hour)))
	return Projection{
		TotalFlights:   total,
		DailyAverage:   dailyAvg,
		Remaining:      remaining,
		DaysRemaining:  days,
		CompletionDate: record.Normalize(completion),
	}, true
}
