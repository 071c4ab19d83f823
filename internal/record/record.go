package record

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrDuplicateDate indicates a record already exists for the given date.
	// The add is rejected and the collection is left untouched; the user must
	// edit or delete the existing entry instead.
	ErrDuplicateDate = errors.New("record already exists for date")

	// ErrNegativeFlights indicates a negative flight count was supplied.
	ErrNegativeFlights = errors.New("flights must be non-negative")
)

// Record is one calendar day's logged flight count.
type Record struct {
	Date    time.Time
	Flights int
}

// dateLayout is the on-disk and display format for record dates.
const dateLayout = "2006-01-02"

// parseLayouts are accepted on input. Hand-edited files occasionally carry a
// time component; it is stripped by Normalize either way.
var parseLayouts = []string{dateLayout, "2006-01-02 15:04:05", time.RFC3339}

// Normalize strips the time-of-day component from t and pins it to UTC.
// All record dates pass through here so date equality is plain time equality.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date string and normalizes it.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// FormatDate renders a record date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Add appends a new record for date. Adding a date that already has a record
// returns ErrDuplicateDate without mutating the collection; this is the only
// write path guarded by a business rule.
func Add(records []Record, date time.Time, flights int) ([]Record, error) {
	if flights < 0 {
		return records, ErrNegativeFlights
	}
	date = Normalize(date)
	for _, r := range records {
		if r.Date.Equal(date) {
			return records, ErrDuplicateDate
		}
	}
	out := make([]Record, len(records), len(records)+1)
	copy(out, records)
	return append(out, Record{Date: date, Flights: flights}), nil
}

// EditFlights overwrites the flight count of the record matching date.
// An absent date is a no-op: edits always target a date picked from the
// existing records.
func EditFlights(records []Record, date time.Time, flights int) []Record {
	date = Normalize(date)
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Date.Equal(date) {
			out[i].Flights = flights
		}
	}
	return out
}

// DeleteByDate removes the record matching date. An absent date is a no-op.
func DeleteByDate(records []Record, date time.Time) []Record {
	date = Normalize(date)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out
}

// TotalFlights sums the flight counts over all records.
func TotalFlights(records []Record) int {
	total := 0
	for _, r := range records {
		total += r.Flights
	}
	return total
}

// SortByDate returns a copy of records sorted ascending by date.
func SortByDate(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
