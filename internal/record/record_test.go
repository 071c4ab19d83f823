package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2024, 3, 15, 18, 45, 12, 999, loc)

	got := Normalize(in)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, Normalize(got))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso date", input: "2024-03-15", want: date("2024-03-15")},
		{name: "date with time", input: "2024-03-15 08:30:00", want: date("2024-03-15")},
		{name: "rfc3339", input: "2024-03-15T08:30:00Z", want: date("2024-03-15")},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong order", input: "15-03-2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdd(t *testing.T) {
	records := []Record{{Date: date("2024-01-01"), Flights: 50}}

	updated, err := Add(records, date("2024-01-02"), 30)
	require.NoError(t, err)
	assert.Len(t, updated, 2)
	assert.Len(t, records, 1, "input collection must not be mutated")
}

func TestAdd_DuplicateDate(t *testing.T) {
	records := []Record{{Date: date("2024-01-01"), Flights: 50}}

	updated, err := Add(records, date("2024-01-01"), 99)

	assert.ErrorIs(t, err, ErrDuplicateDate)
	assert.Equal(t, records, updated, "rejected add must leave the collection unchanged")
}

func TestAdd_DuplicateDateIgnoresTimeOfDay(t *testing.T) {
	records := []Record{{Date: date("2024-01-01"), Flights: 50}}

	_, err := Add(records, time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), 10)

	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestAdd_NegativeFlights(t *testing.T) {
	_, err := Add(nil, date("2024-01-01"), -1)
	assert.ErrorIs(t, err, ErrNegativeFlights)
}

func TestAdd_ZeroFlights(t *testing.T) {
	// A rest day is a valid entry.
	updated, err := Add(nil, date("2024-01-01"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated[0].Flights)
}

func TestEditFlights(t *testing.T) {
	records := []Record{
		{Date: date("2024-01-01"), Flights: 50},
		{Date: date("2024-01-02"), Flights: 30},
	}

	updated := EditFlights(records, date("2024-01-02"), 45)

	assert.Equal(t, 45, updated[1].Flights)
	assert.Equal(t, 50, updated[0].Flights)
	assert.Equal(t, 30, records[1].Flights, "input collection must not be mutated")
}

func TestEditFlights_AbsentDateIsNoop(t *testing.T) {
	records := []Record{{Date: date("2024-01-01"), Flights: 50}}

	updated := EditFlights(records, date("2024-06-01"), 10)

	assert.Equal(t, records, updated)
}

func TestDeleteByDate(t *testing.T) {
	records := []Record{
		{Date: date("2024-01-01"), Flights: 50},
		{Date: date("2024-01-02"), Flights: 30},
	}

	updated := DeleteByDate(records, date("2024-01-01"))

	require.Len(t, updated, 1)
	assert.Equal(t, date("2024-01-02"), updated[0].Date)
}

func TestDeleteByDate_AbsentDateIsNoop(t *testing.T) {
	records := []Record{{Date: date("2024-01-01"), Flights: 50}}

	updated := DeleteByDate(records, date("2024-06-01"))

	assert.Equal(t, records, updated)
}

func TestTotalFlights(t *testing.T) {
	records := []Record{
		{Date: date("2024-01-01"), Flights: 50},
		{Date: date("2024-01-02"), Flights: 30},
		{Date: date("2024-01-03"), Flights: 0},
	}

	assert.Equal(t, 80, TotalFlights(records))
	assert.Equal(t, 0, TotalFlights(nil))
}

func TestSortByDate(t *testing.T) {
	records := []Record{
		{Date: date("2024-03-01"), Flights: 1},
		{Date: date("2024-01-01"), Flights: 2},
		{Date: date("2024-02-01"), Flights: 3},
	}

	sorted := SortByDate(records)

	assert.Equal(t, date("2024-01-01"), sorted[0].Date)
	assert.Equal(t, date("2024-02-01"), sorted[1].Date)
	assert.Equal(t, date("2024-03-01"), sorted[2].Date)
	assert.Equal(t, date("2024-03-01"), records[0].Date, "input collection must not be mutated")
}
