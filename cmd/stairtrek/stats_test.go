package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/stairtrek/internal/config"
	"github.com/fyrsmithlabs/stairtrek/internal/record"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := record.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestPrintSummary(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	cfg := config.NewDefaultConfig()
	records := []record.Record{
		{Date: date(t, "2024-03-14"), Flights: 30},
		{Date: date(t, "2024-03-15"), Flights: 50},
	}

	var buf bytes.Buffer
	printSummary(&buf, cfg, records)
	out := buf.String()

	assert.Contains(t, out, "Gunung Kinabalu (13435 ft)")
	assert.Contains(t, out, "Days logged:     2")
	assert.Contains(t, out, "Total flights:   80")
	assert.Contains(t, out, "Height climbed:  640.00 ft")
	assert.Contains(t, out, "Daily average:   40.00 flights")
	assert.Contains(t, out, "Days to summit:")
	assert.Contains(t, out, "Summit date:")
}

func TestPrintSummary_NoData(t *testing.T) {
	cfg := config.NewDefaultConfig()

	var buf bytes.Buffer
	printSummary(&buf, cfg, nil)
	out := buf.String()

	assert.Contains(t, out, "Total flights:   0")
	assert.Contains(t, out, "Projection:      not enough data")
}
