package record

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// header is the column header row of the persisted table.
var header = []string{"Date", "Flights"}

// Store persists the flight record table to a flat CSV file. Every mutating
// helper runs a full load-modify-save cycle under a single mutex; the table
// has exactly one writer by design.
type Store struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

// NewStore creates a store backed by the CSV file at path.
// A nil logger disables logging.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns every persisted record with dates normalized. A missing file
// is the expected first-run state and yields an empty collection, not an
// error. A malformed file yields a diagnostic error and no records; the
// store never rewrites a file it could not parse.
func (s *Store) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save fully replaces the persisted table with records. Dates are normalized
// and rows sorted by date, so saving the same collection twice produces
// byte-identical files.
func (s *Store) Save(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

// Add logs flights for a new date and persists the updated table. A date
// that already has a record returns ErrDuplicateDate and leaves the
// persisted table unchanged.
func (s *Store) Add(date time.Time, flights int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	updated, err := Add(records, date, flights)
	if err != nil {
		return records, err
	}
	if err := s.save(updated); err != nil {
		return nil, err
	}
	s.logger.Info("added record",
		zap.String("date", FormatDate(date)),
		zap.Int("flights", flights))
	return updated, nil
}

// EditFlights overwrites the flight count for date and persists the table.
func (s *Store) EditFlights(date time.Time, flights int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	updated := EditFlights(records, date, flights)
	if err := s.save(updated); err != nil {
		return nil, err
	}
	s.logger.Info("edited record",
		zap.String("date", FormatDate(date)),
		zap.Int("flights", flights))
	return updated, nil
}

// DeleteByDate removes the record for date and persists the table.
func (s *Store) DeleteByDate(date time.Time) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	updated := DeleteByDate(records, date)
	if err := s.save(updated); err != nil {
		return nil, err
	}
	s.logger.Info("deleted record", zap.String("date", FormatDate(date)))
	return updated, nil
}

// Reset discards all history and persists the empty table. Irreversible.
func (s *Store) Reset() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []Record{}
	if err := s.save(empty); err != nil {
		return nil, err
	}
	s.logger.Warn("reset all records", zap.String("path", s.path))
	return empty, nil
}

func (s *Store) load() ([]Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}
	if len(rows[0]) != 2 || rows[0][0] != header[0] || rows[0][1] != header[1] {
		return nil, fmt.Errorf("malformed data file %s: want header %v, got %v", s.path, header, rows[0])
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		date, err := ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("malformed data file %s row %d: %w", s.path, i+2, err)
		}
		flights, err := strconv.Atoi(row[1])
		if err != nil || flights < 0 {
			return nil, fmt.Errorf("malformed data file %s row %d: invalid flight count %q", s.path, i+2, row[1])
		}
		records = append(records, Record{Date: date, Flights: flights})
	}
	return records, nil
}

func (s *Store) save(records []Record) error {
	sorted := SortByDate(records)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(header)
	for _, r := range sorted {
		_ = w.Write([]string{FormatDate(Normalize(r.Date)), strconv.Itoa(r.Flights)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.logger.Debug("saved records",
		zap.Int("count", len(sorted)),
		zap.String("path", s.path))
	return nil
}
