package trips

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/us-bikeshare/explorer/internal/db"
)

// Source file column headers
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// startTimeLayout is how derived rows store their parsed start time
const startTimeLayout = "2006-01-02 15:04:05"

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrBadTimestamp  = errors.New("unparseable start time")
	ErrNoHeader      = errors.New("trip data has no header line")
)

// Columns reports which optional source columns a file carries.
// Washington files have neither Gender nor Birth Year.
type Columns struct {
	EndTime   bool
	Gender    bool
	BirthYear bool
}

func requiredColumns() []string {
	return []string{ColStartTime, ColStartStation, ColEndStation, ColTripDuration, ColUserType}
}

// Cells that count as missing values
func missingValues() []string {
	return []string{"", "NA", "NaN", "nan", "<nil>"}
}

// Text columns are never type-detected so that a station called "42" stays text
func columnTypes() map[string]series.Type {
	return map[string]series.Type{
		ColStartTime:    series.String,
		ColEndTime:      series.String,
		ColStartStation: series.String,
		ColEndStation:   series.String,
		ColUserType:     series.String,
		ColGender:       series.String,
		ColBirthYear:    series.Float,
	}
}

// ReadFile reads a whole trip CSV file into rows with derived calendar columns
func ReadFile(path string) ([]db.Trip, Columns, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Columns{}, fmt.Errorf("failed to open trip data: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses trip CSV data. RowID is the 0-based data row number.
// A header without data rows yields no trips and no error.
func Read(r io.Reader) ([]db.Trip, Columns, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Columns{}, fmt.Errorf("failed to read trip data: %w", err)
	}

	header, hasRows, err := peekHeader(data)
	if err != nil {
		return nil, Columns{}, err
	}
	if !hasRows {
		cols, err := columnsOf(makeIndex(header))
		return nil, cols, err
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingValues()),
		dataframe.WithTypes(columnTypes()),
	)
	if df.Err != nil {
		return nil, Columns{}, fmt.Errorf("failed to parse trip data: %w", df.Err)
	}

	names := df.Names()
	idx := makeIndex(names)
	cols, err := columnsOf(idx)
	if err != nil {
		return nil, Columns{}, err
	}

	col := func(field string) series.Series {
		return df.Col(names[idx[field]])
	}

	starts := col(ColStartTime)
	durations := col(ColTripDuration)
	startStations := col(ColStartStation)
	endStations := col(ColEndStation)
	userTypes := col(ColUserType)

	var ends, genders, birthYears series.Series
	if cols.EndTime {
		ends = col(ColEndTime)
	}
	if cols.Gender {
		genders = col(ColGender)
	}
	if cols.BirthYear {
		birthYears = col(ColBirthYear)
	}

	n := df.Nrow()
	trips := make([]db.Trip, 0, n)
	for i := 0; i < n; i++ {
		raw := stringAt(starts, i)
		if raw == nil {
			return nil, Columns{}, fmt.Errorf("%w: row %d is empty", ErrBadTimestamp, i)
		}
		startedAt, err := ParseTimestamp(*raw)
		if err != nil {
			return nil, Columns{}, fmt.Errorf("row %d: %w", i, err)
		}
		month, dayOfWeek, hour := Derive(startedAt)

		t := db.Trip{
			RowID:        int64(i),
			StartTime:    startedAt.Format(startTimeLayout),
			TripDuration: floatAt(durations, i),
			StartStation: stringAt(startStations, i),
			EndStation:   stringAt(endStations, i),
			UserType:     stringAt(userTypes, i),
			Month:        month,
			DayOfWeek:    dayOfWeek,
			Hour:         hour,
		}
		if cols.EndTime {
			t.EndTime = stringAt(ends, i)
		}
		if cols.Gender {
			t.Gender = stringAt(genders, i)
		}
		if cols.BirthYear {
			t.BirthYear = floatAt(birthYears, i)
		}

		trips = append(trips, t)
	}

	return trips, cols, nil
}

// ParseTimestamp parses a start time such as "2017-01-01 00:07:57".
// Values without a zone are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	ts, err := dateparse.ParseIn(strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrBadTimestamp, value, err)
	}
	return ts, nil
}

// Derive returns the calendar columns of a start time: month (1-12),
// day of week (Monday=1 ... Sunday=7) and hour (0-23)
func Derive(ts time.Time) (month, dayOfWeek, hour int) {
	month = int(ts.Month())
	dayOfWeek = (int(ts.Weekday())+6)%7 + 1
	hour = ts.Hour()
	return month, dayOfWeek, hour
}

// peekHeader returns the header record and whether a data record follows it
func peekHeader(data []byte) ([]string, bool, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, ErrNoHeader
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read header: %w", err)
	}

	// Malformed data rows are reported by the full parse
	_, err = cr.Read()
	return header, !errors.Is(err, io.EOF), nil
}

// columnsOf checks the required columns and flags the optional ones
func columnsOf(idx map[string]int) (Columns, error) {
	for _, required := range requiredColumns() {
		if _, ok := idx[required]; !ok {
			return Columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	_, hasEnd := idx[ColEndTime]
	_, hasGender := idx[ColGender]
	_, hasBirthYear := idx[ColBirthYear]
	return Columns{EndTime: hasEnd, Gender: hasGender, BirthYear: hasBirthYear}, nil
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func stringAt(s series.Series, i int) *string {
	e := s.Elem(i)
	if e.IsNA() {
		return nil
	}
	v := e.String()
	return &v
}

func floatAt(s series.Series, i int) *float64 {
	e := s.Elem(i)
	if e.IsNA() {
		return nil
	}
	v := e.Float()
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
