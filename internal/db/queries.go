package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Column names a queryable trip column
type Column string

const (
	ColMonth        Column = "month"
	ColDayOfWeek    Column = "day_of_week"
	ColHour         Column = "hour"
	ColStartStation Column = "start_station"
	ColEndStation   Column = "end_station"
	ColUserType     Column = "user_type"
	ColGender       Column = "gender"
	ColBirthYear    Column = "birth_year"
	ColTripDuration Column = "trip_duration"
)

func (c Column) valid() bool {
	switch c {
	case ColMonth, ColDayOfWeek, ColHour, ColStartStation, ColEndStation,
		ColUserType, ColGender, ColBirthYear, ColTripDuration:
		return true
	}
	return false
}

func (c Column) derived() bool {
	return c == ColMonth || c == ColDayOfWeek || c == ColHour
}

// Pair is a (start station, end station) trip and how often it was ridden
type Pair struct {
	StartStation string
	EndStation   string
	Count        int
}

// CountTrips returns the number of trips in the table
func (db *DB) CountTrips(ctx context.Context) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return n, nil
}

// ModeInt returns the most frequent value of an integer column.
// Ties go to the smallest value; ok is false when the column has no values.
func (db *DB) ModeInt(ctx context.Context, col Column) (value int, ok bool, err error) {
	return queryMode[int](ctx, db, col)
}

// ModeFloat returns the most frequent value of a numeric column.
// Ties go to the smallest value; ok is false when the column has no values.
func (db *DB) ModeFloat(ctx context.Context, col Column) (value float64, ok bool, err error) {
	return queryMode[float64](ctx, db, col)
}

// ModeString returns the most frequent value of a text column.
// Ties go to the smallest value in byte order; ok is false when the column
// has no values.
func (db *DB) ModeString(ctx context.Context, col Column) (value string, ok bool, err error) {
	return queryMode[string](ctx, db, col)
}

func queryMode[T int | float64 | string](ctx context.Context, db *DB, col Column) (T, bool, error) {
	var value T
	if !col.valid() {
		return value, false, fmt.Errorf("unknown column %q", col)
	}

	query := fmt.Sprintf(`
		SELECT %[1]s
		FROM trips
		WHERE %[1]s IS NOT NULL
		GROUP BY %[1]s
		ORDER BY COUNT(*) DESC, %[1]s ASC
		LIMIT 1
	`, col)

	err := db.conn.QueryRowContext(ctx, query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("failed to query mode of %s: %w", col, err)
	}
	return value, true, nil
}

// TopPair returns the most frequent (start station, end station) pair.
// Ties go to the lexicographically smallest pair; ok is false when no trip
// has both stations.
func (db *DB) TopPair(ctx context.Context) (Pair, bool, error) {
	var p Pair
	err := db.conn.QueryRowContext(ctx, `
		SELECT start_station, end_station, COUNT(*) AS trips
		FROM trips
		WHERE start_station IS NOT NULL AND end_station IS NOT NULL
		GROUP BY start_station, end_station
		ORDER BY trips DESC, start_station ASC, end_station ASC
		LIMIT 1
	`).Scan(&p.StartStation, &p.EndStation, &p.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return Pair{}, false, nil
	}
	if err != nil {
		return Pair{}, false, fmt.Errorf("failed to query top station pair: %w", err)
	}
	return p, true, nil
}

// CountDistinct returns the number of distinct non-missing values of col
func (db *DB) CountDistinct(ctx context.Context, col Column) (int, error) {
	if !col.valid() {
		return 0, fmt.Errorf("unknown column %q", col)
	}

	var n int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(DISTINCT "+string(col)+") FROM trips").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct %s: %w", col, err)
	}
	return n, nil
}

// EachFloat calls fn with every non-missing value of a numeric column in
// source file order. fn must not query the database.
func (db *DB) EachFloat(ctx context.Context, col Column, fn func(float64)) error {
	if !col.valid() {
		return fmt.Errorf("unknown column %q", col)
	}

	rows, err := db.conn.QueryContext(ctx,
		"SELECT "+string(col)+" FROM trips WHERE "+string(col)+" IS NOT NULL ORDER BY row_id")
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", col, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return fmt.Errorf("failed to scan %s: %w", col, err)
		}
		fn(v)
	}
	return rows.Err()
}

// Page returns up to limit trips starting at offset, in source file order.
// An offset past the last trip returns no trips.
func (db *DB) Page(ctx context.Context, offset, limit int) ([]Trip, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("invalid page offset=%d limit=%d", offset, limit)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			row_id, start_time, end_time, trip_duration, start_station,
			end_station, user_type, gender, birth_year, month, day_of_week, hour
		FROM trips
		ORDER BY row_id
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip page: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		err := rows.Scan(
			&t.RowID,
			&t.StartTime,
			&t.EndTime,
			&t.TripDuration,
			&t.StartStation,
			&t.EndStation,
			&t.UserType,
			&t.Gender,
			&t.BirthYear,
			&t.Month,
			&t.DayOfWeek,
			&t.Hour,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}
