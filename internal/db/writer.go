package db

import (
	"context"
	"fmt"
)

// Trip represents one bike-share trip row for database insertion.
// Pointer fields are missing values (NULL).
type Trip struct {
	RowID        int64
	StartTime    string
	EndTime      *string
	TripDuration *float64
	StartStation *string
	EndStation   *string
	UserType     *string
	Gender       *string
	BirthYear    *float64

	// Derived from StartTime
	Month     int
	DayOfWeek int
	Hour      int
}

// InsertTrips inserts trips in a single transaction
func (db *DB) InsertTrips(ctx context.Context, trips []Trip) error {
	if len(trips) == 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (
			row_id, start_time, end_time, trip_duration, start_station,
			end_station, user_type, gender, birth_year, month, day_of_week, hour
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare trip insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		_, err := stmt.ExecContext(ctx,
			t.RowID, t.StartTime, t.EndTime, t.TripDuration, t.StartStation,
			t.EndStation, t.UserType, t.Gender, t.BirthYear, t.Month, t.DayOfWeek, t.Hour,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip %d: %w", t.RowID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trips: %w", err)
	}

	return nil
}

// KeepWhereEquals deletes every trip whose derived column differs from value
// and returns the number of trips removed
func (db *DB) KeepWhereEquals(ctx context.Context, col Column, value int) (int64, error) {
	if !col.derived() {
		return 0, fmt.Errorf("column %q cannot be filtered on", col)
	}

	res, err := db.conn.ExecContext(ctx, "DELETE FROM trips WHERE "+string(col)+" <> ?", value)
	if err != nil {
		return 0, fmt.Errorf("failed to filter trips on %s: %w", col, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count filtered trips: %w", err)
	}
	return removed, nil
}
