// Package trips loads a city's trip file into a filtered, queryable table.
package trips

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/us-bikeshare/explorer/internal/city"
	"github.com/us-bikeshare/explorer/internal/db"
	"github.com/us-bikeshare/explorer/internal/filter"
)

var ErrUnknownCity = errors.New("unknown city")

// Table is the filtered trip data of one session iteration
type Table struct {
	LoadID    string // correlates the log lines and errors of one load
	Selection filter.Selection
	Columns   Columns
	Store     *db.DB
}

// Load reads the selection's city file from dataDir and keeps the trips
// matching its month and day filters. The returned table may be empty and
// must be closed by the caller.
func Load(ctx context.Context, dataDir string, sel filter.Selection) (*Table, error) {
	fileName, ok := sel.City.FileName()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, sel.City)
	}
	path := filepath.Join(dataDir, fileName)
	loadID := uuid.New().String()

	rows, cols, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s (load %s): %w", path, loadID, err)
	}
	log.Printf("[%s] Read %s trips from %s (gender=%t birth_year=%t)",
		loadID, humanize.Comma(int64(len(rows))), path, cols.Gender, cols.BirthYear)

	store, err := db.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", loadID, err)
	}

	if err := store.InsertTrips(ctx, rows); err != nil {
		store.Close()
		return nil, fmt.Errorf("load %s: %w", loadID, err)
	}

	if err := restrict(ctx, store, sel); err != nil {
		store.Close()
		return nil, fmt.Errorf("load %s: %w", loadID, err)
	}

	t := &Table{
		LoadID:    loadID,
		Selection: sel,
		Columns:   cols,
		Store:     store,
	}

	kept, err := t.Len(ctx)
	if err != nil {
		t.Close()
		return nil, err
	}
	log.Printf("[%s] %s kept %s trips", loadID, sel, humanize.Comma(int64(kept)))

	return t, nil
}

func restrict(ctx context.Context, store *db.DB, sel filter.Selection) error {
	if sel.Month != city.All {
		month, ok := city.MonthIndex(sel.Month)
		if !ok {
			return fmt.Errorf("unknown month %q", sel.Month)
		}
		if _, err := store.KeepWhereEquals(ctx, db.ColMonth, month); err != nil {
			return err
		}
	}

	if sel.Day != city.All {
		day, ok := city.WeekdayIndex(sel.Day)
		if !ok {
			return fmt.Errorf("unknown day %q", sel.Day)
		}
		if _, err := store.KeepWhereEquals(ctx, db.ColDayOfWeek, day); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of trips in the table
func (t *Table) Len(ctx context.Context) (int, error) {
	return t.Store.CountTrips(ctx)
}

// Close releases the table's rows
func (t *Table) Close() error {
	return t.Store.Close()
}
