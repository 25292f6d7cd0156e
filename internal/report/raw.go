package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/us-bikeshare/explorer/internal/db"
	"github.com/us-bikeshare/explorer/internal/trips"
)

const missingCell = "NaN"

// RawPage prints up to limit trips of t starting at offset as a table, one
// trip per line, prefixed with the trip's position in the city file. It
// returns how many trips it printed. A page past the end prints nothing.
func RawPage(ctx context.Context, w io.Writer, t *trips.Table, offset, limit int) (int, error) {
	rows, err := t.Store.Page(ctx, offset, limit)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\t"+strings.Join(rawHeader(t.Columns), "\t")+"\t")
	for _, row := range rows {
		cells := rawRecord(row, t.Columns)
		fmt.Fprintln(tw, strconv.FormatInt(row.RowID, 10)+"\t"+strings.Join(cells, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to write raw trips: %w", err)
	}
	return len(rows), nil
}

func rawHeader(cols trips.Columns) []string {
	header := []string{trips.ColStartTime}
	if cols.EndTime {
		header = append(header, trips.ColEndTime)
	}
	header = append(header, trips.ColTripDuration, trips.ColStartStation, trips.ColEndStation, trips.ColUserType)
	if cols.Gender {
		header = append(header, trips.ColGender)
	}
	if cols.BirthYear {
		header = append(header, trips.ColBirthYear)
	}
	return append(header, "month", "day_of_week", "hour")
}

func rawRecord(row db.Trip, cols trips.Columns) []string {
	record := []string{row.StartTime}
	if cols.EndTime {
		record = append(record, textCell(row.EndTime))
	}
	record = append(record,
		numberCell(row.TripDuration, formatNumber),
		textCell(row.StartStation),
		textCell(row.EndStation),
		textCell(row.UserType),
	)
	if cols.Gender {
		record = append(record, textCell(row.Gender))
	}
	if cols.BirthYear {
		record = append(record, numberCell(row.BirthYear, formatFloat))
	}
	return append(record,
		strconv.Itoa(row.Month),
		strconv.Itoa(row.DayOfWeek),
		strconv.Itoa(row.Hour),
	)
}

func textCell(v *string) string {
	if v == nil {
		return missingCell
	}
	return *v
}

func numberCell(v *float64, format func(float64) string) string {
	if v == nil {
		return missingCell
	}
	return format(*v)
}
