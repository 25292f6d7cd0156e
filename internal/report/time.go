package report

import (
	"context"
	"fmt"
	"io"

	"github.com/us-bikeshare/explorer/internal/db"
	"github.com/us-bikeshare/explorer/internal/trips"
)

// Time prints the most frequent month, day of week and start hour
func Time(ctx context.Context, w io.Writer, t *trips.Table) error {
	return timed(w, "Calculating The Most Frequent Times of Travel...", func() error {
		lines := []struct {
			label string
			col   db.Column
		}{
			{"Most common month: ", db.ColMonth},
			{"Most common day: ", db.ColDayOfWeek},
			{"Most common hour: ", db.ColHour},
		}

		for _, line := range lines {
			value, ok, err := t.Store.ModeInt(ctx, line.col)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, line.label+formatInt(value, ok))
		}
		return nil
	})
}
