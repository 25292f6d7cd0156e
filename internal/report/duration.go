package report

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/us-bikeshare/explorer/internal/db"
	"github.com/us-bikeshare/explorer/internal/metrics"
	"github.com/us-bikeshare/explorer/internal/trips"
)

// Duration prints the total and mean trip duration in seconds
func Duration(ctx context.Context, w io.Writer, t *trips.Table) error {
	return timed(w, "Calculating Trip Duration...", func() error {
		var durations metrics.Running
		if err := t.Store.EachFloat(ctx, db.ColTripDuration, durations.Update); err != nil {
			return err
		}

		log.Printf("[%s] Durations: n=%d stddev=%.1f sec", t.LoadID, durations.GetCount(), durations.GetStdDev())
		fmt.Fprintf(w, "Total Travel Time: %s sec.\n", formatNumber(durations.GetSum()))
		fmt.Fprintf(w, "Mean Travel Time: %s sec.\n", formatFloat(durations.GetMean()))
		return nil
	})
}
