package report

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/us-bikeshare/explorer/internal/db"
	"github.com/us-bikeshare/explorer/internal/trips"
)

// Station prints the most popular start and end stations and the most
// frequent trip between two stations
func Station(ctx context.Context, w io.Writer, t *trips.Table) error {
	return timed(w, "Calculating The Most Popular Stations and Trip...", func() error {
		start, ok, err := t.Store.ModeString(ctx, db.ColStartStation)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Most common start station: "+formatString(start, ok))

		end, ok, err := t.Store.ModeString(ctx, db.ColEndStation)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Most common end station: "+formatString(end, ok))

		pair, ok, err := t.Store.TopPair(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Most frequent combination of start and end station: ")
		if !ok {
			fmt.Fprintln(w, noValue)
			return nil
		}
		fmt.Fprintf(w, "%s -> %s (%s trips)\n", pair.StartStation, pair.EndStation, humanize.Comma(int64(pair.Count)))
		return nil
	})
}
