package report

import (
	"context"
	"fmt"
	"io"

	"github.com/us-bikeshare/explorer/internal/db"
	"github.com/us-bikeshare/explorer/internal/metrics"
	"github.com/us-bikeshare/explorer/internal/trips"
)

// Users prints user type and gender counts and birth year statistics.
// Columns missing from the city's file print Unavailable instead.
func Users(ctx context.Context, w io.Writer, t *trips.Table) error {
	return timed(w, "Calculating User Stats...", func() error {
		userTypes, err := t.Store.CountDistinct(ctx, db.ColUserType)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Number of user types: %d\n", userTypes)

		if t.Columns.Gender {
			genders, err := t.Store.CountDistinct(ctx, db.ColGender)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Number of gender types: %d\n", genders)
		} else {
			fmt.Fprintln(w, "Number of gender types: "+Unavailable)
		}

		if !t.Columns.BirthYear {
			fmt.Fprintln(w, "Earliest Year of Birth: "+Unavailable)
			fmt.Fprintln(w, "Most recent Year of Birth: "+Unavailable)
			fmt.Fprintln(w, "Most common Year of Birth: "+Unavailable)
			return nil
		}

		var years metrics.Running
		if err := t.Store.EachFloat(ctx, db.ColBirthYear, years.Update); err != nil {
			return err
		}
		common, ok, err := t.Store.ModeFloat(ctx, db.ColBirthYear)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "Earliest Year of Birth: "+formatFloat(years.GetMin()))
		fmt.Fprintln(w, "Most recent Year of Birth: "+formatFloat(years.GetMax()))
		if ok {
			fmt.Fprintln(w, "Most common Year of Birth: "+formatFloat(common))
		} else {
			fmt.Fprintln(w, "Most common Year of Birth: "+noValue)
		}
		return nil
	})
}
