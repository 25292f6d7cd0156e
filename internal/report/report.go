// Package report prints descriptive statistics about a filtered trip table.
//
// Every reporter only reads the table. It prints a heading, its result lines,
// the time its own queries took and a separator line. Reporters expect a
// non-empty table; on an empty one they print nan for values that do not
// exist.
package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/us-bikeshare/explorer/internal/filter"
	"github.com/us-bikeshare/explorer/internal/trips"
)

// Unavailable replaces statistics of columns a city's file does not have
const Unavailable = "Only for the cities of Chicago and New York available"

const noValue = "nan"

// Reporter prints one block of statistics about t to w
type Reporter func(ctx context.Context, w io.Writer, t *trips.Table) error

// All returns the reporters in the order a session runs them
func All() []Reporter {
	return []Reporter{Time, Station, Duration, Users}
}

func timed(w io.Writer, heading string, fn func() error) error {
	fmt.Fprintf(w, "\n%s\n\n", heading)
	start := time.Now()

	if err := fn(); err != nil {
		return err
	}

	elapsed := time.Since(start).Seconds()
	fmt.Fprintf(w, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed, 'f', -1, 64))
	fmt.Fprintln(w, filter.Separator)
	return nil
}

// formatFloat prints a float with at least one decimal: 120.0, 1989.0, 736.5714285714286
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return noValue
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatNumber prints a float in its shortest form: 360, 5156, 360.5
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return noValue
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v int, ok bool) string {
	if !ok {
		return noValue
	}
	return strconv.Itoa(v)
}

func formatString(v string, ok bool) string {
	if !ok {
		return noValue
	}
	return v
}
