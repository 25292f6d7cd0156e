// Package session drives the interactive explore loop: collect filters, load
// the city's trips, print statistics, page through raw rows and offer a
// restart.
package session

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/us-bikeshare/explorer/internal/config"
	"github.com/us-bikeshare/explorer/internal/filter"
	"github.com/us-bikeshare/explorer/internal/prompt"
	"github.com/us-bikeshare/explorer/internal/report"
	"github.com/us-bikeshare/explorer/internal/trips"
)

const (
	greeting        = "\nHello! Let's explore some US bikeshare data!"
	emptyMessage    = "\nSorry, we don't have data for your filter settings. \nPlease try again"
	rawQuestion     = "Would you like to see some raw data? Enter yes or no: "
	moreQuestion    = "Would you like to see more? Enter yes or no: "
	restartQuestion = "\nWould you like to restart? Enter yes or no: "
)

// Session holds the console and settings of one interactive run
type Session struct {
	cfg       *config.Config
	prompter  *prompt.Prompter
	out       io.Writer
	reporters []report.Reporter
}

// New creates a session reading answers from in and writing to out
func New(cfg *config.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:       cfg,
		prompter:  prompt.New(in, out),
		out:       out,
		reporters: report.All(),
	}
}

// Run greets the user and explores selections until the user declines to
// restart. It returns prompt.ErrInputClosed when the input ends mid-dialogue
// and the first load or report error otherwise.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, greeting)

	iteration := 0
	for {
		iteration++
		again, err := s.explore(ctx, iteration)
		if err != nil {
			return err
		}
		if !again {
			log.Printf("Session finished after %d iteration(s)", iteration)
			return nil
		}
	}
}

// explore runs one iteration and reports whether another one follows
func (s *Session) explore(ctx context.Context, iteration int) (bool, error) {
	sel, err := filter.Collect(s.prompter)
	if err != nil {
		return false, err
	}
	log.Printf("Iteration %d: %s", iteration, sel)

	table, err := trips.Load(ctx, s.cfg.DataDir, sel)
	if err != nil {
		return false, err
	}
	defer table.Close()

	n, err := table.Len(ctx)
	if err != nil {
		return false, err
	}
	if n == 0 {
		fmt.Fprintln(s.out, emptyMessage)
		return true, nil
	}

	for _, r := range s.reporters {
		if err := r(ctx, s.out, table); err != nil {
			return false, fmt.Errorf("failed to report on %s: %w", sel, err)
		}
	}

	if err := s.browse(ctx, table); err != nil {
		return false, err
	}

	return s.prompter.YesNo(restartQuestion)
}

// browse prints pages of raw trips for as long as the user asks for more
func (s *Session) browse(ctx context.Context, table *trips.Table) error {
	more, err := s.prompter.YesNo(rawQuestion)
	if err != nil {
		return err
	}

	for offset := 0; more; offset += s.cfg.PageSize {
		shown, err := report.RawPage(ctx, s.out, table, offset, s.cfg.PageSize)
		if err != nil {
			return err
		}
		if shown == 0 {
			log.Printf("[%s] No trips left at offset %d", table.LoadID, offset)
		}

		more, err = s.prompter.YesNo(moreQuestion)
		if err != nil {
			return err
		}
	}
	return nil
}
