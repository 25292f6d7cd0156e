// Package filter collects the city and the optional month or weekday filter
// a user wants to explore.
package filter

import (
	"fmt"

	"github.com/us-bikeshare/explorer/internal/city"
	"github.com/us-bikeshare/explorer/internal/prompt"
)

// Filter axes offered to the user
const (
	ByMonth = "month"
	ByDay   = "day"
	None    = "not"
)

// Separator is printed after each block of console output
const Separator = "----------------------------------------"

// Selection is the (city, month, day) a session loads and filters by.
// At most one of Month and Day is not city.All.
type Selection struct {
	City  city.City
	Month string
	Day   string
}

// Unfiltered returns a selection of every trip in c
func Unfiltered(c city.City) Selection {
	return Selection{City: c, Month: city.All, Day: city.All}
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

// Collect asks for a city and an optional single filter axis
func Collect(p *prompt.Prompter) (Selection, error) {
	cityName, err := p.Choose("Would you like to see data for Chicago, New York City, or Washington? ", city.Names())
	if err != nil {
		return Selection{}, err
	}
	sel := Unfiltered(city.City(cityName))

	axis, err := p.Choose("\nWould you like to filter the data by month, day, or not at all? ", []string{ByMonth, ByDay, None})
	if err != nil {
		return Selection{}, err
	}

	switch axis {
	case ByMonth:
		sel.Month, err = p.Choose("\nWhich month - January, February, March, April, May, or June? ", city.Months())
	case ByDay:
		sel.Day, err = p.Choose("Which day - Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, or Sunday? ", city.Weekdays())
	}
	if err != nil {
		return Selection{}, err
	}

	fmt.Fprintln(p.Out(), Separator)
	return sel, nil
}
