// Package city holds the fixed vocabularies of the explorer: the cities with
// trip data, their source files, and the month and weekday names a user may
// filter on.
package city

// City identifies a bike-share system with a trip data file
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// All is the filter value meaning "do not filter on this axis"
const All = "all"

var fileNames = map[City]string{
	Chicago:     "chicago.csv",
	NewYorkCity: "new_york_city.csv",
	Washington:  "washington.csv",
}

// The dataset only covers the first half of the year
var monthNames = [...]string{"january", "february", "march", "april", "may", "june"}

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// AllCities returns all cities in prompt order
func AllCities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// Names returns the accepted city answers
func Names() []string {
	cities := AllCities()
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = string(c)
	}
	return names
}

// FileName returns the CSV file holding the city's trips
func (c City) FileName() (string, bool) {
	name, ok := fileNames[c]
	return name, ok
}

// Months returns the accepted month answers, January first
func Months() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

// Weekdays returns the accepted weekday answers, Monday first
func Weekdays() []string {
	out := make([]string, len(weekdayNames))
	copy(out, weekdayNames[:])
	return out
}

// MonthIndex maps a month name to its 1-based number (january = 1)
func MonthIndex(name string) (int, bool) {
	return indexOf(monthNames[:], name)
}

// WeekdayIndex maps a weekday name to its 1-based number (monday = 1)
func WeekdayIndex(name string) (int, bool) {
	return indexOf(weekdayNames[:], name)
}

func indexOf(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}
