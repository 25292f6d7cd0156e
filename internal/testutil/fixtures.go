// Package testutil provides small trip data fixtures shaped like the real
// city files, for tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ChicagoCSV has 7 trips in January, February, March and June.
//
//	most common month 1, day 1 (Monday), hour 8
//	most common start "Canal St & Adams St", end "Michigan Ave & Oak St"
//	top pair Canal St & Adams St -> Michigan Ave & Oak St (3 trips)
//	duration sum 5156; 2 user types; 2 genders
//	birth years 1975..1992, 1985 and 1990 tie as most common
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
0,2017-01-01 00:07:57,2017-01-01 00:20:53,776,Canal St & Adams St,Michigan Ave & Oak St,Subscriber,Male,1990.0
1,2017-01-02 08:15:00,2017-01-02 08:30:00,900,Canal St & Adams St,Michigan Ave & Oak St,Subscriber,Female,1985.0
2,2017-02-06 08:40:00,2017-02-06 08:50:00,600,Clark St & Elm St,Canal St & Adams St,Customer,,
3,2017-03-07 17:05:00,2017-03-07 17:25:00,1200,Clark St & Elm St,Michigan Ave & Oak St,Subscriber,Male,1985.0
4,2017-06-11 17:30:00,2017-06-11 17:45:00,900,Canal St & Adams St,Clark St & Elm St,Subscriber,Female,1975.0
5,2017-06-12 08:00:00,2017-06-12 08:05:00,300,Canal St & Adams St,Michigan Ave & Oak St,Customer,Male,1990.0
6,2017-01-03 12:00:00,2017-01-03 12:08:00,480,Michigan Ave & Oak St,Canal St & Adams St,Subscriber,,1992.0
`

// NewYorkCityCSV has 4 trips, all on Sundays in June.
const NewYorkCityCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
0,2017-06-11 17:30:00,2017-06-11 17:43:15,795,W 52 St & 11 Ave,Greenwich St & N Moore St,Subscriber,Male,1998.0
1,2017-06-11 17:45:00,2017-06-11 17:50:00,300,W 52 St & 11 Ave,Greenwich St & N Moore St,Subscriber,Female,1981.0
2,2017-06-18 09:10:00,2017-06-18 09:20:00,600,Greenwich St & N Moore St,W 52 St & 11 Ave,Customer,,
3,2017-06-25 23:59:59,2017-06-26 00:10:00,661,E 17 St & Broadway,W 52 St & 11 Ave,Subscriber,Male,1981.0
`

// WashingtonCSV has no Gender or Birth Year column. Durations are 60, 120
// and 180 seconds.
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-01-01 00:00:00,2017-01-01 00:01:00,60,Lincoln Memorial,Jefferson Dr & 14th St SW,Subscriber
1,2017-03-03 09:00:00,2017-03-03 09:02:00,120,Lincoln Memorial,Jefferson Dr & 14th St SW,Customer
2,2017-05-05 18:00:00,2017-05-05 18:03:00,180,Union Station,Lincoln Memorial,Subscriber
`

// WriteCityFiles writes the three city fixtures into a temporary directory
// and returns it
func WriteCityFiles(t testing.TB) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"chicago.csv":       ChicagoCSV,
		"new_york_city.csv": NewYorkCityCSV,
		"washington.csv":    WashingtonCSV,
	}
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}

// WriteFile writes content to dir/name and returns the path
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}
