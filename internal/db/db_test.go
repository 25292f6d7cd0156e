package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func openTestDB(t *testing.T, trips []Trip) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.InsertTrips(ctx, trips))
	return db
}

func trip(id int64, start, end string, duration float64, month, dow, hour int) Trip {
	return Trip{
		RowID:        id,
		StartTime:    "2017-01-01 00:00:00",
		TripDuration: floatPtr(duration),
		StartStation: strPtr(start),
		EndStation:   strPtr(end),
		UserType:     strPtr("Subscriber"),
		Month:        month,
		DayOfWeek:    dow,
		Hour:         hour,
	}
}

func sampleTrips() []Trip {
	return []Trip{
		trip(0, "B St", "C St", 60, 1, 7, 0),
		trip(1, "A St", "C St", 120, 1, 1, 8),
		trip(2, "B St", "A St", 180, 2, 1, 8),
		trip(3, "A St", "C St", 240, 3, 2, 17),
		trip(4, "B St", "C St", 300, 3, 2, 17),
	}
}

func TestOpen_SeparateDatabases(t *testing.T) {
	first := openTestDB(t, sampleTrips())
	second := openTestDB(t, nil)

	ctx := context.Background()
	n, err := first.CountTrips(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = second.CountTrips(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestModeInt_TieGoesToSmallest(t *testing.T) {
	db := openTestDB(t, sampleTrips())
	ctx := context.Background()

	// month: 1 and 3 both appear twice
	month, ok, err := db.ModeInt(ctx, ColMonth)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, month)

	// hour: 8 and 17 both appear twice
	hour, ok, err := db.ModeInt(ctx, ColHour)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, hour)
}

func TestModeString(t *testing.T) {
	db := openTestDB(t, sampleTrips())
	ctx := context.Background()

	start, ok, err := db.ModeString(ctx, ColStartStation)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B St", start)

	end, ok, err := db.ModeString(ctx, ColEndStation)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "C St", end)
}

func TestModeIgnoresMissing(t *testing.T) {
	trips := sampleTrips()
	trips[0].BirthYear = floatPtr(1990)
	trips[1].BirthYear = floatPtr(1985)
	trips[2].BirthYear = floatPtr(1985)

	db := openTestDB(t, trips)
	ctx := context.Background()

	year, ok, err := db.ModeFloat(ctx, ColBirthYear)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1985.0, year)

	_, ok, err = db.ModeString(ctx, ColGender)
	require.NoError(t, err)
	assert.False(t, ok, "an all-missing column has no mode")
}

func TestModeRejectsUnknownColumn(t *testing.T) {
	db := openTestDB(t, nil)

	_, _, err := db.ModeInt(context.Background(), Column("hour; DROP TABLE trips"))

	assert.Error(t, err)
}

func TestTopPair(t *testing.T) {
	db := openTestDB(t, sampleTrips())

	pair, ok, err := db.TopPair(context.Background())

	require.NoError(t, err)
	require.True(t, ok)
	// (A St, C St) and (B St, C St) both appear twice
	assert.Equal(t, Pair{StartStation: "A St", EndStation: "C St", Count: 2}, pair)
}

func TestTopPair_Empty(t *testing.T) {
	db := openTestDB(t, nil)

	_, ok, err := db.TopPair(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountDistinct(t *testing.T) {
	trips := sampleTrips()
	trips[0].UserType = strPtr("Customer")
	trips[1].UserType = nil
	trips[2].Gender = strPtr("Male")
	trips[3].Gender = strPtr("Female")

	db := openTestDB(t, trips)
	ctx := context.Background()

	n, err := db.CountDistinct(ctx, ColUserType)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = db.CountDistinct(ctx, ColGender)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEachFloat(t *testing.T) {
	trips := sampleTrips()
	trips[2].TripDuration = nil

	db := openTestDB(t, trips)

	var got []float64
	err := db.EachFloat(context.Background(), ColTripDuration, func(v float64) {
		got = append(got, v)
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{60, 120, 240, 300}, got)
}

func TestKeepWhereEquals(t *testing.T) {
	db := openTestDB(t, sampleTrips())
	ctx := context.Background()

	removed, err := db.KeepWhereEquals(ctx, ColDayOfWeek, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	rows, err := db.Page(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, 2, r.DayOfWeek)
	}

	_, err = db.KeepWhereEquals(ctx, ColStartStation, 1)
	assert.Error(t, err, "only derived columns can be filtered on")
}

func TestPage(t *testing.T) {
	db := openTestDB(t, sampleTrips())
	ctx := context.Background()

	first, err := db.Page(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, int64(0), first[0].RowID)
	assert.Equal(t, int64(1), first[1].RowID)
	assert.Equal(t, "B St", *first[0].StartStation)
	assert.Nil(t, first[0].Gender)
	assert.Nil(t, first[0].EndTime)

	last, err := db.Page(ctx, 4, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	past, err := db.Page(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, past)

	_, err = db.Page(ctx, -1, 5)
	assert.Error(t, err)
}
