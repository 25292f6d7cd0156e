package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunning_Durations(t *testing.T) {
	var r Running
	for _, v := range []float64{60, 120, 180} {
		r.Update(v)
	}

	assert.Equal(t, 3, r.GetCount())
	assert.Equal(t, 360.0, r.GetSum())
	assert.Equal(t, 120.0, r.GetMean())
	assert.Equal(t, 60.0, r.GetMin())
	assert.Equal(t, 180.0, r.GetMax())
	assert.InDelta(t, 48.9898, r.GetStdDev(), 0.0001)
}

func TestRunning_SkipsMissing(t *testing.T) {
	var r Running
	r.Update(1989)
	r.Update(math.NaN())
	r.Update(1975)

	assert.Equal(t, 2, r.GetCount())
	assert.Equal(t, 1975.0, r.GetMin())
	assert.Equal(t, 1989.0, r.GetMax())
	assert.Equal(t, 1982.0, r.GetMean())
}

func TestRunning_Empty(t *testing.T) {
	var r Running

	assert.Equal(t, 0.0, r.GetSum())
	assert.True(t, math.IsNaN(r.GetMean()))
	assert.True(t, math.IsNaN(r.GetMin()))
	assert.True(t, math.IsNaN(r.GetMax()))
	assert.Equal(t, 0.0, r.GetStdDev())
}

func TestRunning_NegativeValues(t *testing.T) {
	var r Running
	r.Update(-5)
	r.Update(-10)

	assert.Equal(t, -10.0, r.GetMin())
	assert.Equal(t, -5.0, r.GetMax())
}
