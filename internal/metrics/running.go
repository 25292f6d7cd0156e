package metrics

import "math"

// Running holds running statistics using Welford's online algorithm, plus the
// exact sum and the extremes of the observations.
// This allows aggregating a column in O(1) space while streaming its rows.
type Running struct {
	Count int     // n - number of observations
	Sum   float64 // exact running total
	Mean  float64 // running mean
	M2    float64 // sum of squared differences from mean (for variance)
	Min   float64
	Max   float64
}

// Update adds a new observation. NaN observations are missing values and are
// ignored.
// Reference: https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Welford's_online_algorithm
func (r *Running) Update(newValue float64) {
	if math.IsNaN(newValue) {
		return
	}

	r.Count++
	r.Sum += newValue
	delta := newValue - r.Mean
	r.Mean += delta / float64(r.Count)
	delta2 := newValue - r.Mean
	r.M2 += delta * delta2

	if r.Count == 1 || newValue < r.Min {
		r.Min = newValue
	}
	if r.Count == 1 || newValue > r.Max {
		r.Max = newValue
	}
}

// GetSum returns the total of all observations (0 when empty).
func (r *Running) GetSum() float64 {
	return r.Sum
}

// GetMean returns the current mean, or NaN with no observations.
func (r *Running) GetMean() float64 {
	if r.Count == 0 {
		return math.NaN()
	}
	return r.Mean
}

// GetMin returns the smallest observation, or NaN with no observations.
func (r *Running) GetMin() float64 {
	if r.Count == 0 {
		return math.NaN()
	}
	return r.Min
}

// GetMax returns the largest observation, or NaN with no observations.
func (r *Running) GetMax() float64 {
	if r.Count == 0 {
		return math.NaN()
	}
	return r.Max
}

// GetStdDev returns the population standard deviation.
// Returns 0 if fewer than 2 observations.
func (r *Running) GetStdDev() float64 {
	if r.Count < 2 {
		return 0
	}
	variance := r.M2 / float64(r.Count)
	return math.Sqrt(variance)
}

// GetCount returns the number of observations.
func (r *Running) GetCount() int {
	return r.Count
}
