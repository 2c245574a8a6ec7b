// Package pdm implements phase dispersion minimization period search.
package pdm

import (
	"errors"
	"math"
)

var (
	// ErrInvalidPeriod is returned for a non-positive trial period.
	ErrInvalidPeriod = errors.New("pdm: trial period must be positive")

	// ErrInvalidBinCount is returned for fewer than two phase bins.
	ErrInvalidBinCount = errors.New("pdm: at least two phase bins required")

	// ErrLengthMismatch is returned when phase and flux arrays differ in length.
	ErrLengthMismatch = errors.New("pdm: phase and flux must have the same length")

	// ErrEmptyGrid is returned when the trial period grid is empty.
	ErrEmptyGrid = errors.New("pdm: period grid is empty")

	// ErrUndefinedStatistic is returned when phi cannot be computed: no bin
	// holds two or more points, or the flux is constant.
	ErrUndefinedStatistic = errors.New("pdm: dispersion statistic undefined")
)

// CalcPhase folds the time array onto the trial period, returning the phase
// of each sample in [0, 1).
func CalcPhase(period float64, time []float64) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	phase := make([]float64, len(time))
	for i, t := range time {
		cycles := t / period
		p := cycles - math.Floor(cycles)
		// Floating point can round the fractional part up to exactly 1.
		if p >= 1 {
			p = 0
		}
		phase[i] = p
	}
	return phase, nil
}
