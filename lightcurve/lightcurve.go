// Package lightcurve provides light curve data structures for rotation analysis.
package lightcurve

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// MinPoints is the minimum number of samples required for a meaningful
// dispersion statistic.
const MinPoints = 20

var (
	// ErrLengthMismatch is returned when the input arrays differ in length.
	ErrLengthMismatch = errors.New("lightcurve: time, flux, and flux_err must have the same length")

	// ErrTooFewPoints is returned when fewer than MinPoints samples are provided.
	ErrTooFewPoints = fmt.Errorf("lightcurve: at least %d points required", MinPoints)

	// ErrUnsortedTime is returned when time values are not strictly increasing.
	ErrUnsortedTime = errors.New("lightcurve: time values must be strictly increasing")
)

// LightCurve represents a photometric time series: flux measurements with
// uncertainties at strictly increasing times (typically days).
type LightCurve struct {
	Time    []float64
	Flux    []float64
	FluxErr []float64
}

// New creates a LightCurve from parallel arrays, validating that the arrays
// have equal length, contain at least MinPoints samples, and that time is
// strictly increasing.
func New(time, flux, fluxErr []float64) (*LightCurve, error) {
	if len(time) != len(flux) || len(time) != len(fluxErr) {
		return nil, ErrLengthMismatch
	}
	if len(time) < MinPoints {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(time); i++ {
		if time[i] <= time[i-1] {
			return nil, ErrUnsortedTime
		}
	}
	return &LightCurve{Time: time, Flux: flux, FluxErr: fluxErr}, nil
}

// Len returns the number of samples.
func (lc *LightCurve) Len() int {
	return len(lc.Time)
}

// Mean calculates the arithmetic mean of the flux.
func (lc *LightCurve) Mean() float64 {
	if len(lc.Flux) == 0 {
		return 0
	}
	return stat.Mean(lc.Flux, nil)
}

// Variance calculates the sample variance of the flux (n-1 denominator).
func (lc *LightCurve) Variance() float64 {
	if len(lc.Flux) < 2 {
		return 0
	}
	return stat.Variance(lc.Flux, nil)
}

// Std calculates the sample standard deviation of the flux.
func (lc *LightCurve) Std() float64 {
	return math.Sqrt(lc.Variance())
}

// Median returns the median flux value.
func (lc *LightCurve) Median() float64 {
	if len(lc.Flux) == 0 {
		return math.NaN()
	}
	m, err := stats.Median(lc.Flux)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Rvar returns the variability amplitude: the span between the 5th and
// 95th flux percentiles.
func (lc *LightCurve) Rvar() (float64, error) {
	p95, err := stats.Percentile(lc.Flux, 95)
	if err != nil {
		return 0, fmt.Errorf("lightcurve: rvar: %w", err)
	}
	p5, err := stats.Percentile(lc.Flux, 5)
	if err != nil {
		return 0, fmt.Errorf("lightcurve: rvar: %w", err)
	}
	return p95 - p5, nil
}

// Baseline returns the total time span of the light curve.
func (lc *LightCurve) Baseline() float64 {
	if len(lc.Time) == 0 {
		return 0
	}
	return lc.Time[len(lc.Time)-1] - lc.Time[0]
}

// MedianCadence returns the median spacing between consecutive samples.
func (lc *LightCurve) MedianCadence() float64 {
	if len(lc.Time) < 2 {
		return 0
	}
	diffs := make([]float64, len(lc.Time)-1)
	for i := 1; i < len(lc.Time); i++ {
		diffs[i-1] = lc.Time[i] - lc.Time[i-1]
	}
	m, err := stats.Median(diffs)
	if err != nil {
		return 0
	}
	return m
}

// Slice returns a copy of the samples from start to end (exclusive).
// Indices are clamped to the valid range.
func (lc *LightCurve) Slice(start, end int) *LightCurve {
	if start < 0 {
		start = 0
	}
	if end > lc.Len() {
		end = lc.Len()
	}
	if start >= end {
		return &LightCurve{}
	}
	out := &LightCurve{
		Time:    make([]float64, end-start),
		Flux:    make([]float64, end-start),
		FluxErr: make([]float64, end-start),
	}
	copy(out.Time, lc.Time[start:end])
	copy(out.Flux, lc.Flux[start:end])
	copy(out.FluxErr, lc.FluxErr[start:end])
	return out
}

// Copy creates a deep copy of the light curve.
func (lc *LightCurve) Copy() *LightCurve {
	return lc.Slice(0, lc.Len())
}

// Normalize divides flux and flux uncertainties by the median flux, the
// standard relative-flux normalization. A zero or NaN median leaves the
// values unchanged.
func (lc *LightCurve) Normalize() *LightCurve {
	out := lc.Copy()
	med := lc.Median()
	if med == 0 || math.IsNaN(med) {
		return out
	}
	for i := range out.Flux {
		out.Flux[i] /= med
		out.FluxErr[i] /= med
	}
	return out
}

// selectIdx returns the samples at the given indices, preserving order.
func (lc *LightCurve) selectIdx(idx []int) *LightCurve {
	out := &LightCurve{
		Time:    make([]float64, len(idx)),
		Flux:    make([]float64, len(idx)),
		FluxErr: make([]float64, len(idx)),
	}
	for i, j := range idx {
		out.Time[i] = lc.Time[j]
		out.Flux[i] = lc.Flux[j]
		out.FluxErr[i] = lc.FluxErr[j]
	}
	return out
}
