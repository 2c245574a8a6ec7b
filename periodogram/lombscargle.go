// Package periodogram implements the Lomb-Scargle periodogram.
package periodogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/astroproj/gospin/lightcurve"
)

var (
	// ErrEmptyGrid is returned when the frequency grid is empty.
	ErrEmptyGrid = errors.New("periodogram: frequency grid is empty")

	// ErrInvalidFrequency is returned for a non-positive frequency.
	ErrInvalidFrequency = errors.New("periodogram: frequencies must be positive")

	// ErrConstantFlux is returned when the flux has zero variance.
	ErrConstantFlux = errors.New("periodogram: flux is constant")
)

// Frequencies returns n frequencies evenly spaced between 1/maxPeriod and
// 1/minPeriod. Nil when the period bounds are not a positive increasing
// pair or n < 2.
func Frequencies(minPeriod, maxPeriod float64, n int) []float64 {
	if n < 2 || minPeriod <= 0 || maxPeriod <= minPeriod {
		return nil
	}
	return floats.Span(make([]float64, n), 1/maxPeriod, 1/minPeriod)
}

// Power evaluates the Lomb-Scargle periodogram of the light curve at each
// frequency, normalized by the sample variance of the flux.
func Power(lc *lightcurve.LightCurve, freqs []float64) ([]float64, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, f := range freqs {
		if f <= 0 {
			return nil, ErrInvalidFrequency
		}
	}
	variance := stat.Variance(lc.Flux, nil)
	if variance == 0 {
		return nil, ErrConstantFlux
	}
	mean := stat.Mean(lc.Flux, nil)

	n := lc.Len()
	power := make([]float64, len(freqs))
	for k, f := range freqs {
		omega := 2 * math.Pi * f

		// Scargle's time offset makes the power independent of a global
		// time shift.
		var s2, c2 float64
		for _, t := range lc.Time {
			s2 += math.Sin(2 * omega * t)
			c2 += math.Cos(2 * omega * t)
		}
		tau := math.Atan2(s2, c2) / (2 * omega)

		var xc, xs, cc, ss float64
		for i := 0; i < n; i++ {
			arg := omega * (lc.Time[i] - tau)
			c := math.Cos(arg)
			s := math.Sin(arg)
			d := lc.Flux[i] - mean
			xc += d * c
			xs += d * s
			cc += c * c
			ss += s * s
		}

		p := 0.0
		if cc > 0 {
			p += xc * xc / cc
		}
		if ss > 0 {
			p += xs * xs / ss
		}
		power[k] = p / (2 * variance)
	}
	return power, nil
}

// Peak returns the period of the tallest interior local maximum of the
// power spectrum. ok is false when the spectrum has no interior peak.
func Peak(freqs, power []float64) (period float64, ok bool) {
	bestPower := math.Inf(-1)
	for i := 1; i < len(power)-1; i++ {
		if power[i] > power[i-1] && power[i] > power[i+1] && power[i] > bestPower {
			bestPower = power[i]
			period = 1 / freqs[i]
			ok = true
		}
	}
	return period, ok
}
