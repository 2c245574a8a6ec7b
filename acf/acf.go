// Package acf measures rotation periods from the light curve autocorrelation function.
package acf

import (
	"errors"
	"math"
	"sort"

	"github.com/astroproj/gospin/lightcurve"
)

// Long-cadence sampling intervals in days.
const (
	IntervalKepler = 0.02043365
	IntervalTESS   = 0.00138889
)

var (
	// ErrInvalidInterval is returned for a non-positive resampling interval.
	ErrInvalidInterval = errors.New("acf: interval must be positive")

	// ErrNoPeaks is returned when the autocorrelation function has no local
	// maximum past the cutoff lag.
	ErrNoPeaks = errors.New("acf: no autocorrelation peaks found")
)

// Options configures the ACF rotation measurement.
type Options struct {
	// Smooth is the Gaussian smoothing kernel sigma in days.
	// Zero selects 9 sampling intervals.
	Smooth float64
	// Cutoff discards peaks at lags up to this many days, suppressing the
	// zero-lag spike and short-lag noise. Zero keeps all positive lags.
	Cutoff float64
}

// DefaultOptions returns the standard ACF configuration.
func DefaultOptions() Options {
	return Options{}
}

// Peak is a local maximum of the autocorrelation function.
type Peak struct {
	Lag    float64
	Height float64
}

// Result holds the ACF rotation measurement and its diagnostics.
type Result struct {
	Period float64
	Lags   []float64
	ACF    []float64
	Peaks  []Peak // sorted by descending height
}

// Rotation measures a rotation period from the autocorrelation function of
// the light curve, resampled onto an even grid at the given interval.
func Rotation(lc *lightcurve.LightCurve, interval float64, opts Options) (*Result, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	flux := resample(lc, interval)
	corr := autocorrelate(flux)
	if corr == nil {
		return nil, ErrNoPeaks
	}

	sigma := opts.Smooth / interval
	if opts.Smooth == 0 {
		sigma = 9
	}
	corr = gaussianSmooth(corr, sigma)

	lags := make([]float64, len(corr))
	for i := range lags {
		lags[i] = float64(i) * interval
	}

	peaks := findPeaks(lags, corr, opts.Cutoff)
	if len(peaks) == 0 {
		return nil, ErrNoPeaks
	}

	return &Result{
		Period: peaks[0].Lag,
		Lags:   lags,
		ACF:    corr,
		Peaks:  peaks,
	}, nil
}

// resample linearly interpolates the flux onto an even grid at the given
// interval, spanning the light curve baseline.
func resample(lc *lightcurve.LightCurve, interval float64) []float64 {
	n := int(lc.Baseline()/interval) + 1
	out := make([]float64, n)
	j := 0
	for i := 0; i < n; i++ {
		t := lc.Time[0] + float64(i)*interval
		for j < lc.Len()-2 && lc.Time[j+1] < t {
			j++
		}
		t0, t1 := lc.Time[j], lc.Time[j+1]
		f0, f1 := lc.Flux[j], lc.Flux[j+1]
		out[i] = f0 + (f1-f0)*(t-t0)/(t1-t0)
	}
	return out
}

// autocorrelate computes the normalized autocorrelation function of x for
// lags 0 to len(x)/2. Nil for constant input.
func autocorrelate(x []float64) []float64 {
	n := len(x)
	maxLag := n / 2
	if maxLag < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range x {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil
	}

	corr := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (x[i] - mean) * (x[i-k] - mean)
		}
		corr[k] = sum / variance
	}
	return corr
}

// gaussianSmooth convolves x with a Gaussian kernel of the given sigma
// (in samples), truncated at four sigma and renormalized at the edges.
func gaussianSmooth(x []float64, sigma float64) []float64 {
	if sigma <= 0 {
		return x
	}
	half := int(4 * sigma)
	if half < 1 {
		half = 1
	}
	kernel := make([]float64, 2*half+1)
	for i := range kernel {
		d := float64(i - half)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}

	out := make([]float64, len(x))
	for i := range x {
		sum, wsum := 0.0, 0.0
		for k := -half; k <= half; k++ {
			j := i + k
			if j < 0 || j >= len(x) {
				continue
			}
			w := kernel[k+half]
			sum += w * x[j]
			wsum += w
		}
		out[i] = sum / wsum
	}
	return out
}

// findPeaks returns the interior local maxima past the cutoff lag, sorted
// by descending height.
func findPeaks(lags, corr []float64, cutoff float64) []Peak {
	var peaks []Peak
	for i := 1; i < len(corr)-1; i++ {
		if lags[i] <= cutoff {
			continue
		}
		if corr[i] > corr[i-1] && corr[i] > corr[i+1] {
			peaks = append(peaks, Peak{Lag: lags[i], Height: corr[i]})
		}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Height > peaks[j].Height })
	return peaks
}
