// Package lightcurve provides the core light curve data structure and
// statistics used throughout gospin.
//
// A LightCurve holds parallel time, flux, and flux uncertainty arrays with
// strictly increasing time values. All operations return new light curves
// and never mutate the receiver.
//
// # Construction
//
// Build a light curve from raw arrays:
//
//	lc, err := lightcurve.New(time, flux, fluxErr)
//	if err != nil {
//	    // mismatched lengths, too few points, or unsorted time
//	}
//
// # Preprocessing
//
// Reject flaring or instrumental outliers before period analysis:
//
//	clipped, _ := lc.SigmaClip(5, 10)
//	normalized := clipped.Normalize()
//
// # Statistics
//
// The variability amplitude Rvar is the span between the 5th and 95th flux
// percentiles, a robust measure of spot-modulation depth:
//
//	rvar, _ := lc.Rvar()
package lightcurve
