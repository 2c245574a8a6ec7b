// Package acf measures rotation periods from the autocorrelation function.
//
// Spot-modulated light curves repeat, so the autocorrelation of the flux
// peaks at lags equal to the rotation period and its multiples. Rotation
// resamples the light curve onto an even cadence, computes the
// autocorrelation function, smooths it with a Gaussian kernel, and reports
// the tallest peak past a cutoff lag as the period.
//
//	res, err := acf.Rotation(lc, acf.IntervalKepler, acf.DefaultOptions())
//	// res.Period, res.Lags, res.ACF
//
// IntervalKepler and IntervalTESS are the long-cadence sampling intervals of
// the two missions, in days.
package acf
