// Package gospin provides tools for measuring stellar rotation periods.
//
// GoSpin estimates the rotation period of a star from its light curve
// (time, flux, flux uncertainty) using three independent methods: phase
// dispersion minimization (PDM), the autocorrelation function (ACF), and
// the Lomb-Scargle periodogram. PDM additionally reports a 1-sigma period
// uncertainty from a Gaussian fit to the dispersion minimum.
//
// # Features
//
//   - Phase dispersion minimization with pooled bin variances and a
//     Gaussian-fit period uncertainty
//   - Autocorrelation rotation periods for evenly resampled light curves
//   - Classic Lomb-Scargle periodogram for unevenly sampled data
//   - Iterative sigma clipping and variability amplitude (Rvar) statistics
//   - Pluggable numerical minimizers (Nelder-Mead, gradient descent)
//
// # Quick Start
//
// Measure a rotation period with PDM:
//
//	lc, _ := lightcurve.New(time, flux, fluxErr)
//	grid := pdm.PeriodGrid(5, 15, 200)
//	curve, _ := pdm.Scan(lc, grid, pdm.DefaultScanOptions())
//	est, _ := pdm.EstimateUncertainty(curve, pdm.DefaultFitOptions())
//	fmt.Printf("P = %.2f +/- %.2f days\n", est.Period, est.Err)
//
// Or run every method through the orchestrating model:
//
//	model := rotation.NewModel(lc, rotation.DefaultConfig())
//	res, _ := model.PDM(grid)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - lightcurve: light curve data structure, statistics, sigma clipping
//   - pdm: phase dispersion minimization and uncertainty estimation
//   - acf: autocorrelation rotation periods
//   - periodogram: Lomb-Scargle periodogram
//   - rotation: high-level model combining all methods
//
// # References
//
//   - Stellingwerf, R. F. (1978). Period determination using phase
//     dispersion minimization. ApJ, 224, 953.
//   - Scargle, J. D. (1982). Studies in astronomical time series analysis
//     II. ApJ, 263, 835.
//   - McQuillan, A., Aigrain, S., & Mazeh, T. (2013). Measuring the
//     rotation periods of Kepler stars. MNRAS, 432, 1203.
package gospin
