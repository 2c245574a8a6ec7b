// Package rotation combines the gospin period-search methods behind a
// single model, the usual entry point for measuring a star's rotation.
//
//	model := rotation.NewModel(lc, rotation.DefaultConfig())
//
//	grid := pdm.PeriodGrid(5, 15, 200)
//	pdmRes, err := model.PDM(grid)       // period + uncertainty
//	acfRes, err := model.ACF()           // autocorrelation period
//	lsRes, err := model.LombScargle()    // periodogram period
//	rvar, err := model.Rvar()            // variability amplitude
//
// The methods are independent: each folds, bins, or transforms the same
// light curve its own way, and disagreement between them is itself a useful
// diagnostic (aliases, half-period harmonics). Every result carries the full
// diagnostic arrays for external plotting.
package rotation
