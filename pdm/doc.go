// Package pdm implements phase dispersion minimization (PDM) period search.
//
// PDM folds a light curve at each trial period, partitions the phased points
// into bins, and compares the pooled intra-bin flux variance to the total
// variance. The resulting phi statistic approaches 0 at a period that phases
// the data coherently and stays near 1 where no coherence exists. The grid
// minimum of phi is the period estimate; a Gaussian fit to the dip around the
// minimum provides a 1-sigma period uncertainty.
//
// # Usage
//
//	grid := pdm.PeriodGrid(5, 15, 200)
//	curve, err := pdm.Scan(lc, grid, pdm.DefaultScanOptions())
//	est, err := pdm.EstimateUncertainty(curve, pdm.DefaultFitOptions())
//	// est.Period, est.Err
//
// # Bin population policy
//
// Bins with fewer than two members carry no variance information and are
// excluded from the pooled dispersion, reducing the effective degrees of
// freedom. phi is undefined for a trial period only when no bin has at least
// two members, or when the flux is constant; Scan records such periods as NaN
// and Minimum skips them. A bin count below two is rejected outright: a
// single bin is the whole light curve and phi degenerates to 1.
//
// # Uncertainty model
//
// The dip is modeled as b + a*exp(-(P-mu)^2 / (2 sigma^2)) with a < 0,
// fit by minimizing a Gaussian-residual negative log-likelihood. The
// minimizer is injected through the Minimizer interface; NelderMead (backed
// by gonum/optimize) is the default, with GradientDescent as a
// derivative-based alternative. A fit that diverges, or lands outside the
// fitting window, or returns a non-physical width is reported as
// ErrOptimizerDivergence: the period estimate stands but its uncertainty is
// undetermined.
package pdm
