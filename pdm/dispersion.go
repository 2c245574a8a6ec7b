package pdm

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/astroproj/gospin/lightcurve"
)

// Sj2 returns the sample variance of x about the given mean, with n-1
// degrees of freedom. NaN when fewer than two values are supplied.
func Sj2(x []float64, mean float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range x {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(x)-1)
}

// S2 pools the per-bin variances, weighting each bin by its degrees of
// freedom: sum (n_j - 1) * sj2_j over sum (n_j - 1). Bins with fewer than
// two members are excluded. ErrUndefinedStatistic when no bin qualifies.
func S2(counts []int, sj2s []float64) (float64, error) {
	num := 0.0
	dof := 0.0
	for j, n := range counts {
		if n < 2 || math.IsNaN(sj2s[j]) {
			continue
		}
		w := float64(n - 1)
		num += w * sj2s[j]
		dof += w
	}
	if dof == 0 {
		return 0, ErrUndefinedStatistic
	}
	return num / dof, nil
}

// Phi computes the PDM statistic for one trial period: the pooled intra-bin
// flux variance divided by the total sample variance. Values near 0 indicate
// strong phase coherence; values near 1 indicate none.
func Phi(nbins int, period float64, time, flux []float64) (float64, error) {
	if len(time) != len(flux) {
		return 0, ErrLengthMismatch
	}
	total := stat.Variance(flux, nil)
	if total == 0 || math.IsNaN(total) {
		return 0, ErrUndefinedStatistic
	}
	phase, err := CalcPhase(period, time)
	if err != nil {
		return 0, err
	}
	b, err := PhaseBins(nbins, phase, flux)
	if err != nil {
		return 0, err
	}
	pooled, err := S2(b.Counts, b.Vars)
	if err != nil {
		return 0, err
	}
	return pooled / total, nil
}

// Curve is the PDM statistic evaluated over a trial period grid.
// Periods where phi is undefined hold NaN.
type Curve struct {
	Periods []float64
	Phi     []float64
}

// Minimum returns the index of the smallest defined phi value.
// ErrUndefinedStatistic when every value is NaN.
func (c *Curve) Minimum() (int, error) {
	best := -1
	bestPhi := math.Inf(1)
	for i, v := range c.Phi {
		if math.IsNaN(v) {
			continue
		}
		if v < bestPhi {
			bestPhi = v
			best = i
		}
	}
	if best < 0 {
		return 0, ErrUndefinedStatistic
	}
	return best, nil
}

// ScanOptions configures a PDM scan.
type ScanOptions struct {
	Bins    int // phase bins per trial period (default 10)
	Workers int // concurrent workers over the grid (default 1)
}

// DefaultScanOptions returns the standard scan configuration: 10 phase bins,
// single worker.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{Bins: 10, Workers: 1}
}

// Scan evaluates phi for every trial period in the grid. Periods whose
// statistic is undefined are recorded as NaN and excluded from Minimum;
// any other phi error aborts the scan. Trial periods are independent, so
// the grid is split across opts.Workers goroutines writing to disjoint
// indices of the result.
func Scan(lc *lightcurve.LightCurve, grid []float64, opts ScanOptions) (*Curve, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, p := range grid {
		if p <= 0 {
			return nil, ErrInvalidPeriod
		}
	}
	if opts.Bins == 0 {
		opts.Bins = 10
	}
	if opts.Bins < 2 {
		return nil, ErrInvalidBinCount
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(grid) {
		workers = len(grid)
	}

	curve := &Curve{
		Periods: append([]float64(nil), grid...),
		Phi:     make([]float64, len(grid)),
	}
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(grid); i += workers {
				v, err := Phi(opts.Bins, grid[i], lc.Time, lc.Flux)
				switch err {
				case nil:
					curve.Phi[i] = v
				case ErrUndefinedStatistic:
					curve.Phi[i] = math.NaN()
				default:
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return curve, nil
}

// PeriodGrid returns n trial periods evenly spaced over [min, max].
// Nil when the bounds are not a positive increasing pair or n < 2.
func PeriodGrid(min, max float64, n int) []float64 {
	if n < 2 || min <= 0 || max <= min {
		return nil
	}
	return floats.Span(make([]float64, n), min, max)
}
