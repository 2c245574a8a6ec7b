package pdm

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Gaussian evaluates the four-parameter peak model
// b + a*exp(-(x-mu)^2 / (2 sigma^2)). A dispersion dip has a < 0 with b
// near the incoherent level of 1.
func Gaussian(a, b, mu, sigma, x float64) float64 {
	d := x - mu
	return b + a*math.Exp(-d*d/(2*sigma*sigma))
}

// NLL is the negative log-likelihood of the curve samples under the Gaussian
// peak model with unit-weight Gaussian residuals: 0.5 * sum (y - model)^2.
// params is [a, b, mu, sigma]. Non-finite model values are penalized.
func NLL(params []float64, x, y []float64) float64 {
	if len(params) != 4 {
		return math.Inf(1)
	}
	a, b, mu, sigma := params[0], params[1], params[2], params[3]
	if sigma == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for i := range x {
		r := y[i] - Gaussian(a, b, mu, sigma, x[i])
		sum += r * r
	}
	if math.IsNaN(sum) {
		return math.Inf(1)
	}
	return 0.5 * sum
}

// GaussianFit holds the fitted peak model parameters. Mu is the best-fit
// period and Sigma its 1-sigma width.
type GaussianFit struct {
	A     float64
	B     float64
	Mu    float64
	Sigma float64
}

// FitOptions configures the uncertainty fit.
type FitOptions struct {
	// Window is the number of grid points kept on each side of the minimum.
	// Zero or negative fits the whole curve.
	Window int
	// MaxIter caps the minimizer's iterations (default 200).
	MaxIter int
	// Minimizer overrides the optimization backend (default NelderMead).
	Minimizer Minimizer
}

// DefaultFitOptions fits the whole curve with Nelder-Mead capped at 200
// iterations.
func DefaultFitOptions() FitOptions {
	return FitOptions{MaxIter: 200}
}

// FitGaussian fits the peak model to (x, y) seeded at index seed, the
// location of the dispersion minimum. The fit fails with
// ErrOptimizerDivergence when the minimizer diverges, the fitted center
// leaves the fitting window, or the fitted width is not a positive finite
// value.
func FitGaussian(x, y []float64, seed int, opts FitOptions) (*GaussianFit, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) < 5 || seed < 0 || seed >= len(x) {
		return nil, ErrOptimizerDivergence
	}

	span := x[len(x)-1] - x[0]
	dx := span / float64(len(x)-1)

	b0, err := stats.Median(y)
	if err != nil {
		return nil, err
	}
	a0 := y[seed] - b0
	if a0 == 0 {
		a0 = -1e-3
	}
	mu0 := x[seed]
	sigma0 := math.Max(2*dx, span/20)

	m := opts.Minimizer
	if m == nil {
		m = &NelderMead{MaxIter: opts.MaxIter}
	}

	params, err := m.Minimize(func(p []float64) float64 {
		return NLL(p, x, y)
	}, []float64{a0, b0, mu0, sigma0})
	if err != nil {
		return nil, err
	}

	fit := &GaussianFit{
		A:     params[0],
		B:     params[1],
		Mu:    params[2],
		Sigma: math.Abs(params[3]),
	}
	if fit.Sigma <= 0 || math.IsNaN(fit.Sigma) || fit.Sigma > span {
		return nil, ErrOptimizerDivergence
	}
	if fit.Mu < x[0] || fit.Mu > x[len(x)-1] {
		return nil, ErrOptimizerDivergence
	}
	return fit, nil
}

// Estimate is a rotation period with its 1-sigma uncertainty.
type Estimate struct {
	Period float64
	Err    float64
	Fit    *GaussianFit
}

// EstimateUncertainty locates the minimum of the PDM curve, fits the
// Gaussian peak model to the dip, and returns the fitted period and
// uncertainty. A failed fit surfaces as ErrOptimizerDivergence: the
// uncertainty is undetermined, never silently zero.
func EstimateUncertainty(curve *Curve, opts FitOptions) (*Estimate, error) {
	idx, err := curve.Minimum()
	if err != nil {
		return nil, err
	}

	lo, hi := 0, len(curve.Periods)
	if opts.Window > 0 {
		lo = idx - opts.Window
		if lo < 0 {
			lo = 0
		}
		hi = idx + opts.Window + 1
		if hi > len(curve.Periods) {
			hi = len(curve.Periods)
		}
	}

	// Keep only the defined samples of the window.
	x := make([]float64, 0, hi-lo)
	y := make([]float64, 0, hi-lo)
	seed := 0
	for i := lo; i < hi; i++ {
		if math.IsNaN(curve.Phi[i]) {
			continue
		}
		if i == idx {
			seed = len(x)
		}
		x = append(x, curve.Periods[i])
		y = append(y, curve.Phi[i])
	}

	fit, err := FitGaussian(x, y, seed, opts)
	if err != nil {
		return nil, err
	}
	return &Estimate{Period: fit.Mu, Err: fit.Sigma, Fit: fit}, nil
}
