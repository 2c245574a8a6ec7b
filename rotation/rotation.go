// Package rotation combines gospin's rotation period estimators.
package rotation

import (
	"github.com/astroproj/gospin/acf"
	"github.com/astroproj/gospin/lightcurve"
	"github.com/astroproj/gospin/pdm"
	"github.com/astroproj/gospin/periodogram"
)

// Config holds configuration for all period-search methods.
type Config struct {
	PDMBins          int     // phase bins for PDM (default: 10)
	PDMWorkers       int     // concurrent workers for the PDM scan (default: 1)
	PDMFitWindow     int     // grid points per side for the uncertainty fit (0 = whole curve)
	OptimizerMaxIter int     // iteration cap for the uncertainty fit (default: 200)
	ACFInterval      float64 // resampling cadence in days (default: Kepler long cadence)
	ACFSmooth        float64 // ACF smoothing sigma in days (0 = 9 cadences)
	ACFCutoff        float64 // discard ACF peaks at lags up to this many days
	LSMinPeriod      float64 // shortest Lomb-Scargle period in days (default: 0.5)
	LSMaxPeriod      float64 // longest Lomb-Scargle period in days (default: 50)
	LSSamples        int     // Lomb-Scargle frequency samples (default: 100000)
}

// DefaultConfig returns the default rotation measurement configuration.
func DefaultConfig() *Config {
	return &Config{
		PDMBins:          10,
		PDMWorkers:       1,
		OptimizerMaxIter: 200,
		ACFInterval:      acf.IntervalKepler,
		LSMinPeriod:      0.5,
		LSMaxPeriod:      50,
		LSSamples:        100000,
	}
}

// Model measures rotation periods of a single light curve.
type Model struct {
	lc     *lightcurve.LightCurve
	config *Config
}

// NewModel creates a rotation model for the light curve. A nil config uses
// DefaultConfig.
func NewModel(lc *lightcurve.LightCurve, config *Config) *Model {
	if config == nil {
		config = DefaultConfig()
	}
	return &Model{lc: lc, config: config}
}

// LightCurve returns the light curve under analysis.
func (m *Model) LightCurve() *lightcurve.LightCurve {
	return m.lc
}

// PDMResult holds a phase dispersion minimization measurement.
type PDMResult struct {
	Period float64    // best-fit period from the Gaussian dip fit
	Err    float64    // 1-sigma period uncertainty
	Curve  *pdm.Curve // full phi-versus-period curve for diagnostics
}

// PDM measures the rotation period by phase dispersion minimization over
// the trial period grid. When the uncertainty fit diverges the grid-minimum
// period is still returned alongside pdm.ErrOptimizerDivergence, with Err
// set to zero meaning undetermined.
func (m *Model) PDM(grid []float64) (*PDMResult, error) {
	curve, err := pdm.Scan(m.lc, grid, pdm.ScanOptions{
		Bins:    m.config.PDMBins,
		Workers: m.config.PDMWorkers,
	})
	if err != nil {
		return nil, err
	}

	est, err := pdm.EstimateUncertainty(curve, pdm.FitOptions{
		Window:  m.config.PDMFitWindow,
		MaxIter: m.config.OptimizerMaxIter,
	})
	if err != nil {
		idx, minErr := curve.Minimum()
		if minErr != nil {
			return nil, minErr
		}
		return &PDMResult{Period: curve.Periods[idx], Curve: curve}, err
	}
	return &PDMResult{Period: est.Period, Err: est.Err, Curve: curve}, nil
}

// ACFResult holds an autocorrelation measurement.
type ACFResult struct {
	Period float64
	Lags   []float64
	ACF    []float64
}

// ACF measures the rotation period from the autocorrelation function.
func (m *Model) ACF() (*ACFResult, error) {
	res, err := acf.Rotation(m.lc, m.config.ACFInterval, acf.Options{
		Smooth: m.config.ACFSmooth,
		Cutoff: m.config.ACFCutoff,
	})
	if err != nil {
		return nil, err
	}
	return &ACFResult{Period: res.Period, Lags: res.Lags, ACF: res.ACF}, nil
}

// LSResult holds a Lomb-Scargle measurement.
type LSResult struct {
	Period float64
	Freqs  []float64
	Power  []float64
}

// LombScargle measures the rotation period from the Lomb-Scargle
// periodogram. A spectrum with no interior peak returns period 0.
func (m *Model) LombScargle() (*LSResult, error) {
	freqs := periodogram.Frequencies(m.config.LSMinPeriod, m.config.LSMaxPeriod, m.config.LSSamples)
	power, err := periodogram.Power(m.lc, freqs)
	if err != nil {
		return nil, err
	}
	period, ok := periodogram.Peak(freqs, power)
	if !ok {
		period = 0
	}
	return &LSResult{Period: period, Freqs: freqs, Power: power}, nil
}

// Rvar returns the variability amplitude of the light curve.
func (m *Model) Rvar() (float64, error) {
	return m.lc.Rvar()
}
