package rotation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroproj/gospin/lightcurve"
	"github.com/astroproj/gospin/pdm"
)

func sineCurve(t *testing.T, n int, baseline, period, noise float64) *lightcurve.LightCurve {
	t.Helper()
	rng := rand.New(rand.NewSource(42))

	time := make([]float64, n)
	flux := make([]float64, n)
	fluxErr := make([]float64, n)
	omega := 2 * math.Pi / period
	for i := 0; i < n; i++ {
		time[i] = baseline * float64(i) / float64(n-1)
		flux[i] = math.Sin(omega*time[i]) + rng.NormFloat64()*noise
		fluxErr[i] = noise
	}
	lc, err := lightcurve.New(time, flux, fluxErr)
	require.NoError(t, err)
	return lc
}

func TestModelMethodsAgree(t *testing.T) {
	lc := sineCurve(t, 1000, 100, 10, 0.01)

	cfg := DefaultConfig()
	cfg.PDMWorkers = 4
	cfg.ACFInterval = 0.1
	cfg.ACFCutoff = 1
	cfg.LSMinPeriod = 5
	cfg.LSMaxPeriod = 15
	cfg.LSSamples = 2000
	model := NewModel(lc, cfg)

	pdmRes, err := model.PDM(pdm.PeriodGrid(5, 15, 201))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, pdmRes.Period, 0.1)
	assert.Greater(t, pdmRes.Err, 0.0)
	assert.Less(t, pdmRes.Err, 0.5)
	require.NotNil(t, pdmRes.Curve)

	acfRes, err := model.ACF()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, acfRes.Period, 1.0)

	lsRes, err := model.LombScargle()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, lsRes.Period, 0.1)

	rvar, err := model.Rvar()
	require.NoError(t, err)
	assert.Greater(t, rvar, 1.5)
}

func TestModelNilConfig(t *testing.T) {
	lc := sineCurve(t, 100, 10, 2, 0.01)
	model := NewModel(lc, nil)
	assert.Equal(t, lc, model.LightCurve())

	// Defaults should drive a successful PDM scan.
	res, err := model.PDM(pdm.PeriodGrid(1, 4, 100))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Period, 0.1)
}

func TestModelPDMConstantFlux(t *testing.T) {
	n := 100
	time := make([]float64, n)
	flux := make([]float64, n)
	fluxErr := make([]float64, n)
	for i := range time {
		time[i] = float64(i)
		flux[i] = 1
		fluxErr[i] = 0.01
	}
	lc, err := lightcurve.New(time, flux, fluxErr)
	require.NoError(t, err)

	_, err = NewModel(lc, nil).PDM(pdm.PeriodGrid(2, 20, 50))
	assert.ErrorIs(t, err, pdm.ErrUndefinedStatistic)
}

func TestModelPDMUncertaintyUndetermined(t *testing.T) {
	lc := sineCurve(t, 1000, 100, 10, 0.01)

	// A one-point-per-side window starves the fit: the period survives,
	// the uncertainty does not.
	cfg := DefaultConfig()
	cfg.PDMFitWindow = 1
	model := NewModel(lc, cfg)

	res, err := model.PDM(pdm.PeriodGrid(5, 15, 201))
	assert.ErrorIs(t, err, pdm.ErrOptimizerDivergence)
	require.NotNil(t, res)
	assert.InDelta(t, 10.0, res.Period, 0.1)
	assert.Zero(t, res.Err)
}
