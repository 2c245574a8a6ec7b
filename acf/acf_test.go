package acf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroproj/gospin/lightcurve"
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

func TestRotationRecoversPeriod(t *testing.T) {
	lc := sineCurve(t, 1000, 100, 10, 0.01)

	res, err := Rotation(lc, 0.1, Options{Smooth: 0.2, Cutoff: 1})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, res.Period, 0.5)
	require.NotEmpty(t, res.Peaks)
	assert.Equal(t, res.Period, res.Peaks[0].Lag)
	assert.Len(t, res.Lags, len(res.ACF))
}

func TestRotationDefaultSmoothing(t *testing.T) {
	lc := sineCurve(t, 2000, 200, 20, 0.05)

	res, err := Rotation(lc, 0.1, DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Period, 1.0)
}

func TestRotationConstantFlux(t *testing.T) {
	n := 100
	time := make([]float64, n)
	flux := make([]float64, n)
	fluxErr := make([]float64, n)
	for i := range time {
		time[i] = float64(i) * 0.1
		flux[i] = 1
		fluxErr[i] = 0.01
	}
	lc, err := lightcurve.New(time, flux, fluxErr)
	require.NoError(t, err)

	_, err = Rotation(lc, 0.1, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoPeaks)
}

func TestRotationInvalidInterval(t *testing.T) {
	lc := sineCurve(t, 100, 10, 2, 0.01)
	_, err := Rotation(lc, 0, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestAutocorrelateZeroLag(t *testing.T) {
	x := []float64{1, 2, 3, 2, 1, 2, 3, 2, 1, 2, 3, 2}
	corr := autocorrelate(x)
	require.NotNil(t, corr)
	assert.InDelta(t, 1.0, corr[0], 1e-12)
	for _, c := range corr {
		assert.LessOrEqual(t, math.Abs(c), 1.0+1e-9)
	}
}

func TestGaussianSmoothPreservesFlat(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 2.5
	}
	out := gaussianSmooth(x, 3)
	for _, v := range out {
		assert.InDelta(t, 2.5, v, 1e-9)
	}
}
