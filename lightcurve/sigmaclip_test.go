package lightcurve

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmaClipRemovesOutliers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	n := 500
	time := make([]float64, n)
	flux := make([]float64, n)
	fluxErr := make([]float64, n)
	for i := 0; i < n; i++ {
		time[i] = float64(i) * 0.1
		flux[i] = math.Sin(time[i]/3) + rng.NormFloat64()*0.05
		fluxErr[i] = 0.05
	}
	// Inject flare-like spikes well outside 5 sigma.
	outliers := []int{50, 180, 333}
	for _, i := range outliers {
		flux[i] += 30
	}

	lc, err := New(time, flux, fluxErr)
	require.NoError(t, err)

	clipped, err := lc.SigmaClip(5, 10)
	require.NoError(t, err)

	assert.Equal(t, n-len(outliers), clipped.Len())
	for _, f := range clipped.Flux {
		assert.Less(t, f, 10.0)
	}
	// Receiver untouched.
	assert.Equal(t, n, lc.Len())
}

func TestSigmaClipNoOutliers(t *testing.T) {
	time, flux, fluxErr := evenCurve(200, math.Sin)
	lc, err := New(time, flux, fluxErr)
	require.NoError(t, err)

	clipped, err := lc.SigmaClip(5, 10)
	require.NoError(t, err)
	assert.Equal(t, lc.Len(), clipped.Len())
}

func TestSigmaClipInvalidThreshold(t *testing.T) {
	time, flux, fluxErr := evenCurve(100, math.Sin)
	lc, err := New(time, flux, fluxErr)
	require.NoError(t, err)

	_, err = lc.SigmaClip(0, 10)
	assert.ErrorIs(t, err, ErrInvalidClip)
}

func TestSigmaClipConstantFlux(t *testing.T) {
	time, flux, fluxErr := evenCurve(100, func(float64) float64 { return 1 })
	lc, err := New(time, flux, fluxErr)
	require.NoError(t, err)

	clipped, err := lc.SigmaClip(3, 10)
	require.NoError(t, err)
	assert.Equal(t, lc.Len(), clipped.Len())
}
