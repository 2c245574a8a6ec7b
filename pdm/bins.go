package pdm

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Binning holds the assignment of phased samples to fixed-width phase bins
// over [0, 1), with per-bin summary statistics.
type Binning struct {
	NBins  int
	Counts []int     // samples per bin
	Means  []float64 // mean flux per bin (NaN for empty bins)
	Vars   []float64 // sample flux variance per bin (NaN when count < 2)
	Member [][]int   // indices of the samples assigned to each bin
	Edges  []float64 // nbins+1 bin edges over [0, 1]
}

// PhaseBins partitions phased samples into nbins equal-width bins,
// bin k covering [k/nbins, (k+1)/nbins). A phase that rounds to exactly 1
// lands in the last bin. nbins must be at least 2: a single bin is the whole
// light curve and carries no phase information.
func PhaseBins(nbins int, phase, flux []float64) (*Binning, error) {
	if nbins < 2 {
		return nil, ErrInvalidBinCount
	}
	if len(phase) != len(flux) {
		return nil, ErrLengthMismatch
	}

	b := &Binning{
		NBins:  nbins,
		Counts: make([]int, nbins),
		Means:  make([]float64, nbins),
		Vars:   make([]float64, nbins),
		Member: make([][]int, nbins),
		Edges:  make([]float64, nbins+1),
	}
	for k := 0; k <= nbins; k++ {
		b.Edges[k] = float64(k) / float64(nbins)
	}

	for i, p := range phase {
		k := int(p * float64(nbins))
		if k >= nbins {
			k = nbins - 1
		}
		if k < 0 {
			k = 0
		}
		b.Member[k] = append(b.Member[k], i)
	}

	for k := 0; k < nbins; k++ {
		b.Counts[k] = len(b.Member[k])
		if b.Counts[k] == 0 {
			b.Means[k] = math.NaN()
			b.Vars[k] = math.NaN()
			continue
		}
		vals := make([]float64, b.Counts[k])
		for i, j := range b.Member[k] {
			vals[i] = flux[j]
		}
		b.Means[k] = stat.Mean(vals, nil)
		if b.Counts[k] < 2 {
			b.Vars[k] = math.NaN()
			continue
		}
		b.Vars[k] = stat.Variance(vals, nil)
	}
	return b, nil
}
