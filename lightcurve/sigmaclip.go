package lightcurve

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// ErrInvalidClip is returned for a non-positive clip threshold.
var ErrInvalidClip = errors.New("lightcurve: nsigma must be positive")

// SigmaClip iteratively rejects flux outliers more than nsigma sample
// standard deviations from the median. Clipping repeats until no points are
// rejected, fewer than MinPoints remain, or maxIter passes have run
// (maxIter <= 0 means a single pass). Returns a new light curve; the
// receiver is unchanged.
func (lc *LightCurve) SigmaClip(nsigma float64, maxIter int) (*LightCurve, error) {
	if nsigma <= 0 {
		return nil, ErrInvalidClip
	}
	if maxIter <= 0 {
		maxIter = 1
	}

	cur := lc.Copy()
	for iter := 0; iter < maxIter; iter++ {
		med, err := stats.Median(cur.Flux)
		if err != nil {
			return nil, err
		}
		std := cur.Std()
		if std == 0 {
			break
		}

		keep := make([]int, 0, cur.Len())
		for i, f := range cur.Flux {
			if f >= med-nsigma*std && f <= med+nsigma*std {
				keep = append(keep, i)
			}
		}
		if len(keep) == cur.Len() {
			break
		}
		if len(keep) < MinPoints {
			// Clipping this aggressively would leave too little data.
			break
		}
		cur = cur.selectIdx(keep)
	}
	return cur, nil
}
