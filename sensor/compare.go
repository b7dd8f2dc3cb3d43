package sensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// Comparison is one sensor's simulated signal against the reference series
// resampled onto the simulated timebase.
type Comparison struct {
	Label            string
	T, Sim, Ref, Err []float64
	// RMS is the root-mean-square of Err, Bias its mean.
	RMS, Bias float64
}

// Compare resamples the reference signal (refT, refP) onto the simulated
// timebase t with piecewise-linear interpolation and computes the pointwise
// and summary errors. Simulated times outside the reference range are
// clamped to its endpoints. Repeated or rewound reference timestamps, as a
// solver restart can leave behind, are dropped rather than treated as
// errors; the first sample at each time wins.
func Compare(label string, t, sim, refT, refP []float64) (*Comparison, error) {
	if len(t) != len(sim) {
		return nil, fmt.Errorf(
			"Sensor '%s' has %d times but %d samples.", label, len(t), len(sim),
		)
	}
	if len(refT) != len(refP) {
		return nil, fmt.Errorf(
			"Reference series for '%s' has %d times but %d samples.",
			label, len(refT), len(refP),
		)
	}

	refT, refP = monotone(refT, refP)
	if len(refT) < 2 {
		return nil, fmt.Errorf(
			"Reference series for '%s' has %d distinct samples, but at "+
				"least 2 are needed to resample.", label, len(refT),
		)
	}

	// refT is strictly increasing now, so Fit cannot panic.
	var pl interp.PiecewiseLinear
	if err := pl.Fit(refT, refP); err != nil {
		return nil, err
	}

	c := &Comparison{
		Label: label,
		T:     t,
		Sim:   sim,
		Ref:   make([]float64, len(t)),
		Err:   make([]float64, len(t)),
	}

	sq := make([]float64, len(t))
	for i, x := range t {
		if x < refT[0] {
			x = refT[0]
		} else if x > refT[len(refT)-1] {
			x = refT[len(refT)-1]
		}
		c.Ref[i] = pl.Predict(x)
		c.Err[i] = sim[i] - c.Ref[i]
		sq[i] = c.Err[i] * c.Err[i]
	}

	if len(t) > 0 {
		c.RMS = math.Sqrt(stat.Mean(sq, nil))
		c.Bias = stat.Mean(c.Err, nil)
	}
	return c, nil
}

// monotone filters a series down to its strictly increasing time
// subsequence, dropping any sample whose timestamp does not advance past
// the last kept one.
func monotone(t, p []float64) ([]float64, []float64) {
	mt := make([]float64, 0, len(t))
	mp := make([]float64, 0, len(t))
	for i := range t {
		if len(mt) > 0 && t[i] <= mt[len(mt)-1] {
			continue
		}
		mt = append(mt, t[i])
		mp = append(mp, p[i])
	}
	return mt, mp
}

// CompareAll pairs up the matching columns of a simulated and a reference
// series. Both must have been read with the same column list.
func CompareAll(sim, ref *Series) ([]*Comparison, error) {
	if len(sim.P) != len(ref.P) {
		return nil, fmt.Errorf(
			"Simulated series has %d sensors, reference has %d.",
			len(sim.P), len(ref.P),
		)
	}

	cs := make([]*Comparison, len(sim.P))
	for i := range sim.P {
		label := fmt.Sprintf("P%d", sim.Cols[i])
		c, err := Compare(label, sim.T, sim.P[i], ref.T, ref.P[i])
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}
