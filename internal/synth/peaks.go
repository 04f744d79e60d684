package synth

import (
	"github.com/World-hackr/Advance-stacked-encoding/internal/envelope"
)

// PeakFactor records the rescaling decision at one detected extremum.
type PeakFactor struct {
	Index    int     // sample index of the extremum
	Original float64 // source amplitude at that index
	Target   float64 // drawn envelope value (offset applied)
	Factor   float64 // Target / Original, 1.0 when Original is zero
}

// PeakRescale reshapes the whole waveform through its peaks: every local
// extremum is scaled to meet the drawn envelope, the per-extremum factors are
// linearly interpolated across all samples, and the product is clipped to
// [-1, 1].
type PeakRescale struct{}

func (PeakRescale) Name() string { return "peak" }

// localExtrema returns the indices of all strict local maxima of samples and
// of -samples, merged in ascending order. Endpoints are never extrema.
func localExtrema(samples []float64) []int {
	var idx []int
	for i := 1; i < len(samples)-1; i++ {
		if samples[i] > samples[i-1] && samples[i] > samples[i+1] {
			idx = append(idx, i)
		} else if samples[i] < samples[i-1] && samples[i] < samples[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}

// Factors computes the per-extremum scale records for the given source and
// envelope. The slice is empty when the source has no interior extrema.
func (PeakRescale) Factors(samples []float64, env *envelope.Envelope) ([]PeakFactor, error) {
	if env.Len() != len(samples) {
		return nil, ErrLengthMismatch
	}
	pos, neg := env.Positive(), env.Negative()
	offset := env.Offset()

	var factors []PeakFactor
	for _, i := range localExtrema(samples) {
		v := samples[i]
		target := neg[i] + offset
		if v >= 0 {
			target = pos[i] + offset
		}
		factor := 1.0
		if v != 0 {
			factor = target / v
		}
		factors = append(factors, PeakFactor{
			Index:    i,
			Original: v,
			Target:   target,
			Factor:   factor,
		})
	}
	return factors, nil
}

func (p PeakRescale) Apply(samples []float64, env *envelope.Envelope) ([]float64, error) {
	factors, err := p.Factors(samples, env)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	if len(factors) == 0 {
		// No anchors to interpolate between: leave the wave untouched.
		copy(out, samples)
		return out, nil
	}

	// Piecewise linear interpolation of the factor over the full index
	// range, held flat before the first and after the last extremum.
	seg := 0
	for i := range samples {
		out[i] = clip(samples[i]*factorAt(factors, &seg, i), -1, 1)
	}
	return out, nil
}

// factorAt evaluates the factor polyline at index i. Indices are visited in
// ascending order, so seg advances monotonically.
func factorAt(factors []PeakFactor, seg *int, i int) float64 {
	if i <= factors[0].Index {
		return factors[0].Factor
	}
	last := len(factors) - 1
	if i >= factors[last].Index {
		return factors[last].Factor
	}
	for *seg < last-1 && i > factors[*seg+1].Index {
		*seg++
	}
	a, b := factors[*seg], factors[*seg+1]
	t := float64(i-a.Index) / float64(b.Index-a.Index)
	return a.Factor + (b.Factor-a.Factor)*t
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
