// Package synth turns a drawn envelope into a modified amplitude sequence.
// Two strategies exist: direct substitution, which overwrites each sample
// with its envelope value, and peak-anchored rescaling, which reshapes the
// source through per-extremum scale factors so its fine structure survives.
package synth

import (
	"errors"

	"github.com/World-hackr/Advance-stacked-encoding/internal/envelope"
)

// ErrLengthMismatch means the envelope was not sized for the sample sequence.
// That is a construction bug, not a user error; callers must surface it.
var ErrLengthMismatch = errors.New("envelope length does not match sample count")

// Strategy converts (samples, envelope) into a new amplitude sequence.
// Implementations are pure: the input slice is never modified and equal
// inputs produce equal outputs.
type Strategy interface {
	Name() string
	Apply(samples []float64, env *envelope.Envelope) ([]float64, error)
}

// DirectSubstitution replaces each sample outright with the drawn value for
// its sign side plus the vertical offset. Samples at exactly zero route to
// the positive side, matching stroke routing. Output is not clipped.
type DirectSubstitution struct{}

func (DirectSubstitution) Name() string { return "direct" }

func (DirectSubstitution) Apply(samples []float64, env *envelope.Envelope) ([]float64, error) {
	if env.Len() != len(samples) {
		return nil, ErrLengthMismatch
	}
	pos, neg := env.Positive(), env.Negative()
	offset := env.Offset()

	out := make([]float64, len(samples))
	for i, v := range samples {
		if v >= 0 {
			out[i] = pos[i] + offset
		} else {
			out[i] = neg[i] + offset
		}
	}
	return out, nil
}

// StripOffset returns a copy of out with the envelope's vertical offset
// removed. The offset is a display aid; exported audio should not carry the
// DC shift.
func StripOffset(out []float64, offset float64) []float64 {
	stripped := make([]float64, len(out))
	for i, v := range out {
		stripped[i] = v - offset
	}
	return stripped
}
