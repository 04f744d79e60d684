// Package wave loads, generates and writes the audio assets the envelope
// editor works on. A loaded Source is mono, normalized and read-only for the
// rest of the session.
package wave

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrSilentSource means the asset had no nonzero sample, so the
// normalization divisor would be zero. The session for that waveform cannot
// proceed.
var ErrSilentSource = errors.New("audio asset is empty or silent")

// Source is one loaded waveform. Samples are mono, normalized to a peak
// magnitude of exactly 1, and must not be mutated after Load.
type Source struct {
	Path       string
	Name       string
	SampleRate int
	Samples    []float64
	Meta       Metadata
}

// Len returns the sample count, which fixes the envelope length for the
// whole session.
func (s *Source) Len() int { return len(s.Samples) }

// Load decodes an audio file, collapses it to mono by per-frame channel
// averaging and normalizes by the global peak magnitude.
func Load(path string) (*Source, error) {
	p, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	mono, err := monoNormalize(p.samples, p.channels)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	base := filepath.Base(path)
	return &Source{
		Path:       path,
		Name:       strings.TrimSuffix(base, filepath.Ext(base)),
		SampleRate: p.sampleRate,
		Samples:    mono,
		Meta:       ReadMetadata(path),
	}, nil
}

// monoNormalize averages interleaved channels into one sequence and divides
// by the peak magnitude. ErrSilentSource when that peak is zero.
func monoNormalize(samples []float64, channels int) ([]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("bad channel count: %d", channels)
	}
	frames := len(samples) / channels
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += samples[i*channels+ch]
		}
		mono[i] = sum / float64(channels)
	}

	maxAbs := 0.0
	for _, v := range mono {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return nil, ErrSilentSource
	}
	floats.Scale(1/maxAbs, mono)
	return mono, nil
}
