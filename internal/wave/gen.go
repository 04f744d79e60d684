package wave

import (
	"fmt"
	"math"
	"strings"
)

// Shape selects a generated waveform type.
type Shape int

const (
	Sine Shape = iota
	Square
	Triangle
	Sawtooth
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "sine"
	}
}

// ParseShape maps a user-supplied name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	default:
		return Sine, fmt.Errorf("unknown wave shape %q", name)
	}
}

// Preset describes a generated test waveform. SamplesPerCycle fixes the
// sample rate relative to the frequency: rate = Freq * SamplesPerCycle.
type Preset struct {
	Shape           Shape
	Freq            float64
	SamplesPerCycle int
	Periods         int
}

// DefaultPreset returns the stock parameters for each shape.
func DefaultPreset(shape Shape) Preset {
	switch shape {
	case Square:
		return Preset{Shape: Square, Freq: 220, SamplesPerCycle: 80, Periods: 20}
	case Triangle:
		return Preset{Shape: Triangle, Freq: 100, SamplesPerCycle: 200, Periods: 5}
	case Sawtooth:
		return Preset{Shape: Sawtooth, Freq: 50, SamplesPerCycle: 120, Periods: 15}
	default:
		return Preset{Shape: Sine, Freq: 440, SamplesPerCycle: 100, Periods: 10}
	}
}

// Generate renders the preset into a normalized mono Source.
func (p Preset) Generate() (*Source, error) {
	if p.Freq <= 0 || p.SamplesPerCycle <= 0 || p.Periods <= 0 {
		return nil, fmt.Errorf("bad preset: freq=%v spc=%d periods=%d",
			p.Freq, p.SamplesPerCycle, p.Periods)
	}

	total := p.SamplesPerCycle * p.Periods
	samples := make([]float64, total)
	for i := range samples {
		// Position within one cycle, [0, 1).
		frac := math.Mod(float64(i)/float64(p.SamplesPerCycle), 1)
		switch p.Shape {
		case Square:
			samples[i] = sign(math.Sin(2 * math.Pi * frac))
		case Triangle:
			samples[i] = rampWave(frac, 0.5)
		case Sawtooth:
			samples[i] = rampWave(frac, 1)
		default:
			samples[i] = math.Sin(2 * math.Pi * frac)
		}
	}

	mono, err := monoNormalize(samples, 1)
	if err != nil {
		return nil, err
	}
	return &Source{
		Name:       p.Shape.String(),
		SampleRate: int(p.Freq * float64(p.SamplesPerCycle)),
		Samples:    mono,
	}, nil
}

// rampWave evaluates a generalized sawtooth at cycle position frac: it rises
// from -1 to 1 over the first width of the cycle and falls back over the
// rest. width 1 is a plain sawtooth, 0.5 a triangle.
func rampWave(frac, width float64) float64 {
	if frac < width {
		return -1 + 2*frac/width
	}
	return 1 - 2*(frac-width)/(1-width)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
