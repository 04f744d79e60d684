package wave

import (
	"math"
	"path/filepath"
	"testing"
)

func TestEncodeWAVRoundTrip(t *testing.T) {
	samples := []float64{0, 0.5, 1, -0.5, -1}
	path := filepath.Join(t.TempDir(), "roundtrip.wav")

	if err := EncodeWAV(path, 8000, samples); err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if src.SampleRate != 8000 {
		t.Fatalf("SampleRate = %d, want 8000", src.SampleRate)
	}
	if src.Len() != len(samples) {
		t.Fatalf("Len() = %d, want %d", src.Len(), len(samples))
	}
	// Load renormalizes, so compare shape rather than exact amplitude.
	for i, want := range samples {
		if math.Abs(src.Samples[i]-want) > 1e-3 {
			t.Fatalf("sample[%d] = %v, want around %v", i, src.Samples[i], want)
		}
	}
}

func TestEncodeWAVClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamped.wav")
	if err := EncodeWAV(path, 8000, []float64{2, -2, 0.25}); err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}
	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Both extremes clamp to full scale.
	if math.Abs(src.Samples[0]-1) > 1e-4 || math.Abs(src.Samples[1]+1) > 1e-4 {
		t.Fatalf("samples = %v, want clamped to +/-1", src.Samples[:2])
	}
}

func TestEncodeWAVSilenceStillDecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silent.wav")
	if err := EncodeWAV(path, 8000, make([]float64, 16)); err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() of silent file succeeded, want ErrSilentSource")
	}
}
