package player

import (
	"encoding/binary"
	"testing"
)

func frames(pcm []byte) [][2]int16 {
	out := make([][2]int16, len(pcm)/4)
	for i := range out {
		out[i][0] = int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		out[i][1] = int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
	}
	return out
}

func TestResamplePassthroughUpmixesToStereo(t *testing.T) {
	pcm := resampleStereo16([]float64{0, 0.5, -0.5}, previewSampleRate)
	got := frames(pcm)
	if len(got) != 3 {
		t.Fatalf("frames = %d, want 3", len(got))
	}
	want := []int16{0, 16384, -16384}
	for i, w := range want {
		if got[i][0] != w || got[i][1] != w {
			t.Fatalf("frame %d = %v, want both channels %d", i, got[i], w)
		}
	}
}

func TestResampleDoublesFrameCount(t *testing.T) {
	pcm := resampleStereo16([]float64{0, 1}, previewSampleRate/2)
	got := frames(pcm)
	if len(got) != 4 {
		t.Fatalf("frames = %d, want 4", len(got))
	}
	// Interpolated midpoint between 0 and 1.
	if got[1][0] != 16384 {
		t.Fatalf("frame 1 = %v, want interpolated 16384", got[1])
	}
	// Past the last source sample the value holds.
	if got[3][0] != 32767 {
		t.Fatalf("frame 3 = %v, want held 32767", got[3])
	}
}

func TestResampleClampsFullScale(t *testing.T) {
	pcm := resampleStereo16([]float64{1.5, -1.5}, previewSampleRate)
	got := frames(pcm)
	if got[0][0] != 32767 {
		t.Fatalf("frame 0 = %v, want clamped 32767", got[0])
	}
	if got[1][0] != -32768 {
		t.Fatalf("frame 1 = %v, want clamped -32768", got[1])
	}
}
