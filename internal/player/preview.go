// Package player previews synthesized audio on the default output device.
// It is an external collaborator of the transformation core: playback blocks
// between core operations, never concurrently with them.
package player

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	previewSampleRate = 48000
	previewChannels   = 2
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   previewSampleRate,
			ChannelCount: previewChannels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// Preview plays mono float samples and blocks until playback completes.
// The device context runs at a fixed 48 kHz stereo, so the samples are
// linearly resampled and upmixed first.
func Preview(sampleRate int, samples []float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("bad sample rate: %d", sampleRate)
	}
	if len(samples) == 0 {
		return nil
	}

	ctx, err := initOto()
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	pcm := resampleStereo16(samples, sampleRate)
	p := ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	for p.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}
	return p.Close()
}

// resampleStereo16 converts mono floats at srcRate into interleaved stereo
// s16le bytes at the preview rate, interpolating linearly between source
// samples.
func resampleStereo16(samples []float64, srcRate int) []byte {
	outFrames := int(int64(len(samples)) * previewSampleRate / int64(srcRate))
	if outFrames == 0 {
		outFrames = 1
	}

	out := make([]byte, outFrames*previewChannels*2)
	for i := 0; i < outFrames; i++ {
		srcPos := float64(i) * float64(srcRate) / previewSampleRate
		lo := int(srcPos)
		if lo >= len(samples)-1 {
			lo = len(samples) - 1
		}
		v := samples[lo]
		if lo < len(samples)-1 {
			frac := srcPos - float64(lo)
			v += (samples[lo+1] - v) * frac
		}

		s := int16(clampInt(int(math.Round(v*32767)), -32768, 32767))
		off := i * previewChannels * 2
		binary.LittleEndian.PutUint16(out[off:], uint16(s))
		binary.LittleEndian.PutUint16(out[off+2:], uint16(s))
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
