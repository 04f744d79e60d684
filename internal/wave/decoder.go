package wave

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// pcm is a fully decoded audio asset: interleaved float samples in [-1, 1].
type pcm struct {
	sampleRate int
	channels   int
	samples    []float64
}

var supportedExts = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".flac": true,
	".ogg":  true,
}

// IsSupportedExt reports whether the extension names a decodable format.
func IsSupportedExt(ext string) bool {
	return supportedExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of decodable formats.
func SupportedExtsList() string {
	return ".wav, .mp3, .flac, .ogg"
}

// decodeFile picks a decoder by extension and reads the whole asset.
func decodeFile(path string) (*pcm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	case ".flac":
		return decodeFLAC(f)
	case ".ogg":
		return decodeOGG(f)
	default:
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}
}

func decodeWAV(f *os.File) (*pcm, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	samples := make([]float64, len(buf.Data))
	switch bitDepth {
	case 8:
		// 8-bit WAV is unsigned
		for i, v := range buf.Data {
			samples[i] = float64(v-128) / 128.0
		}
	default:
		scale := float64(int64(1) << (bitDepth - 1))
		for i, v := range buf.Data {
			samples[i] = float64(v) / scale
		}
	}

	return &pcm{
		sampleRate: buf.Format.SampleRate,
		channels:   buf.Format.NumChannels,
		samples:    samples,
	}, nil
}

func decodeMP3(f *os.File) (*pcm, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}

	// go-mp3 always emits 16-bit stereo at the stream's sample rate.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading MP3 PCM data: %w", err)
	}
	raw = raw[:len(raw)-len(raw)%2]

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		s := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = float64(s) / 32768.0
	}

	return &pcm{
		sampleRate: dec.SampleRate(),
		channels:   2,
		samples:    samples,
	}, nil
}

func decodeFLAC(f *os.File) (*pcm, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	var samples []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading FLAC frame: %w", err)
		}
		nSamples := int(frame.Subframes[0].NSamples)
		for i := 0; i < nSamples; i++ {
			for ch := 0; ch < channels; ch++ {
				samples = append(samples, float64(frame.Subframes[ch].Samples[i])/scale)
			}
		}
	}

	return &pcm{
		sampleRate: int(info.SampleRate),
		channels:   channels,
		samples:    samples,
	}, nil
}

func decodeOGG(f *os.File) (*pcm, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}

	return &pcm{
		sampleRate: format.SampleRate,
		channels:   format.Channels,
		samples:    samples,
	}, nil
}
