package media

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// errNeedsConversion marks a valid WAV whose format the engine cannot take
// as-is; LoadSamples routes it through ffmpeg instead.
var errNeedsConversion = errors.New("wav format needs conversion")

// DecodeWAV decodes a 16 kHz mono PCM WAV into float32 samples normalized
// to [-1.0, 1.0].
func DecodeWAV(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: not a valid WAV file", path)
	}
	if dec.NumChans != 1 || dec.SampleRate != SampleRate {
		return nil, errNeedsConversion
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding WAV %s: %w", path, err)
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	samples := make([]float32, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = float32(s) / scale
	}
	return samples, nil
}
