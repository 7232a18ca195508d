// Package media loads audio files as the 16 kHz mono float32 PCM that the
// whisper engine consumes. WAV files already in that format are decoded
// directly; everything else goes through ffmpeg.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// SampleRate is the PCM sample rate whisper models expect.
const SampleRate = 16000

// CheckFFmpeg verifies that ffmpeg is available on PATH.
func CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found. Install with: brew install ffmpeg")
	}
	return nil
}

// LoadSamples reads the audio file at path and returns mono 16 kHz float32
// samples normalized to [-1.0, 1.0]. Non-WAV containers and WAVs at other
// rates or channel counts are converted with ffmpeg first.
func LoadSamples(ctx context.Context, path string) ([]float32, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		samples, err := DecodeWAV(path)
		if err == nil {
			return samples, nil
		}
		if !errors.Is(err, errNeedsConversion) {
			return nil, err
		}
	}

	wavPath, err := convertTo16kMonoWAV(ctx, path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	return DecodeWAV(wavPath)
}

// convertTo16kMonoWAV runs ffmpeg to produce a temporary 16 kHz mono WAV.
// The caller removes the returned file.
func convertTo16kMonoWAV(ctx context.Context, path string) (string, error) {
	tmp, err := os.CreateTemp("", "whisper-md-*.wav")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", path,
		"-ac", "1",
		"-ar", fmt.Sprint(SampleRate),
		"-f", "wav",
		tmp.Name(),
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("ffmpeg: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return tmp.Name(), nil
}
