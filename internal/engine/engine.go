// Package engine provides speech-to-text backends.
//
// The only shipped backend is whisper.cpp via its Go bindings; the interface
// exists so the transcription pipeline can be exercised with a substitute
// engine in tests.
package engine

import (
	"context"
	"fmt"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
)

// Engine converts an audio file into a transcript.
type Engine interface {
	// Transcribe runs speech recognition on the audio file at path.
	Transcribe(ctx context.Context, path string) (*transcript.Transcript, error)
	// Close releases backend resources.
	Close() error
}

// Options configures an engine.
type Options struct {
	// Language is the fixed target language (e.g. "zh", "en").
	// "auto" enables engine-side detection.
	Language string
	// Threads is the decoder thread count. 0 uses runtime.NumCPU().
	Threads int
}

// LoadError reports a failure to initialize the model. It is fatal: the
// entrypoint prints remediation guidance and exits before any file is
// processed.
type LoadError struct {
	ModelPath string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading whisper model %q: %v", e.ModelPath, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
