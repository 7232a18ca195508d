package usecases

import (
	"context"
	"fmt"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
	"github.com/HKCyber20/whisper/internal/engine"
)

// Transcribe runs one audio file through the speech-to-text engine.
type Transcribe struct {
	Engine engine.Engine
}

// Execute transcribes the given file. A failure here is per-file: the caller
// logs it and continues with the rest of the batch.
func (t *Transcribe) Execute(ctx context.Context, file transcript.AudioFile) (*transcript.Transcript, error) {
	tr, err := t.Engine.Transcribe(ctx, file.Path)
	if err != nil {
		return nil, fmt.Errorf("transcribing %s: %w", file.Name(), err)
	}
	if tr.Language == "" {
		tr.Language = "unknown"
	}
	return tr, nil
}
