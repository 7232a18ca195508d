package engine

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
	"github.com/HKCyber20/whisper/internal/media"
)

// Whisper wraps a whisper.cpp model for speech-to-text. The model is loaded
// once and reused for every file in a batch; a fresh decoding context is
// created per call.
type Whisper struct {
	model whisper.Model
	opts  Options
}

// NewWhisper loads the ggml model at modelPath. The caller must call Close
// when done.
func NewWhisper(modelPath string, opts Options) (*Whisper, error) {
	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, &LoadError{ModelPath: modelPath, Err: err}
	}
	return &Whisper{model: model, opts: opts}, nil
}

// Close releases the whisper model resources.
func (w *Whisper) Close() error {
	if w.model != nil {
		return w.model.Close()
	}
	return nil
}

// Transcribe runs speech recognition on the audio file at path and maps the
// engine output into a Transcript. The detected language falls back to
// "unknown" when the engine reports none.
func (w *Whisper) Transcribe(ctx context.Context, path string) (*transcript.Transcript, error) {
	samples, err := media.LoadSamples(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: empty audio", path)
	}

	wctx, err := w.model.NewContext()
	if err != nil {
		return nil, fmt.Errorf("creating whisper context: %w", err)
	}

	threads := w.opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	wctx.SetThreads(uint(threads))
	wctx.SetTranslate(false)
	// Token timestamps sharpen the segment boundaries.
	wctx.SetTokenTimestamps(true)

	lang := strings.TrimSpace(w.opts.Language)
	if lang != "" && w.model.IsMultilingual() {
		if err := wctx.SetLanguage(lang); err != nil {
			return nil, fmt.Errorf("setting language %q: %w", lang, err)
		}
	}

	// The bindings have no context plumbing; abort via the encoder-begin
	// callback when the caller cancels.
	encoderBegin := func() bool { return ctx.Err() == nil }
	if err := wctx.Process(samples, encoderBegin, nil, nil); err != nil {
		return nil, fmt.Errorf("transcribing %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tr := &transcript.Transcript{Language: "unknown"}
	if detected := wctx.DetectedLanguage(); detected != "" {
		tr.Language = detected
	}

	var text []string
	for {
		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading segment: %w", err)
		}
		tr.Segments = append(tr.Segments, transcript.Segment{
			Start: seg.Start.Seconds(),
			End:   seg.End.Seconds(),
			Text:  seg.Text,
		})
		text = append(text, strings.TrimSpace(seg.Text))
	}
	tr.Text = strings.Join(text, " ")

	return tr, nil
}
