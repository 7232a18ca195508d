package output

import (
	"fmt"
	"io"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) FilesFound(n int) {
	noun := "files"
	if n == 1 {
		noun = "file"
	}
	fmt.Fprintf(f.w, "🔎 Found %d audio %s\n", n, noun)
}

func (f *Formatter) LoadingModel(path string) {
	fmt.Fprintf(f.w, "⏳ Loading whisper model: %s\n", path)
}

func (f *Formatter) ModelLoaded() {
	fmt.Fprintf(f.w, "✅ Model loaded\n")
}

func (f *Formatter) Transcribing(name string) {
	fmt.Fprintf(f.w, "\n📝 Transcribing: %s\n", name)
}

func (f *Formatter) TranscribeFailed(name string, err error) {
	fmt.Fprintf(f.w, "❌ Transcription failed for %s: %v\n", name, err)
}

func (f *Formatter) DocumentSaved(path string) {
	fmt.Fprintf(f.w, "✅ Saved: %s\n", path)
}

func (f *Formatter) BatchComplete(ok, failed int) {
	if failed > 0 {
		fmt.Fprintf(f.w, "\n🏁 Done: %d transcribed, %d failed\n", ok, failed)
		return
	}
	fmt.Fprintf(f.w, "\n🏁 All done: %d transcribed\n", ok)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
