package transcript

import (
	"path/filepath"
	"strings"
)

// AudioExtensions is the set of file extensions recognized when scanning
// directories for audio files. Keys are lowercase, including the dot.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".wma":  true,
	".aac":  true,
}

// AudioFile is one candidate source file for transcription.
type AudioFile struct {
	Path string
	Stem string // base name without extension, used for output naming
	Ext  string
}

// NewAudioFile builds an AudioFile from a filesystem path.
func NewAudioFile(path string) AudioFile {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return AudioFile{
		Path: path,
		Stem: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}

// Name returns the base file name including the extension.
func (f AudioFile) Name() string {
	return f.Stem + f.Ext
}

// Segment is one utterance span of a transcript.
type Segment struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// Transcript is the full result of transcribing one audio file.
//
// Text is reported by the engine separately from the segments; the two are
// not guaranteed to be consistent and are both preserved verbatim.
type Transcript struct {
	Language string // detected language, "unknown" when the engine reports none
	Segments []Segment
	Text     string
}
