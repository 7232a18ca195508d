package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
}

func sampleTranscript() *transcript.Transcript {
	return &transcript.Transcript{
		Language: "zh",
		Segments: []transcript.Segment{
			{Start: 0, End: 5.4, Text: " hello "},
			{Start: 5.4, End: 12.9, Text: "world"},
		},
		Text: "  hello world  ",
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{7.2, "00:07"},
		{59.9, "00:59"}, // truncated, not rounded
		{61, "01:01"},
		{3599.999, "59:59"},
		{3600, "01:00:00"},
		{3661.2, "01:01:01"},
		{7325, "02:02:05"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatTimestamp(c.seconds), "formatTimestamp(%v)", c.seconds)
	}
}

func TestRenderDocument(t *testing.T) {
	r := &RenderMarkdown{Now: fixedNow}
	got := r.render(sampleTranscript(), transcript.NewAudioFile("/tmp/audio/talk.wav"))

	want := "# talk\n" +
		"\n" +
		"> Generated: 2025-03-14 09:26:53  \n" +
		"> Source: `talk.wav`  \n" +
		"> Language: zh\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## Transcript\n" +
		"\n" +
		"**[00:00 - 00:05]** hello\n" +
		"\n" +
		"**[00:05 - 00:12]** world\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## Plain Text\n" +
		"\n" +
		"hello world\n"

	assert.Equal(t, want, got)
}

func TestRenderIsDeterministic(t *testing.T) {
	r := &RenderMarkdown{Now: fixedNow}
	file := transcript.NewAudioFile("talk.wav")
	tr := sampleTranscript()

	assert.Equal(t, r.render(tr, file), r.render(tr, file))
}

func TestRenderPreservesBothTextForms(t *testing.T) {
	// The engine reports segments and full text independently; neither is
	// derived from the other.
	tr := &transcript.Transcript{
		Language: "unknown",
		Segments: []transcript.Segment{{Start: 0, End: 1, Text: "one two"}},
		Text:     "one, two!",
	}

	r := &RenderMarkdown{Now: fixedNow}
	got := r.render(tr, transcript.NewAudioFile("x.mp3"))

	assert.Contains(t, got, "**[00:00 - 00:01]** one two\n")
	assert.Contains(t, got, "## Plain Text\n\none, two!\n")
}

func TestOutputPath(t *testing.T) {
	file := transcript.NewAudioFile(filepath.Join("some", "dir", "talk.wav"))

	inPlace := &RenderMarkdown{}
	assert.Equal(t, filepath.Join("some", "dir", "talk.md"), inPlace.OutputPath(file))

	toDir := &RenderMarkdown{OutputDir: "outdir"}
	assert.Equal(t, filepath.Join("outdir", "talk.md"), toDir.OutputPath(file))
}

func TestExecuteWritesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	r := &RenderMarkdown{OutputDir: dir, Now: fixedNow}
	file := transcript.NewAudioFile("talk.wav")

	path, err := r.Execute(sampleTranscript(), file)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "talk.md"), path)

	// Last write wins, no backup of the previous document.
	second := sampleTranscript()
	second.Text = "replaced"
	_, err = r.Execute(second, file)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "replaced")
	assert.NotContains(t, string(content), "hello world")
}
