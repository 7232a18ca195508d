package usecases

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
)

// RenderMarkdown turns a transcript into a Markdown document and writes it
// next to the source file, or into OutputDir when one is configured.
type RenderMarkdown struct {
	OutputDir string
	Now       func() time.Time
}

// Execute renders the transcript and writes the document, overwriting any
// existing file at the destination. Returns the written path.
func (r *RenderMarkdown) Execute(tr *transcript.Transcript, file transcript.AudioFile) (string, error) {
	outPath := r.OutputPath(file)
	content := r.render(tr, file)
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing transcript: %w", err)
	}
	return outPath, nil
}

// OutputPath computes the destination for a source file: <OutputDir>/<stem>.md
// when an output directory is configured, otherwise <stem>.md beside the
// source.
func (r *RenderMarkdown) OutputPath(file transcript.AudioFile) string {
	if r.OutputDir != "" {
		return filepath.Join(r.OutputDir, file.Stem+".md")
	}
	return filepath.Join(filepath.Dir(file.Path), file.Stem+".md")
}

func (r *RenderMarkdown) render(tr *transcript.Transcript, file transcript.AudioFile) string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", file.Stem)
	fmt.Fprintf(&sb, "> Generated: %s  \n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "> Source: `%s`  \n", file.Name())
	fmt.Fprintf(&sb, "> Language: %s\n", tr.Language)
	sb.WriteString("\n---\n\n")

	sb.WriteString("## Transcript\n\n")
	for _, seg := range tr.Segments {
		fmt.Fprintf(&sb, "**[%s - %s]** %s\n\n",
			formatTimestamp(seg.Start), formatTimestamp(seg.End), strings.TrimSpace(seg.Text))
	}

	sb.WriteString("---\n\n")
	sb.WriteString("## Plain Text\n\n")
	sb.WriteString(strings.TrimSpace(tr.Text))
	sb.WriteString("\n")

	return sb.String()
}

// formatTimestamp converts seconds into zero-padded MM:SS, or HH:MM:SS from
// one hour on. Fractional seconds are truncated.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
