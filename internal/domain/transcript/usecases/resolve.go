package usecases

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
)

// ResolveInputs expands path arguments into the list of audio files to
// transcribe.
type ResolveInputs struct {
	// Extensions recognized when scanning directories (lowercase, with dot).
	Extensions map[string]bool
}

// Execute resolves the given path arguments. Files are included as-is
// (explicit files are trusted, their extension is not checked); directories
// contribute their direct children with a recognized extension. Arguments
// that are neither are returned in skipped and do not fail the resolution.
//
// The result is deduplicated and sorted lexicographically by path.
func (r *ResolveInputs) Execute(paths []string) (files []transcript.AudioFile, skipped []string, err error) {
	seen := make(map[string]bool)
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, transcript.NewAudioFile(path))
		}
	}

	for _, path := range paths {
		info, statErr := os.Stat(path)
		switch {
		case statErr == nil && info.Mode().IsRegular():
			add(path)
		case statErr == nil && info.IsDir():
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return nil, nil, fmt.Errorf("reading directory %s: %w", path, readErr)
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				ext := strings.ToLower(filepath.Ext(e.Name()))
				if r.Extensions[ext] {
					add(filepath.Join(path, e.Name()))
				}
			}
		default:
			skipped = append(skipped, path)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, skipped, nil
}
