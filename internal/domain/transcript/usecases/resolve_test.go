package usecases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKCyber20/whisper/internal/domain/transcript"
)

func newResolver() *ResolveInputs {
	return &ResolveInputs{Extensions: transcript.AudioExtensions}
}

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func paths(files []transcript.AudioFile) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestResolveFiltersDirectoryByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.MP3"))
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "c.wav"))

	files, skipped, err := newResolver().Execute([]string{dir})
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.MP3"),
		filepath.Join(dir, "c.wav"),
	}, paths(files))
}

func TestResolveDoesNotRecurse(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, filepath.Join(sub, "deep.wav"))
	touch(t, filepath.Join(dir, "top.wav"))

	files, _, err := newResolver().Execute([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "top.wav")}, paths(files))
}

func TestResolveTrustsExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	// Extension is not re-checked for explicit file arguments.
	odd := touch(t, filepath.Join(dir, "notes.txt"))

	files, _, err := newResolver().Execute([]string{odd})
	require.NoError(t, err)
	assert.Equal(t, []string{odd}, paths(files))
}

func TestResolveDeduplicatesAndSorts(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.wav"))
	touch(t, filepath.Join(dir, "b.flac"))

	// The same file via an explicit argument and via its directory.
	files, _, err := newResolver().Execute([]string{a, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.wav"),
		filepath.Join(dir, "b.flac"),
	}, paths(files))
}

func TestResolveSkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	real := touch(t, filepath.Join(dir, "a.wav"))
	missing := filepath.Join(dir, "no-such-file.wav")

	files, skipped, err := newResolver().Execute([]string{missing, real})
	require.NoError(t, err)
	assert.Equal(t, []string{missing}, skipped)
	assert.Equal(t, []string{real}, paths(files))
}

func TestResolveEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	files, skipped, err := newResolver().Execute([]string{dir})
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Empty(t, files)
}

func TestAudioFileNaming(t *testing.T) {
	f := transcript.NewAudioFile(filepath.Join("rec", "interview.m4a"))
	assert.Equal(t, "interview", f.Stem)
	assert.Equal(t, ".m4a", f.Ext)
	assert.Equal(t, "interview.m4a", f.Name())
}
