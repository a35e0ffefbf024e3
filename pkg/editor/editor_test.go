package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEditor writes a shell script that stands in for the external editor.
// The scratch file path arrives as $1.
func fakeEditor(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func scratchDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

func assertNoScratchLeft(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch file must not survive the session")
}

func TestEdit_UntouchedBufferRoundTrips(t *testing.T) {
	dir := scratchDir(t)
	s := New(fakeEditor(t, "exit 0"), WithDir(dir))

	out, err := s.Edit("original content\n", ".md")
	require.NoError(t, err)

	assert.Equal(t, "original content\n", out)
	assertNoScratchLeft(t, dir)
}

func TestEdit_ModifiedBufferIsReadBack(t *testing.T) {
	dir := scratchDir(t)
	s := New(fakeEditor(t, `printf 'appended line\n' >> "$1"`), WithDir(dir))

	out, err := s.Edit("seed\n", ".csv")
	require.NoError(t, err)

	assert.Equal(t, "seed\nappended line\n", out)
	assertNoScratchLeft(t, dir)
}

func TestEdit_ExtensionReachesEditor(t *testing.T) {
	dir := scratchDir(t)
	// The editor records the path it was given.
	record := filepath.Join(t.TempDir(), "path.txt")
	s := New(fakeEditor(t, `printf '%s' "$1" > `+record), WithDir(dir))

	_, err := s.Edit("", ".yaml")
	require.NoError(t, err)

	seen, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, ".yaml", filepath.Ext(string(seen)))
	assertNoScratchLeft(t, dir)
}

func TestEdit_LaunchFailureReleasesScratch(t *testing.T) {
	dir := scratchDir(t)
	s := New(filepath.Join(t.TempDir(), "no-such-editor"), WithDir(dir))

	_, err := s.Edit("content", ".md")
	assert.Error(t, err)
	assertNoScratchLeft(t, dir)
}

func TestEdit_NonZeroExitReleasesScratch(t *testing.T) {
	dir := scratchDir(t)
	s := New(fakeEditor(t, "exit 3"), WithDir(dir))

	_, err := s.Edit("content", ".md")
	assert.Error(t, err)
	assertNoScratchLeft(t, dir)
}

func TestNew_FallsBackToEnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "vi")
	s := New("")
	assert.Equal(t, "vi", s.program)

	t.Setenv("EDITOR", "")
	s = New("")
	assert.Equal(t, DefaultProgram, s.program)
}
