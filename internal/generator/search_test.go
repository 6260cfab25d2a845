package generator

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeProgram(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
	return path
}

func TestSearchProgramInPath(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeProgram(t, dir, "fakecmake", 0o755)
	t.Setenv("PATH", dir)

	got, err := SearchProgram("fakecmake")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchProgramStripsQuotedPathEntries(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeProgram(t, dir, "fakecmake", 0o755)
	t.Setenv("PATH", `"`+dir+`"`)

	got, err := SearchProgram("fakecmake")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchProgramSkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}
	dir := t.TempDir()
	writeFakeProgram(t, dir, "fakecmake", 0o644)
	t.Setenv("PATH", dir)

	_, err := SearchProgram("fakecmake")
	var notFound *ProgramNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSearchProgramNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := SearchProgram("definitely-not-cmake")
	var notFound *ProgramNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "definitely-not-cmake command not found", err.Error())
}

func TestSearchProgramDirectPath(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeProgram(t, dir, "fakecmake", 0o755)

	got, err := SearchProgram(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = SearchProgram(filepath.Join(dir, "missing"))
	var notFound *ProgramNotFoundError
	require.ErrorAs(t, err, &notFound)
}
