package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/asdfish/empl/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFlag(t *testing.T) {
	var f colorFlag
	require.NoError(t, f.Set("red"))
	assert.Equal(t, lipgloss.Color("9"), f.color)
	assert.Equal(t, "red", f.String())

	require.NoError(t, f.Set("255,0,128"))
	assert.Equal(t, lipgloss.Color("#ff0080"), f.color)

	require.NoError(t, f.Set("none"))
	assert.Nil(t, f.color)
	assert.Equal(t, "", f.String())

	require.EqualError(t, f.Set("mauve"), `unknown color "mauve"`)
	require.EqualError(t, f.Set("300,0,0"), "color channel 300 does not fit in 8 bits")
	require.EqualError(t, f.Set("1,2"), `unknown color "1,2"`)
}

func TestPlaylistFlag(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.flac", "b.flac"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	var f playlistFlag
	require.NoError(t, f.Set("chill="+dir))
	require.Len(t, f.playlists, 1)
	assert.Equal(t, "chill", f.playlists[0].Name)
	assert.Equal(t, []config.Song{
		{Name: "a.flac", Path: filepath.Join(dir, "a.flac")},
		{Name: "b.flac", Path: filepath.Join(dir, "b.flac")},
	}, f.playlists[0].Songs)
	assert.Equal(t, "chill", f.String())

	require.EqualError(t, f.Set("nodir"), `expected NAME=DIR, got "nodir"`)

	empty := t.TempDir()
	require.EqualError(t, f.Set("empty="+empty), "songs cannot be empty")
}
