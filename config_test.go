package empl

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/asdfish/empl/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLisp = `
(set-cfg! "key-bindings" (list (list "quit" (list (list "" "q")))))
(set-cfg! "playlists" (list (list "p" (list (list "s" (path "/s.flac"))))))
`

func TestLoadPartialLisp(t *testing.T) {
	dir := t.TempDir()
	music := filepath.Join(dir, "music")
	require.NoError(t, os.MkdirAll(music, 0o755))
	for _, name := range []string{"a.flac", "b.flac"} {
		require.NoError(t, os.WriteFile(filepath.Join(music, name), nil, 0o644))
	}

	src := strings.ReplaceAll(`
(set-cfg! "cursor-colors" (list (list 255 0 0) "none"))
(set-cfg! "key-bindings"
  (list (list "quit" (list (list "" "q")))
        (list "move-up" (list (list "" "up") (list "" "k")))))
(set-cfg! "playlists"
  (list (list "chill"
    (seq-map
      (lambda (p) (list (path-name p) p))
      (seq-filter path-is-file (path-children (path "MUSIC_DIR")))))))
`, "MUSIC_DIR", music)
	path := filepath.Join(dir, "main.lisp")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	partial, err := LoadPartial(path)
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#ff0000"), partial.CursorColors.Foreground)
	assert.Nil(t, partial.CursorColors.Background)

	require.Len(t, partial.KeyBindings, 2)
	assert.Equal(t, config.ActionQuit, partial.KeyBindings[0].Action)
	assert.Equal(t, []string{"up", "k"}, partial.KeyBindings[1].Keys.Keys())

	require.Len(t, partial.Playlists, 1)
	assert.Equal(t, "chill", partial.Playlists[0].Name)
	assert.Equal(t, []config.Song{
		{Name: "a.flac", Path: filepath.Join(music, "a.flac")},
		{Name: "b.flac", Path: filepath.Join(music, "b.flac")},
	}, partial.Playlists[0].Songs)
}

func TestLoadPartialStar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.star")
	require.NoError(t, os.WriteFile(path, []byte(`
set_cfg("menu-colors", ["blue", "none"])
set_cfg("key-bindings", [["quit", [["", "q"]]]])
set_cfg("playlists", [["all", [["one", path("/music/one.flac")]]]])
`), 0o644))

	partial, err := LoadPartial(path)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("12"), partial.MenuColors.Foreground)
	require.Len(t, partial.KeyBindings, 1)
	require.Len(t, partial.Playlists, 1)
	assert.Equal(t, "/music/one.flac", partial.Playlists[0].Songs[0].Path)
}

func TestLoadPartialErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPartial(filepath.Join(dir, "missing.lisp"))
	var readErr *config.ErrRead
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, filepath.Join(dir, "missing.lisp"), readErr.Path)

	toml := filepath.Join(dir, "main.toml")
	require.NoError(t, os.WriteFile(toml, nil, 0o644))
	_, err = LoadPartial(toml)
	require.EqualError(t, err, `unknown configuration dialect ".toml"`)

	bad := filepath.Join(dir, "bad.lisp")
	require.NoError(t, os.WriteFile(bad, []byte(`(set-cfg! "volume" 10)`), 0o644))
	_, err = LoadPartial(bad)
	require.EqualError(t, err, bad+`:1:1: unknown field "volume"`)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lisp")
	require.NoError(t, os.WriteFile(path, []byte(minimalLisp), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.KeyBindings, 1)
	assert.Len(t, cfg.Playlists, 1)
	assert.Equal(t, lipgloss.NoColor{}, cfg.CursorColors.Foreground)

	empty := filepath.Join(dir, "empty.lisp")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadConfig(empty)
	require.EqualError(t, err, "key bindings cannot be empty")
}

func TestLoadConfigDefaultSearch(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("exercises the unix layout")
	}
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empl"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empl", "main.lisp"), []byte(minimalLisp), 0o644))
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Len(t, cfg.Playlists, 1)
}
