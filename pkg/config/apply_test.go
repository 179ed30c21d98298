package config

import (
	"testing"

	"github.com/asdfish/empl/pkg/value"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func list(elems ...value.Value) *value.List {
	return value.NewList(elems...)
}

func strs(elems ...string) *value.List {
	vals := make([]value.Value, 0, len(elems))
	for _, s := range elems {
		vals = append(vals, value.String(s))
	}
	return value.NewList(vals...)
}

func TestApplyColors(t *testing.T) {
	var p Partial
	err := p.Apply(FieldCursorColors, list(
		list(value.Int(255), value.Int(0), value.Int(0)),
		value.String("none"),
	))
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#ff0000"), p.CursorColors.Foreground)
	assert.Nil(t, p.CursorColors.Background)

	err = p.Apply(FieldMenuColors, list(value.String("blue"), value.String("black")))
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("12"), p.MenuColors.Foreground)
	assert.Equal(t, lipgloss.Color("0"), p.MenuColors.Background)

	err = p.Apply(FieldSelectionColors, list(value.String("white"), value.String("dark-grey")))
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("15"), p.SelectionColors.Foreground)
}

func TestApplyColorErrors(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.String("red"), "expected list, got string"},
		{list(value.String("red")), "color pair expects 2 elements, got 1"},
		{list(value.String("red"), value.String("mauve")), `unknown color "mauve"`},
		{list(list(value.Int(1), value.Int(2)), value.String("red")), "color expects 3 elements, got 2"},
		{list(list(value.Int(1), value.Int(2), value.Int(300)), value.String("red")), "color channel 300 does not fit in 8 bits"},
		{list(list(value.Int(1), value.Int(2), value.String("x")), value.String("red")), "expected int, got string"},
		{list(value.Int(1), value.String("red")), "expected a color name or (r g b), got int"},
	}
	for _, test := range tests {
		var p Partial
		err := p.Apply(FieldCursorColors, test.v)
		require.EqualError(t, err, test.want)
	}
}

func TestApplyKeyBindings(t *testing.T) {
	var p Partial
	err := p.Apply(FieldKeyBindings, list(
		list(value.String("quit"), list(strs("", "q"), strs("c", "c"))),
		list(value.String("move-up"), list(strs("", "up"))),
	))
	require.NoError(t, err)
	require.Len(t, p.KeyBindings, 2)
	assert.Equal(t, ActionQuit, p.KeyBindings[0].Action)
	assert.Equal(t, []string{"q", "ctrl+c"}, p.KeyBindings[0].Keys.Keys())
	assert.Equal(t, ActionMoveUp, p.KeyBindings[1].Action)
	assert.Equal(t, []string{"up"}, p.KeyBindings[1].Keys.Keys())

	// applying again replaces, it does not extend
	err = p.Apply(FieldKeyBindings, list(
		list(value.String("select"), list(strs("", "enter"))),
	))
	require.NoError(t, err)
	require.Len(t, p.KeyBindings, 1)
	assert.Equal(t, ActionSelect, p.KeyBindings[0].Action)
}

func TestApplyKeyBindingErrors(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Nil, "key bindings cannot be empty"},
		{value.String("quit"), "expected list, got string"},
		{list(value.String("quit")), "key binding expects 2 elements, got 1"},
		{list(list(value.String("jump"), list(strs("", "q")))), `unknown key action "jump"`},
		{list(list(value.String("quit"), value.Nil)), "key strokes cannot be empty"},
		{list(list(value.String("quit"), list(strs("", "q", "extra")))), "key stroke expects 2 elements, got 3"},
		{list(list(value.String("quit"), list(strs("z", "q")))), `unknown key modifier "z"`},
		{list(list(value.String("quit"), list(strs("", "bogus")))), `unknown key "bogus"`},
		{list(list(value.Int(1), list(strs("", "q")))), "expected string, got int"},
	}
	for _, test := range tests {
		var p Partial
		err := p.Apply(FieldKeyBindings, test.v)
		require.EqualError(t, err, test.want)
	}
}

func TestApplyPlaylists(t *testing.T) {
	var p Partial
	err := p.Apply(FieldPlaylists, list(
		list(value.String("chill"), list(
			list(value.String("one"), value.Path("/music/one.flac")),
			list(value.String("two"), value.Path("/music/two.flac")),
		)),
	))
	require.NoError(t, err)
	require.Len(t, p.Playlists, 1)
	assert.Equal(t, "chill", p.Playlists[0].Name)
	assert.Equal(t, []Song{
		{Name: "one", Path: "/music/one.flac"},
		{Name: "two", Path: "/music/two.flac"},
	}, p.Playlists[0].Songs)

	// an empty outer list is legal until promotion
	err = p.Apply(FieldPlaylists, value.Nil)
	require.NoError(t, err)
	assert.Empty(t, p.Playlists)
}

func TestApplyPlaylistErrors(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Int(1), "expected list, got int"},
		{list(value.String("chill")), "expected list, got string"},
		{list(list(value.String("chill"), value.Nil)), "songs cannot be empty"},
		{list(list(value.String("chill"), list(list(value.String("one"))))), "song expects 2 elements, got 1"},
		{list(list(value.String("chill"), list(list(value.String("one"), value.String("/music/one.flac"))))), "expected path, got string"},
		{list(list(value.Int(1), list(list(value.String("one"), value.Path("/p"))))), "expected string, got int"},
	}
	for _, test := range tests {
		var p Partial
		err := p.Apply(FieldPlaylists, test.v)
		require.EqualError(t, err, test.want)
	}
}

func TestApplyUnknownField(t *testing.T) {
	var p Partial
	err := p.Apply("volume", value.Int(10))
	require.EqualError(t, err, `unknown field "volume"`)
}
