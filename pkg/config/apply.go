package config

import (
	"fmt"

	"github.com/asdfish/empl/pkg/value"
	"github.com/charmbracelet/lipgloss"
)

// Field names settable through set-cfg!.
const (
	FieldCursorColors    = "cursor-colors"
	FieldMenuColors      = "menu-colors"
	FieldSelectionColors = "selection-colors"
	FieldKeyBindings     = "key-bindings"
	FieldPlaylists       = "playlists"
)

// Apply sets one field of the partial from a configuration value.
// Applying a field replaces its previous contents.
func (p *Partial) Apply(field string, v value.Value) error {
	switch field {
	case FieldCursorColors:
		return applyColors(&p.CursorColors, v)
	case FieldMenuColors:
		return applyColors(&p.MenuColors, v)
	case FieldSelectionColors:
		return applyColors(&p.SelectionColors, v)
	case FieldKeyBindings:
		bindings, err := parseKeyBindings(v)
		if err != nil {
			return err
		}
		p.KeyBindings = bindings
		return nil
	case FieldPlaylists:
		playlists, err := parsePlaylists(v)
		if err != nil {
			return err
		}
		p.Playlists = playlists
		return nil
	}
	return &ErrUnknown{What: "field", Name: field}
}

// listOf unwraps a list of exactly want elements.
func listOf(v value.Value, what string, want int) ([]value.Value, error) {
	list, err := value.ToList(v)
	if err != nil {
		return nil, err
	}
	elems := list.Slice()
	if len(elems) != want {
		return nil, &ErrListArity{What: what, Want: want, Got: len(elems)}
	}
	return elems, nil
}

func applyColors(pair *ColorPair, v value.Value) error {
	elems, err := listOf(v, "color pair", 2)
	if err != nil {
		return err
	}
	fg, err := parseColorValue(elems[0])
	if err != nil {
		return err
	}
	bg, err := parseColorValue(elems[1])
	if err != nil {
		return err
	}
	*pair = ColorPair{Foreground: fg, Background: bg}
	return nil
}

// parseColorValue reads a color from its configuration form, a name
// or an (r g b) triple.
func parseColorValue(v value.Value) (lipgloss.TerminalColor, error) {
	switch v := v.(type) {
	case value.String:
		return ParseColor(string(v))
	case *value.List:
		elems, err := listOf(v, "color", 3)
		if err != nil {
			return nil, err
		}
		var chans [3]int32
		for i, elem := range elems {
			n, err := value.ToInt(elem)
			if err != nil {
				return nil, err
			}
			chans[i] = n
		}
		return RGB(chans[0], chans[1], chans[2])
	}
	return nil, fmt.Errorf("expected a color name or (r g b), got %s", v.Kind())
}

func parseKeyBindings(v value.Value) ([]KeyBinding, error) {
	list, err := value.ToList(v)
	if err != nil {
		return nil, err
	}
	if list.Empty() {
		return nil, &ErrEmpty{What: "key bindings"}
	}
	bindings := make([]KeyBinding, 0, list.Len())
	for _, elem := range list.Slice() {
		pair, err := listOf(elem, "key binding", 2)
		if err != nil {
			return nil, err
		}
		name, err := value.ToString(pair[0])
		if err != nil {
			return nil, err
		}
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		strokes, err := parseStrokes(pair[1])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, NewKeyBinding(action, strokes))
	}
	return bindings, nil
}

func parseStrokes(v value.Value) ([]Stroke, error) {
	list, err := value.ToList(v)
	if err != nil {
		return nil, err
	}
	if list.Empty() {
		return nil, &ErrEmpty{What: "key strokes"}
	}
	strokes := make([]Stroke, 0, list.Len())
	for _, elem := range list.Slice() {
		parts, err := listOf(elem, "key stroke", 2)
		if err != nil {
			return nil, err
		}
		mods, err := value.ToString(parts[0])
		if err != nil {
			return nil, err
		}
		name, err := value.ToString(parts[1])
		if err != nil {
			return nil, err
		}
		stroke, err := ParseStroke(mods, name)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, stroke)
	}
	return strokes, nil
}

func parsePlaylists(v value.Value) ([]Playlist, error) {
	list, err := value.ToList(v)
	if err != nil {
		return nil, err
	}
	playlists := make([]Playlist, 0, list.Len())
	for _, elem := range list.Slice() {
		pair, err := listOf(elem, "playlist", 2)
		if err != nil {
			return nil, err
		}
		name, err := value.ToString(pair[0])
		if err != nil {
			return nil, err
		}
		songs, err := parseSongs(pair[1])
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, Playlist{Name: name, Songs: songs})
	}
	return playlists, nil
}

func parseSongs(v value.Value) ([]Song, error) {
	list, err := value.ToList(v)
	if err != nil {
		return nil, err
	}
	if list.Empty() {
		return nil, &ErrEmpty{What: "songs"}
	}
	songs := make([]Song, 0, list.Len())
	for _, elem := range list.Slice() {
		parts, err := listOf(elem, "song", 2)
		if err != nil {
			return nil, err
		}
		name, err := value.ToString(parts[0])
		if err != nil {
			return nil, err
		}
		path, err := value.ToPath(parts[1])
		if err != nil {
			return nil, err
		}
		songs = append(songs, Song{Name: name, Path: path})
	}
	return songs, nil
}
