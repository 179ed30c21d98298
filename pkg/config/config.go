// Package config holds the player configuration: the color pairs of
// the cursor, menu, and selection, the key bindings, and the
// playlists. Configuration accumulates in a Partial as files and
// command line overrides apply, then promotes to a Config once
// complete.
package config

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ColorPair is a foreground and background. A nil channel is unset
// and renders as the terminal default.
type ColorPair struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

func (p *ColorPair) merge(other ColorPair) {
	if other.Foreground != nil {
		p.Foreground = other.Foreground
	}
	if other.Background != nil {
		p.Background = other.Background
	}
}

// Song is a display name plus the path that plays it.
type Song struct {
	Name string
	Path string
}

// Playlist is a named, ordered set of songs.
type Playlist struct {
	Name  string
	Songs []Song
}

// Partial is configuration still being accumulated: colors may be
// unset and the binding and playlist sections may be empty.
type Partial struct {
	CursorColors    ColorPair
	MenuColors      ColorPair
	SelectionColors ColorPair
	KeyBindings     []KeyBinding
	Playlists       []Playlist
}

// Merge overlays other onto p. Set color channels override one by
// one, key bindings and playlists append.
func (p *Partial) Merge(other Partial) {
	p.CursorColors.merge(other.CursorColors)
	p.MenuColors.merge(other.MenuColors)
	p.SelectionColors.merge(other.SelectionColors)
	p.KeyBindings = append(p.KeyBindings, other.KeyBindings...)
	p.Playlists = append(p.Playlists, other.Playlists...)
}

// Config is a complete configuration: at least one key binding and
// one playlist, and every color channel resolved, if only to the
// terminal default.
type Config struct {
	CursorColors    ColorPair
	MenuColors      ColorPair
	SelectionColors ColorPair
	KeyBindings     []KeyBinding
	Playlists       []Playlist
}

// Config promotes the partial. Unset color channels fall back to the
// terminal defaults.
func (p Partial) Config() (*Config, error) {
	if len(p.KeyBindings) == 0 {
		return nil, &ErrEmpty{What: "key bindings"}
	}
	if len(p.Playlists) == 0 {
		return nil, &ErrEmpty{What: "playlists"}
	}
	cfg := &Config{
		CursorColors:    p.CursorColors,
		MenuColors:      p.MenuColors,
		SelectionColors: p.SelectionColors,
		KeyBindings:     p.KeyBindings,
		Playlists:       p.Playlists,
	}
	for _, pair := range []*ColorPair{&cfg.CursorColors, &cfg.MenuColors, &cfg.SelectionColors} {
		if pair.Foreground == nil {
			pair.Foreground = lipgloss.NoColor{}
		}
		if pair.Background == nil {
			pair.Background = lipgloss.NoColor{}
		}
	}
	return cfg, nil
}

// Match resolves a key press against the bindings, first match wins.
func (c *Config) Match(msg tea.KeyMsg) (Action, bool) {
	for _, binding := range c.KeyBindings {
		if key.Matches(msg, binding.Keys) {
			return binding.Action, true
		}
	}
	return "", false
}

// Render flattens the configuration for structured output.
func (c *Config) Render() map[string]any {
	bindings := make(map[string][]string, len(c.KeyBindings))
	for _, binding := range c.KeyBindings {
		name := string(binding.Action)
		for _, stroke := range binding.Strokes {
			bindings[name] = append(bindings[name], stroke.String())
		}
	}
	playlists := make(map[string][]map[string]string, len(c.Playlists))
	for _, playlist := range c.Playlists {
		songs := make([]map[string]string, 0, len(playlist.Songs))
		for _, song := range playlist.Songs {
			songs = append(songs, map[string]string{
				"name": song.Name,
				"path": song.Path,
			})
		}
		playlists[playlist.Name] = songs
	}
	return map[string]any{
		"cursor-colors":    renderColors(c.CursorColors),
		"menu-colors":      renderColors(c.MenuColors),
		"selection-colors": renderColors(c.SelectionColors),
		"key-bindings":     bindings,
		"playlists":        playlists,
	}
}

func renderColors(pair ColorPair) map[string]string {
	return map[string]string{
		"foreground": ColorString(pair.Foreground),
		"background": ColorString(pair.Background),
	}
}
