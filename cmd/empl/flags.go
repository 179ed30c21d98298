package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asdfish/empl/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*colorFlag)(nil)
	_ pflag.Value = (*playlistFlag)(nil)
)

// colorFlag parses a color name or an r,g,b triple as a flag value.
type colorFlag struct {
	color lipgloss.TerminalColor
}

func (f *colorFlag) String() string {
	if f.color == nil {
		return ""
	}
	return config.ColorString(f.color)
}

func (f *colorFlag) Type() string { return "color" }

func (f *colorFlag) Set(s string) error {
	if r, g, b, ok := splitRGB(s); ok {
		color, err := config.RGB(r, g, b)
		if err != nil {
			return err
		}
		f.color = color
		return nil
	}
	color, err := config.ParseColor(s)
	if err != nil {
		return err
	}
	f.color = color
	return nil
}

func splitRGB(s string) (r, g, b int32, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var chans [3]int32
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		chans[i] = int32(n)
	}
	return chans[0], chans[1], chans[2], true
}

type colorPairFlag struct {
	fg colorFlag
	bg colorFlag
}

func (f *colorPairFlag) pair() config.ColorPair {
	return config.ColorPair{
		Foreground: f.fg.color,
		Background: f.bg.color,
	}
}

// playlistFlag builds one playlist per NAME=DIR value, songs from the
// directory's regular files.
type playlistFlag struct {
	playlists []config.Playlist
}

func (f *playlistFlag) String() string {
	names := make([]string, 0, len(f.playlists))
	for _, playlist := range f.playlists {
		names = append(names, playlist.Name)
	}
	return strings.Join(names, ",")
}

func (f *playlistFlag) Type() string { return "name=dir" }

func (f *playlistFlag) Set(s string) error {
	name, dir, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected NAME=DIR, got %q", s)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var songs []config.Song
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			songs = append(songs, config.Song{
				Name: entry.Name(),
				Path: filepath.Join(dir, entry.Name()),
			})
		}
	}
	if len(songs) == 0 {
		return &config.ErrEmpty{What: "songs"}
	}
	f.playlists = append(f.playlists, config.Playlist{Name: name, Songs: songs})
	return nil
}
