package main

import (
	"github.com/acorn-io/cmd"
	"github.com/asdfish/empl"
	"github.com/asdfish/empl/pkg/config"
	"github.com/spf13/cobra"
)

type Config struct {
	empl *Empl

	cursor    colorPairFlag
	menu      colorPairFlag
	selection colorPairFlag
	playlists playlistFlag
}

func NewConfig(root *Empl) *cobra.Command {
	return cmd.Command(&Config{empl: root}, cobra.Command{
		Use:   "config [flags] [FILE]",
		Short: "Resolve the player configuration and print it",
		Args:  cobra.MaximumNArgs(1),
	})
}

func (c *Config) Customize(cc *cobra.Command) {
	flags := cc.Flags()
	flags.Var(&c.cursor.fg, "cursor-fg", "Override the cursor foreground color")
	flags.Var(&c.cursor.bg, "cursor-bg", "Override the cursor background color")
	flags.Var(&c.menu.fg, "menu-fg", "Override the menu foreground color")
	flags.Var(&c.menu.bg, "menu-bg", "Override the menu background color")
	flags.Var(&c.selection.fg, "selection-fg", "Override the selection foreground color")
	flags.Var(&c.selection.bg, "selection-bg", "Override the selection background color")
	flags.Var(&c.playlists, "playlist", "Add a playlist from a directory's files, NAME=DIR")
}

func (c *Config) Run(cc *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		located, err := config.Locate()
		if err != nil {
			return err
		}
		path = located
	}

	partial, err := empl.LoadPartial(path)
	if err != nil {
		return err
	}
	partial.Merge(c.overrides())

	cfg, err := partial.Config()
	if err != nil {
		return err
	}
	return c.empl.Print(cfg.Render())
}

// overrides collects the flag values as a configuration layer applied
// on top of the file.
func (c *Config) overrides() config.Partial {
	return config.Partial{
		CursorColors:    c.cursor.pair(),
		MenuColors:      c.menu.pair(),
		SelectionColors: c.selection.pair(),
		Playlists:       c.playlists.playlists,
	}
}
