package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/acorn-io/cmd"
	"github.com/asdfish/empl/pkg/buildinfo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Empl struct {
	Debug  bool   `usage:"Enable debug logging"`
	Output string `usage:"Output format (json or yaml)" short:"o" default:"json"`
}

func New() *cobra.Command {
	return cmd.Command(&Empl{})
}

func (e *Empl) Customize(c *cobra.Command) {
	c.Use = "empl"
	c.Short = "Configuration tool of the music player"
	c.Version = buildinfo.String()
	c.SilenceUsage = true
	c.CompletionOptions.HiddenDefaultCmd = true
	c.AddCommand(NewEval(e), NewRepl(e), NewConfig(e))
}

func (e *Empl) PersistentPre(c *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if e.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

func (e *Empl) Run(c *cobra.Command, args []string) error {
	return c.Usage()
}

// Print writes out in the selected output format.
func (e *Empl) Print(out any) error {
	switch e.Output {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return fmt.Errorf("unknown output format %q", e.Output)
}
