package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/acorn-io/cmd"
	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/eval"
	"github.com/asdfish/empl/pkg/parser"
	"github.com/spf13/cobra"
)

type Repl struct {
	empl *Empl

	Stage string `usage:"Stop after lex, parse, or eval" short:"s" default:"eval"`
}

func NewRepl(root *Empl) *cobra.Command {
	return cmd.Command(&Repl{empl: root}, cobra.Command{
		Use:   "repl",
		Short: "Evaluate configuration dialect lines interactively",
		Args:  cobra.NoArgs,
	})
}

func (r *Repl) Run(c *cobra.Command, args []string) error {
	stage, err := parseStage(r.Stage)
	if err != nil {
		return err
	}

	scope := eval.NewScope()
	in := bufio.NewScanner(c.InOrStdin())
	out := c.OutOrStdout()

	fmt.Fprint(out, "> ")
	for in.Scan() {
		if line := strings.TrimSpace(in.Text()); line != "" {
			if err := r.line(out, scope, stage, line); err != nil {
				fmt.Fprintln(out, err)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return in.Err()
}

func (r *Repl) line(out io.Writer, scope *eval.Scope, stage stage, line string) error {
	switch stage {
	case stageLex:
		toks, err := lexTokens("<repl>", []byte(line))
		if err != nil {
			return err
		}
		for _, tok := range toks {
			if lit, ok := tok["lit"]; ok {
				fmt.Fprintf(out, "%s %s %v\n", tok["pos"], tok["token"], lit)
			} else {
				fmt.Fprintf(out, "%s %s\n", tok["pos"], tok["token"])
			}
		}
		return nil
	case stageParse:
		file, err := parser.ParseFile("<repl>", []byte(line))
		if err != nil {
			return err
		}
		for _, expr := range file.Exprs {
			fmt.Fprintln(out, ast.Print(expr))
		}
		return nil
	}

	v, err := eval.EvalString(scope, "<repl>", line)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}
