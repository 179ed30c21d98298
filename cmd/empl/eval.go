package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/acorn-io/cmd"
	"github.com/asdfish/empl"
	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/scanner"
	"github.com/asdfish/empl/pkg/token"
	"github.com/spf13/cobra"
)

type stage int

const (
	stageLex stage = iota
	stageParse
	stageEval
)

func parseStage(s string) (stage, error) {
	switch s {
	case "lex":
		return stageLex, nil
	case "parse":
		return stageParse, nil
	case "eval":
		return stageEval, nil
	}
	return 0, fmt.Errorf("`%s` is not a recognized stage", s)
}

type Eval struct {
	empl *Empl

	Stage string `usage:"Stop after lex, parse, or eval" short:"s" default:"eval"`
}

func NewEval(root *Empl) *cobra.Command {
	return cmd.Command(&Eval{empl: root}, cobra.Command{
		Use:   "eval [flags] FILE",
		Short: "Evaluate a configuration dialect file and print the result",
		Args:  cobra.ExactArgs(1),
	})
}

func (e *Eval) Run(c *cobra.Command, args []string) error {
	stage, err := parseStage(e.Stage)
	if err != nil {
		return err
	}

	name := args[0]
	var data []byte
	if name == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(c.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	switch stage {
	case stageLex:
		toks, err := lexTokens(name, data)
		if err != nil {
			return err
		}
		return e.empl.Print(toks)
	case stageParse:
		var file ast.File
		if err := empl.Unmarshal(data, &file, empl.Option{SourceName: name}); err != nil {
			return err
		}
		exprs := make([]string, 0, len(file.Exprs))
		for _, expr := range file.Exprs {
			exprs = append(exprs, ast.Print(expr))
		}
		return e.empl.Print(exprs)
	}

	var out any
	if err := empl.Unmarshal(data, &out, empl.Option{SourceName: name}); err != nil {
		return err
	}
	return e.empl.Print(out)
}

func lexTokens(name string, data []byte) ([]map[string]any, error) {
	var errs []error
	var s scanner.Scanner
	s.Init(name, data, func(pos token.Position, msg string) {
		errs = append(errs, fmt.Errorf("%s: %s", pos, msg))
	}, scanner.ScanComments)

	var toks []map[string]any
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		entry := map[string]any{
			"pos":   pos.String(),
			"token": tok.String(),
		}
		if lit != "" {
			entry["lit"] = lit
		}
		toks = append(toks, entry)
	}
	return toks, errors.Join(errs...)
}
