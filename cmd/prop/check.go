package main

import (
	"fmt"
	"io"

	"github.com/truthtab/go-prop/grammar"
	"github.com/truthtab/go-prop/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func propCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no formula given", cli.ErrUsage)
	}
	for _, arg := range args {
		n, err := parse.Parse(arg)
		if err != nil {
			return err
		}
		if !grammar.Check(arg, n) {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: canonical\n", arg)
			}
			continue
		}
		fmt.Fprintf(cc.Out, "%s: needs explicit parentheses\n", arg)
		if cfg.Quiet {
			continue
		}
		if err := writeDiff(cc.Out, grammar.Diff(arg, n), cfg.colors(cc.Out) != nil); err != nil {
			return err
		}
	}
	return nil
}

func writeDiff(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	for _, d := range diffs {
		text := d.Text
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				text = color.GreenString("%s", text)
			} else {
				text = "+" + text
			}
		case diffpatch.DiffDelete:
			if colored {
				text = color.RedString("%s", text)
			} else {
				text = "-" + text
			}
		case diffpatch.DiffEqual:
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
