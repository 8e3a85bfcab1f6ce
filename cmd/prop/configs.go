package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/truthtab/go-prop/encode"
	"github.com/truthtab/go-prop/eval"
	"github.com/truthtab/go-prop/notation"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	A     bool `cli:"name=a aliases=ascii desc='render formulas in ascii notation'"`
	U     bool `cli:"name=u aliases=unicode desc='render formulas in unicode notation (default)'"`
	Color bool `cli:"name=color desc='render with color'"`

	Main *cli.Command
}

func (cfg *MainConfig) notation() notation.Notation {
	if cfg.A {
		return notation.ASCII
	}
	return notation.Unicode
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.EncodeNotation(cfg.notation()),
	}
	if colors := cfg.colors(w); colors != nil {
		res = append(res, encode.EncodeColors(colors))
	}
	return res
}

type TableConfig struct {
	*MainConfig

	Table *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='report warnings only, without diffs'"`

	Check *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Assign eval.Assignment

	Eval *cli.Command
}

func (cfg *EvalConfig) assignOpt(cc *cli.Context, a string) (any, error) {
	if cfg.Assign == nil {
		cfg.Assign = eval.Assignment{}
	}
	for _, bind := range strings.Split(a, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(bind), "=")
		if !ok {
			return nil, fmt.Errorf("%w: assignment %q is not of the form P=T", cli.ErrUsage, bind)
		}
		b, err := parseTruth(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		cfg.Assign[name] = b
	}
	return 0, nil
}

func parseTruth(v string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "T", "TRUE", "1":
		return true, nil
	case "F", "FALSE", "0":
		return false, nil
	}
	return false, fmt.Errorf("truth value %q is not one of T, F", v)
}

type GenConfig struct {
	*MainConfig

	N    int    `cli:"name=n desc='number of formulas to generate'"`
	File string `cli:"name=f desc='yaml generator config file'"`

	Gen *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}
