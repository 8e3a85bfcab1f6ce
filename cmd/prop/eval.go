package main

import (
	"fmt"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/eval"
	"github.com/truthtab/go-prop/parse"

	"github.com/scott-cotton/cli"
)

func propEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
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
		for _, atom := range ast.Atoms(n) {
			if _, ok := cfg.Assign[atom]; !ok {
				return fmt.Errorf("%w: no binding for variable %s, add -a %s=T or -a %s=F",
					cli.ErrUsage, atom, atom, atom)
			}
		}
		v := "F"
		if eval.Eval(n, cfg.Assign) {
			v = "T"
		}
		fmt.Fprintf(cc.Out, "%s\n", v)
	}
	return nil
}
