package main

import (
	"fmt"

	"github.com/truthtab/go-prop/encode"
	"github.com/truthtab/go-prop/parse"
	"github.com/truthtab/go-prop/sat"

	"github.com/scott-cotton/cli"
)

func propClassify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
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
		fmt.Fprintf(cc.Out, "%s: %s\n", encode.String(n, cfg.notation()), sat.Classify(n))
	}
	return nil
}
