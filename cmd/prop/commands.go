package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "prop").
		WithSynopsis("prop [opts] command [opts]").
		WithDescription("prop is a tool for working with propositional formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return propMain(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			CheckCommand(cfg),
			EvalCommand(cfg),
			GenCommand(cfg),
			ClassifyCommand(cfg))
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("table").
		WithAliases("t", "ta").
		WithSynopsis("table <formula> [<formula> ...]").
		WithDescription("render full truth tables, one column per subformula").
		WithRun(func(cc *cli.Context, args []string) error {
			return propTable(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check <formula> [<formula> ...]").
		WithDescription("parse formulas and report grammaticality against the canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return propCheck(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "a",
		Description: "assignment, e.g. P=T,Q=F",
		Type:        cli.NamedFuncOpt(cfg.assignOpt, "(assignment)"),
	})
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -a P=T,Q=F [-a ...] <formula>").
		WithDescription("evaluate a formula under an assignment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return propEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, N: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("gen").
		WithAliases("g", "ge").
		WithSynopsis("gen [-n count] [-f config.yaml]").
		WithDescription("generate random well-formed formulas").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return propGen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("classify").
		WithAliases("cl").
		WithSynopsis("classify <formula> [<formula> ...]").
		WithDescription("classify formulas as tautology, contradiction or contingent").
		WithRun(func(cc *cli.Context, args []string) error {
			return propClassify(cfg, cc, args)
		})
	cfg.Classify = cmd
	return cmd
}
