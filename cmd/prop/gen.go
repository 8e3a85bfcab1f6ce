package main

import (
	"fmt"
	"os"

	"github.com/truthtab/go-prop/gen"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

// genFile is the yaml shape of a generator config file. Absent fields
// keep the generator defaults.
type genFile struct {
	Pool         []string `yaml:"pool"`
	AtomCounts   []int    `yaml:"atomCounts"`
	Depths       []int    `yaml:"depths"`
	NegationProb *float64 `yaml:"negationProb"`
	Seed         *uint64  `yaml:"seed"`
}

func (gf *genFile) opts() []gen.Option {
	var res []gen.Option
	if len(gf.Pool) > 0 {
		res = append(res, gen.Pool(gf.Pool...))
	}
	if len(gf.AtomCounts) > 0 {
		res = append(res, gen.AtomCounts(gf.AtomCounts...))
	}
	if len(gf.Depths) > 0 {
		res = append(res, gen.Depths(gf.Depths...))
	}
	if gf.NegationProb != nil {
		res = append(res, gen.NegationProb(*gf.NegationProb))
	}
	if gf.Seed != nil {
		res = append(res, gen.Seed(*gf.Seed))
	}
	return res
}

func propGen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: gen takes no arguments", cli.ErrUsage)
	}
	var opts []gen.Option
	if cfg.File != "" {
		d, err := os.ReadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", cfg.File, err)
		}
		gf := &genFile{}
		if err := yaml.Unmarshal(d, gf); err != nil {
			return fmt.Errorf("could not parse %q: %w", cfg.File, err)
		}
		opts = gf.opts()
	}
	for range cfg.N {
		if _, err := fmt.Fprintln(cc.Out, gen.Generate(opts...)); err != nil {
			return err
		}
	}
	return nil
}
