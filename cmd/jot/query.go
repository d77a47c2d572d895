package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/jot/eval"
	"github.com/signadot/jot-format/jot/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		// no documents, evaluate against null
		res, err := eval.Query(ir.Null(), src, cfg.Env)
		if err != nil {
			return err
		}
		return cfg.writeDoc(cc.Out, res)
	}
	for i, arg := range args {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := eval.Query(doc, src, cfg.Env)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		cfg.Expand.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := eval.ExpandEnv(doc, cfg.Env); err != nil {
			return fmt.Errorf("error expanding %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
