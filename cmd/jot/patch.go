package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/jot"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch document, and a file to which to apply it", cli.ErrUsage)
	}
	pd, err := getish(cfg.String, cfg.File, cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	apply := jot.Patch
	if cfg.Merge {
		apply = jot.MergePatch
	}
	res, err := apply(target, pd)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return cfg.writeDoc(cc.Out, res)
}
