package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/jot"
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/patch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		a, err := getObjFile(cfg.MainConfig, cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		b, err := getObjFile(cfg.MainConfig, cc, args[1])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, a, b, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}

	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	i := 0
	last := ir.Null()
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for {
		if i == cfg.LoopLim {
			break
		}
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		next, err := cfg.parseDoc(d)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		last = next
		<-ticker.C
		i++
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Value, sep bool) (bool, error) {
	w := cc.Out
	if jot.Equal(a, b) {
		return false, nil
	}
	if sep {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := w.Write([]byte("# difference found at " + when + "\n")); err != nil {
			return false, err
		}
	}
	if cfg.Merge {
		mp, err := patch.CreateMerge(a, b)
		if err != nil {
			return false, fmt.Errorf("error creating merge patch: %w", err)
		}
		if err := cfg.writeDoc(w, mp); err != nil {
			return false, err
		}
		return true, nil
	}
	d, err := jot.Diff(a, b)
	if err != nil {
		return false, err
	}
	if _, err := io.WriteString(w, d); err != nil {
		return false, err
	}
	return true, nil
}
