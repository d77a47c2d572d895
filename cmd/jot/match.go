package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/jot"
	"github.com/signadot/jot-format/jot/ir"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match document", cli.ErrUsage)
	}
	match, err := getish(cfg.String, cfg.File, cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		res, err := matchFile(nil, cfg, cc, match, arg)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", arg, err)
		}
		for i, doc := range res {
			if i > 0 {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			if err := cfg.writeDoc(cc.Out, doc); err != nil {
				return fmt.Errorf("error encoding output: %w", err)
			}
		}
	}
	return nil
}

func getish(s, f bool, cfg *MainConfig, cc *cli.Context, arg string) (*ir.Value, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}

	var matchReader io.Reader
	if f {
		switch arg {
		case "-":
			matchReader = os.Stdin
		default:
			mf, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer mf.Close()
			matchReader = mf
		}
	} else {
		matchReader = strings.NewReader(arg)
	}
	d, err := io.ReadAll(matchReader)
	if err != nil {
		return nil, fmt.Errorf("error reading match: %w", err)
	}
	res, err := cfg.parseDoc(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	return res, nil
}

func matchFile(dst []*ir.Value, cfg *MatchConfig, cc *cli.Context, match *ir.Value, file string) ([]*ir.Value, error) {
	var fileReader io.Reader
	if file == "-" {
		fileReader = cc.In
	} else {
		targetFile, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", file, err)
		}
		defer targetFile.Close()
		fileReader = targetFile
	}
	return matchReader(dst, cfg, match, fileReader)
}

func matchReader(dst []*ir.Value, cfg *MatchConfig, match *ir.Value, r io.Reader) ([]*ir.Value, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	for i, doc := range docs {
		node, err := cfg.parseDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		m, err := jot.Match(node, match)
		if err != nil {
			return nil, fmt.Errorf("error matching document %d: %w", i, err)
		}
		if m {
			if cfg.Trim {
				node = jot.Trim(match, node)
			}
			dst = append(dst, node)
		}
	}
	return dst, nil
}
