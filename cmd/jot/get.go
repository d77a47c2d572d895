package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/jot/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args, "get")
	if err != nil {
		return err
	}
	for i, arg := range args {
		if err := queryArg(cfg.MainConfig, cc.Out, arg, path, false, i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args, "list")
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := queryArg(cfg.MainConfig, cc.Out, arg, path, true, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func pathArg(args []string, cmd string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a document path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func queryArg(cfg *MainConfig, w io.Writer, arg, query string, list, sep bool) error {
	var targetReader io.Reader
	if arg == "-" {
		targetReader = os.Stdin
	} else {
		targetFile, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer targetFile.Close()
		targetReader = targetFile
	}
	rd, err := io.ReadAll(targetReader)
	if err != nil {
		return err
	}
	target, err := cfg.parseDoc(rd)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if list {
		res, err := target.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		return cfg.writeDoc(w, ir.FromSlice(res))
	}
	res, err := target.GetPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	if res == nil {
		// don't encode anything and don't yell either
		return nil
	}
	if sep {
		argLines := strings.Split(strings.TrimSpace(arg), "\n")
		for i, argLine := range argLines {
			msg := "# from " + argLine + "\n"
			if i != 0 {
				msg = "#     " + argLine + "\n"
			}
			if _, err := w.Write([]byte(msg)); err != nil {
				return err
			}
		}
	}
	return cfg.writeDoc(w, res)
}
