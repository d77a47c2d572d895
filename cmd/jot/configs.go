package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/signadot/jot-format/jot/encode"
	"github.com/signadot/jot-format/jot/eval"
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

type MainConfig struct {
	Strict  bool `cli:"name=strict desc='reject all loose extensions'"`
	Loose   bool `cli:"name=loose aliases=L desc='accept comments, trailing commas and unquoted keys'"`
	Compact bool `cli:"name=c aliases=compact desc='single line output'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	YIn     bool `cli:"name=iy desc='read input as yaml'"`
	YOut    bool `cli:"name=oy desc='write output as yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	switch {
	case cfg.Strict:
		return []parse.ParseOption{parse.ParseStrict()}
	case cfg.Loose:
		return []parse.ParseOption{parse.ParseLoose()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(!cfg.Compact),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// parseDoc decodes one input document honoring the input format flags.
func (cfg *MainConfig) parseDoc(d []byte) (*ir.Value, error) {
	if cfg.YIn {
		return eval.FromYAML(d)
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

// writeDoc renders one result document honoring the output format
// flags. Results end with a newline.
func (cfg *MainConfig) writeDoc(w io.Writer, node *ir.Value, opts ...encode.EncodeOption) error {
	if cfg.YOut {
		d, err := eval.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(node, w, append(cfg.encOpts(w), opts...)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig
	Merge   bool   `cli:"name=m aliases=merge desc='output a merge patch instead of a text diff'"`
	Loop    string `cli:"name=loop desc='command to produce documents to diff in a loop'"`
	LoopLim int    `cli:"name=loopLim desc='max number of times to loop'"`

	LoopEvery time.Duration

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='treat the patch as an rfc 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env eval.Env

	Query *cli.Command
}

type ExpandConfig struct {
	*MainConfig
	Env eval.Env

	Expand *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

// envFunc records a name=value environment binding for expressions.
// Values parse as documents and fall back to plain strings.
func envFunc(env eval.Env, a string) error {
	eqAt := strings.Index(a, "=")
	if eqAt <= 0 {
		return fmt.Errorf("%w: -e requires name=value, got %q", cli.ErrUsage, a)
	}
	name, val := a[:eqAt], a[eqAt+1:]
	node, err := parse.Parse([]byte(val))
	if err != nil {
		env[name] = val
		return nil
	}
	env[name] = eval.ToAny(node)
	return nil
}
