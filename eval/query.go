package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/jot-format/jot/ir"
)

type Env = map[string]any

// Query compiles and runs an expr-lang expression against doc and
// converts the result to a value tree. The expression sees env plus
// the functions getpath, listpath and getenv.
func Query(doc *ir.Value, src string, env Env) (*ir.Value, error) {
	res, err := eval(doc, src, env)
	if err != nil {
		return nil, err
	}
	return FromAny(res)
}

func eval(doc *ir.Value, src string, env Env) (any, error) {
	if env == nil {
		env = Env{}
	}
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	return vm.Run(prg, env)
}

func exprOpts(doc *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) *ir.Value)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) []*ir.Value)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
