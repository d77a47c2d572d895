package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Match bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JOT_DEBUG_PARSE")
	d.Eval = boolEnv("JOT_DEBUG_EVAL")
	d.Match = boolEnv("JOT_DEBUG_MATCH")
	d.Patch = boolEnv("JOT_DEBUG_PATCH")
	d.Diff = boolEnv("JOT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
