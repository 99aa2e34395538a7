// Package debug provides env-var gated debug switches for pipefmt.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Reattach bool
	Rules    bool
	Classify bool
}

var d *debug

func init() {
	d = &debug{}
	d.Reattach = boolEnv("PIPEFMT_DEBUG_REATTACH")
	d.Rules = boolEnv("PIPEFMT_DEBUG_RULES")
	d.Classify = boolEnv("PIPEFMT_DEBUG_CLASSIFY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Reattach() bool {
	return d.Reattach
}
func Rules() bool {
	return d.Rules
}
func Classify() bool {
	return d.Classify
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "pipefmt: "+format+"\n", args...)
}
