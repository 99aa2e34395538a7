package encode

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/maakit/pipefmt/debug"
	"github.com/maakit/pipefmt/ir"
)

type RuleAction int

const (
	RuleInline RuleAction = iota
	RuleExpand
)

func ParseRuleAction(v string) (RuleAction, error) {
	switch strings.ToLower(v) {
	case "inline":
		return RuleInline, nil
	case "expand":
		return RuleExpand, nil
	}
	return 0, fmt.Errorf("unrecognized rule action %q", v)
}

// RuleEnv is the environment a rule predicate evaluates against: one
// candidate array or object and its rendering context.
type RuleEnv struct {
	Key    string `expr:"key"`
	Kind   string `expr:"kind"`
	Size   int    `expr:"size"`
	Simple bool   `expr:"simple"`
	Depth  int    `expr:"depth"`
}

// Rule forces a layout decision for values matched by its predicate,
// overriding the built-in field tables.
type Rule struct {
	Name   string
	Action RuleAction

	prog *vm.Program
}

// CompileRule compiles when as a boolean expr predicate over RuleEnv.
func CompileRule(name, when string, action RuleAction) (*Rule, error) {
	prog, err := expr.Compile(when, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return &Rule{Name: name, Action: action, prog: prog}, nil
}

func (r *Rule) match(env RuleEnv) (bool, error) {
	out, err := expr.Run(r.prog, env)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// applyRules returns the action of the first matching rule. Rules whose
// evaluation errors are skipped.
func (es *encState) applyRules(key string, v *ir.Node, depth int) (RuleAction, bool) {
	if len(es.rules) == 0 {
		return 0, false
	}
	kind := "object"
	if v.Type == ir.ArrayType {
		kind = "array"
	}
	env := RuleEnv{
		Key:    key,
		Kind:   kind,
		Size:   len(Compact(v)),
		Simple: allSimple(v.Values),
		Depth:  depth,
	}
	for _, r := range es.rules {
		matched, err := r.match(env)
		if err != nil {
			if debug.Rules() {
				debug.Logf("rules: %q skipped: %v", r.Name, err)
			}
			continue
		}
		if matched {
			if debug.Rules() {
				debug.Logf("rules: %q matched %q (%s)", r.Name, key, kind)
			}
			return r.Action, true
		}
	}
	return 0, false
}
