package encode

import (
	"testing"

	"github.com/maakit/pipefmt/parse"
)

func mustRule(t *testing.T, name, when string, action RuleAction) *Rule {
	t.Helper()
	r, err := CompileRule(name, when, action)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRulesOverrideTables(t *testing.T) {
	// a rule can inline a control-flow field: rules run before the
	// built-in tables
	opts := append(defaultOpts(),
		Rules(mustRule(t, "short-next", `key == "next" && size <= 20`, RuleInline)))
	got := render(t, `{"next": ["n1", "n2"]}`, opts...)
	want := "{\n\t\"next\": [\"n1\", \"n2\"]\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRulesForceExpand(t *testing.T) {
	opts := append(defaultOpts(),
		Rules(mustRule(t, "expand-objects", `kind == "object" && depth > 1`, RuleExpand)))
	got := render(t, `{"node": {"sub": {"x": 1}}}`, opts...)
	want := "{\n\t\"node\": {\n\t\t\"sub\": {\n\t\t\t\"x\": 1\n\t\t}\n\t}\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRulesFirstMatchWins(t *testing.T) {
	opts := append(defaultOpts(), Rules(
		mustRule(t, "first", `key == "pts"`, RuleInline),
		mustRule(t, "second", `key == "pts"`, RuleExpand),
	))
	got := render(t, `{"box": {"pts": [1, 2, 3]}}`, opts...)
	want := "{\n\t\"box\": {\n\t\t\"pts\": [1, 2, 3]\n\t}\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRulesEmptyValueWinsOverRules(t *testing.T) {
	opts := append(defaultOpts(),
		Rules(mustRule(t, "all", `true`, RuleExpand)))
	got := render(t, `{"next": []}`, opts...)
	want := "{\n\t\"next\": []\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCompileRuleErrors(t *testing.T) {
	if _, err := CompileRule("bad", `key ==`, RuleInline); err == nil {
		t.Error("expected compile error")
	}
	if _, err := CompileRule("not-bool", `size`, RuleInline); err == nil {
		t.Error("expected non-boolean predicate to fail compilation")
	}
}

func TestParseRuleAction(t *testing.T) {
	if a, err := ParseRuleAction("inline"); err != nil || a != RuleInline {
		t.Errorf("inline: %v %v", a, err)
	}
	if a, err := ParseRuleAction("Expand"); err != nil || a != RuleExpand {
		t.Errorf("expand: %v %v", a, err)
	}
	if _, err := ParseRuleAction("fold"); err == nil {
		t.Error("expected error")
	}
}

func TestRuleEnvVisibility(t *testing.T) {
	node, err := parse.Parse([]byte(`{"a": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	r := mustRule(t, "env", `kind == "array" && simple && size == 6 && depth == 1 && key == "a"`, RuleExpand)
	out, err := String(node, append(defaultOpts(), Rules(r))...)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"a\": [\n\t\t1,\n\t\t2\n\t]\n}"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}
