package textdiff

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nB\nc\n"
	lines := Lines(from, to)
	if !Differs(lines) {
		t.Fatal("expected a difference")
	}
	var dels, inss []string
	for _, ln := range lines {
		switch ln.Op {
		case Delete:
			dels = append(dels, ln.Text)
		case Insert:
			inss = append(inss, ln.Text)
		}
	}
	if len(dels) != 1 || dels[0] != "b" {
		t.Errorf("deletes: %v", dels)
	}
	if len(inss) != 1 || inss[0] != "B" {
		t.Errorf("inserts: %v", inss)
	}
}

func TestLinesEqual(t *testing.T) {
	lines := Lines("x\ny\n", "x\ny\n")
	if Differs(lines) {
		t.Error("no difference expected")
	}
}

func TestFprint(t *testing.T) {
	var b strings.Builder
	lines := Lines("a\nb\n", "a\nc\n")
	if err := Fprint(&b, lines, false); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "-b") || !strings.Contains(out, "+c") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, " a") {
		t.Errorf("equal line missing prefix:\n%s", out)
	}
}
