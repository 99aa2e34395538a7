package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/maakit/pipefmt/ir"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		in    string
		check func(t *testing.T, node *ir.Node)
	}{
		{
			in: `null`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.NullType {
					t.Errorf("got %s", node.Type)
				}
			},
		},
		{
			in: `true`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.BoolType || !node.Bool {
					t.Errorf("got %+v", node)
				}
			},
		},
		{
			in: `"hello"`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.StringType || node.String != "hello" {
					t.Errorf("got %+v", node)
				}
			},
		},
		{
			in: `22`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.NumberType || node.Number != "22" {
					t.Errorf("got %+v", node)
				}
				if node.Int64 == nil || *node.Int64 != 22 {
					t.Errorf("int64 not set: %+v", node)
				}
			},
		},
		{
			in: `1e14`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Number != "1e14" {
					t.Errorf("literal not preserved: %q", node.Number)
				}
				if node.Int64 != nil || node.Float64 == nil {
					t.Errorf("expected float representation: %+v", node)
				}
			},
		},
		{
			in: `[1, [2, [3]]]`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.ArrayType || len(node.Values) != 2 {
					t.Errorf("got %+v", node)
				}
			},
		},
		{
			in: `{"z": 1, "a": 2, "m": 3}`,
			check: func(t *testing.T, node *ir.Node) {
				want := []string{"z", "a", "m"}
				for i, key := range want {
					if node.Fields[i].String != key {
						t.Errorf("field %d: got %q, want %q", i, node.Fields[i].String, key)
					}
				}
			},
		},
		{
			// duplicate keys: first position, last value
			in: `{"a": 1, "b": 2, "a": 3}`,
			check: func(t *testing.T, node *ir.Node) {
				if len(node.Fields) != 2 {
					t.Fatalf("got %d fields", len(node.Fields))
				}
				if node.Fields[0].String != "a" || *node.Values[0].Int64 != 3 {
					t.Errorf("dup key: %q=%s", node.Fields[0].String, node.Values[0].Number)
				}
				if node.Fields[1].String != "b" {
					t.Errorf("second field %q", node.Fields[1].String)
				}
			},
		},
		{
			in: `{}`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.ObjectType || len(node.Fields) != 0 {
					t.Errorf("got %+v", node)
				}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			tc.check(t, node)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`{"a": 1,}`,
		`[1, 2,]`,
		`{"a" 1}`,
		`{"a": 1} trailing`,
		`// comment`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Parse([]byte(in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("not an ErrParse: %v", err)
			}
			if !strings.HasPrefix(err.Error(), "JSON parse error") {
				t.Errorf("message %q", err.Error())
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse([]byte("{\n\"a\": 1,\n}"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("no location in %q", err.Error())
	}
}
