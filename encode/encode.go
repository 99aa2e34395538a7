package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/maakit/pipefmt/ir"
)

// Encode renders node, which must be an object, to w. The root object is
// always expanded, and so is every object directly under it: top-level
// values are pipeline nodes. No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...Opt) error {
	es := &encState{
		indent:    "\t",
		threshold: 50,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: got nothing", ErrRootNotObject)
	}
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: got %s", ErrRootNotObject, node.Type)
	}
	_, err := io.WriteString(w, es.encodeObject(node, 0, true))
	return err
}

// String renders node as Encode does and returns the text.
func String(node *ir.Node, opts ...Opt) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// encodeValue renders the value under key at the given indent level.
// parentIsRoot marks values held directly by the root object; their
// objects bypass the inline decision.
func (es *encState) encodeValue(key string, v *ir.Node, level int, parentIsRoot bool) string {
	if isSimpleValue(v) {
		return Compact(v)
	}
	if v.Type == ir.ArrayType {
		if es.shouldInlineArray(key, v, level) {
			return Compact(v)
		}
		lines := make([]string, 0, len(v.Values)+2)
		lines = append(lines, "[")
		last := len(v.Values) - 1
		for i, item := range v.Values {
			// array elements carry no field-name hint
			s := strings.Repeat(es.indent, level+1) + es.encodeValue("", item, level+1, false)
			if i < last {
				s += ","
			}
			lines = append(lines, s)
		}
		lines = append(lines, strings.Repeat(es.indent, level)+"]")
		return strings.Join(lines, "\n")
	}
	if parentIsRoot {
		return es.encodeObject(v, level, false)
	}
	if es.shouldInlineObject(key, v, level) {
		return Compact(v)
	}
	return es.encodeObject(v, level, false)
}

func (es *encState) encodeObject(obj *ir.Node, level int, isRoot bool) string {
	if len(obj.Fields) == 0 {
		return "{}"
	}
	lines := make([]string, 0, len(obj.Fields)+2)
	lines = append(lines, "{")
	last := len(obj.Fields) - 1
	for i := range obj.Fields {
		key := obj.Fields[i].String
		s := strings.Repeat(es.indent, level+1) +
			Quote(key) + ": " +
			es.encodeValue(key, obj.Values[i], level+1, isRoot)
		if i < last {
			s += ","
		}
		lines = append(lines, s)
	}
	lines = append(lines, strings.Repeat(es.indent, level)+"}")
	return strings.Join(lines, "\n")
}
