package encode

import (
	"github.com/maakit/pipefmt/debug"
	"github.com/maakit/pipefmt/ir"
)

// isSimpleValue reports whether v renders as a single compact token in all
// contexts: null, booleans, numbers, and strings.
func isSimpleValue(v *ir.Node) bool {
	return v.Type.IsLeaf()
}

func allSimple(vs []*ir.Node) bool {
	for _, v := range vs {
		if !isSimpleValue(v) {
			return false
		}
	}
	return true
}

// isCoordinateArray reports whether v is an all-numeric array under a
// coordinate field name. Coordinate tuples (points, rectangles, ranges)
// inline regardless of length.
func (es *encState) isCoordinateArray(key string, v *ir.Node) bool {
	if !es.coordinate[key] {
		return false
	}
	if v.Type != ir.ArrayType {
		return false
	}
	for _, elt := range v.Values {
		if elt.Type != ir.NumberType {
			return false
		}
	}
	return true
}

func (es *encState) shouldInlineArray(key string, v *ir.Node, depth int) bool {
	if len(v.Values) == 0 {
		return true
	}
	if action, ok := es.applyRules(key, v, depth); ok {
		return action == RuleInline
	}
	if es.isCoordinateArray(key, v) {
		return true
	}
	if es.controlFlow[key] {
		return false
	}
	inline := allSimple(v.Values) && len(Compact(v)) <= es.threshold
	if debug.Classify() {
		debug.Logf("classify: array %q inline=%v", key, inline)
	}
	return inline
}

func (es *encState) shouldInlineObject(key string, v *ir.Node, depth int) bool {
	if len(v.Fields) == 0 {
		return true
	}
	if action, ok := es.applyRules(key, v, depth); ok {
		return action == RuleInline
	}
	if es.alwaysMultiline[key] {
		return false
	}
	inline := allSimple(v.Values) && len(Compact(v)) <= es.threshold
	if debug.Classify() {
		debug.Logf("classify: object %q inline=%v", key, inline)
	}
	return inline
}
