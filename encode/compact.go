package encode

import (
	"strings"
	"unicode"

	"github.com/maakit/pipefmt/ir"
)

// Compact renders node on a single line. Object pairs and array elements
// are joined with ", " and keys with ": ", so compact composites read
// [0, 0, 100, 100] and {"x": 1}. Number nodes are emitted as their source
// literal: 1e14 stays 1e14 rather than being reprinted as
// 100000000000000.0, so formatting never perturbs a number's spelling.
func Compact(node *ir.Node) string {
	var b strings.Builder
	compactTo(&b, node)
	return b.String()
}

func compactTo(b *strings.Builder, node *ir.Node) {
	switch node.Type {
	case ir.NullType:
		b.WriteString("null")
	case ir.BoolType:
		if node.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ir.NumberType:
		b.WriteString(node.Number)
	case ir.StringType:
		b.WriteString(Quote(node.String))
	case ir.ArrayType:
		b.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			compactTo(b, v)
		}
		b.WriteByte(']')
	case ir.ObjectType:
		b.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Quote(node.Fields[i].String))
			b.WriteString(": ")
			compactTo(b, node.Values[i])
		}
		b.WriteByte('}')
	}
}

const hexDigits = "0123456789abcdef"

// Quote returns v as a JSON string literal with minimal escaping: quote,
// backslash, the short escapes, and \u00xx for remaining control
// characters. Non-ASCII runes are kept raw (the output is UTF-8).
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u', '0', '0',
					hexDigits[(r>>4)&0xf], hexDigits[r&0xf])
			} else {
				d = append(d, string(r)...)
			}
		}
	}
	return string(append(d, '"'))
}
