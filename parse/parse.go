// Package parse provides pipeline JSON parsing support.
//
// Parse reads a strict JSON document into an ir.Node tree, preserving
// object key order. Comments must be stripped first (see the jsonc
// package); the parser rejects them like any other syntax error.
package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/maakit/pipefmt/ir"
)

// Parse decodes d into an ir.Node tree. Errors wrap ErrParse and carry the
// decoder's diagnostic plus a line/column location.
func Parse(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, parseErr(d, err)
	}
	node, err := parseValue(dec, tok)
	if err != nil {
		return nil, parseErr(d, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected trailing content")
		}
		return nil, parseErr(d, err)
	}
	return node, nil
}

func parseErr(d []byte, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		line, col := lineCol(d, serr.Offset)
		return fmt.Errorf("%w: %s (line %d, column %d)", ErrParse, serr.Error(), line, col)
	}
	return fmt.Errorf("%w: %v", ErrParse, err)
}

func lineCol(d []byte, offset int64) (int, int) {
	if offset > int64(len(d)) {
		offset = int64(len(d))
	}
	pre := d[:offset]
	line := bytes.Count(pre, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(pre, '\n')
	return line, col
}

func parseValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(t), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (*ir.Node, error) {
	var (
		kvs   []ir.KeyVal
		index = map[string]int{}
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return ir.FromKeyVals(kvs), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		// duplicate keys keep the first position, last value
		if at, dup := index[key]; dup {
			kvs[at].Val = val
			continue
		}
		index[key] = len(kvs)
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
}

func parseArray(dec *json.Decoder) (*ir.Node, error) {
	var elts []*ir.Node
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return ir.FromSlice(elts), nil
		}
		elt, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		elts = append(elts, elt)
	}
}

func numberNode(num json.Number) *ir.Node {
	node := &ir.Node{
		Type:   ir.NumberType,
		Number: num.String(),
	}
	if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
		node.Int64 = &i
		return node
	}
	if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
		node.Float64 = &f
	}
	return node
}
