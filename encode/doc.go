// Package encode renders ir.Node trees as formatted pipeline JSON.
//
// # Overview
//
// Every array and object in a document is rendered either inline (one
// compact line) or expanded (one element or pair per indented line). The
// decision is driven by the field name the value sits under, the value's
// shape, and the character length of its compact rendering:
//
//   - coordinate fields (roi, target, begin, ...) holding numeric arrays
//     always inline, regardless of length
//   - control-flow fields (next, interrupt, ...) holding arrays always
//     expand, one reference per line
//   - parameter-block fields (params, options, config, ...) holding
//     objects always expand
//   - otherwise, values containing only simple elements inline when their
//     compact rendering fits the configured threshold
//
// The root object always expands, as does every object directly under it
// (top-level values are pipeline nodes and are always laid out for
// line-by-line review).
//
// # Usage
//
//	err := encode.Encode(node, w,
//		encode.Indent("\t"),
//		encode.CoordinateFields("roi", "target"),
//		encode.InlineThreshold(50),
//	)
//
// Compact renders any node on a single line using ", " and ": "
// separators; the same rendering is what the threshold is measured
// against.
package encode
