// Package ir provides the intermediate representation (IR) for pipeline
// JSON documents.
//
// # Overview
//
// The IR package defines the core data structure for representing parsed
// pipeline documents as a tree of nodes. All documents handled by pipefmt
// (whether parsed from text or created programmatically) are represented as
// ir.Node trees.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Fields are string typed and
// their order is the order of appearance in the source document. Key order
// is semantically meaningful in the pipeline format and must survive a
// parse/encode round trip, which is why objects are not maps.
//
// Number values keep the raw source literal in the Number field so encoding
// never re-canonicalizes numerics. Int64 and Float64 are populated in
// addition when the literal is representable.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is an object
//
// Use Visit for pre/post order traversal and Get for field lookup.
package ir
