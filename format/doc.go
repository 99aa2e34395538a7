// Package format provides the pipefmt formatting pipeline.
//
// # Usage
//
//	f, err := format.New(format.DefaultConfig())
//	out, err := f.Format(input)
//
// Format runs strip -> parse -> render -> reattach over one document:
// comments are removed, the remaining strict JSON is parsed into an
// ir.Node tree, the tree is rendered by the encode package, and stripped
// comments are reattached to their keys on a best-effort basis.
//
// A Formatter is immutable once constructed; independent formatters with
// different configurations can coexist in one process.
//
// # Related Packages
//
//   - github.com/maakit/pipefmt/parse - parse text to IR
//   - github.com/maakit/pipefmt/encode - encode IR to text
//   - github.com/maakit/pipefmt/jsonc - comment stripping and reattachment
package format
