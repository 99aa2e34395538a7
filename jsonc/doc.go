// Package jsonc handles comment material in pipeline JSON documents.
//
// Pipeline files are JSON annotated with // and /* */ comments. The parser
// only accepts strict JSON, so comments are stripped before parsing (Strip)
// and recovered after rendering by a best-effort textual pass (Reattach).
//
// # Known limitations
//
// Strip scans for comment markers without tracking string-quoting context,
// so a "//" or "/*" inside a quoted JSON string is treated as a comment
// start. Reattach associates comment blocks with key names, not tree paths,
// so duplicate key names at different nesting depths collide and only the
// last block scanned for a name survives. Both behaviors are deliberate:
// they match the established behavior of the pipeline tooling, and changing
// them would alter formatter output on existing documents.
package jsonc
