package jsonc

import "regexp"

var (
	lineComment  = regexp.MustCompile(`(?m)//.*?$`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Strip removes // line comments and /* */ block comments from d. Line
// comment removal keeps the trailing newline so line counts stay aligned
// with the input; block comments spanning lines are removed together with
// their interior newlines. No other characters are touched.
//
// Strip is unaware of string quoting: comment markers inside quoted JSON
// strings are treated as comment starts. See the package documentation.
func Strip(d []byte) []byte {
	d = lineComment.ReplaceAll(d, nil)
	return blockComment.ReplaceAll(d, nil)
}

// StripString is Strip on a string.
func StripString(s string) string {
	s = lineComment.ReplaceAllString(s, "")
	return blockComment.ReplaceAllString(s, "")
}
