package jsonc

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/maakit/pipefmt/debug"
)

var keyPattern = regexp.MustCompile(`"([^"]+)"\s*:`)

func isCommentLine(stripped string) bool {
	return strings.HasPrefix(stripped, "//") ||
		strings.HasPrefix(stripped, "/*") ||
		strings.HasPrefix(stripped, "*")
}

// Reattach maps comment blocks from original onto rendered. A comment block
// is a run of comment lines immediately preceding a `"key":` line in
// original; each block is re-emitted above every line of rendered carrying
// the same key name, indented with spaces to the width of that line's
// leading whitespace.
//
// Association is by key name only. When a name recurs, the last block
// scanned wins, and the surviving block repeats at each occurrence in the
// output.
func Reattach(original, rendered string) string {
	commentMap := map[string][]string{}
	var pending []string

	for _, line := range strings.Split(original, "\n") {
		stripped := strings.TrimSpace(line)
		if isCommentLine(stripped) {
			pending = append(pending, strings.TrimRightFunc(line, unicode.IsSpace))
			continue
		}
		if !strings.Contains(stripped, `"`) || !strings.Contains(stripped, ":") {
			continue
		}
		m := keyPattern.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}
		if len(pending) > 0 {
			commentMap[m[1]] = slices.Clone(pending)
			pending = pending[:0]
		}
	}
	if debug.Reattach() {
		debug.Logf("reattach: %d comment blocks collected", len(commentMap))
	}

	var out []string
	for _, line := range strings.Split(rendered, "\n") {
		if m := keyPattern.FindStringSubmatch(line); m != nil {
			if comments, ok := commentMap[m[1]]; ok {
				width := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
				pad := strings.Repeat(" ", width)
				for _, c := range comments {
					out = append(out, pad+strings.TrimLeftFunc(c, unicode.IsSpace))
				}
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
