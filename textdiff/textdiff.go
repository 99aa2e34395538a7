// Package textdiff renders line diffs between an input document and its
// formatted form.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

type Line struct {
	Op   Op
	Text string
}

// Lines computes a line-oriented diff from one text to another.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)
	var res []Line
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			op = Equal
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Differs reports whether lines contains any non-equal line.
func Differs(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Fprint writes lines in unified-diff style ("-", "+", " " prefixes),
// coloring deletions red and insertions green when colorize is set.
func Fprint(w io.Writer, lines []Line, colorize bool) error {
	var (
		del = fmt.Sprint
		ins = fmt.Sprint
	)
	if colorize {
		del = color.New(color.FgRed).SprintFunc()
		ins = color.New(color.FgGreen).SprintFunc()
	}
	for i := range lines {
		ln := &lines[i]
		var s string
		switch ln.Op {
		case Delete:
			s = del("-" + ln.Text)
		case Insert:
			s = ins("+" + ln.Text)
		default:
			s = " " + ln.Text
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
