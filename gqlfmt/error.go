package gqlfmt

import (
	"sort"
	"strconv"
	"strings"
)

// SyntaxIssue is one grammar violation found while parsing, with its byte
// offset already translated to a 1-based (line, column) pair.
type SyntaxIssue struct {
	Line    int
	Column  int
	Message string
}

// ParseError is returned by [FormatText] when the input is not a valid
// GraphQL document. It carries the original input text and every syntax
// issue found; formatting is refused entirely rather than returning partial
// output.
type ParseError struct {
	Input  string
	Issues []SyntaxIssue
}

// Error renders one line per issue in the form
// "syntax error at line {L}, col {C}: {message}", joined by "\n", with no
// trailing newline after the last.
func (e *ParseError) Error() string {
	lines := make([]string, len(e.Issues))

	for i, issue := range e.Issues {
		lines[i] = "syntax error at line " + strconv.Itoa(issue.Line) +
			", col " + strconv.Itoa(issue.Column) + ": " + issue.Message
	}

	return strings.Join(lines, "\n")
}

// lineTable maps byte offsets to 1-based (line, column) pairs, built once per
// source document.
type lineTable struct {
	starts []int // byte offset of the first byte of each line
}

func newLineTable(src string) *lineTable {
	lt := &lineTable{starts: []int{0}}

	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lt.starts = append(lt.starts, i+1)
		}
	}

	return lt
}

func (lt *lineTable) position(offset int) (line, column int) {
	line = sort.Search(len(lt.starts), func(i int) bool {
		return lt.starts[i] > offset
	})

	return line, offset - lt.starts[line-1] + 1
}
