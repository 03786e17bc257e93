// Package printer implements a generic Wadler/Hughes-style pretty-printer
// backend: it consumes a [layout.Doc] tree and renders it to a string given
// a target width, indent unit, and line-break kind. It has no knowledge of
// GraphQL; [go.jacobcolvin.com/gqlfmt/gqlfmt] is the only caller.
package printer

import (
	"strings"
	"unicode/utf8"

	"go.jacobcolvin.com/gqlfmt/layout"
)

// LineBreak selects the line-terminator sequence the printer emits.
type LineBreak int

const (
	// LF selects "\n".
	LF LineBreak = iota
	// CRLF selects "\r\n".
	CRLF
)

func (lb LineBreak) String() string {
	if lb == CRLF {
		return "\r\n"
	}

	return "\n"
}

// Options configures a single [Print] call.
type Options struct {
	// Width is the target column budget used to decide whether a Group
	// fits flat.
	Width int
	// IndentWidth is the number of indent columns written as one tab when
	// UseTabs is set. The columns a Nest adds are its own N.
	IndentWidth int
	// UseTabs renders indentation as tab characters instead of spaces;
	// each tab still advances the *decision* column count by
	// IndentWidth, matching the source language's tab-size convention.
	UseTabs bool
	// LineBreak selects the emitted line terminator.
	LineBreak LineBreak
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

type item struct {
	indent int
	mode   mode
	doc    layout.Doc
}

// Print renders doc to a string under opts. The result always ends with
// exactly one LineBreak-terminator sequence if doc produced any output
// ending in a break; callers that need a guaranteed trailing newline should
// arrange for doc to end with a layout.HardLine.
func Print(doc layout.Doc, opts Options) string {
	var sb strings.Builder

	col := 0
	stack := []item{{indent: 0, mode: modeBreak, doc: doc}}

	newline := func(indent int) {
		sb.WriteString(opts.LineBreak.String())

		if opts.UseTabs {
			sb.WriteString(strings.Repeat("\t", indent/max1(opts.IndentWidth)))
		} else {
			sb.WriteString(strings.Repeat(" ", indent))
		}

		col = indent
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch d := it.doc.(type) {
		case layout.ConcatDoc:
			for i := len(d.Parts) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: it.indent, mode: it.mode, doc: d.Parts[i]})
			}
		case layout.TextDoc:
			sb.WriteString(d.S)

			if idx := strings.LastIndexByte(d.S, '\n'); idx >= 0 {
				col = utf8.RuneCountInString(d.S[idx+1:])
			} else {
				col += utf8.RuneCountInString(d.S)
			}
		case layout.SpaceDoc:
			sb.WriteByte(' ')
			col++
		case layout.SoftLineDoc:
			if it.mode == modeFlat {
				sb.WriteByte(' ')
				col++
			} else {
				newline(it.indent)
			}
		case layout.LineOrNilDoc:
			if it.mode == modeBreak {
				newline(it.indent)
			}
		case layout.HardLineDoc:
			newline(it.indent)
		case layout.EmptyLineDoc:
			sb.WriteString(opts.LineBreak.String())

			col = 0
		case layout.FlatOrBreakDoc:
			if it.mode == modeFlat {
				stack = append(stack, item{indent: it.indent, mode: it.mode, doc: d.Flat})
			} else {
				stack = append(stack, item{indent: it.indent, mode: it.mode, doc: d.Broken})
			}
		case layout.NestDoc:
			stack = append(stack, item{indent: it.indent + d.N, mode: it.mode, doc: d.Inner})
		case layout.GroupDoc:
			chosen := it.mode
			if it.mode == modeBreak {
				if width, forced := measureFlat(d.Inner); !forced && col+width <= opts.Width {
					chosen = modeFlat
				} else {
					chosen = modeBreak
				}
			}

			stack = append(stack, item{indent: it.indent, mode: chosen, doc: d.Inner})
		case nil:
			// Empty interface value; nothing to render.
		default:
			panic("printer: unknown layout.Doc implementation")
		}
	}

	return sb.String()
}

func max1(n int) int {
	if n < 1 {
		return 1
	}

	return n
}

// measureFlat computes the rendered width of d assuming every Group/
// FlatOrBreak/SoftLine/LineOrNil along the way takes its flat branch, and
// reports whether d contains a forced break (HardLine or EmptyLine) that
// makes a flat rendering impossible. Once forced is true the width is
// meaningless and callers must not use it.
func measureFlat(d layout.Doc) (width int, forced bool) {
	switch v := d.(type) {
	case layout.ConcatDoc:
		for _, p := range v.Parts {
			w, f := measureFlat(p)
			if f {
				return 0, true
			}

			width += w
		}

		return width, false
	case layout.TextDoc:
		if strings.Contains(v.S, "\n") {
			return 0, true
		}

		return utf8.RuneCountInString(v.S), false
	case layout.SpaceDoc:
		return 1, false
	case layout.SoftLineDoc:
		return 1, false
	case layout.LineOrNilDoc:
		return 0, false
	case layout.HardLineDoc:
		return 0, true
	case layout.EmptyLineDoc:
		return 0, true
	case layout.FlatOrBreakDoc:
		return measureFlat(v.Flat)
	case layout.NestDoc:
		return measureFlat(v.Inner)
	case layout.GroupDoc:
		return measureFlat(v.Inner)
	case nil:
		return 0, false
	default:
		panic("printer: unknown layout.Doc implementation")
	}
}
