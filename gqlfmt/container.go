package gqlfmt

import (
	"strings"

	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/layout"
)

// gapHasNewline reports whether a trivia run contains a Whitespace token
// spanning a line break. Used by the "smart" single-line policy: a
// delimited container whose own opening whitespace already broke the line,
// or a separated or directive list with a line break between two entries,
// keeps breaking, regardless of whether it would now fit.
func gapHasNewline(gap []cst.Element) bool {
	for _, e := range gap {
		if tok, ok := e.(*cst.Token); ok && tok.Kind() == cst.Whitespace && strings.Contains(tok.Text(), "\n") {
			return true
		}
	}

	return false
}

func commaBetween(policy Comma) (flat, broken bool) {
	switch policy {
	case CommaAlways, CommaNoTrailing:
		return true, true
	case CommaOnlySingleLine:
		return true, false
	default: // CommaNever, CommaInherit (already resolved upstream)
		return false, false
	}
}

func commaTrailing(policy Comma) (flat, broken bool) {
	switch policy {
	case CommaAlways:
		return false, true
	default: // CommaOnlySingleLine, CommaNoTrailing, CommaNever
		return false, false
	}
}

// delimitedBlock renders a brace-delimited container whose entries always
// each occupy their own line, regardless of width: SelectionSet, and the
// schema definition/extension root-operation-types block when its
// single-line policy is [SingleLineNever]. It is [optionalCommaList] with
// its single-line policy pinned to [SingleLineNever].
func delimitedBlock(c *ctx, n *cst.Node, comma Comma, renderEntry func(*cst.Node) layout.Doc) layout.Doc {
	return delimited(c, n, "{", "}", false, comma, SingleLineNever, renderEntry)
}

// optionalCommaList renders a container that prefers to stay on one line
// when it fits and the resolved [SingleLine] policy allows it: Arguments,
// ArgumentsDefinition, VariableDefinitions, ListValue, ObjectValue,
// FieldsDefinition, EnumValuesDefinition, InputFieldsDefinition, and the
// root-operation-types block under a policy other than [SingleLineNever].
func optionalCommaList(c *ctx, n *cst.Node, open, close string, spacing bool, comma Comma, single SingleLine, renderEntry func(*cst.Node) layout.Doc) layout.Doc {
	return delimited(c, n, open, close, spacing, comma, single, renderEntry)
}

func delimited(c *ctx, n *cst.Node, open, close string, spacing bool, comma Comma, single SingleLine, renderEntry func(*cst.Node) layout.Doc) layout.Doc {
	entries, gaps := splitChildren(n)
	if len(entries) == 0 {
		return layout.Text(open + close)
	}

	leadingPieces, _, _ := analyzeGap(c, gaps[0])

	forceBreak := single == SingleLineNever ||
		(single == SingleLineSmart && gapHasNewline(gaps[0])) ||
		len(leadingPieces) > 0

	flatBetween, brokenBetween := commaBetween(comma)
	flatTrailing, brokenTrailing := commaTrailing(comma)

	var body []layout.Doc

	for i, e := range entries {
		switch {
		case i > 0:
			pieces, blank, _ := analyzeGap(c, gaps[i])

			switch {
			case len(pieces) > 0:
				sep := layout.Text(",")
				if !brokenBetween {
					sep = layout.Empty()
				}

				// gapDoc opens with its own EmptyLine+HardLine after a blank
				// line; a comment on the previous entry's line stays there.
				lead := layout.HardLine()
				if blank {
					lead = layout.Empty()
				}

				for _, g := range gaps[i] {
					if tok := g.(*cst.Token); tok.Kind() == cst.Comment {
						lead = layout.Space()
						break
					} else if strings.Contains(tok.Text(), "\n") {
						break
					}
				}

				body = append(body, sep, lead, gapDoc(c, gaps[i], false))
			case forceBreak:
				sep := layout.Text(",")
				if !brokenBetween {
					sep = layout.Empty()
				}

				body = append(body, sep, layout.HardLine())
			default:
				flat := layout.Space()
				if flatBetween {
					flat = layout.Concat(layout.Text(","), layout.Space())
				}

				broken := layout.HardLine()
				if brokenBetween {
					broken = layout.Concat(layout.Text(","), layout.HardLine())
				}

				body = append(body, layout.FlatOrBreak(flat, broken))
			}
		case len(leadingPieces) > 0:
			body = append(body, gapDoc(c, gaps[0], true))
		}

		entryNode := e.(*cst.Node)

		if hasIgnoreDirective(c, gaps[i]) {
			body = append(body, layout.Text(entryNode.Text()))
		} else {
			body = append(body, renderEntry(entryNode))
		}
	}

	trailPieces, _, _ := analyzeGap(c, gaps[len(entries)])

	var trailer layout.Doc = layout.Empty()

	switch {
	case forceBreak:
		if brokenTrailing {
			trailer = layout.Text(",")
		}
	case flatTrailing != brokenTrailing:
		flat := layout.Empty()
		if flatTrailing {
			flat = layout.Text(",")
		}

		broken := layout.Empty()
		if brokenTrailing {
			broken = layout.Text(",")
		}

		trailer = layout.FlatOrBreak(flat, broken)
	case flatTrailing:
		trailer = layout.Text(",")
	}

	pad := layout.Empty()
	if spacing {
		pad = layout.Space()
	}

	var openSep, closeSep layout.Doc
	if forceBreak {
		openSep = layout.HardLine()
		closeSep = layout.HardLine()
	} else {
		openSep = layout.FlatOrBreak(pad, layout.HardLine())
		closeSep = layout.FlatOrBreak(pad, layout.HardLine())
	}

	inner := layout.Concat(
		openSep,
		layout.Concat(body...),
		trailer,
	)

	if len(trailPieces) > 0 {
		inner = layout.Concat(inner, layout.HardLine(), gapDoc(c, gaps[len(entries)], false))
	}

	doc := layout.Concat(
		layout.Text(open),
		layout.Nest(2, inner),
		closeSep,
		layout.Text(close),
	)

	if forceBreak {
		return doc
	}

	return layout.Group(doc)
}

// separatedList renders a list of bare entries joined by a fixed symbol
// with no enclosing delimiter of its own: UnionMemberTypes' "|",
// ImplementsInterfaces' "&", DirectiveLocations' "|".
func separatedList(c *ctx, n *cst.Node, sep string, single SingleLine, renderEntry func(*cst.Node) layout.Doc) layout.Doc {
	entries, gaps := splitChildren(n)
	if len(entries) == 0 {
		return layout.Empty()
	}

	forceBreak := single == SingleLineNever
	if single == SingleLineSmart {
		for _, g := range gaps[1:len(entries)] {
			forceBreak = forceBreak || gapHasNewline(g)
		}
	}

	var body []layout.Doc

	for i, e := range entries {
		switch {
		case i > 0:
			pieces, _, _ := analyzeGap(c, gaps[i])

			switch {
			case len(pieces) > 0:
				body = append(body, layout.HardLine(), gapDoc(c, gaps[i], false), layout.Text(sep+" "))
			case forceBreak:
				body = append(body, layout.HardLine(), layout.Text(sep+" "))
			default:
				body = append(body, layout.FlatOrBreak(
					layout.Concat(layout.Space(), layout.Text(sep), layout.Space()),
					layout.Concat(layout.HardLine(), layout.Text(sep+" ")),
				))
			}
		default:
			// Leading separator: nothing when the whole list fits flat,
			// "sep " before the first entry when it breaks.
			body = append(body, layout.FlatOrBreak(layout.Empty(), layout.Text(sep+" ")))
		}

		body = append(body, renderEntry(e.(*cst.Node)))
	}

	doc := layout.Nest(2, layout.Concat(body...))

	if forceBreak {
		return doc
	}

	return layout.Group(doc)
}

// spaceList renders a list of bare entries separated only by a space when
// flat, one per line when broken: Directives.
func spaceList(c *ctx, n *cst.Node, single SingleLine, renderEntry func(*cst.Node) layout.Doc) layout.Doc {
	entries, gaps := splitChildren(n)
	if len(entries) == 0 {
		return layout.Empty()
	}

	forceBreak := single == SingleLineNever
	if single == SingleLineSmart {
		for _, g := range gaps[1:len(entries)] {
			forceBreak = forceBreak || gapHasNewline(g)
		}
	}

	var body []layout.Doc

	for i, e := range entries {
		if i > 0 {
			pieces, _, _ := analyzeGap(c, gaps[i])

			switch {
			case len(pieces) > 0:
				body = append(body, layout.HardLine(), gapDoc(c, gaps[i], false))
			case forceBreak:
				body = append(body, layout.HardLine())
			default:
				body = append(body, layout.FlatOrBreak(layout.Space(), layout.HardLine()))
			}
		}

		body = append(body, renderEntry(e.(*cst.Node)))
	}

	doc := layout.Nest(2, layout.Concat(body...))

	if forceBreak {
		return doc
	}

	return layout.Group(doc)
}
