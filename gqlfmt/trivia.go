package gqlfmt

import (
	"strings"

	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/layout"
)

// isTriviaElem reports whether e is a [cst.Whitespace] or [cst.Comment]
// token.
func isTriviaElem(e cst.Element) bool {
	tok, ok := e.(*cst.Token)
	return ok && tok.Kind().IsTrivia()
}

// splitChildren partitions n's child nodes (the "real" elements) from the
// runs of trivia between them. Non-trivia tokens (delimiters, commas,
// separators, keywords) are skipped, so trivia on either side of one lands
// in the same run; callers render those tokens themselves.
// len(gaps) == len(real)+1: gaps[i] holds the trivia immediately before
// real[i], and gaps[len(real)] holds any trailing trivia after the last real
// child.
func splitChildren(n *cst.Node) (real []cst.Element, gaps [][]cst.Element) {
	gaps = append(gaps, nil)
	cur := 0

	for _, c := range n.Children() {
		if isTriviaElem(c) {
			gaps[cur] = append(gaps[cur], c)
			continue
		}

		if _, ok := c.(*cst.Node); !ok {
			continue
		}

		real = append(real, c)
		gaps = append(gaps, nil)
		cur++
	}

	return real, gaps
}

// commentPiece is one "# ..." line recovered from a trivia run.
type commentPiece struct {
	blankBefore bool
	rendered    string // full "#..." text, ready to emit
	raw         string // content after the leading '#', for directive matching
}

// analyzeGap classifies a run of trivia tokens: whether a blank line
// precedes the first comment (or the run as a whole, if it holds no
// comments), the comments themselves with per-comment blank-line flags, and
// whether a blank line follows the last comment (or the run as a whole).
func analyzeGap(c *ctx, elems []cst.Element) (pieces []commentPiece, blankBefore, blankAfter bool) {
	newlines := 0
	sawComment := false

	for _, e := range elems {
		tok, ok := e.(*cst.Token)
		if !ok {
			continue
		}

		switch tok.Kind() {
		case cst.Whitespace:
			newlines += strings.Count(tok.Text(), "\n")
		case cst.Comment:
			blank := newlines >= 2
			if !sawComment {
				blankBefore = blank
			}

			raw := strings.TrimPrefix(strings.TrimRight(tok.Text(), " \t\r"), "#")
			pieces = append(pieces, commentPiece{
				blankBefore: blank,
				rendered:    renderComment(raw, c.lang.FormatComments),
				raw:         strings.TrimSpace(raw),
			})

			newlines = 0
			sawComment = true
		}
	}

	if !sawComment {
		blankBefore = newlines >= 2
		blankAfter = blankBefore
	} else {
		blankAfter = newlines >= 2
	}

	return pieces, blankBefore, blankAfter
}

// renderComment rebuilds the full "#..." text for comment content raw (the
// text after the leading '#', already right-trimmed). When format is false
// the original spacing after '#' is preserved verbatim; when true, a single
// space is inserted after '#' only if the content is non-empty and starts
// with neither a space nor a tab. Existing spacing is never reduced.
func renderComment(raw string, format bool) string {
	if !format {
		return "#" + raw
	}

	if raw == "" {
		return "#"
	}

	if strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t") {
		return "#" + raw
	}

	return "# " + raw
}

// hasIgnoreDirective reports whether gap contains a comment whose content
// exactly matches the configured ignore-comment directive (default
// "dprint-ignore"), case-sensitively, after trimming surrounding
// whitespace.
func hasIgnoreDirective(c *ctx, gap []cst.Element) bool {
	directive := c.lang.IgnoreCommentDirective
	if directive == "" {
		return false
	}

	for _, e := range gap {
		tok, ok := e.(*cst.Token)
		if !ok || tok.Kind() != cst.Comment {
			continue
		}

		raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimRight(tok.Text(), " \t\r"), "#"))
		if raw == directive {
			return true
		}
	}

	return false
}

// gapDoc renders a trivia run as layout, to be spliced between the
// surrounding content. A blank line in the source becomes EmptyLine followed
// by HardLine. suppressLeadingBlank drops the blank-line padding before the
// first comment (used at the very start and end of a document or container,
// and between a node's own pieces via [siblingGap]) without dropping the
// comments themselves.
func gapDoc(c *ctx, elems []cst.Element, suppressLeadingBlank bool) layout.Doc {
	pieces, blankBefore, _ := analyzeGap(c, elems)
	if len(pieces) == 0 {
		return layout.Empty()
	}

	var docs []layout.Doc

	if blankBefore && !suppressLeadingBlank {
		docs = append(docs, layout.EmptyLine(), layout.HardLine())
	}

	for i, p := range pieces {
		if i > 0 {
			if p.blankBefore {
				docs = append(docs, layout.EmptyLine())
			}

			docs = append(docs, layout.HardLine())
		}

		docs = append(docs, layout.Text(p.rendered))
	}

	docs = append(docs, layout.HardLine())

	return layout.Concat(docs...)
}

// siblingGap renders the spacing immediately before one of a node's own
// children, e: a single Space when no comment sits between e and its
// previous sibling in the source, or the comment's rendered content
// (forcing a line break before e) otherwise. Used wherever a node formatter
// joins two of its own optional pieces, so a comment placed between them
// isn't silently dropped.
func siblingGap(c *ctx, e cst.Element) layout.Doc {
	var gap []cst.Element

	for prev := e.PrevSibling(); prev != nil && isTriviaElem(prev); prev = prev.PrevSibling() {
		gap = append([]cst.Element{prev}, gap...)
	}

	pieces, _, _ := analyzeGap(c, gap)
	if len(pieces) == 0 {
		return layout.Space()
	}

	return gapDoc(c, gap, true)
}

// trailingBlankLine reports whether the trivia run ends in a blank line,
// i.e. whether a blank line should separate whatever follows it from what
// precedes it even once any comments in the run have already been emitted.
func trailingBlankLine(c *ctx, elems []cst.Element) bool {
	_, _, blankAfter := analyzeGap(c, elems)
	return blankAfter
}
