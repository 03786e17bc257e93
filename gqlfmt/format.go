package gqlfmt

import (
	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/gqlparser"
	"go.jacobcolvin.com/gqlfmt/layout"
	"go.jacobcolvin.com/gqlfmt/printer"
)

// FormatText parses src as a GraphQL document and renders it back out under
// opts. If src has one or more syntax errors, formatting is refused
// entirely: the returned string is empty and err is a [*ParseError], so
// callers never write partial output over a file that failed to parse.
func FormatText(src string, opts FormatOptions) (string, error) {
	doc, syntaxErrs := gqlparser.Parse(src)

	if len(syntaxErrs) > 0 {
		lt := newLineTable(src)
		issues := make([]SyntaxIssue, 0, len(syntaxErrs))

		for _, e := range syntaxErrs {
			line, col := lt.position(e.Offset)
			issues = append(issues, SyntaxIssue{Line: line, Column: col, Message: e.Message})
		}

		return "", &ParseError{Input: src, Issues: issues}
	}

	c := newCtx(&opts)
	body := formatDocument(c, doc.Root)

	printed := printer.Print(body, printer.Options{
		Width:       opts.Layout.PrintWidth,
		IndentWidth: opts.Layout.IndentWidth,
		UseTabs:     opts.Layout.UseTabs,
		LineBreak:   printerLineBreak(opts.Layout.LineBreak),
	})

	return printed, nil
}

func printerLineBreak(lb LineBreakKind) printer.LineBreak {
	if lb == LineBreakCRLF {
		return printer.CRLF
	}

	return printer.LF
}

// PrintTree renders an already-parsed [cst.Document] directly, skipping the
// parse step. Exposed for callers (such as tests) that already hold a tree,
// e.g. to re-render after an edit without re-lexing.
func PrintTree(doc *cst.Document, opts FormatOptions) string {
	c := newCtx(&opts)
	body := formatDocument(c, doc.Root)

	return printer.Print(body, printer.Options{
		Width:       opts.Layout.PrintWidth,
		IndentWidth: opts.Layout.IndentWidth,
		UseTabs:     opts.Layout.UseTabs,
		LineBreak:   printerLineBreak(opts.Layout.LineBreak),
	})
}

// formatDocument renders every top-level definition, blank-line and
// comment aware, with leading/trailing whitespace at the root suppressed
// and a single trailing HardLine so output always ends in a newline.
// Comments before the first and after the last definition are kept.
func formatDocument(c *ctx, root *cst.Node) layout.Doc {
	entries, gaps := splitChildren(root)
	if len(entries) == 0 {
		return gapDoc(c, gaps[0], true)
	}

	var parts []layout.Doc

	for i, e := range entries {
		if i > 0 {
			pieces, blankBefore, blankAfter := analyzeGap(c, gaps[i])
			if len(pieces) > 0 {
				if !blankBefore {
					parts = append(parts, layout.HardLine())
				}

				parts = append(parts, gapDoc(c, gaps[i], false))
			} else if blankBefore || blankAfter {
				parts = append(parts, layout.EmptyLine(), layout.HardLine())
			} else {
				parts = append(parts, layout.HardLine())
			}
		} else {
			parts = append(parts, gapDoc(c, gaps[0], true))
		}

		if hasIgnoreDirective(c, gaps[i]) {
			parts = append(parts, layout.Text(e.(*cst.Node).Text()))
		} else {
			parts = append(parts, formatDefinition(c, e))
		}
	}

	parts = append(parts, layout.HardLine())

	if trail, _, _ := analyzeGap(c, gaps[len(entries)]); len(trail) > 0 {
		parts = append(parts, gapDoc(c, gaps[len(entries)], true))
	}

	return layout.Concat(parts...)
}
