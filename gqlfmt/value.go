package gqlfmt

import (
	"strings"

	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/layout"
)

// formatType renders a Type node: NamedType, ListType, or NonNullType,
// recursing through wrapper layers.
func formatType(c *ctx, n *cst.Node) layout.Doc {
	switch n.Kind() {
	case cst.NamedType:
		return layout.Text(n.ChildToken(cst.Name).Text())
	case cst.ListType:
		inner := n.ChildNodes()[0]

		return layout.Concat(layout.Text("["), formatType(c, inner), layout.Text("]"))
	case cst.NonNullType:
		inner := n.ChildNodes()[0]
		return layout.Concat(formatType(c, inner), layout.Text("!"))
	default:
		panic("gqlfmt: unexpected type kind " + n.Kind().String())
	}
}

// formatValue renders a Value node: every literal kind, Variable, ListValue,
// ObjectValue, EnumValue.
func formatValue(c *ctx, n *cst.Node) layout.Doc {
	switch n.Kind() {
	case cst.Variable:
		return layout.Concat(layout.Text("$"), layout.Text(n.ChildToken(cst.Name).Text()))
	case cst.IntValue:
		return layout.Text(n.ChildToken(cst.IntValueTok).Text())
	case cst.FloatValue:
		return layout.Text(n.ChildToken(cst.FloatValueTok).Text())
	case cst.StringValue:
		return reflowWithIndent(n.ChildToken(cst.StringValueTok).Text())
	case cst.BooleanValue:
		if tok := n.ChildToken(cst.KeywordTrue); tok != nil {
			return layout.Text("true")
		}

		return layout.Text("false")
	case cst.NullValue:
		return layout.Text("null")
	case cst.EnumValue:
		return layout.Text(n.ChildToken(cst.Name).Text())
	case cst.ListValue:
		bracketSpacing := c.lang.Spacing.BracketSpacing
		single := c.lang.SingleLine.resolve(c.lang.SingleLine.ListValue)
		comma := c.lang.Comma.resolve(c.lang.Comma.ListValue)

		return optionalCommaList(c, n, "[", "]", bracketSpacing, comma, single, func(e *cst.Node) layout.Doc {
			return formatValue(c, e)
		})
	case cst.ObjectValue:
		braceSpacing := resolveBool(c.lang.Spacing.ObjectValueBraceSpacing, c.lang.Spacing.BraceSpacing)
		single := c.lang.SingleLine.resolve(c.lang.SingleLine.ObjectValue)
		comma := c.lang.Comma.resolve(c.lang.Comma.ObjectValue)

		return optionalCommaList(c, n, "{", "}", braceSpacing, comma, single, formatObjectField(c))
	default:
		panic("gqlfmt: unexpected value kind " + n.Kind().String())
	}
}

func formatObjectField(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		name := n.ChildToken(cst.Name).Text()
		value := formatValue(c, n.ChildNodes()[0])

		return layout.Concat(layout.Text(name), layout.Text(": "), value)
	}
}

// formatArguments renders an Arguments node, or Empty if n is nil (no
// argument list present in the source).
func formatArguments(c *ctx, n *cst.Node) layout.Doc {
	if n == nil {
		return layout.Empty()
	}

	parenSpacing := resolveBool(c.lang.Spacing.ArgumentsParenSpacing, c.lang.Spacing.ParenSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.Arguments)
	comma := c.lang.Comma.resolve(c.lang.Comma.Arguments)

	return optionalCommaList(c, n, "(", ")", parenSpacing, comma, single, formatArgument(c))
}

func formatArgument(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		name := n.ChildToken(cst.Name).Text()
		value := formatValue(c, n.ChildNodes()[0])

		return layout.Concat(layout.Text(name), layout.Text(": "), value)
	}
}

// formatDirectives renders a Directives node, or Empty if n is nil.
func formatDirectives(c *ctx, n *cst.Node) layout.Doc {
	if n == nil {
		return layout.Empty()
	}

	single := c.lang.SingleLine.resolve(c.lang.SingleLine.Directives)

	return spaceList(c, n, single, func(e *cst.Node) layout.Doc {
		return formatDirective(c, e)
	})
}

func formatDirective(c *ctx, n *cst.Node) layout.Doc {
	name := n.ChildToken(cst.Name).Text()
	args := formatArguments(c, n.ChildNode(cst.Arguments))

	return layout.Concat(layout.Text("@"), layout.Text(name), args)
}

// isBlockString reports whether a StringValue token's raw text is a
// triple-quoted block string rather than a single-line string.
func isBlockString(raw string) bool {
	return strings.HasPrefix(raw, `"""`) && len(raw) >= 6
}

// reflowWithIndent renders a StringValue token's raw text. Single-line
// strings are emitted verbatim. A block string is re-indented relative to
// its new position: the minimum indent among its non-blank lines (the first
// line, which sits directly after the opening quotes, never counts) is
// stripped from every line but the first, which is kept flat; blank lines
// become [layout.EmptyLine], other interior lines become [layout.HardLine]
// followed by their text, and the closing quotes are appended directly after
// the final line's content with no forced blank line before them.
func reflowWithIndent(raw string) layout.Doc {
	if !isBlockString(raw) {
		return layout.Text(raw)
	}

	body := raw[3 : len(raw)-3]
	lines := strings.Split(body, "\n")

	if len(lines) == 1 {
		return layout.Text(raw)
	}

	minIndent := -1

	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}

		indent := len(line) - len(trimmed)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= minIndent {
				lines[i] = lines[i][minIndent:]
			} else {
				lines[i] = strings.TrimLeft(lines[i], " \t")
			}
		}
	}

	docs := []layout.Doc{layout.Text(`"""` + lines[0])}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		isLast := i == len(lines)-1

		if strings.TrimSpace(line) == "" && !isLast {
			docs = append(docs, layout.EmptyLine())
			continue
		}

		docs = append(docs, layout.HardLine())

		if isLast {
			docs = append(docs, layout.Text(line+`"""`))
		} else {
			docs = append(docs, layout.Text(line))
		}
	}

	return layout.Concat(docs...)
}

// formatDescription renders an optional description preceding a type-system
// definition, with the separator required before the following keyword: a
// block-string description forces a [layout.HardLine], any other description
// uses a plain [layout.Space].
func formatDescription(n *cst.Node) layout.Doc {
	if n == nil {
		return layout.Empty()
	}

	raw := n.ChildToken(cst.StringValueTok).Text()

	sep := layout.Space()
	if isBlockString(raw) {
		sep = layout.HardLine()
	}

	return layout.Concat(reflowWithIndent(raw), sep)
}
