package gqlfmt

import (
	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/layout"
)

func formatOperationDefinition(c *ctx, n *cst.Node) layout.Doc {
	if n.ChildNode(cst.OperationType) == nil {
		// Anonymous `{ ... }` shorthand: only a SelectionSet child.
		return formatSelectionSet(c, n.ChildNode(cst.SelectionSet))
	}

	var parts []layout.Doc

	opTypeNode := n.ChildNode(cst.OperationType)
	parts = append(parts, layout.Text(operationTypeText(opTypeNode)))

	if name := n.ChildToken(cst.Name); name != nil {
		parts = append(parts, siblingGap(c, name), layout.Text(name.Text()))
	}

	if varDefs := n.ChildNode(cst.VariableDefinitions); varDefs != nil {
		parts = append(parts, formatVariableDefinitions(c, varDefs))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	ss := n.ChildNode(cst.SelectionSet)
	parts = append(parts, siblingGap(c, ss), formatSelectionSet(c, ss))

	return layout.Concat(parts...)
}

func operationTypeText(n *cst.Node) string {
	if tok := n.ChildToken(cst.KeywordQuery); tok != nil {
		return tok.Text()
	}

	if tok := n.ChildToken(cst.KeywordMutation); tok != nil {
		return tok.Text()
	}

	return n.ChildToken(cst.KeywordSubscription).Text()
}

func formatVariableDefinitions(c *ctx, n *cst.Node) layout.Doc {
	parenSpacing := resolveBool(c.lang.Spacing.VariableDefinitionsParenSpacing, c.lang.Spacing.ParenSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.VariableDefinitions)
	comma := c.lang.Comma.resolve(c.lang.Comma.VariableDefinitions)

	return optionalCommaList(c, n, "(", ")", parenSpacing, comma, single, formatVariableDefinition(c))
}

func formatVariableDefinition(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		variable := n.ChildNode(cst.Variable)

		parts := []layout.Doc{
			layout.Text("$" + variable.ChildToken(cst.Name).Text()),
			layout.Text(": "),
			formatType(c, childType(n)),
		}

		if dv := n.ChildNode(cst.DefaultValue); dv != nil {
			parts = append(parts, layout.Text(" = "), formatValue(c, dv.ChildNodes()[0]))
		}

		if dirs := n.ChildNode(cst.Directives); dirs != nil {
			parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
		}

		return layout.Concat(parts...)
	}
}

func formatSelectionSet(c *ctx, n *cst.Node) layout.Doc {
	comma := c.lang.Comma.resolve(c.lang.Comma.SelectionSet)

	return delimitedBlock(c, n, comma, formatSelection(c))
}

func formatSelection(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		switch n.Kind() {
		case cst.Field:
			return formatField(c, n)
		case cst.FragmentSpread:
			return formatFragmentSpread(c, n)
		case cst.InlineFragment:
			return formatInlineFragment(c, n)
		default:
			panic("gqlfmt: unexpected selection kind " + n.Kind().String())
		}
	}
}

func formatField(c *ctx, n *cst.Node) layout.Doc {
	var parts []layout.Doc

	if alias := n.ChildNode(cst.Alias); alias != nil {
		parts = append(parts, layout.Text(alias.ChildToken(cst.Name).Text()), layout.Text(": "))
	}

	parts = append(parts, layout.Text(n.ChildToken(cst.Name).Text()))

	if args := n.ChildNode(cst.Arguments); args != nil {
		parts = append(parts, formatArguments(c, args))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if ss := n.ChildNode(cst.SelectionSet); ss != nil {
		parts = append(parts, siblingGap(c, ss), formatSelectionSet(c, ss))
	}

	return layout.Concat(parts...)
}

func formatFragmentSpread(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("..." + n.ChildToken(cst.Name).Text())}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	return layout.Concat(parts...)
}

func formatInlineFragment(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("...")}

	if tc := n.ChildNode(cst.TypeCondition); tc != nil {
		parts = append(parts, layout.Text(" on "), layout.Text(tc.ChildNode(cst.NamedType).ChildToken(cst.Name).Text()))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	ss := n.ChildNode(cst.SelectionSet)
	parts = append(parts, siblingGap(c, ss), formatSelectionSet(c, ss))

	return layout.Concat(parts...)
}

func formatFragmentDefinition(c *ctx, n *cst.Node) layout.Doc {
	tc := n.ChildNode(cst.TypeCondition)

	parts := []layout.Doc{
		layout.Text("fragment "),
		layout.Text(n.ChildToken(cst.Name).Text()),
		layout.Text(" on "),
		layout.Text(tc.ChildNode(cst.NamedType).ChildToken(cst.Name).Text()),
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	ss := n.ChildNode(cst.SelectionSet)
	parts = append(parts, siblingGap(c, ss), formatSelectionSet(c, ss))

	return layout.Concat(parts...)
}
