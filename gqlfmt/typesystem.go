package gqlfmt

import (
	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/layout"
)

// childType returns n's single Type child (NamedType, ListType, or
// NonNullType), skipping Description/Directives/DefaultValue/
// ArgumentsDefinition neighbors that also happen to be *cst.Node children.
func childType(n *cst.Node) *cst.Node {
	for _, child := range n.ChildNodes() {
		switch child.Kind() {
		case cst.NamedType, cst.ListType, cst.NonNullType:
			return child
		}
	}

	panic("gqlfmt: node has no Type child")
}

// formatDefinition dispatches a single root Document child (an executable
// definition or a type-system definition/extension) to its node formatter.
func formatDefinition(c *ctx, e cst.Element) layout.Doc {
	n, ok := e.(*cst.Node)
	if !ok {
		panic("gqlfmt: document child is not a *cst.Node")
	}

	switch n.Kind() {
	case cst.OperationDefinition:
		return formatOperationDefinition(c, n)
	case cst.FragmentDefinition:
		return formatFragmentDefinition(c, n)
	case cst.SchemaDefinition:
		return formatSchemaDefinition(c, n)
	case cst.SchemaExtension:
		return formatSchemaExtension(c, n)
	case cst.ScalarTypeDefinition:
		return formatScalarTypeDefinition(c, n)
	case cst.ScalarTypeExtension:
		return formatScalarTypeExtension(c, n)
	case cst.ObjectTypeDefinition:
		return formatObjectTypeDefinition(c, n)
	case cst.ObjectTypeExtension:
		return formatObjectTypeExtension(c, n)
	case cst.InterfaceTypeDefinition:
		return formatInterfaceTypeDefinition(c, n)
	case cst.InterfaceTypeExtension:
		return formatInterfaceTypeExtension(c, n)
	case cst.UnionTypeDefinition:
		return formatUnionTypeDefinition(c, n)
	case cst.UnionTypeExtension:
		return formatUnionTypeExtension(c, n)
	case cst.EnumTypeDefinition:
		return formatEnumTypeDefinition(c, n)
	case cst.EnumTypeExtension:
		return formatEnumTypeExtension(c, n)
	case cst.InputObjectTypeDefinition:
		return formatInputObjectTypeDefinition(c, n)
	case cst.InputObjectTypeExtension:
		return formatInputObjectTypeExtension(c, n)
	case cst.DirectiveDefinition:
		return formatDirectiveDefinition(c, n)
	default:
		panic("gqlfmt: unexpected definition kind " + n.Kind().String())
	}
}

func formatSchemaDefinition(c *ctx, n *cst.Node) layout.Doc {
	var parts []layout.Doc

	parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
	parts = append(parts, layout.Text("schema"))

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	braceSpacing := resolveBool(c.lang.Spacing.SchemaDefinitionBraceSpacing, c.lang.Spacing.BraceSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.SchemaDefinition)
	comma := c.lang.Comma.resolve(c.lang.Comma.SchemaDefinition)

	block := n.ChildNode(cst.FieldsDefinition)
	parts = append(parts, siblingGap(c, block), rootOperationTypesBlock(c, block, braceSpacing, comma, single))

	return layout.Concat(parts...)
}

func formatSchemaExtension(c *ctx, n *cst.Node) layout.Doc {
	var parts []layout.Doc

	parts = append(parts, layout.Text("extend schema"))

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if block := n.ChildNode(cst.FieldsDefinition); block != nil {
		braceSpacing := resolveBool(c.lang.Spacing.SchemaExtensionBraceSpacing, c.lang.Spacing.BraceSpacing)
		single := c.lang.SingleLine.resolve(c.lang.SingleLine.SchemaExtension)
		comma := c.lang.Comma.resolve(c.lang.Comma.SchemaExtension)

		parts = append(parts, siblingGap(c, block), rootOperationTypesBlock(c, block, braceSpacing, comma, single))
	}

	return layout.Concat(parts...)
}

func rootOperationTypesBlock(c *ctx, n *cst.Node, braceSpacing bool, comma Comma, single SingleLine) layout.Doc {
	if single == SingleLineNever {
		return delimitedBlock(c, n, comma, formatRootOperationTypeDefinition)
	}

	return optionalCommaList(c, n, "{", "}", braceSpacing, comma, single, formatRootOperationTypeDefinition)
}

func formatRootOperationTypeDefinition(n *cst.Node) layout.Doc {
	opType := n.ChildNode(cst.OperationType)
	namedType := n.ChildNode(cst.NamedType)

	return layout.Concat(layout.Text(operationTypeText(opType)), layout.Text(": "), layout.Text(namedType.ChildToken(cst.Name).Text()))
}

func formatScalarTypeDefinition(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{
		formatDescription(n.ChildNode(cst.Description)),
		layout.Text("scalar "),
		layout.Text(n.ChildToken(cst.Name).Text()),
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	return layout.Concat(parts...)
}

func formatScalarTypeExtension(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{
		layout.Text("extend scalar "),
		layout.Text(n.ChildToken(cst.Name).Text()),
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	return layout.Concat(parts...)
}

func formatImplementsInterfaces(c *ctx, n *cst.Node) layout.Doc {
	if n == nil {
		return layout.Empty()
	}

	single := c.lang.SingleLine.resolve(c.lang.SingleLine.ImplementsInterfaces)

	list := separatedList(c, n, "&", single, func(e *cst.Node) layout.Doc {
		return layout.Text(e.ChildToken(cst.Name).Text())
	})

	return layout.Concat(layout.Text("implements "), list)
}

func formatObjectTypeDefinition(c *ctx, n *cst.Node) layout.Doc {
	var parts []layout.Doc

	parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
	parts = append(parts, layout.Text("type "), layout.Text(n.ChildToken(cst.Name).Text()))

	if ifaces := n.ChildNode(cst.ImplementsInterfaces); ifaces != nil {
		parts = append(parts, siblingGap(c, ifaces), formatImplementsInterfaces(c, ifaces))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if fields := n.ChildNode(cst.FieldsDefinition); fields != nil {
		parts = append(parts, siblingGap(c, fields), formatFieldsDefinition(c, fields))
	}

	return layout.Concat(parts...)
}

func formatObjectTypeExtension(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("extend type "), layout.Text(n.ChildToken(cst.Name).Text())}

	if ifaces := n.ChildNode(cst.ImplementsInterfaces); ifaces != nil {
		parts = append(parts, siblingGap(c, ifaces), formatImplementsInterfaces(c, ifaces))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if fields := n.ChildNode(cst.FieldsDefinition); fields != nil {
		parts = append(parts, siblingGap(c, fields), formatFieldsDefinition(c, fields))
	}

	return layout.Concat(parts...)
}

func formatFieldsDefinition(c *ctx, n *cst.Node) layout.Doc {
	braceSpacing := resolveBool(c.lang.Spacing.FieldsDefinitionBraceSpacing, c.lang.Spacing.BraceSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.FieldsDefinition)
	comma := c.lang.Comma.resolve(c.lang.Comma.FieldsDefinition)

	return optionalCommaList(c, n, "{", "}", braceSpacing, comma, single, formatFieldDefinition(c))
}

func formatFieldDefinition(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		var parts []layout.Doc

		parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
		parts = append(parts, layout.Text(n.ChildToken(cst.Name).Text()))

		if args := n.ChildNode(cst.ArgumentsDefinition); args != nil {
			parts = append(parts, formatArgumentsDefinition(c, args))
		}

		parts = append(parts, layout.Text(": "), formatType(c, childType(n)))

		if dirs := n.ChildNode(cst.Directives); dirs != nil {
			parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
		}

		return layout.Concat(parts...)
	}
}

func formatArgumentsDefinition(c *ctx, n *cst.Node) layout.Doc {
	parenSpacing := resolveBool(c.lang.Spacing.ArgumentsDefinitionParenSpacing, c.lang.Spacing.ParenSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.ArgumentsDefinition)
	comma := c.lang.Comma.resolve(c.lang.Comma.ArgumentsDefinition)

	return optionalCommaList(c, n, "(", ")", parenSpacing, comma, single, formatInputValueDefinition(c))
}

func formatInputValueDefinition(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		var parts []layout.Doc

		parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
		parts = append(parts, layout.Text(n.ChildToken(cst.Name).Text()), layout.Text(": "), formatType(c, childType(n)))

		if dv := n.ChildNode(cst.DefaultValue); dv != nil {
			parts = append(parts, layout.Text(" = "), formatValue(c, dv.ChildNodes()[0]))
		}

		if dirs := n.ChildNode(cst.Directives); dirs != nil {
			parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
		}

		return layout.Concat(parts...)
	}
}

func formatInterfaceTypeDefinition(c *ctx, n *cst.Node) layout.Doc {
	var parts []layout.Doc

	parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
	parts = append(parts, layout.Text("interface "), layout.Text(n.ChildToken(cst.Name).Text()))

	if ifaces := n.ChildNode(cst.ImplementsInterfaces); ifaces != nil {
		parts = append(parts, siblingGap(c, ifaces), formatImplementsInterfaces(c, ifaces))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if fields := n.ChildNode(cst.FieldsDefinition); fields != nil {
		parts = append(parts, siblingGap(c, fields), formatFieldsDefinition(c, fields))
	}

	return layout.Concat(parts...)
}

func formatInterfaceTypeExtension(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("extend interface "), layout.Text(n.ChildToken(cst.Name).Text())}

	if ifaces := n.ChildNode(cst.ImplementsInterfaces); ifaces != nil {
		parts = append(parts, siblingGap(c, ifaces), formatImplementsInterfaces(c, ifaces))
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if fields := n.ChildNode(cst.FieldsDefinition); fields != nil {
		parts = append(parts, siblingGap(c, fields), formatFieldsDefinition(c, fields))
	}

	return layout.Concat(parts...)
}

func formatUnionMemberTypes(c *ctx, n *cst.Node) layout.Doc {
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.UnionMemberTypes)

	list := separatedList(c, n, "|", single, func(e *cst.Node) layout.Doc {
		return layout.Text(e.ChildToken(cst.Name).Text())
	})

	return layout.Concat(layout.Text("= "), list)
}

func formatUnionTypeDefinition(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{
		formatDescription(n.ChildNode(cst.Description)),
		layout.Text("union "),
		layout.Text(n.ChildToken(cst.Name).Text()),
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if members := n.ChildNode(cst.UnionMemberTypes); members != nil {
		parts = append(parts, siblingGap(c, members), formatUnionMemberTypes(c, members))
	}

	return layout.Concat(parts...)
}

func formatUnionTypeExtension(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("extend union "), layout.Text(n.ChildToken(cst.Name).Text())}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if members := n.ChildNode(cst.UnionMemberTypes); members != nil {
		parts = append(parts, siblingGap(c, members), formatUnionMemberTypes(c, members))
	}

	return layout.Concat(parts...)
}

func formatEnumValuesDefinition(c *ctx, n *cst.Node) layout.Doc {
	braceSpacing := resolveBool(c.lang.Spacing.EnumValuesDefinitionBraceSpacing, c.lang.Spacing.BraceSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.EnumValuesDefinition)
	comma := c.lang.Comma.resolve(c.lang.Comma.EnumValuesDefinition)

	return optionalCommaList(c, n, "{", "}", braceSpacing, comma, single, formatEnumValueDefinition(c))
}

func formatEnumValueDefinition(c *ctx) func(*cst.Node) layout.Doc {
	return func(n *cst.Node) layout.Doc {
		var parts []layout.Doc

		parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
		parts = append(parts, layout.Text(n.ChildNode(cst.EnumValue).ChildToken(cst.Name).Text()))

		if dirs := n.ChildNode(cst.Directives); dirs != nil {
			parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
		}

		return layout.Concat(parts...)
	}
}

func formatEnumTypeDefinition(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{
		formatDescription(n.ChildNode(cst.Description)),
		layout.Text("enum "),
		layout.Text(n.ChildToken(cst.Name).Text()),
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if values := n.ChildNode(cst.EnumValuesDefinition); values != nil {
		parts = append(parts, siblingGap(c, values), formatEnumValuesDefinition(c, values))
	}

	return layout.Concat(parts...)
}

func formatEnumTypeExtension(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("extend enum "), layout.Text(n.ChildToken(cst.Name).Text())}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if values := n.ChildNode(cst.EnumValuesDefinition); values != nil {
		parts = append(parts, siblingGap(c, values), formatEnumValuesDefinition(c, values))
	}

	return layout.Concat(parts...)
}

func formatInputFieldsDefinition(c *ctx, n *cst.Node) layout.Doc {
	braceSpacing := resolveBool(c.lang.Spacing.InputFieldsDefinitionBraceSpacing, c.lang.Spacing.BraceSpacing)
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.InputFieldsDefinition)
	comma := c.lang.Comma.resolve(c.lang.Comma.InputFieldsDefinition)

	return optionalCommaList(c, n, "{", "}", braceSpacing, comma, single, formatInputValueDefinition(c))
}

func formatInputObjectTypeDefinition(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{
		formatDescription(n.ChildNode(cst.Description)),
		layout.Text("input "),
		layout.Text(n.ChildToken(cst.Name).Text()),
	}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if fields := n.ChildNode(cst.InputFieldsDefinition); fields != nil {
		parts = append(parts, siblingGap(c, fields), formatInputFieldsDefinition(c, fields))
	}

	return layout.Concat(parts...)
}

func formatInputObjectTypeExtension(c *ctx, n *cst.Node) layout.Doc {
	parts := []layout.Doc{layout.Text("extend input "), layout.Text(n.ChildToken(cst.Name).Text())}

	if dirs := n.ChildNode(cst.Directives); dirs != nil {
		parts = append(parts, siblingGap(c, dirs), formatDirectives(c, dirs))
	}

	if fields := n.ChildNode(cst.InputFieldsDefinition); fields != nil {
		parts = append(parts, siblingGap(c, fields), formatInputFieldsDefinition(c, fields))
	}

	return layout.Concat(parts...)
}

func formatDirectiveLocations(c *ctx, n *cst.Node) layout.Doc {
	single := c.lang.SingleLine.resolve(c.lang.SingleLine.DirectiveLocations)

	return separatedList(c, n, "|", single, func(e *cst.Node) layout.Doc {
		return layout.Text(e.ChildToken(cst.Name).Text())
	})
}

func formatDirectiveDefinition(c *ctx, n *cst.Node) layout.Doc {
	var parts []layout.Doc

	parts = append(parts, formatDescription(n.ChildNode(cst.Description)))
	parts = append(parts, layout.Text("directive @"), layout.Text(n.ChildToken(cst.Name).Text()))

	if args := n.ChildNode(cst.ArgumentsDefinition); args != nil {
		parts = append(parts, formatArgumentsDefinition(c, args))
	}

	if n.ChildToken(cst.KeywordRepeatable) != nil {
		parts = append(parts, layout.Text(" repeatable"))
	}

	parts = append(parts, layout.Text(" on "))
	parts = append(parts, formatDirectiveLocations(c, n.ChildNode(cst.DirectiveLocations)))

	return layout.Concat(parts...)
}
