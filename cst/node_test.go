package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/gqlfmt/cst"
)

func TestNode_AppendChildLinksSiblingsAndParent(t *testing.T) {
	t.Parallel()

	parent := cst.NewNode(cst.SelectionSet)
	a := cst.NewToken(cst.Name, "a", 0)
	b := cst.NewToken(cst.Name, "b", 1)

	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Same(t, parent, a.Parent())
	assert.Same(t, parent, b.Parent())
	assert.Nil(t, a.PrevSibling())
	assert.Equal(t, cst.Element(b), a.NextSibling())
	assert.Equal(t, cst.Element(a), b.PrevSibling())
	assert.Nil(t, b.NextSibling())
	assert.Equal(t, []cst.Element{a, b}, parent.Children())
}

func TestNode_ChildNodeAndChildToken(t *testing.T) {
	t.Parallel()

	field := cst.NewNode(cst.FieldDefinition)
	name := cst.NewToken(cst.Name, "id", 0)
	field.AppendChild(name)

	typ := cst.NewNode(cst.NamedType)
	field.AppendChild(typ)

	assert.Same(t, typ, field.ChildNode(cst.NamedType))
	assert.Nil(t, field.ChildNode(cst.ListType))
	assert.Same(t, name, field.ChildToken(cst.Name))
	assert.Nil(t, field.ChildToken(cst.Colon))
}

func TestNode_ChildNodesFiltersOutTokens(t *testing.T) {
	t.Parallel()

	args := cst.NewNode(cst.ArgumentsDefinition)
	args.AppendChild(cst.NewToken(cst.ParenL, "(", 0))

	a := cst.NewNode(cst.InputValueDefinition)
	b := cst.NewNode(cst.InputValueDefinition)
	args.AppendChild(a)
	args.AppendChild(cst.NewToken(cst.Comma, ",", 1))
	args.AppendChild(b)
	args.AppendChild(cst.NewToken(cst.ParenR, ")", 2))

	require.Equal(t, []*cst.Node{a, b}, args.ChildNodes())
}

func TestNode_TextConcatenatesChildText(t *testing.T) {
	t.Parallel()

	n := cst.NewNode(cst.NamedType)
	n.AppendChild(cst.NewToken(cst.Name, "String", 0))
	n.AppendChild(cst.NewToken(cst.Bang, "!", 6))

	assert.Equal(t, "String!", n.Text())
}

func TestToken_OffsetAndEnd(t *testing.T) {
	t.Parallel()

	tok := cst.NewToken(cst.Name, "hello", 10)
	assert.Equal(t, 10, tok.Offset())
	assert.Equal(t, 15, tok.End())
}
