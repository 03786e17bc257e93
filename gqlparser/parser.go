// Package gqlparser is a hand-written recursive-descent parser for GraphQL
// query and schema documents. It builds a lossless
// [go.jacobcolvin.com/gqlfmt/cst] tree — every byte of the input, including
// whitespace and comments, is reachable by walking the resulting tree — and
// collects every grammar violation it finds rather than stopping at the
// first one, matching the "refuse with all errors, never partial output"
// contract [go.jacobcolvin.com/gqlfmt/gqlfmt] requires of its parser
// collaborator.
package gqlparser

import (
	"fmt"

	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/lexer"
)

// Parser holds the mutable state of a single parse.
type parser struct {
	lex           *lexer.Lexer
	lookahead     *cst.Token
	pendingTrivia []*cst.Token
	errors        []SyntaxError
	src           string
}

// Parse tokenizes and parses src as a GraphQL document, returning the
// lossless CST root and any syntax errors found. A non-empty error list
// means the returned document may be incomplete; callers that require a
// fully valid document should treat any error as fatal (this is exactly
// what [go.jacobcolvin.com/gqlfmt/gqlfmt.FormatText] does).
func Parse(src string) (*cst.Document, []SyntaxError) {
	p := &parser{lex: lexer.New(src), src: src}
	p.advance()

	// Trivia before the first definition has no preceding sibling to attach
	// to; it becomes the root's first children.
	root := cst.NewNode(cst.Document)
	p.drain(root)
	p.parseDocument(root)

	return &cst.Document{Root: root}, p.errors
}

// advance fetches the next real token into p.lookahead, buffering any
// trivia encountered along the way in p.pendingTrivia. The buffer is not
// attached to a tree node until [parser.drain] is called; this lets a
// caller choose the correct owner (the node whose child list this trivia
// is a sibling within), which for trivia following a just-closed sub-node
// is that sub-node's parent, not the sub-node itself.
func (p *parser) advance() {
	for {
		t := p.lex.Next()
		if t.Kind().IsTrivia() {
			p.pendingTrivia = append(p.pendingTrivia, t)

			continue
		}

		p.lookahead = t

		return
	}
}

// bump consumes p.lookahead unconditionally, appends it to n, and refills
// the lookahead. It does not itself attach trailing trivia anywhere —
// callers building list/container nodes call [parser.drain] explicitly
// after each child (token or recursively-parsed sub-node) to place
// inter-sibling trivia at the correct tree level, skipping the drain after
// the very last child so that trivia following a node as a whole bubbles up
// to be claimed by that node's parent instead of nesting inside it.
func (p *parser) bump(n *cst.Node) *cst.Token {
	tok := p.lookahead
	n.AppendChild(tok)
	p.advance()

	return tok
}

func (p *parser) peek() cst.Kind {
	return p.lookahead.Kind()
}

func (p *parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, SyntaxError{
		Offset:  p.lookahead.Offset(),
		Message: fmt.Sprintf(format, args...),
	})
}

// expect consumes and appends p.lookahead if it matches kind, else records
// a syntax error and appends nothing, leaving lookahead untouched so the
// caller can attempt recovery.
func (p *parser) expect(n *cst.Node, kind cst.Kind) *cst.Token {
	if p.peek() == kind {
		return p.bump(n)
	}

	p.errorf("expected %s, found %s %q", kind, p.peek(), p.lookahead.Text())

	return nil
}

// recoverTo advances (discarding tokens, attaching them as unexpected
// children of n so no source byte is lost) until lookahead is one of the
// given kinds or EOF.
func (p *parser) recoverTo(n *cst.Node, kinds ...cst.Kind) {
	for p.peek() != cst.EOF {
		for _, k := range kinds {
			if p.peek() == k {
				return
			}
		}

		p.bump(n)
	}
}

// --- Document & definitions -------------------------------------------------

func (p *parser) parseDocument(doc *cst.Node) {
	for p.peek() != cst.EOF {
		def := p.parseDefinition()
		if def == nil {
			p.recoverTo(doc, cst.EOF)

			continue
		}

		doc.AppendChild(def)
		p.drain(doc)
	}
}

// drain moves any trivia collected since the last consumed token into n.
// See bump's doc comment for the draining discipline this implements.
func (p *parser) drain(n *cst.Node) {
	for _, t := range p.pendingTrivia {
		n.AppendChild(t)
	}

	p.pendingTrivia = nil
}

func (p *parser) parseDefinition() *cst.Node {
	switch p.peek() {
	case cst.KeywordQuery, cst.KeywordMutation, cst.KeywordSubscription:
		return p.parseOperationDefinition()
	case cst.BraceL:
		return p.parseOperationDefinition()
	case cst.KeywordFragment:
		return p.parseFragmentDefinition()
	case cst.StringValueTok:
		return p.parseTypeSystemDefinitionWithDescription()
	case cst.KeywordSchema:
		return p.parseSchemaDefinition(nil)
	case cst.KeywordScalar:
		return p.parseScalarTypeDefinition(nil)
	case cst.KeywordType:
		return p.parseObjectTypeDefinition(nil)
	case cst.KeywordInterface:
		return p.parseInterfaceTypeDefinition(nil)
	case cst.KeywordUnion:
		return p.parseUnionTypeDefinition(nil)
	case cst.KeywordEnum:
		return p.parseEnumTypeDefinition(nil)
	case cst.KeywordInput:
		return p.parseInputObjectTypeDefinition(nil)
	case cst.KeywordDirective:
		return p.parseDirectiveDefinition(nil)
	case cst.KeywordExtend:
		return p.parseExtension()
	default:
		p.errorf("expected a definition, found %s %q", p.peek(), p.lookahead.Text())

		return nil
	}
}

func (p *parser) parseTypeSystemDefinitionWithDescription() *cst.Node {
	desc := p.parseDescription()

	switch p.peek() {
	case cst.KeywordSchema:
		return p.parseSchemaDefinition(desc)
	case cst.KeywordScalar:
		return p.parseScalarTypeDefinition(desc)
	case cst.KeywordType:
		return p.parseObjectTypeDefinition(desc)
	case cst.KeywordInterface:
		return p.parseInterfaceTypeDefinition(desc)
	case cst.KeywordUnion:
		return p.parseUnionTypeDefinition(desc)
	case cst.KeywordEnum:
		return p.parseEnumTypeDefinition(desc)
	case cst.KeywordInput:
		return p.parseInputObjectTypeDefinition(desc)
	case cst.KeywordDirective:
		return p.parseDirectiveDefinition(desc)
	default:
		p.errorf("expected a type system definition after description, found %s", p.peek())

		return nil
	}
}

func (p *parser) parseDescription() *cst.Node {
	n := cst.NewNode(cst.Description)
	p.bump(n)

	return n
}

func (p *parser) parseExtension() *cst.Node {
	// Peek past `extend` without consuming: we need the following keyword
	// to decide which extension kind this is, but `extend` itself must be
	// the first child of the extension node we build, so we defer
	// consuming it to the specific parseXExtension function.
	switch p.peekSecond() {
	case cst.KeywordSchema:
		return p.parseSchemaExtension()
	case cst.KeywordScalar:
		return p.parseScalarTypeExtension()
	case cst.KeywordType:
		return p.parseObjectTypeExtension()
	case cst.KeywordInterface:
		return p.parseInterfaceTypeExtension()
	case cst.KeywordUnion:
		return p.parseUnionTypeExtension()
	case cst.KeywordEnum:
		return p.parseEnumTypeExtension()
	case cst.KeywordInput:
		return p.parseInputObjectTypeExtension()
	default:
		n := cst.NewNode(cst.ObjectTypeExtension)
		p.bump(n) // extend
		p.errorf("expected a type system definition keyword after 'extend', found %s", p.peek())

		return n
	}
}

// peekSecond looks one real token past lookahead without disturbing parser
// state permanently, by cloning the underlying lexer's scan position. Used
// only to disambiguate `extend <kind>`.
func (p *parser) peekSecond() cst.Kind {
	save := *p.lex
	saveLookahead := p.lookahead
	savePending := p.pendingTrivia

	p.advance()
	kind := p.peek()

	*p.lex = save
	p.lookahead = saveLookahead
	p.pendingTrivia = savePending

	return kind
}

// --- Operations --------------------------------------------------------

func (p *parser) parseOperationDefinition() *cst.Node {
	n := cst.NewNode(cst.OperationDefinition)

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseSelectionSet())

		return n
	}

	opType := cst.NewNode(cst.OperationType)
	p.bump(opType)
	n.AppendChild(opType)
	p.drain(n)

	if p.peek() == cst.Name {
		p.bump(n)
		p.drain(n)
	}

	if p.peek() == cst.ParenL {
		n.AppendChild(p.parseVariableDefinitions())
		p.drain(n)
	}

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	n.AppendChild(p.parseSelectionSet())

	return n
}

func (p *parser) parseVariableDefinitions() *cst.Node {
	n := cst.NewNode(cst.VariableDefinitions)
	p.bump(n) // (
	p.drain(n)

	for p.peek() != cst.ParenR && p.peek() != cst.EOF {
		n.AppendChild(p.parseVariableDefinition())
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.ParenR)

	return n
}

func (p *parser) parseVariableDefinition() *cst.Node {
	n := cst.NewNode(cst.VariableDefinition)

	variable := cst.NewNode(cst.Variable)
	p.expect(variable, cst.Dollar)
	p.expect(variable, cst.Name)
	n.AppendChild(variable)
	p.drain(n)

	p.expect(n, cst.Colon)
	p.drain(n)

	n.AppendChild(p.parseType())

	if p.peek() == cst.Equals {
		p.drain(n)

		dv := cst.NewNode(cst.DefaultValue)
		p.bump(dv) // =
		p.drain(dv)
		dv.AppendChild(p.parseValue())
		n.AppendChild(dv)
	}

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	return n
}

func (p *parser) parseType() *cst.Node {
	var base *cst.Node

	if p.peek() == cst.BracketL {
		n := cst.NewNode(cst.ListType)
		p.bump(n) // [
		p.drain(n)
		n.AppendChild(p.parseType())
		p.drain(n)
		p.expect(n, cst.BracketR)

		base = n
	} else {
		n := cst.NewNode(cst.NamedType)
		p.expect(n, cst.Name)

		base = n
	}

	if p.peek() == cst.Bang {
		nn := cst.NewNode(cst.NonNullType)
		nn.AppendChild(base)
		p.drain(nn)
		p.bump(nn) // !

		return nn
	}

	return base
}

// --- Selection sets ------------------------------------------------------

func (p *parser) parseSelectionSet() *cst.Node {
	n := cst.NewNode(cst.SelectionSet)
	p.bump(n) // {
	p.drain(n)

	for p.peek() != cst.BraceR && p.peek() != cst.EOF {
		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)

			continue
		}

		before := p.lookahead
		n.AppendChild(p.parseSelection())

		if p.lookahead == before {
			p.bump(n) // a token that starts no selection; already reported
		}

		p.drain(n)
	}

	p.expect(n, cst.BraceR)

	return n
}

func (p *parser) parseSelection() *cst.Node {
	switch p.peek() {
	case cst.Spread:
		return p.parseFragment()
	default:
		return p.parseField()
	}
}

func (p *parser) parseField() *cst.Node {
	n := cst.NewNode(cst.Field)

	if p.peek() == cst.Name && p.peekSecond() == cst.Colon {
		alias := cst.NewNode(cst.Alias)
		p.expect(alias, cst.Name)
		p.drain(alias)
		p.bump(alias) // :
		n.AppendChild(alias)
		p.drain(n)

		p.expect(n, cst.Name)
	} else {
		p.expect(n, cst.Name)
	}

	if p.peek() == cst.ParenL {
		p.drain(n)
		n.AppendChild(p.parseArguments())
	}

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	if p.peek() == cst.BraceL {
		p.drain(n)
		n.AppendChild(p.parseSelectionSet())
	}

	return n
}

func (p *parser) parseFragment() *cst.Node {
	spreadTok := p.peekSecond()

	if spreadTok == cst.KeywordOn || spreadTok == cst.BraceL || spreadTok == cst.At {
		n := cst.NewNode(cst.InlineFragment)
		p.bump(n) // ...
		p.drain(n)

		if p.peek() == cst.KeywordOn {
			tc := cst.NewNode(cst.TypeCondition)
			p.bump(tc) // on
			p.drain(tc)
			nt := cst.NewNode(cst.NamedType)
			p.expect(nt, cst.Name)
			tc.AppendChild(nt)
			n.AppendChild(tc)
			p.drain(n)
		}

		if p.peek() == cst.At {
			n.AppendChild(p.parseDirectives())
			p.drain(n)
		}

		n.AppendChild(p.parseSelectionSet())

		return n
	}

	n := cst.NewNode(cst.FragmentSpread)
	p.bump(n) // ...
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	return n
}

func (p *parser) parseFragmentDefinition() *cst.Node {
	n := cst.NewNode(cst.FragmentDefinition)
	p.bump(n) // fragment
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	tc := cst.NewNode(cst.TypeCondition)
	p.expect(tc, cst.KeywordOn)
	p.drain(tc)
	nt := cst.NewNode(cst.NamedType)
	p.expect(nt, cst.Name)
	tc.AppendChild(nt)
	n.AppendChild(tc)

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	p.drain(n)
	n.AppendChild(p.parseSelectionSet())

	return n
}

// --- Arguments & values ----------------------------------------------------

func (p *parser) parseArguments() *cst.Node {
	n := cst.NewNode(cst.Arguments)
	p.bump(n) // (
	p.drain(n)

	for p.peek() != cst.ParenR && p.peek() != cst.EOF {
		arg := cst.NewNode(cst.Argument)

		p.expect(arg, cst.Name)
		p.drain(arg)

		p.expect(arg, cst.Colon)
		p.drain(arg)

		arg.AppendChild(p.parseValue())

		n.AppendChild(arg)
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.ParenR)

	return n
}

func (p *parser) parseValue() *cst.Node {
	switch p.peek() {
	case cst.Dollar:
		n := cst.NewNode(cst.Variable)
		p.bump(n)
		p.expect(n, cst.Name)

		return n
	case cst.IntValueTok:
		n := cst.NewNode(cst.IntValue)
		p.bump(n)

		return n
	case cst.FloatValueTok:
		n := cst.NewNode(cst.FloatValue)
		p.bump(n)

		return n
	case cst.StringValueTok:
		n := cst.NewNode(cst.StringValue)
		p.bump(n)

		return n
	case cst.KeywordTrue, cst.KeywordFalse:
		n := cst.NewNode(cst.BooleanValue)
		p.bump(n)

		return n
	case cst.KeywordNull:
		n := cst.NewNode(cst.NullValue)
		p.bump(n)

		return n
	case cst.BracketL:
		return p.parseListValue()
	case cst.BraceL:
		return p.parseObjectValue()
	case cst.Name:
		n := cst.NewNode(cst.EnumValue)
		p.bump(n)

		return n
	default:
		p.errorf("expected a value, found %s %q", p.peek(), p.lookahead.Text())

		n := cst.NewNode(cst.NullValue)

		return n
	}
}

func (p *parser) parseListValue() *cst.Node {
	n := cst.NewNode(cst.ListValue)
	p.bump(n) // [
	p.drain(n)

	for p.peek() != cst.BracketR && p.peek() != cst.EOF {
		n.AppendChild(p.parseValue())
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.BracketR)

	return n
}

func (p *parser) parseObjectValue() *cst.Node {
	n := cst.NewNode(cst.ObjectValue)
	p.bump(n) // {
	p.drain(n)

	for p.peek() != cst.BraceR && p.peek() != cst.EOF {
		field := cst.NewNode(cst.ObjectField)

		p.expect(field, cst.Name)
		p.drain(field)

		p.expect(field, cst.Colon)
		p.drain(field)

		field.AppendChild(p.parseValue())

		n.AppendChild(field)
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.BraceR)

	return n
}

// --- Directives ------------------------------------------------------------

func (p *parser) parseDirectives() *cst.Node {
	n := cst.NewNode(cst.Directives)
	n.AppendChild(p.parseDirective())

	for p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirective())
	}

	return n
}

func (p *parser) parseDirective() *cst.Node {
	n := cst.NewNode(cst.Directive)
	p.bump(n) // @
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.ParenL {
		p.drain(n)
		n.AppendChild(p.parseArguments())
	}

	return n
}

// --- Type system definitions ------------------------------------------------

func attachDesc(n *cst.Node, desc *cst.Node) {
	if desc != nil {
		n.AppendChild(desc)
	}
}

func (p *parser) parseSchemaDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.SchemaDefinition)
	attachDesc(n, desc)
	p.bump(n) // schema
	p.drain(n)

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	n.AppendChild(p.parseRootOperationTypesBlock())

	return n
}

// parseRootOperationTypesBlock parses the brace-delimited list of root
// operation type definitions shared by SchemaDefinition and SchemaExtension.
// It reuses the FieldsDefinition kind for the enclosing block since both
// share the same brace-delimited, HardLine-joined layout shape.
func (p *parser) parseRootOperationTypesBlock() *cst.Node {
	block := cst.NewNode(cst.FieldsDefinition)
	p.bump(block) // {
	p.drain(block)

	for p.peek() != cst.BraceR && p.peek() != cst.EOF {
		rotd := cst.NewNode(cst.RootOperationTypeDefinition)

		opType := cst.NewNode(cst.OperationType)
		p.bump(opType)
		rotd.AppendChild(opType)
		p.drain(rotd)

		p.expect(rotd, cst.Colon)
		p.drain(rotd)

		nt := cst.NewNode(cst.NamedType)
		p.expect(nt, cst.Name)
		rotd.AppendChild(nt)

		block.AppendChild(rotd)
		p.drain(block)

		if p.peek() == cst.Comma {
			p.bump(block)
			p.drain(block)
		}
	}

	p.expect(block, cst.BraceR)

	return block
}

func (p *parser) parseSchemaExtension() *cst.Node {
	n := cst.NewNode(cst.SchemaExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // schema
	p.drain(n)

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseRootOperationTypesBlock())
	}

	return n
}

func (p *parser) parseScalarTypeDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.ScalarTypeDefinition)
	attachDesc(n, desc)
	p.bump(n) // scalar
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	return n
}

func (p *parser) parseScalarTypeExtension() *cst.Node {
	n := cst.NewNode(cst.ScalarTypeExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // scalar
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	return n
}

func (p *parser) parseImplementsInterfaces() *cst.Node {
	n := cst.NewNode(cst.ImplementsInterfaces)
	p.bump(n) // implements
	p.drain(n)

	if p.peek() == cst.Amp {
		p.bump(n)
		p.drain(n)
	}

	first := cst.NewNode(cst.NamedType)
	p.expect(first, cst.Name)
	n.AppendChild(first)

	for p.peek() == cst.Amp {
		p.drain(n)
		p.bump(n) // &
		p.drain(n)

		nt := cst.NewNode(cst.NamedType)
		p.expect(nt, cst.Name)
		n.AppendChild(nt)
	}

	return n
}

func (p *parser) parseObjectTypeDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.ObjectTypeDefinition)
	attachDesc(n, desc)
	p.bump(n) // type
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.KeywordImplements {
		n.AppendChild(p.parseImplementsInterfaces())
		p.drain(n)
	}

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseFieldsDefinition())
	}

	return n
}

func (p *parser) parseObjectTypeExtension() *cst.Node {
	n := cst.NewNode(cst.ObjectTypeExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // type
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.KeywordImplements {
		n.AppendChild(p.parseImplementsInterfaces())
		p.drain(n)
	}

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseFieldsDefinition())
	}

	return n
}

func (p *parser) parseFieldsDefinition() *cst.Node {
	n := cst.NewNode(cst.FieldsDefinition)
	p.bump(n) // {
	p.drain(n)

	for p.peek() != cst.BraceR && p.peek() != cst.EOF {
		n.AppendChild(p.parseFieldDefinition())
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.BraceR)

	return n
}

func (p *parser) parseFieldDefinition() *cst.Node {
	n := cst.NewNode(cst.FieldDefinition)

	if p.peek() == cst.StringValueTok {
		n.AppendChild(p.parseDescription())
		p.drain(n)
	}

	p.expect(n, cst.Name)

	if p.peek() == cst.ParenL {
		p.drain(n)
		n.AppendChild(p.parseArgumentsDefinition())
	}

	p.drain(n)
	p.expect(n, cst.Colon)
	p.drain(n)

	n.AppendChild(p.parseType())

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	return n
}

func (p *parser) parseArgumentsDefinition() *cst.Node {
	n := cst.NewNode(cst.ArgumentsDefinition)
	p.bump(n) // (
	p.drain(n)

	for p.peek() != cst.ParenR && p.peek() != cst.EOF {
		n.AppendChild(p.parseInputValueDefinition())
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.ParenR)

	return n
}

func (p *parser) parseInputValueDefinition() *cst.Node {
	n := cst.NewNode(cst.InputValueDefinition)

	if p.peek() == cst.StringValueTok {
		n.AppendChild(p.parseDescription())
		p.drain(n)
	}

	p.expect(n, cst.Name)
	p.drain(n)

	p.expect(n, cst.Colon)
	p.drain(n)

	n.AppendChild(p.parseType())

	if p.peek() == cst.Equals {
		p.drain(n)

		dv := cst.NewNode(cst.DefaultValue)
		p.bump(dv) // =
		p.drain(dv)
		dv.AppendChild(p.parseValue())
		n.AppendChild(dv)
	}

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	return n
}

func (p *parser) parseInterfaceTypeDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.InterfaceTypeDefinition)
	attachDesc(n, desc)
	p.bump(n) // interface
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.KeywordImplements {
		n.AppendChild(p.parseImplementsInterfaces())
		p.drain(n)
	}

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseFieldsDefinition())
	}

	return n
}

func (p *parser) parseInterfaceTypeExtension() *cst.Node {
	n := cst.NewNode(cst.InterfaceTypeExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // interface
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.KeywordImplements {
		n.AppendChild(p.parseImplementsInterfaces())
		p.drain(n)
	}

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseFieldsDefinition())
	}

	return n
}

func (p *parser) parseUnionMemberTypes() *cst.Node {
	n := cst.NewNode(cst.UnionMemberTypes)
	p.bump(n) // =
	p.drain(n)

	if p.peek() == cst.Pipe {
		p.bump(n)
		p.drain(n)
	}

	first := cst.NewNode(cst.NamedType)
	p.expect(first, cst.Name)
	n.AppendChild(first)

	for p.peek() == cst.Pipe {
		p.drain(n)
		p.bump(n) // |
		p.drain(n)

		nt := cst.NewNode(cst.NamedType)
		p.expect(nt, cst.Name)
		n.AppendChild(nt)
	}

	return n
}

func (p *parser) parseUnionTypeDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.UnionTypeDefinition)
	attachDesc(n, desc)
	p.bump(n) // union
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	if p.peek() == cst.Equals {
		p.drain(n)
		n.AppendChild(p.parseUnionMemberTypes())
	}

	return n
}

func (p *parser) parseUnionTypeExtension() *cst.Node {
	n := cst.NewNode(cst.UnionTypeExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // union
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.At {
		p.drain(n)
		n.AppendChild(p.parseDirectives())
	}

	if p.peek() == cst.Equals {
		p.drain(n)
		n.AppendChild(p.parseUnionMemberTypes())
	}

	return n
}

func (p *parser) parseEnumValuesDefinition() *cst.Node {
	n := cst.NewNode(cst.EnumValuesDefinition)
	p.bump(n) // {
	p.drain(n)

	for p.peek() != cst.BraceR && p.peek() != cst.EOF {
		evd := cst.NewNode(cst.EnumValueDefinition)

		if p.peek() == cst.StringValueTok {
			evd.AppendChild(p.parseDescription())
			p.drain(evd)
		}

		ev := cst.NewNode(cst.EnumValue)
		p.expect(ev, cst.Name)
		evd.AppendChild(ev)

		if p.peek() == cst.At {
			p.drain(evd)
			evd.AppendChild(p.parseDirectives())
		}

		n.AppendChild(evd)
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.BraceR)

	return n
}

func (p *parser) parseEnumTypeDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.EnumTypeDefinition)
	attachDesc(n, desc)
	p.bump(n) // enum
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseEnumValuesDefinition())
	}

	return n
}

func (p *parser) parseEnumTypeExtension() *cst.Node {
	n := cst.NewNode(cst.EnumTypeExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // enum
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseEnumValuesDefinition())
	}

	return n
}

func (p *parser) parseInputFieldsDefinition() *cst.Node {
	n := cst.NewNode(cst.InputFieldsDefinition)
	p.bump(n) // {
	p.drain(n)

	for p.peek() != cst.BraceR && p.peek() != cst.EOF {
		n.AppendChild(p.parseInputValueDefinition())
		p.drain(n)

		if p.peek() == cst.Comma {
			p.bump(n)
			p.drain(n)
		}
	}

	p.expect(n, cst.BraceR)

	return n
}

func (p *parser) parseInputObjectTypeDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.InputObjectTypeDefinition)
	attachDesc(n, desc)
	p.bump(n) // input
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseInputFieldsDefinition())
	}

	return n
}

func (p *parser) parseInputObjectTypeExtension() *cst.Node {
	n := cst.NewNode(cst.InputObjectTypeExtension)
	p.bump(n) // extend
	p.drain(n)
	p.bump(n) // input
	p.drain(n)

	p.expect(n, cst.Name)
	p.drain(n)

	if p.peek() == cst.At {
		n.AppendChild(p.parseDirectives())
		p.drain(n)
	}

	if p.peek() == cst.BraceL {
		n.AppendChild(p.parseInputFieldsDefinition())
	}

	return n
}

func (p *parser) parseDirectiveLocations() *cst.Node {
	n := cst.NewNode(cst.DirectiveLocations)

	if p.peek() == cst.Pipe {
		p.bump(n)
		p.drain(n)
	}

	first := cst.NewNode(cst.DirectiveLocation)
	p.expect(first, cst.Name)
	n.AppendChild(first)

	for p.peek() == cst.Pipe {
		p.drain(n)
		p.bump(n) // |
		p.drain(n)

		loc := cst.NewNode(cst.DirectiveLocation)
		p.expect(loc, cst.Name)
		n.AppendChild(loc)
	}

	return n
}

func (p *parser) parseDirectiveDefinition(desc *cst.Node) *cst.Node {
	n := cst.NewNode(cst.DirectiveDefinition)
	attachDesc(n, desc)
	p.bump(n) // directive
	p.drain(n)

	p.expect(n, cst.At)
	p.drain(n)

	p.expect(n, cst.Name)

	if p.peek() == cst.ParenL {
		p.drain(n)
		n.AppendChild(p.parseArgumentsDefinition())
	}

	p.drain(n)

	if p.peek() == cst.KeywordRepeatable {
		p.bump(n)
		p.drain(n)
	}

	p.expect(n, cst.KeywordOn)
	p.drain(n)

	n.AppendChild(p.parseDirectiveLocations())

	return n
}
