package cst

// Element is the common interface of [Node] and [Token]: anything that can
// be a child in the tree.
type Element interface {
	// Kind returns the element's grammatical/lexical kind.
	Kind() Kind
	// Offset returns the byte offset of the element's first byte in the
	// source document.
	Offset() int
	// End returns the byte offset just past the element's last byte.
	End() int
	// NextSibling returns the element immediately following this one in
	// its parent's child list, or nil if this is the last child.
	NextSibling() Element
	// PrevSibling returns the element immediately preceding this one in
	// its parent's child list, or nil if this is the first child.
	PrevSibling() Element
	// Parent returns the enclosing node, or nil for the document root.
	Parent() *Node

	setParent(*Node)
	setSiblings(prev, next Element)
}

// Token is a leaf element: a single lexical unit with verbatim source text.
// [Whitespace] and [Comment] tokens are trivia and appear as ordinary
// siblings of real tokens, never nested inside them.
type Token struct {
	kind   Kind
	text   string
	offset int

	parent Element
	next   Element
	prev   Element
}

// NewToken constructs a detached [Token]. Callers append it to a [Node]
// via [Node.AppendChild].
func NewToken(kind Kind, text string, offset int) *Token {
	return &Token{kind: kind, text: text, offset: offset}
}

func (t *Token) Kind() Kind      { return t.kind }
func (t *Token) Offset() int     { return t.offset }
func (t *Token) End() int        { return t.offset + len(t.text) }
func (t *Token) Text() string    { return t.text }
func (t *Token) NextSibling() Element { return t.next }
func (t *Token) PrevSibling() Element { return t.prev }

func (t *Token) Parent() *Node {
	if n, ok := t.parent.(*Node); ok {
		return n
	}

	return nil
}

func (t *Token) setParent(p *Node)              { t.parent = p }
func (t *Token) setSiblings(prev, next Element) { t.prev, t.next = prev, next }

// Node is an interior element: a grammatical construct with an ordered list
// of children, each itself a [Node] or a [Token].
type Node struct {
	kind     Kind
	children []Element

	parent Element
	next   Element
	prev   Element
}

// NewNode constructs an empty [Node] of the given kind. Use
// [Node.AppendChild] to populate it.
func NewNode(kind Kind) *Node {
	return &Node{kind: kind}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Offset() int {
	if len(n.children) == 0 {
		return 0
	}

	return n.children[0].Offset()
}

func (n *Node) End() int {
	if len(n.children) == 0 {
		return 0
	}

	return n.children[len(n.children)-1].End()
}

func (n *Node) NextSibling() Element { return n.next }
func (n *Node) PrevSibling() Element { return n.prev }

func (n *Node) Parent() *Node {
	if p, ok := n.parent.(*Node); ok {
		return p
	}

	return nil
}

func (n *Node) setParent(p *Node)              { n.parent = p }
func (n *Node) setSiblings(prev, next Element) { n.prev, n.next = prev, next }

// Children returns the node's ordered children (nodes and tokens
// interleaved). The returned slice must not be mutated.
func (n *Node) Children() []Element {
	return n.children
}

// AppendChild adds child to the end of n's child list, wiring parent and
// sibling pointers.
func (n *Node) AppendChild(child Element) {
	if len(n.children) > 0 {
		last := n.children[len(n.children)-1]
		last.setSiblings(last.PrevSibling(), child)
		child.setSiblings(last, nil)
	} else {
		child.setSiblings(nil, nil)
	}

	switch c := child.(type) {
	case *Node:
		c.setParent(n)
	case *Token:
		c.setParent(n)
	}

	n.children = append(n.children, child)
}

// FirstChild returns the first child, or nil if n has none.
func (n *Node) FirstChild() Element {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[0]
}

// LastChild returns the last child, or nil if n has none.
func (n *Node) LastChild() Element {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[len(n.children)-1]
}

// ChildNode returns the first child of kind k that is a *Node, or nil.
func (n *Node) ChildNode(k Kind) *Node {
	for _, c := range n.children {
		if node, ok := c.(*Node); ok && node.Kind() == k {
			return node
		}
	}

	return nil
}

// ChildToken returns the first child of kind k that is a *Token, or nil.
func (n *Node) ChildToken(k Kind) *Token {
	for _, c := range n.children {
		if tok, ok := c.(*Token); ok && tok.Kind() == k {
			return tok
		}
	}

	return nil
}

// ChildNodes returns every child that is a *Node, in order (trivia and
// punctuation tokens excluded).
func (n *Node) ChildNodes() []*Node {
	var out []*Node

	for _, c := range n.children {
		if node, ok := c.(*Node); ok {
			out = append(out, node)
		}
	}

	return out
}

// Text reconstructs the verbatim source text spanned by n by concatenating
// every descendant token's text, in order. Useful for round-trip tests.
func (n *Node) Text() string {
	var buf []byte

	var walk func(Element)

	walk = func(e Element) {
		switch v := e.(type) {
		case *Token:
			buf = append(buf, v.Text()...)
		case *Node:
			for _, c := range v.Children() {
				walk(c)
			}
		}
	}

	walk(n)

	return string(buf)
}

// Document is the root of a parsed GraphQL document: a thin, typed wrapper
// over a [Node] of kind [Document].
type Document struct {
	Root *Node
}
