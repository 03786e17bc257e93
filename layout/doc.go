// Package layout defines the document layout intermediate representation
// consumed by [go.jacobcolvin.com/gqlfmt/printer]: a small Wadler/Hughes-style
// algebra of immutable values describing "render this either flat or broken
// across lines", independent of any particular width or indent setting.
//
// Node formatters in [go.jacobcolvin.com/gqlfmt/gqlfmt] build a [Doc] tree
// bottom-up from a parsed [go.jacobcolvin.com/gqlfmt/cst] tree; the printer
// walks it once, deciding at every [Group] boundary whether that subtree
// fits flat on the remaining line.
package layout

// Doc is any layout IR value. The concrete types below are the only
// implementations; consumers that need to inspect a Doc switch on its
// dynamic type.
type Doc interface {
	isDoc()
}

// TextDoc is literal, unbreakable text. Its width is its rune count.
type TextDoc struct {
	S string
}

// SpaceDoc is a single literal space. Distinct from [TextDoc] only for
// readability at call sites; behaves identically to TextDoc{" "}.
type SpaceDoc struct{}

// SoftLineDoc renders as a space when its enclosing group is flat, or a
// line break (plus the current indent) when broken.
type SoftLineDoc struct{}

// LineOrNilDoc renders as nothing when its enclosing group is flat, or a
// line break (plus the current indent) when broken. Used for the "no
// spacing" delimiter slot.
type LineOrNilDoc struct{}

// HardLineDoc always renders as a line break (plus the current indent),
// regardless of any enclosing group's mode, and forces every group
// enclosing it to render broken.
type HardLineDoc struct{}

// EmptyLineDoc renders as a bare line break with no indentation after it.
// Followed by a HardLineDoc it leaves exactly one blank output line, which
// is how a paragraph break in the source is preserved. Like HardLineDoc it
// forces its enclosing groups to break.
type EmptyLineDoc struct{}

// FlatOrBreakDoc renders Flat when its enclosing group is flat, Broken when
// that group is broken. The canonical use is a trailing comma: Flat="",
// Broken=",".
type FlatOrBreakDoc struct {
	Flat   Doc
	Broken Doc
}

// NestDoc increases the indent level by N columns for every line break
// produced while rendering Inner (when broken); it has no effect when
// Inner renders flat.
type NestDoc struct {
	N     int
	Inner Doc
}

// GroupDoc is a single flat-vs-broken decision scope: the printer first
// tries to render Inner flat on the current line; if that fits within the
// configured width and Inner contains no HardLineDoc/EmptyLineDoc, the group
// renders flat. Otherwise every SoftLineDoc/LineOrNilDoc/FlatOrBreakDoc
// directly inside Inner (not inside a nested Group) renders broken.
type GroupDoc struct {
	Inner Doc
}

// ConcatDoc sequences a list of Docs with no separator.
type ConcatDoc struct {
	Parts []Doc
}

func (TextDoc) isDoc()        {}
func (SpaceDoc) isDoc()       {}
func (SoftLineDoc) isDoc()    {}
func (LineOrNilDoc) isDoc()   {}
func (HardLineDoc) isDoc()    {}
func (EmptyLineDoc) isDoc()   {}
func (FlatOrBreakDoc) isDoc() {}
func (NestDoc) isDoc()        {}
func (GroupDoc) isDoc()       {}
func (ConcatDoc) isDoc()      {}

// Text wraps a literal string as a Doc. Multi-rune strings containing no
// line-break meaning (e.g. "| ", "!", a number literal) use this.
func Text(s string) Doc { return TextDoc{S: s} }

// Space is the single-space Doc.
func Space() Doc { return SpaceDoc{} }

// SoftLine is the space-or-break Doc.
func SoftLine() Doc { return SoftLineDoc{} }

// LineOrNil is the nothing-or-break Doc.
func LineOrNil() Doc { return LineOrNilDoc{} }

// HardLine is the unconditional line-break Doc.
func HardLine() Doc { return HardLineDoc{} }

// EmptyLine is the bare line-break Doc; followed by HardLine it yields one
// blank output line.
func EmptyLine() Doc { return EmptyLineDoc{} }

// FlatOrBreak builds a Doc that differs between a group's flat and broken
// renderings.
func FlatOrBreak(flat, broken Doc) Doc {
	return FlatOrBreakDoc{Flat: flat, Broken: broken}
}

// Nest wraps inner so that every line break it produces while broken is
// indented n additional columns.
func Nest(n int, inner Doc) Doc {
	return NestDoc{N: n, Inner: inner}
}

// Group wraps inner as a single flat-vs-broken decision scope.
func Group(inner Doc) Doc {
	return GroupDoc{Inner: inner}
}

// Concat sequences docs with no separator. A nil or empty slice yields the
// empty Doc.
func Concat(docs ...Doc) Doc {
	if len(docs) == 1 {
		return docs[0]
	}

	return ConcatDoc{Parts: docs}
}

// Empty is the zero-width, zero-effect Doc.
func Empty() Doc { return ConcatDoc{} }

// IsEmpty reports whether d is the empty Doc (a Concat with no parts, or a
// Text with an empty string).
func IsEmpty(d Doc) bool {
	switch v := d.(type) {
	case ConcatDoc:
		return len(v.Parts) == 0
	case TextDoc:
		return v.S == ""
	case nil:
		return true
	default:
		return false
	}
}
