package gqlparser

// SyntaxError describes one grammar violation found while parsing a
// document. Offset is a byte offset into the original source.
type SyntaxError struct {
	Offset  int
	Message string
}
