// Package lexer tokenizes GraphQL source text into a flat stream of
// [go.jacobcolvin.com/gqlfmt/cst] tokens, including [cst.Whitespace] and
// [cst.Comment] trivia. It performs no grammar analysis; that is
// [go.jacobcolvin.com/gqlfmt/gqlparser]'s job.
package lexer

import (
	"strings"

	"go.jacobcolvin.com/gqlfmt/cst"
)

var keywords = map[string]cst.Kind{
	"query":        cst.KeywordQuery,
	"mutation":     cst.KeywordMutation,
	"subscription": cst.KeywordSubscription,
	"fragment":     cst.KeywordFragment,
	"on":           cst.KeywordOn,
	"schema":       cst.KeywordSchema,
	"scalar":       cst.KeywordScalar,
	"type":         cst.KeywordType,
	"interface":    cst.KeywordInterface,
	"union":        cst.KeywordUnion,
	"enum":         cst.KeywordEnum,
	"input":        cst.KeywordInput,
	"extend":       cst.KeywordExtend,
	"implements":   cst.KeywordImplements,
	"directive":    cst.KeywordDirective,
	"repeatable":   cst.KeywordRepeatable,
	"true":         cst.KeywordTrue,
	"false":        cst.KeywordFalse,
	"null":         cst.KeywordNull,
}

// Lexer scans a byte string into [*cst.Token]s on demand.
type Lexer struct {
	src string
	pos int
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameCont(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Next returns the next token (possibly trivia), or a [cst.EOF] token at
// end of input. Unlike the GraphQL spec's lexical grammar, commas are
// tokenized as their own punctuation kind, not as trivia — the core treats
// them as syntactic noise it controls directly (see [cst.Comma]), but they
// still occupy a token slot so [go.jacobcolvin.com/gqlfmt/gqlfmt] can locate and
// re-derive them.
func (l *Lexer) Next() *cst.Token {
	if l.pos >= len(l.src) {
		return cst.NewToken(cst.EOF, "", l.pos)
	}

	start := l.pos
	b := l.src[l.pos]

	switch {
	case b == ' ' || b == '\t' || b == '\n' || b == '\r':
		for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' ||
			l.src[l.pos] == '\n' || l.src[l.pos] == '\r') {
			l.pos++
		}

		return cst.NewToken(cst.Whitespace, l.src[start:l.pos], start)
	case b == '#':
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.pos++
		}

		return cst.NewToken(cst.Comment, l.src[start:l.pos], start)
	case b == ',':
		l.pos++
		return cst.NewToken(cst.Comma, ",", start)
	case b == '!':
		l.pos++
		return cst.NewToken(cst.Bang, "!", start)
	case b == '$':
		l.pos++
		return cst.NewToken(cst.Dollar, "$", start)
	case b == '&':
		l.pos++
		return cst.NewToken(cst.Amp, "&", start)
	case b == '(':
		l.pos++
		return cst.NewToken(cst.ParenL, "(", start)
	case b == ')':
		l.pos++
		return cst.NewToken(cst.ParenR, ")", start)
	case b == '.' && strings.HasPrefix(l.src[l.pos:], "..."):
		l.pos += 3
		return cst.NewToken(cst.Spread, "...", start)
	case b == ':':
		l.pos++
		return cst.NewToken(cst.Colon, ":", start)
	case b == '=':
		l.pos++
		return cst.NewToken(cst.Equals, "=", start)
	case b == '@':
		l.pos++
		return cst.NewToken(cst.At, "@", start)
	case b == '[':
		l.pos++
		return cst.NewToken(cst.BracketL, "[", start)
	case b == ']':
		l.pos++
		return cst.NewToken(cst.BracketR, "]", start)
	case b == '{':
		l.pos++
		return cst.NewToken(cst.BraceL, "{", start)
	case b == '|':
		l.pos++
		return cst.NewToken(cst.Pipe, "|", start)
	case b == '}':
		l.pos++
		return cst.NewToken(cst.BraceR, "}", start)
	case b == '"':
		return l.lexString(start)
	case b == '-' || isDigit(b):
		return l.lexNumber(start)
	case isNameStart(b):
		for l.pos < len(l.src) && isNameCont(l.src[l.pos]) {
			l.pos++
		}

		text := l.src[start:l.pos]
		if kind, ok := keywords[text]; ok {
			return cst.NewToken(kind, text, start)
		}

		return cst.NewToken(cst.Name, text, start)
	default:
		// Unrecognized byte: consume it as a one-byte Name-like token so
		// the parser can report a syntax error without the lexer getting
		// stuck.
		l.pos++

		return cst.NewToken(cst.Name, l.src[start:l.pos], start)
	}
}

func (l *Lexer) lexNumber(start int) *cst.Token {
	isFloat := false

	if l.pos < len(l.src) && l.src[l.pos] == '-' {
		l.pos++
	}

	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}

	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isFloat = true
		l.pos++

		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isFloat = true
		l.pos++

		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}

		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	text := l.src[start:l.pos]
	if isFloat {
		return cst.NewToken(cst.FloatValueTok, text, start)
	}

	return cst.NewToken(cst.IntValueTok, text, start)
}

// lexString scans a block string ("""..."""), otherwise a single-line
// string, starting at the opening quote.
func (l *Lexer) lexString(start int) *cst.Token {
	if strings.HasPrefix(l.src[l.pos:], `"""`) {
		l.pos += 3

		for l.pos < len(l.src) {
			if strings.HasPrefix(l.src[l.pos:], `"""`) && !strings.HasPrefix(l.src[l.pos:], `\"""`) {
				l.pos += 3

				return cst.NewToken(cst.StringValueTok, l.src[start:l.pos], start)
			}

			l.pos++
		}

		return cst.NewToken(cst.StringValueTok, l.src[start:l.pos], start)
	}

	l.pos++ // opening quote

	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++

			return cst.NewToken(cst.StringValueTok, l.src[start:l.pos], start)
		case '\n':
			return cst.NewToken(cst.StringValueTok, l.src[start:l.pos], start)
		default:
			l.pos++
		}
	}

	return cst.NewToken(cst.StringValueTok, l.src[start:l.pos], start)
}
