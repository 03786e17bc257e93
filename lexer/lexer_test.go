package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/lexer"
)

func TestLexer_TokenizesPunctuationAndKeywords(t *testing.T) {
	t.Parallel()

	l := lexer.New(`query Q($x:Int=1){f(a:$x)}`)

	var kinds []cst.Kind

	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind())

		if tok.Kind() == cst.EOF {
			break
		}
	}

	assert.Equal(t, cst.KeywordQuery, kinds[0])
	assert.Contains(t, kinds, cst.Dollar)
	assert.Contains(t, kinds, cst.Colon)
	assert.Contains(t, kinds, cst.Equals)
	assert.Contains(t, kinds, cst.BraceL)
	assert.Contains(t, kinds, cst.BraceR)
	assert.Equal(t, cst.EOF, kinds[len(kinds)-1])
}

func TestLexer_Whitespace(t *testing.T) {
	t.Parallel()

	l := lexer.New("a \t\n b")

	first := l.Next()
	assert.Equal(t, cst.Name, first.Kind())
	assert.Equal(t, "a", first.Text())

	ws := l.Next()
	assert.Equal(t, cst.Whitespace, ws.Kind())
	assert.Equal(t, " \t\n ", ws.Text())
}

func TestLexer_Comment(t *testing.T) {
	t.Parallel()

	l := lexer.New("# hello\na")

	comment := l.Next()
	assert.Equal(t, cst.Comment, comment.Kind())
	assert.Equal(t, "# hello", comment.Text())
}

func TestLexer_Comma(t *testing.T) {
	t.Parallel()

	l := lexer.New("a,b")

	_ = l.Next() // a

	comma := l.Next()
	assert.Equal(t, cst.Comma, comma.Kind())
	assert.Equal(t, ",", comma.Text())
}

func TestLexer_Numbers(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		kind  cst.Kind
	}{
		"int":               {"123", cst.IntValueTok},
		"negative int":      {"-7", cst.IntValueTok},
		"float":             {"1.5", cst.FloatValueTok},
		"exponent":          {"1e10", cst.FloatValueTok},
		"negative exponent": {"1.5e-10", cst.FloatValueTok},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tok := lexer.New(tt.input).Next()
			assert.Equal(t, tt.kind, tok.Kind())
			assert.Equal(t, tt.input, tok.Text())
		})
	}
}

func TestLexer_Strings(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`"hello"`:        `"hello"`,
		`"esc\"aped"`:    `"esc\"aped"`,
		`"""block str"""`: `"""block str"""`,
	}

	for input, want := range tests {
		tok := lexer.New(input).Next()
		assert.Equal(t, cst.StringValueTok, tok.Kind())
		assert.Equal(t, want, tok.Text())
	}
}

func TestLexer_KeywordsAreContextuallyNames(t *testing.T) {
	t.Parallel()

	// "on" is a keyword token but must still carry its text verbatim so
	// formatters can render it back out.
	tok := lexer.New("on").Next()
	assert.Equal(t, cst.KeywordOn, tok.Kind())
	assert.Equal(t, "on", tok.Text())
}
