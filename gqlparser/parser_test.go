package gqlparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/gqlfmt/cst"
	"go.jacobcolvin.com/gqlfmt/gqlparser"
)

func TestParse_ValidDocuments(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"anonymous selection set": "{a b c}",
		"operation with variables": "query Q($x: Int = 1) { f(a: $x) }",
		"object type definition":   "type T { a: Int b: String }",
		"union definition":         "union U = A | B | C",
		"interface with directive": "interface I @deprecated { a: Int }",
		"fragment":                 "fragment F on T { a }",
		"schema definition":        "schema { query: Query }",
		"input object":             "input In { a: Int = 1 }",
		"directive definition":     "directive @d on FIELD | OBJECT",
		"enum":                     "enum E { A B C }",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, errs := gqlparser.Parse(src)
			require.Empty(t, errs, "unexpected syntax errors for %q", src)
			require.NotNil(t, doc)
			assert.Equal(t, cst.Document, doc.Root.Kind())
			assert.NotEmpty(t, doc.Root.Children())
		})
	}
}

func TestParse_ReportsSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unclosed brace":       "type T{",
		"missing field type":   "type T { a: }",
		"bad union":            "union U = ",
		"dangling selection":   "{",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, errs := gqlparser.Parse(src)
			assert.NotEmpty(t, errs, "expected syntax errors for %q", src)
		})
	}
}

func TestParse_CommaIsItsOwnToken(t *testing.T) {
	t.Parallel()

	// Commas are syntactic noise the formatter controls directly, not
	// lexer-level trivia, so the parser must accept them anywhere a
	// GraphQL comma is legal without producing syntax errors.
	doc, errs := gqlparser.Parse("query Q($x: Int, $y: Int,) { f(a: $x, b: $y,) }")
	require.Empty(t, errs)
	assert.NotNil(t, doc)
}
