package gqlfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/gqlfmt/gqlfmt"
	"go.jacobcolvin.com/gqlfmt/gqlparser"
	"go.jacobcolvin.com/gqlfmt/stringtest"
)

func TestFormatText_Scenarios(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  string
	}{
		"bare selection set": {
			input: "{a b c}",
			want:  stringtest.JoinLF("{", "  a", "  b", "  c", "}", ""),
		},
		"operation with variable default": {
			input: "query Q($x:Int=1){f(a:$x)}",
			want:  stringtest.JoinLF("query Q($x: Int = 1) {", "  f(a: $x)", "}", ""),
		},
		"object type definition": {
			input: "type T{a:Int b:String}",
			want:  stringtest.JoinLF("type T {", "  a: Int", "  b: String", "}", ""),
		},
		"union definition": {
			input: "union U=A|B|C",
			want:  "union U = A | B | C\n",
		},
		"trailing comment preserved": {
			input: "{ a # keep me\n b }",
			want:  stringtest.JoinLF("{", "  a # keep me", "  b", "}", ""),
		},
		"ignore directive preserves source verbatim": {
			input: stringtest.JoinLF("{", "  # dprint-ignore", "  a   (  x :1,y:2 )", "}", ""),
			want:  stringtest.JoinLF("{", "  # dprint-ignore", "  a   (  x :1,y:2 )", "}", ""),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := gqlfmt.FormatText(tt.input, gqlfmt.DefaultFormatOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatText_BreaksLongArgumentLists(t *testing.T) {
	t.Parallel()

	input := "{field(arg1:1,arg2:2,arg3:3,arg4:4,arg5:5,argumentSix:6,argumentSeven:7)}"

	got, err := gqlfmt.FormatText(input, gqlfmt.DefaultFormatOptions())
	require.NoError(t, err)

	assert.Contains(t, got, "field(\n")
	assert.Contains(t, got, "arg1: 1")
	assert.True(t, strings.HasSuffix(got, "}\n"))

	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 80, "line exceeds print width: %q", line)
	}
}

func TestFormatText_SyntaxErrorRefusesOutput(t *testing.T) {
	t.Parallel()

	got, err := gqlfmt.FormatText("type T{", gqlfmt.DefaultFormatOptions())
	require.Error(t, err)
	assert.Empty(t, got)

	var parseErr *gqlfmt.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Issues)
	assert.Contains(t, parseErr.Error(), "syntax error at line 1, col")
}

func TestFormatText_CRLFLineBreak(t *testing.T) {
	t.Parallel()

	opts := gqlfmt.DefaultFormatOptions()
	opts.Layout.LineBreak = gqlfmt.LineBreakCRLF

	got, err := gqlfmt.FormatText("{a b}", opts)
	require.NoError(t, err)
	assert.Equal(t, stringtest.JoinCRLF("{", "  a", "  b", "}", ""), got)
}

func TestPrintTree_RendersParsedDocument(t *testing.T) {
	t.Parallel()

	doc, syntaxErrs := gqlparser.Parse("{a}")
	require.Empty(t, syntaxErrs)

	got := gqlfmt.PrintTree(doc, gqlfmt.DefaultFormatOptions())
	assert.Equal(t, stringtest.JoinLF("{", "  a", "}", ""), got)
}
