package configschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/gqlfmt/configschema"
	"go.jacobcolvin.com/gqlfmt/gqlfmt"
)

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	data := []byte("printWidth: 100\nuseTabs: true\ncomma: always\n")

	opts, err := configschema.Load(".gqlfmt.yaml", data)
	require.NoError(t, err)

	assert.Equal(t, 100, opts.Layout.PrintWidth)
	assert.True(t, opts.Layout.UseTabs)
	assert.Equal(t, gqlfmt.CommaAlways, opts.Language.Comma.Default)

	// Fields the file omits keep the documented default.
	assert.Equal(t, gqlfmt.DefaultFormatOptions().Layout.IndentWidth, opts.Layout.IndentWidth)
}

func TestLoad_PerConstructOverride(t *testing.T) {
	t.Parallel()

	data := []byte("arguments.comma: always\nfieldsDefinition.singleLine: prefer\n")

	opts, err := configschema.Load(".gqlfmt.yaml", data)
	require.NoError(t, err)

	assert.Equal(t, gqlfmt.CommaAlways, opts.Language.Comma.Arguments)
	assert.Equal(t, gqlfmt.SingleLinePrefer, opts.Language.SingleLine.FieldsDefinition)
}

func TestLoad_UnknownKeyIsDiagnosticError(t *testing.T) {
	t.Parallel()

	_, err := configschema.Load(".gqlfmt.yaml", []byte("notARealOption: 1\n"))
	require.Error(t, err)

	var diag *configschema.DiagnosticError
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, ".gqlfmt.yaml", diag.Path)
}

func TestSchema_GeneratesNonEmptySchema(t *testing.T) {
	t.Parallel()

	schema, err := configschema.Schema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.Equal(t, "gqlfmt configuration", schema.Title)
}

func TestIsDefaultConfigName(t *testing.T) {
	t.Parallel()

	assert.True(t, configschema.IsDefaultConfigName(".gqlfmt.yaml"))
	assert.True(t, configschema.IsDefaultConfigName(".GQLFMT.YML"))
	assert.False(t, configschema.IsDefaultConfigName("gqlfmt.json"))
}
