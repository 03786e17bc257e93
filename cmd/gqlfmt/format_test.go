package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfig_WalksUpToNearestConfigFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	cfgPath := filepath.Join(root, "a", ".gqlfmt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("printWidth: 100\n"), 0o644))

	found, err := findConfig(sub)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestFindConfig_NoConfigReturnsEmptyPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	found, err := findConfig(dir)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFormatOne_WritesBackWhenChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{a}"), 0o644))

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	changed, err := formatOne(cmd, path, true, false, false)
	require.NoError(t, err)
	assert.True(t, changed)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  a\n}\n", string(out))
}

func TestFormatOne_ListPrintsOnlyChangedPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{a}"), 0o644))

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	changed, err := formatOne(cmd, path, false, true, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, buf.String(), path)
}

func TestFormatOne_CheckReportsSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.graphql")
	require.NoError(t, os.WriteFile(path, []byte("type T{"), 0o644))

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	_, err := formatOne(cmd, path, false, false, true)
	require.Error(t, err)
}
