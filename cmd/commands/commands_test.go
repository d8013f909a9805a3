package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

func setupProject(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	require.NoError(t, files.InitProjectStructure())
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	// Commands read the inherited --output flag; mount them under a root the
	// way main does.
	root := &cobra.Command{Use: "pagecraft"}
	root.PersistentFlags().StringP("output", "o", "text", "")
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCreateAndListCommands(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewCreateCommand(), "create", "My Page!", "--title", "My Page", "--layout", "double")
	require.NoError(t, err)

	p, err := files.ReadPage("my-page")
	require.NoError(t, err)
	assert.Equal(t, "My Page", p.Title)
	require.Len(t, p.Sections, 1)
	assert.Len(t, p.Sections[0].Columns, 2)

	out, err := execute(t, NewListCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "my-page")
	assert.Contains(t, out, "My Page")
}

func TestCreateRejectsInvalidLayout(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewCreateCommand(), "create", "bad", "--layout", "quadruple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid layout")
}

func TestListJSONOutput(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewCreateCommand(), "create", "one")
	require.NoError(t, err)

	out, err := execute(t, NewListCommand(), "list", "-o", "json")
	require.NoError(t, err)

	var result ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "one", result.Items[0].Name)
}

func TestShowCommandPrintsStructure(t *testing.T) {
	setupProject(t)

	p := examplePage("tour")
	require.NoError(t, files.WritePage(p))

	out, err := execute(t, NewShowCommand(), "show", "tour")
	require.NoError(t, err)
	assert.Contains(t, out, "Pagecraft Tour")
	assert.Contains(t, out, "Tab: Overview")
	assert.Contains(t, out, "Tab: Feedback")
	assert.Contains(t, out, "kpi")
	assert.Contains(t, out, "poll")
}

func TestExportCommandRendersMarkdown(t *testing.T) {
	setupProject(t)

	p := examplePage("tour")
	require.NoError(t, files.WritePage(p))

	out, err := execute(t, NewExportCommand(), "export", "tour")
	require.NoError(t, err)
	assert.Contains(t, out, "# Pagecraft Tour")
	assert.Contains(t, out, "Welcome to Pagecraft")
	assert.Contains(t, out, "Simplicity is the ultimate sophistication.")
}

func TestArchiveRestoreRoundTrip(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewCreateCommand(), "create", "keeper")
	require.NoError(t, err)

	_, err = execute(t, NewArchiveCommand(), "archive", "keeper")
	require.NoError(t, err)

	active, err := files.ListPages()
	require.NoError(t, err)
	assert.Empty(t, active)

	archived, err := files.ListArchivedPages()
	require.NoError(t, err)
	assert.Equal(t, []string{"keeper"}, archived)

	_, err = execute(t, NewRestoreCommand(), "restore", "keeper")
	require.NoError(t, err)

	active, err = files.ListPages()
	require.NoError(t, err)
	assert.Equal(t, []string{"keeper"}, active)
}

func TestExamplePageIsPartitioned(t *testing.T) {
	p := examplePage("tour")
	assert.True(t, p.TabsEnabled)
	require.Len(t, p.Tabs, 2)
	assert.Equal(t, "overview", p.Tabs[0].Slug)
	assert.Equal(t, "feedback", p.Tabs[1].Slug)
	assert.Positive(t, models.CountElements(p.Tabs[0].Sections))
	assert.Positive(t, models.CountElements(p.Tabs[1].Sections))
}

func TestCommandsRequireProject(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })

	_, err = execute(t, NewListCommand(), "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pagecraft")
}
