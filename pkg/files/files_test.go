package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
)

func setupProject(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, InitProjectStructure())
}

func samplePage() *models.Page {
	tree := page.AddSection(nil, models.LayoutDouble)
	sec := tree[0]
	el := models.Element{ID: page.NewElementID(), Data: &models.HeadingData{Text: "Welcome", Level: 1}}
	tree = page.AddElement(tree, sec.ID, sec.Columns[0].ID, el)
	return &models.Page{Name: "home", Title: "Home", Sections: tree}
}

func TestWriteAndReadPage(t *testing.T) {
	setupProject(t)

	original := samplePage()
	require.NoError(t, WritePage(original))

	loaded, err := ReadPage("home")
	require.NoError(t, err)
	assert.Equal(t, "Home", loaded.Title)
	require.Len(t, loaded.Sections, 1)
	assert.Equal(t, models.LayoutDouble, loaded.Sections[0].Layout)
	require.Len(t, loaded.Sections[0].Columns, 2)

	heading := loaded.Sections[0].Columns[0].Elements[0].Data.(*models.HeadingData)
	assert.Equal(t, "Welcome", heading.Text)
	assert.Equal(t, 1, heading.Level)
}

func TestWritePageMirrorsFirstTab(t *testing.T) {
	setupProject(t)

	p := *samplePage()
	p, tabID := page.SetPartitioned(p, true)
	p = page.UpdateActiveTree(p, tabID, func(tree []models.Section) []models.Section {
		sec := tree[0]
		el := models.Element{ID: page.NewElementID(), Data: &models.TextData{Text: "extra"}}
		return page.AddElement(tree, sec.ID, sec.Columns[1].ID, el)
	})
	// The in-memory flat tree is stale relative to the tab's tree.
	require.NotEqual(t, models.CountElements(p.Sections), models.CountElements(p.Tabs[0].Sections))

	require.NoError(t, WritePage(&p))
	loaded, err := ReadPage("home")
	require.NoError(t, err)
	assert.Equal(t,
		models.CountElements(loaded.Tabs[0].Sections),
		models.CountElements(loaded.Sections))
	assert.Equal(t, 2, models.CountElements(loaded.Sections))
}

func TestReadPageDefaultsMalformedDocument(t *testing.T) {
	setupProject(t)

	raw := `{
		"title": "Broken",
		"sections": [
			{
				"layout": "double",
				"columns": [
					{"elements": [
						{"id": "ok", "kind": "text", "text": "kept"},
						{"id": "bad", "kind": "hologram", "beams": 3},
						"not even an object"
					]}
				]
			}
		],
		"tabs_enabled": true
	}`
	path := filepath.Join(PagecraftDir, PagesDir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	loaded, err := ReadPage("broken")
	require.NoError(t, err)

	// tabs_enabled with no tabs reverts to a flat document.
	assert.False(t, loaded.TabsEnabled)

	// One stored column wins over the stored "double" layout.
	require.Len(t, loaded.Sections, 1)
	assert.Equal(t, models.LayoutSingle, loaded.Sections[0].Layout)
	require.Len(t, loaded.Sections[0].Columns, 1)
	assert.NotEmpty(t, loaded.Sections[0].ID)
	assert.NotEmpty(t, loaded.Sections[0].Columns[0].ID)

	// The unknown-kind element and the garbage entry were dropped.
	elements := loaded.Sections[0].Columns[0].Elements
	require.Len(t, elements, 1)
	assert.Equal(t, "ok", elements[0].ID)
}

func TestReadPageEmptyDocumentGetsDefaultSection(t *testing.T) {
	setupProject(t)

	path := filepath.Join(PagecraftDir, PagesDir, "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "Empty"}`), 0644))

	loaded, err := ReadPage("empty")
	require.NoError(t, err)
	require.Len(t, loaded.Sections, 1)
	assert.Equal(t, models.LayoutSingle, loaded.Sections[0].Layout)
	assert.Len(t, loaded.Sections[0].Columns, 1)
}

func TestListAndDeletePages(t *testing.T) {
	setupProject(t)

	require.NoError(t, WritePage(samplePage()))
	require.NoError(t, WritePage(&models.Page{Name: "about", Title: "About"}))

	pages, err := ListPages()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"home", "about"}, pages)

	require.NoError(t, DeletePage("about"))
	pages, err = ListPages()
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, pages)
}

func TestArchiveRoundTrip(t *testing.T) {
	setupProject(t)
	require.NoError(t, WritePage(samplePage()))

	require.NoError(t, ArchivePage("home"))
	active, _ := ListPages()
	assert.Empty(t, active)
	archived, _ := ListArchivedPages()
	assert.Equal(t, []string{"home"}, archived)

	require.NoError(t, UnarchivePage("home"))
	active, _ = ListPages()
	assert.Equal(t, []string{"home"}, active)
}

func TestSettingsRoundTrip(t *testing.T) {
	setupProject(t)

	// Missing file yields defaults.
	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	settings.Editor.AutosaveSeconds = 30
	settings.Output.DefaultFilename = "SITE.md"
	require.NoError(t, WriteSettings(settings))

	loaded, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Editor.AutosaveSeconds)
	assert.Equal(t, "SITE.md", loaded.Output.DefaultFilename)
}

func TestSanitizePageName(t *testing.T) {
	assert.Equal(t, "my-page", SanitizePageName("My Page"))
	assert.Equal(t, "q3-results", SanitizePageName("Q3 Results!!"))
	assert.Equal(t, "", SanitizePageName("  "))
}
