package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

func TestAddTabOnFlatPageFoldsExistingTree(t *testing.T) {
	p := models.Page{Title: "Home", Sections: twoColumnTree()}

	out, newTabID := AddTab(p, "Details")
	require.True(t, out.TabsEnabled)
	require.Len(t, out.Tabs, 2)

	// The flat tree moved into the first tab; the new tab starts empty with
	// one full-width section.
	assert.Equal(t, 3, models.CountElements(out.Tabs[0].Sections))
	assert.Equal(t, newTabID, out.Tabs[1].ID)
	assert.Equal(t, "Details", out.Tabs[1].Label)
	assert.Equal(t, "details", out.Tabs[1].Slug)
	require.Len(t, out.Tabs[1].Sections, 1)
	assert.Equal(t, models.LayoutSingle, out.Tabs[1].Sections[0].Layout)
}

func TestRenameTabRederivesSlug(t *testing.T) {
	p, tabID := SetPartitioned(models.Page{}, true)

	out := RenameTab(p, tabID, "My Cool Tab!!")
	assert.Equal(t, "My Cool Tab!!", out.Tabs[0].Label)
	assert.Equal(t, "my-cool-tab", out.Tabs[0].Slug)

	out = RenameTab(p, tabID, "  ")
	assert.Equal(t, "", out.Tabs[0].Slug)
}

func TestDeleteLastTabDisablesPartitioning(t *testing.T) {
	p, _ := SetPartitioned(models.Page{Sections: twoColumnTree()}, true)
	require.Len(t, p.Tabs, 1)

	out := DeleteTab(p, p.Tabs[0].ID)
	assert.False(t, out.TabsEnabled)
	assert.Empty(t, out.Tabs)
	// The page reverts to the plain top-level tree.
	assert.Equal(t, 3, models.CountElements(out.Sections))
}

func TestMoveTab(t *testing.T) {
	p, _ := SetPartitioned(models.Page{}, true)
	p, second := AddTab(p, "Two")
	first := p.Tabs[0].ID

	out := MoveTab(p, second, -1)
	assert.Equal(t, []string{second, first}, []string{out.Tabs[0].ID, out.Tabs[1].ID})

	// Out-of-range moves and bad deltas are no-ops.
	out = MoveTab(p, first, -1)
	assert.Equal(t, first, out.Tabs[0].ID)
	out = MoveTab(p, second, 1)
	assert.Equal(t, second, out.Tabs[1].ID)
	out = MoveTab(p, second, 2)
	assert.Equal(t, second, out.Tabs[1].ID)
}

func TestActiveTreeFallsBackToFirstTab(t *testing.T) {
	p, _ := SetPartitioned(models.Page{Sections: twoColumnTree()}, true)
	firstID := p.Tabs[0].ID

	tree := ActiveTree(p, "ghost")
	assert.Equal(t, p.Tabs[0].Sections, tree)
	assert.Equal(t, firstID, ActiveTabID(p, "ghost"))
}

func TestActiveTreeUnpartitioned(t *testing.T) {
	p := models.Page{Sections: twoColumnTree()}
	assert.Equal(t, p.Sections, ActiveTree(p, ""))
	assert.Equal(t, "", ActiveTabID(p, "anything"))
}

func TestUpdateActiveTreeWritesBack(t *testing.T) {
	p, tabID := AddTab(models.Page{Sections: twoColumnTree()}, "Second")

	out := UpdateActiveTree(p, tabID, func(tree []models.Section) []models.Section {
		sec := tree[0]
		return AddElement(tree, sec.ID, sec.Columns[0].ID, textElement("new", "hello"))
	})

	// The write landed in the second tab only.
	assert.Equal(t, 1, models.CountElements(out.Tabs[1].Sections))
	assert.Equal(t, 3, models.CountElements(out.Tabs[0].Sections))
	assert.Equal(t, 0, models.CountElements(p.Tabs[1].Sections))
}

func TestDisablingPartitioningMigratesFirstTab(t *testing.T) {
	p, _ := SetPartitioned(models.Page{Sections: twoColumnTree()}, true)
	p, _ = AddTab(p, "Extra")
	require.Len(t, p.Tabs, 2)

	out, activeID := SetPartitioned(p, false)
	assert.False(t, out.TabsEnabled)
	assert.Empty(t, out.Tabs)
	assert.Equal(t, "", activeID)
	assert.Equal(t, 3, models.CountElements(out.Sections))
}

func TestNormalizeMirrorsFirstTab(t *testing.T) {
	p, tabID := SetPartitioned(models.Page{Sections: twoColumnTree()}, true)
	p = UpdateActiveTree(p, tabID, func(tree []models.Section) []models.Section {
		return DeleteElement(tree, "s1", "colA", "e1")
	})

	out := Normalize(p)
	assert.Equal(t, models.CountElements(out.Tabs[0].Sections), models.CountElements(out.Sections))
	assert.Equal(t, 2, models.CountElements(out.Sections))
}

func TestIDUniquenessAcrossOperations(t *testing.T) {
	p := models.Page{}
	p, tabID := AddTab(p, "One")
	p = UpdateActiveTree(p, tabID, func(tree []models.Section) []models.Section {
		tree = AddSection(tree, models.LayoutTriple)
		for i := 0; i < 5; i++ {
			sec := tree[len(tree)-1]
			el := models.Element{ID: NewElementID(), Data: models.DefaultData(models.KindText)}
			tree = AddElement(tree, sec.ID, sec.Columns[0].ID, el)
		}
		return tree
	})
	p, _ = AddTab(p, "Two")

	seen := map[string]bool{}
	record := func(id string) {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for _, tab := range p.Tabs {
		record(tab.ID)
		for _, section := range tab.Sections {
			record(section.ID)
			for _, column := range section.Columns {
				record(column.ID)
				for _, el := range column.Elements {
					record(el.ID)
				}
			}
		}
	}
}
