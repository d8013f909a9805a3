package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

func textElement(id, text string) models.Element {
	return models.Element{ID: id, Data: &models.TextData{Text: text}}
}

// twoColumnTree builds one double section: column A holds e1, e2 and column B
// holds e3.
func twoColumnTree() []models.Section {
	return []models.Section{
		{
			ID:     "s1",
			Layout: models.LayoutDouble,
			Columns: []models.Column{
				{ID: "colA", Elements: []models.Element{
					textElement("e1", "first"),
					textElement("e2", "second"),
				}},
				{ID: "colB", Elements: []models.Element{
					textElement("e3", "third"),
				}},
			},
		},
	}
}

func TestAddSectionLayouts(t *testing.T) {
	tests := []struct {
		layout      models.Layout
		wantColumns int
	}{
		{models.LayoutSingle, 1},
		{models.LayoutDouble, 2},
		{models.LayoutTriple, 3},
	}

	var tree []models.Section
	for _, tt := range tests {
		tree = AddSection(tree, tt.layout)
		added := tree[len(tree)-1]
		assert.Equal(t, tt.layout, added.Layout)
		assert.Len(t, added.Columns, tt.wantColumns)
		assert.NotEmpty(t, added.ID)
		for _, col := range added.Columns {
			assert.NotEmpty(t, col.ID)
		}
	}

	// Every id minted along the way must be distinct.
	seen := map[string]bool{}
	for _, section := range tree {
		require.False(t, seen[section.ID], "duplicate section id %s", section.ID)
		seen[section.ID] = true
		for _, col := range section.Columns {
			require.False(t, seen[col.ID], "duplicate column id %s", col.ID)
			seen[col.ID] = true
		}
	}
}

func TestDeleteSection(t *testing.T) {
	tree := twoColumnTree()
	tree = AddSection(tree, models.LayoutSingle)

	out := DeleteSection(tree, "s1")
	require.Len(t, out, 1)
	assert.NotEqual(t, "s1", out[0].ID)

	// Stale id is a silent no-op.
	out = DeleteSection(tree, "ghost")
	assert.Len(t, out, 2)
}

func TestAddElementAppends(t *testing.T) {
	tree := twoColumnTree()
	el := textElement("e4", "appended")

	out := AddElement(tree, "s1", "colA", el)
	colA := out[0].Columns[0]
	require.Len(t, colA.Elements, 3)
	assert.Equal(t, "e4", colA.Elements[len(colA.Elements)-1].ID)

	// Sibling column untouched, input tree untouched.
	assert.Len(t, out[0].Columns[1].Elements, 1)
	assert.Len(t, tree[0].Columns[0].Elements, 2)

	// Unknown column is a no-op.
	out = AddElement(tree, "s1", "ghost", el)
	assert.Equal(t, 3, models.CountElements(out))
}

func TestUpdateElementMergesPayload(t *testing.T) {
	tree := twoColumnTree()

	out := UpdateElement(tree, "s1", "colA", "e2", map[string]any{"text": "edited"})
	loc, ok := FindElement(out, "e2")
	require.True(t, ok)
	assert.Equal(t, "edited", loc.Element.Data.(*models.TextData).Text)
	assert.Equal(t, models.KindText, loc.Element.Data.Kind())

	// Original tree keeps the old payload.
	loc, _ = FindElement(tree, "e2")
	assert.Equal(t, "second", loc.Element.Data.(*models.TextData).Text)

	// Stale element id is a no-op.
	out = UpdateElement(tree, "s1", "colA", "ghost", map[string]any{"text": "x"})
	assert.Equal(t, 3, models.CountElements(out))
}

func TestDeleteElement(t *testing.T) {
	tree := twoColumnTree()

	out := DeleteElement(tree, "s1", "colA", "e1")
	assert.Equal(t, 2, models.CountElements(out))
	_, ok := FindElement(out, "e1")
	assert.False(t, ok)

	out = DeleteElement(tree, "s1", "colB", "ghost")
	assert.Equal(t, 3, models.CountElements(out))
}

func TestFindElement(t *testing.T) {
	tree := twoColumnTree()

	loc, ok := FindElement(tree, "e3")
	require.True(t, ok)
	assert.Equal(t, "s1", loc.SectionID)
	assert.Equal(t, "colB", loc.ColumnID)
	assert.Equal(t, 0, loc.Index)

	_, ok = FindElement(tree, "nope")
	assert.False(t, ok)
}
