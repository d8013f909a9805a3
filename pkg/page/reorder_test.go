package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

func columnIDs(col models.Column) []string {
	ids := make([]string, len(col.Elements))
	for i, el := range col.Elements {
		ids[i] = el.ID
	}
	return ids
}

func TestReorderSelfDropIsNoop(t *testing.T) {
	tree := twoColumnTree()
	out := Reorder(tree, "e1", "e1")
	assert.Equal(t, tree, out)
}

func TestReorderStaleIDsAreNoops(t *testing.T) {
	tree := twoColumnTree()
	assert.Equal(t, tree, Reorder(tree, "ghost", "e1"))
	assert.Equal(t, tree, Reorder(tree, "e1", "ghost"))
}

func TestReorderInColumn(t *testing.T) {
	tree := twoColumnTree()

	// Dropping e1 on its lower neighbor reinserts it at e2's post-removal
	// index, which is e1's old slot: an adjacent downward drag is a defined
	// no-op.
	out := Reorder(tree, "e1", "e2")
	assert.Equal(t, []string{"e1", "e2"}, columnIDs(out[0].Columns[0]))

	// The upward drag does move: e2 lands in front of e1.
	out = Reorder(tree, "e2", "e1")
	assert.Equal(t, []string{"e2", "e1"}, columnIDs(out[0].Columns[0]))

	// The input tree is never mutated in place.
	assert.Equal(t, []string{"e1", "e2"}, columnIDs(tree[0].Columns[0]))
}

func TestReorderInColumnNonAdjacent(t *testing.T) {
	tree := twoColumnTree()
	tree = AddElement(tree, "s1", "colA", textElement("e4", "fourth"))

	// colA is [e1, e2, e4]: both drag directions land the source at the
	// destination's index as counted after the source is spliced out.
	out := Reorder(tree, "e1", "e4")
	assert.Equal(t, []string{"e2", "e1", "e4"}, columnIDs(out[0].Columns[0]))

	out = Reorder(tree, "e4", "e1")
	assert.Equal(t, []string{"e4", "e1", "e2"}, columnIDs(out[0].Columns[0]))
}

func TestReorderCrossColumn(t *testing.T) {
	tree := twoColumnTree()

	out := Reorder(tree, "e1", "e3")
	assert.Equal(t, []string{"e2"}, columnIDs(out[0].Columns[0]))
	assert.Equal(t, []string{"e1", "e3"}, columnIDs(out[0].Columns[1]))

	// Payload and id survive the move; only the owning column changes.
	loc, ok := FindElement(out, "e1")
	require.True(t, ok)
	assert.Equal(t, "colB", loc.ColumnID)
	assert.Equal(t, "first", loc.Element.Data.(*models.TextData).Text)
}

func TestReorderPreservesTotalCount(t *testing.T) {
	tree := twoColumnTree()
	pairs := [][2]string{
		{"e1", "e2"}, {"e2", "e1"}, {"e1", "e3"}, {"e3", "e1"}, {"e3", "e2"},
	}
	for _, pair := range pairs {
		out := Reorder(tree, pair[0], pair[1])
		assert.Equal(t, models.CountElements(tree), models.CountElements(out),
			"count changed for %v", pair)
	}
}

func TestReorderAcrossSections(t *testing.T) {
	tree := twoColumnTree()
	tree = AddSection(tree, models.LayoutSingle)
	target := tree[1]
	tree = AddElement(tree, target.ID, target.Columns[0].ID, textElement("e9", "below"))

	out := Reorder(tree, "e2", "e9")
	loc, ok := FindElement(out, "e2")
	require.True(t, ok)
	assert.Equal(t, target.ID, loc.SectionID)
	assert.Equal(t, 0, loc.Index)
	assert.Equal(t, []string{"e1"}, columnIDs(out[0].Columns[0]))
}
