package page

import (
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// Reorder moves the element identified by srcID to the position of the
// element identified by dstID, producing a new tree.
//
// If both live in the same column this is an in-column reorder: the source is
// spliced out, then spliced back in at the index the destination occupies
// after the removal. If they live in different columns the source keeps its
// id and payload and is inserted into the destination's column at the
// destination's current index, shifting later elements right. Sections are
// never crossed implicitly; only column membership changes.
//
// A self-drop or an id that no longer resolves is a silent no-op (the input
// is returned unchanged), because drag endpoints can go stale mid-gesture.
func Reorder(tree []models.Section, srcID, dstID string) []models.Section {
	if srcID == dstID {
		return tree
	}
	if _, ok := FindElement(tree, srcID); !ok {
		return tree
	}
	if _, ok := FindElement(tree, dstID); !ok {
		return tree
	}

	out := CloneTree(tree)
	moved, ok := spliceOut(out, srcID)
	if !ok {
		return tree
	}

	// Inserting at the destination's index as it stands after the removal
	// handles both cases uniformly: in-column reorders see the post-removal
	// index, cross-column moves see an untouched one.
	if !spliceIn(out, dstID, moved) {
		return tree
	}
	return out
}

func spliceOut(tree []models.Section, elementID string) (models.Element, bool) {
	for si := range tree {
		for ci := range tree[si].Columns {
			col := &tree[si].Columns[ci]
			for i, el := range col.Elements {
				if el.ID == elementID {
					col.Elements = append(col.Elements[:i], col.Elements[i+1:]...)
					return el, true
				}
			}
		}
	}
	return models.Element{}, false
}

func spliceIn(tree []models.Section, beforeID string, el models.Element) bool {
	for si := range tree {
		for ci := range tree[si].Columns {
			col := &tree[si].Columns[ci]
			for i, existing := range col.Elements {
				if existing.ID == beforeID {
					col.Elements = append(col.Elements[:i],
						append([]models.Element{el}, col.Elements[i:]...)...)
					return true
				}
			}
		}
	}
	return false
}
