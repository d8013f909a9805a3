// Package page implements the structural core of a document: the section ->
// column -> element tree, the operations that mutate it, and the view
// redirection that makes every mutation agnostic to tab partitioning.
//
// All operations are pure: they return a new tree value and never modify
// their input in place. Element payloads are treated as immutable; an update
// replaces the payload rather than writing through it. Operations aimed at an
// id that no longer exists are silent no-ops, because drag targets and UI
// references routinely go stale between gestures.
package page

import (
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// Location names where in the tree an element lives.
type Location struct {
	Element   models.Element
	SectionID string
	ColumnID  string
	Index     int // position within the owning column
}

// FindElement scans the whole tree for the element with the given id. Ids are
// globally unique, so at most one match exists. Linear cost is fine at
// realistic document sizes; this runs on user-gesture cadence only.
func FindElement(tree []models.Section, elementID string) (Location, bool) {
	for _, section := range tree {
		for _, column := range section.Columns {
			for i, el := range column.Elements {
				if el.ID == elementID {
					return Location{
						Element:   el,
						SectionID: section.ID,
						ColumnID:  column.ID,
						Index:     i,
					}, true
				}
			}
		}
	}
	return Location{}, false
}

// NewSection builds a section with fresh ids and the column count its layout
// dictates. The layout is fixed for the section's lifetime.
func NewSection(layout models.Layout) models.Section {
	count := models.ColumnsForLayout(layout)
	columns := make([]models.Column, count)
	for i := range columns {
		columns[i] = models.Column{ID: NewColumnID()}
	}
	return models.Section{
		ID:      NewSectionID(),
		Layout:  layout,
		Columns: columns,
	}
}

// AddSection appends a new empty section to the end of the tree.
func AddSection(tree []models.Section, layout models.Layout) []models.Section {
	out := CloneTree(tree)
	return append(out, NewSection(layout))
}

// DeleteSection removes the section with the given id, discarding every
// element it contained. No-op if the id is not found. Confirming the data
// loss with the user is the calling layer's job.
func DeleteSection(tree []models.Section, sectionID string) []models.Section {
	out := CloneTree(tree)
	for i, section := range out {
		if section.ID == sectionID {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// AddElement appends an element to the end of the named column. No-op if the
// section or column is not found.
func AddElement(tree []models.Section, sectionID, columnID string, el models.Element) []models.Section {
	out := CloneTree(tree)
	if col := findColumn(out, sectionID, columnID); col != nil {
		col.Elements = append(col.Elements, el)
	}
	return out
}

// UpdateElement shallow-merges a partial payload onto the named element,
// leaving its id and kind untouched. No-op if the target is not found.
func UpdateElement(tree []models.Section, sectionID, columnID, elementID string, patch map[string]any) []models.Section {
	out := CloneTree(tree)
	col := findColumn(out, sectionID, columnID)
	if col == nil {
		return out
	}
	for i, el := range col.Elements {
		if el.ID != elementID {
			continue
		}
		merged, err := models.MergeData(el.Data, patch)
		if err != nil {
			return out
		}
		col.Elements[i].Data = merged
		return out
	}
	return out
}

// DeleteElement removes the named element from its column. No-op if the
// target is not found.
func DeleteElement(tree []models.Section, sectionID, columnID, elementID string) []models.Section {
	out := CloneTree(tree)
	col := findColumn(out, sectionID, columnID)
	if col == nil {
		return out
	}
	for i, el := range col.Elements {
		if el.ID == elementID {
			col.Elements = append(col.Elements[:i], col.Elements[i+1:]...)
			return out
		}
	}
	return out
}

// CloneTree deep-copies the container structure of a tree. Element payloads
// are shared, never copied; they are immutable by convention.
func CloneTree(tree []models.Section) []models.Section {
	out := make([]models.Section, len(tree))
	for i, section := range tree {
		out[i] = cloneSection(section)
	}
	return out
}

func cloneSection(section models.Section) models.Section {
	columns := make([]models.Column, len(section.Columns))
	for i, column := range section.Columns {
		columns[i] = cloneColumn(column)
	}
	section.Columns = columns
	return section
}

func cloneColumn(column models.Column) models.Column {
	elements := make([]models.Element, len(column.Elements))
	copy(elements, column.Elements)
	column.Elements = elements
	if column.Settings != nil {
		settings := *column.Settings
		column.Settings = &settings
	}
	return column
}

// findColumn returns a pointer into the (already cloned) tree, or nil.
func findColumn(tree []models.Section, sectionID, columnID string) *models.Column {
	for si := range tree {
		if tree[si].ID != sectionID {
			continue
		}
		for ci := range tree[si].Columns {
			if tree[si].Columns[ci].ID == columnID {
				return &tree[si].Columns[ci]
			}
		}
	}
	return nil
}
