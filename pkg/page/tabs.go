package page

import (
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// NewTab builds a tab with a fresh id, a slug derived from the label, and a
// single empty full-width section.
func NewTab(label string) models.Tab {
	return models.Tab{
		ID:       NewTabID(),
		Label:    label,
		Slug:     models.Slugify(label),
		Sections: []models.Section{NewSection(models.LayoutSingle)},
	}
}

// AddTab appends a new empty tab and returns the updated page plus the new
// tab's id. Adding a tab to a page that is not yet partitioned enables
// partitioning first, which folds the flat tree into an initial tab so no
// content is lost.
func AddTab(p models.Page, label string) (models.Page, string) {
	if !p.TabsEnabled {
		p, _ = SetPartitioned(p, true)
	} else {
		p = ClonePage(p)
	}
	tab := NewTab(label)
	p.Tabs = append(p.Tabs, tab)
	return p, tab.ID
}

// RenameTab sets a tab's label and re-derives its slug. No-op if the tab is
// not found.
func RenameTab(p models.Page, tabID, label string) models.Page {
	out := ClonePage(p)
	for i := range out.Tabs {
		if out.Tabs[i].ID == tabID {
			out.Tabs[i].Label = label
			out.Tabs[i].Slug = models.Slugify(label)
			return out
		}
	}
	return out
}

// DeleteTab removes a tab and the tree it owns. Deleting the last remaining
// tab turns partitioning off; the page then reverts to the plain top-level
// tree, which still holds the first tab's mirror from the last save.
func DeleteTab(p models.Page, tabID string) models.Page {
	out := ClonePage(p)
	for i := range out.Tabs {
		if out.Tabs[i].ID != tabID {
			continue
		}
		out.Tabs = append(out.Tabs[:i], out.Tabs[i+1:]...)
		if len(out.Tabs) == 0 {
			out.TabsEnabled = false
			out.Tabs = nil
		}
		return out
	}
	return out
}

// MoveTab swaps a tab with its neighbor: delta -1 moves it left, +1 right.
// No-op when the tab is not found or the move would leave the range.
func MoveTab(p models.Page, tabID string, delta int) models.Page {
	if delta != -1 && delta != 1 {
		return p
	}
	out := ClonePage(p)
	for i := range out.Tabs {
		if out.Tabs[i].ID != tabID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(out.Tabs) {
			return out
		}
		out.Tabs[i], out.Tabs[j] = out.Tabs[j], out.Tabs[i]
		return out
	}
	return out
}

// ClonePage deep-copies a page's container structure.
func ClonePage(p models.Page) models.Page {
	p.Sections = CloneTree(p.Sections)
	if p.Tabs != nil {
		tabs := make([]models.Tab, len(p.Tabs))
		for i, tab := range p.Tabs {
			tab.Sections = CloneTree(tab.Sections)
			tabs[i] = tab
		}
		p.Tabs = tabs
	}
	return p
}
