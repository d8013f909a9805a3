package page

import (
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// The view redirector routes reads and writes to "the active tree": the
// top-level section tree when partitioning is off, or the active tab's tree
// when it is on. Every structural mutation in the editor goes through
// UpdateActiveTree; nothing else is allowed to write a tree directly.

// resolveTab returns the index of the tab the given id designates, falling
// back to the first tab when the id matches nothing (the nominally active tab
// can have been deleted out from under the UI).
func resolveTab(p models.Page, activeTabID string) (int, bool) {
	if !p.TabsEnabled || len(p.Tabs) == 0 {
		return 0, false
	}
	for i := range p.Tabs {
		if p.Tabs[i].ID == activeTabID {
			return i, true
		}
	}
	return 0, true
}

// ActiveTree returns the tree mutations currently target.
func ActiveTree(p models.Page, activeTabID string) []models.Section {
	if i, ok := resolveTab(p, activeTabID); ok {
		return p.Tabs[i].Sections
	}
	return p.Sections
}

// ActiveTabID resolves the effective active tab id, which differs from the
// requested one when it is stale. Empty when partitioning is off.
func ActiveTabID(p models.Page, activeTabID string) string {
	if i, ok := resolveTab(p, activeTabID); ok {
		return p.Tabs[i].ID
	}
	return ""
}

// UpdateActiveTree applies fn to whichever tree ActiveTree would return and
// writes the result back to the same place, returning the updated page.
func UpdateActiveTree(p models.Page, activeTabID string, fn func([]models.Section) []models.Section) models.Page {
	out := ClonePage(p)
	if i, ok := resolveTab(out, activeTabID); ok {
		out.Tabs[i].Sections = fn(out.Tabs[i].Sections)
		return out
	}
	out.Sections = fn(out.Sections)
	return out
}

// SetPartitioned toggles tab partitioning and returns the updated page plus
// the id of the tab that should become active (empty when disabling).
//
// Enabling on a page with no tabs materializes one tab that takes over the
// current flat tree, so a write can proceed immediately and no content
// disappears from view. Disabling migrates the first tab's tree back into the
// top-level tree before discarding the tabs, so in-progress edits survive.
func SetPartitioned(p models.Page, enabled bool) (models.Page, string) {
	out := ClonePage(p)
	if enabled == out.TabsEnabled {
		if enabled && len(out.Tabs) > 0 {
			return out, out.Tabs[0].ID
		}
		return out, ""
	}

	if enabled {
		out.TabsEnabled = true
		if len(out.Tabs) == 0 {
			tab := NewTab("Tab 1")
			tab.Sections = out.Sections
			out.Tabs = []models.Tab{tab}
		}
		return out, out.Tabs[0].ID
	}

	if len(out.Tabs) > 0 {
		out.Sections = out.Tabs[0].Sections
	}
	out.TabsEnabled = false
	out.Tabs = nil
	return out, ""
}

// Normalize applies the backward-compatibility contract: while partitioning
// is enabled the persisted top-level tree must equal the first tab's tree, so
// readers unaware of tabs still see a coherent document. Every save path
// calls this first.
func Normalize(p models.Page) models.Page {
	out := ClonePage(p)
	if out.TabsEnabled && len(out.Tabs) > 0 {
		out.Sections = CloneTree(out.Tabs[0].Sections)
	}
	if !out.TabsEnabled {
		out.Tabs = nil
	}
	return out
}
