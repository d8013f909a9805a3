package tui

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
	"github.com/pagecraft/pagecraft-cli/pkg/renderer"
)

type autosaveTickMsg time.Time

type saveResultMsg struct {
	err error
	gen int // mutation generation the save captured
}

// scheduleAutosave arms the next periodic save tick. The interval is fixed
// regardless of mutation volume; edits between two ticks coalesce into one
// write.
func (m *EditorModel) scheduleAutosave() tea.Cmd {
	interval := time.Duration(m.settings.Editor.AutosaveSeconds) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

// savePage snapshots the current page and persists it off the update loop.
// The in-memory page stays authoritative; a failure is logged and retried on
// the next tick.
func (m *EditorModel) savePage() tea.Cmd {
	snapshot := page.ClonePage(m.page)
	gen := m.gen
	return func() tea.Msg {
		return saveResultMsg{err: files.WritePage(&snapshot), gen: gen}
	}
}

func (m *EditorModel) deleteFocusedElement() tea.Cmd {
	el, ok := m.focusedElement()
	if !ok {
		return nil
	}
	section, column, _ := m.focusedColumn()

	doDelete := func() tea.Cmd {
		m.applyTree(func(tree []models.Section) []models.Section {
			return page.DeleteElement(tree, section.ID, column.ID, el.ID)
		})
		m.statusMsg = fmt.Sprintf("Deleted %s block", el.Data.Kind())
		return nil
	}

	if !m.settings.Editor.ConfirmDeletes {
		return doDelete()
	}
	m.confirmation.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Delete this %s block?", el.Data.Kind()),
		Destructive: true,
	}, doDelete, nil)
	return nil
}

func (m *EditorModel) deleteFocusedSection() tea.Cmd {
	section, ok := m.focusedSection()
	if !ok {
		return nil
	}

	count := models.CountElements([]models.Section{section})
	m.confirmation.Show(ConfirmationConfig{
		Message:     "Delete this section?",
		Warning:     fmt.Sprintf("%d block(s) will be lost", count),
		Destructive: true,
	}, func() tea.Cmd {
		m.applyTree(func(tree []models.Section) []models.Section {
			return page.DeleteSection(tree, section.ID)
		})
		m.statusMsg = "Section deleted"
		return nil
	}, nil)
	return nil
}

func (m *EditorModel) copyFocusedElement() {
	el, ok := m.focusedElement()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(renderer.RenderElement(el)); err != nil {
		m.statusMsg = "Clipboard unavailable"
		return
	}
	m.statusMsg = "Copied block to clipboard"
}

func (m *EditorModel) activeTab() (models.Tab, bool) {
	if !m.page.TabsEnabled || len(m.page.Tabs) == 0 {
		return models.Tab{}, false
	}
	id := page.ActiveTabID(m.page, m.activeTabID)
	for _, tab := range m.page.Tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return models.Tab{}, false
}

func (m *EditorModel) switchTab(delta int) {
	tab, ok := m.activeTab()
	if !ok {
		return
	}
	for i := range m.page.Tabs {
		if m.page.Tabs[i].ID == tab.ID {
			next := i + delta
			if next < 0 || next >= len(m.page.Tabs) {
				return
			}
			m.activeTabID = m.page.Tabs[next].ID
			m.cursor = canvasCursor{}
			m.clampCursor()
			return
		}
	}
}

func (m *EditorModel) shiftTab(delta int) {
	tab, ok := m.activeTab()
	if !ok {
		return
	}
	m.setPage(page.MoveTab(m.page, tab.ID, delta))
	m.activeTabID = tab.ID
}

func (m *EditorModel) togglePartitioning() tea.Cmd {
	if !m.page.TabsEnabled {
		p, activeID := page.SetPartitioned(m.page, true)
		m.setPage(p)
		m.activeTabID = activeID
		m.statusMsg = "Tabs enabled"
		return nil
	}

	warning := ""
	if len(m.page.Tabs) > 1 {
		warning = fmt.Sprintf("%d other tab(s) will be discarded", len(m.page.Tabs)-1)
	}
	m.confirmation.Show(ConfirmationConfig{
		Message:     "Disable tabs? The first tab becomes the page.",
		Warning:     warning,
		Destructive: len(m.page.Tabs) > 1,
	}, func() tea.Cmd {
		p, _ := page.SetPartitioned(m.page, false)
		m.setPage(p)
		m.activeTabID = ""
		m.statusMsg = "Tabs disabled"
		return nil
	}, nil)
	return nil
}

func (m *EditorModel) deleteActiveTab() tea.Cmd {
	tab, ok := m.activeTab()
	if !ok {
		return nil
	}
	count := models.CountElements(tab.Sections)
	m.confirmation.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Delete tab '%s'?", tab.Label),
		Warning:     fmt.Sprintf("%d block(s) will be lost", count),
		Destructive: true,
	}, func() tea.Cmd {
		m.setPage(page.DeleteTab(m.page, tab.ID))
		m.activeTabID = page.ActiveTabID(m.page, "")
		m.statusMsg = fmt.Sprintf("Deleted tab '%s'", tab.Label)
		return nil
	}, nil)
	return nil
}

// primaryTextField maps each kind to the payload field the quick-edit key
// targets. Kinds whose content is structural (tables, charts, lists) have no
// quick-editable text.
func primaryTextField(kind models.ElementKind) string {
	switch kind {
	case models.KindText, models.KindQuote, models.KindCallout, models.KindComment:
		return "text"
	case models.KindHeading:
		return "text"
	case models.KindImage, models.KindEmbed, models.KindCard:
		return "url"
	case models.KindButton, models.KindKPI, models.KindTracker:
		return "label"
	case models.KindMultipleChoice, models.KindRating, models.KindShortAnswer, models.KindPoll:
		return "question"
	case models.KindToggle:
		return "title"
	case models.KindCode:
		return "code"
	case models.KindProfile:
		return "name"
	}
	return ""
}

// payloadField reads a single string field out of an element payload.
func payloadField(data models.ElementData, field string) string {
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}
	if value, ok := fields[field].(string); ok {
		return value
	}
	return ""
}

func (m *EditorModel) startEditText() (tea.Model, tea.Cmd) {
	el, ok := m.focusedElement()
	if !ok {
		return m, nil
	}
	field := primaryTextField(el.Data.Kind())
	if field == "" {
		m.statusMsg = fmt.Sprintf("%s blocks have no quick-editable text", el.Data.Kind())
		return m, nil
	}
	m.textInput.SetValue(payloadField(el.Data, field))
	m.textInput.Placeholder = field
	m.mode = modeEditText
	return m, m.textInput.Focus()
}
