package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
	"github.com/pagecraft/pagecraft-cli/pkg/palette"
)

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autosaveTickMsg:
		cmds := []tea.Cmd{m.scheduleAutosave()}
		if m.dirty {
			cmds = append(cmds, m.savePage())
		}
		return m, tea.Batch(cmds...)

	case saveResultMsg:
		if msg.err != nil {
			m.statusMsg = "Saving failed, retrying..."
			m.logger.Error("save failed", "page", m.page.Name, "err", msg.err)
		} else {
			if m.gen == msg.gen {
				m.dirty = false
			}
			m.statusMsg = "Saved"
		}
		return m, nil

	case StatusMsg:
		m.statusMsg = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.canvas, cmd = m.canvas.Update(msg)
	return m, cmd
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmation.Active() {
		return m, m.confirmation.Update(msg)
	}

	switch m.mode {
	case modePalette:
		return m.updatePalette(msg)
	case modeEditText:
		return m.updateEditText(msg)
	case modeTabInput:
		return m.updateTabInput(msg)
	case modeLayout:
		return m.updateLayout(msg)
	case modeMove:
		return m.updateMove(msg)
	}
	return m.updateNormal(msg)
}

func (m *EditorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		// Back to the page list; flush pending edits first.
		if m.dirty {
			return m, tea.Sequence(m.savePage(), switchToList())
		}
		return m, switchToList()

	case "ctrl+s":
		return m, m.savePage()

	case "up", "k":
		m.moveElementCursor(-1)
	case "down", "j":
		m.moveElementCursor(1)
	case "left", "h":
		m.moveColumnCursor(-1)
	case "right", "l":
		m.moveColumnCursor(1)
	case "K", "shift+up":
		m.moveSectionCursor(-1)
	case "J", "shift+down":
		m.moveSectionCursor(1)

	case "/", "i":
		return m.openPalette()

	case "m":
		if el, ok := m.focusedElement(); ok {
			m.movingID = el.ID
			m.mode = modeMove
			m.statusMsg = "Moving block: choose a destination, enter drops, esc cancels"
		}

	case "e":
		return m.startEditText()

	case "a":
		m.mode = modeLayout
		m.statusMsg = "New section: 1, 2 or 3 columns? (esc cancels)"

	case "x":
		return m, m.deleteFocusedElement()

	case "X":
		return m, m.deleteFocusedSection()

	case "y":
		m.copyFocusedElement()

	case "t":
		m.renameTabID = ""
		m.textInput.SetValue("")
		m.textInput.Placeholder = "tab label"
		m.mode = modeTabInput
		return m, m.textInput.Focus()

	case "R":
		if tab, ok := m.activeTab(); ok {
			m.renameTabID = tab.ID
			m.textInput.SetValue(tab.Label)
			m.textInput.Placeholder = "tab label"
			m.mode = modeTabInput
			return m, m.textInput.Focus()
		}

	case "T":
		return m, m.togglePartitioning()

	case "W":
		return m, m.deleteActiveTab()

	case "[":
		m.switchTab(-1)
	case "]":
		m.switchTab(1)
	case "{":
		m.shiftTab(-1)
	case "}":
		m.shiftTab(1)

	default:
		var cmd tea.Cmd
		m.canvas, cmd = m.canvas.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *EditorModel) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.movingID = ""
		m.mode = modeNormal
		m.statusMsg = ""

	case "enter":
		if dst, ok := m.focusedElement(); ok {
			srcID := m.movingID
			m.applyTree(func(tree []models.Section) []models.Section {
				return page.Reorder(tree, srcID, dst.ID)
			})
			m.moveCursorTo(srcID)
			m.statusMsg = "Moved"
		}
		m.movingID = ""
		m.mode = modeNormal

	case "up", "k":
		m.moveElementCursor(-1)
	case "down", "j":
		m.moveElementCursor(1)
	case "left", "h":
		m.moveColumnCursor(-1)
	case "right", "l":
		m.moveColumnCursor(1)
	case "K", "shift+up":
		m.moveSectionCursor(-1)
	case "J", "shift+down":
		m.moveSectionCursor(1)
	}
	return m, nil
}

func (m *EditorModel) openPalette() (tea.Model, tea.Cmd) {
	section, column, ok := m.focusedColumn()
	if !ok {
		m.statusMsg = "No column to insert into"
		return m, nil
	}
	m.palette.Open(palette.Target{
		SectionID: section.ID,
		ColumnID:  column.ID,
		AnchorRow: m.cursor.elementIdx,
	})
	m.paletteInput.SetValue("")
	m.mode = modePalette
	return m, m.paletteInput.Focus()
}

func (m *EditorModel) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.palette.Close()
		m.paletteInput.Blur()
		m.mode = modeNormal
		return m, nil

	case "up":
		m.palette.MoveSelection(-1)
		return m, nil

	case "down":
		m.palette.MoveSelection(1)
		return m, nil

	case "ctrl+o":
		if cmd, ok := m.palette.Selected(); ok {
			m.palette.ToggleCategory(cmd.Category)
		}
		return m, nil

	case "enter":
		sel, ok := m.palette.Confirm()
		if !ok {
			return m, nil
		}
		m.paletteInput.Blur()
		m.mode = modeNormal
		m.applyTree(func(tree []models.Section) []models.Section {
			return page.AddElement(tree, sel.Target.SectionID, sel.Target.ColumnID, sel.Element)
		})
		m.moveCursorTo(sel.Element.ID)
		m.statusMsg = fmt.Sprintf("Added %s block", sel.Element.Data.Kind())
		return m, nil
	}

	var cmd tea.Cmd
	before := m.paletteInput.Value()
	m.paletteInput, cmd = m.paletteInput.Update(msg)
	if m.paletteInput.Value() != before {
		m.palette.SetQuery(m.paletteInput.Value())
	}
	return m, cmd
}

func (m *EditorModel) updateEditText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.textInput.Blur()
		m.mode = modeNormal
		return m, nil

	case "enter":
		el, ok := m.focusedElement()
		if !ok {
			m.mode = modeNormal
			return m, nil
		}
		field := primaryTextField(el.Data.Kind())
		value := m.textInput.Value()
		section, column, _ := m.focusedColumn()
		m.applyTree(func(tree []models.Section) []models.Section {
			return page.UpdateElement(tree, section.ID, column.ID, el.ID, map[string]any{field: value})
		})
		m.textInput.Blur()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *EditorModel) updateTabInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.textInput.Blur()
		m.mode = modeNormal
		return m, nil

	case "enter":
		label := m.textInput.Value()
		if label == "" {
			return m, nil
		}
		if m.renameTabID != "" {
			m.setPage(page.RenameTab(m.page, m.renameTabID, label))
			m.statusMsg = "Tab renamed"
		} else {
			p, newTabID := page.AddTab(m.page, label)
			m.setPage(p)
			m.activeTabID = newTabID
			m.statusMsg = fmt.Sprintf("Added tab '%s'", label)
		}
		m.clampCursor()
		m.textInput.Blur()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *EditorModel) updateLayout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layouts := map[string]models.Layout{
		"1": models.LayoutSingle,
		"2": models.LayoutDouble,
		"3": models.LayoutTriple,
	}
	switch key := msg.String(); key {
	case "esc":
		m.mode = modeNormal
		m.statusMsg = ""
	case "1", "2", "3":
		layout := layouts[key]
		m.applyTree(func(tree []models.Section) []models.Section {
			return page.AddSection(tree, layout)
		})
		m.cursor = canvasCursor{sectionIdx: len(m.activeTree()) - 1, elementIdx: -1}
		m.mode = modeNormal
		m.statusMsg = fmt.Sprintf("Added %s section", layout)
	}
	return m, nil
}

func (m *EditorModel) moveElementCursor(delta int) {
	_, column, ok := m.focusedColumn()
	if !ok || len(column.Elements) == 0 {
		return
	}
	next := m.cursor.elementIdx + delta
	if next < 0 {
		next = 0
	}
	if next >= len(column.Elements) {
		next = len(column.Elements) - 1
	}
	m.cursor.elementIdx = next
}

func (m *EditorModel) moveColumnCursor(delta int) {
	section, ok := m.focusedSection()
	if !ok {
		return
	}
	next := m.cursor.columnIdx + delta
	if next < 0 || next >= len(section.Columns) {
		return
	}
	m.cursor.columnIdx = next
	m.cursor.elementIdx = 0
	m.clampCursor()
}

func (m *EditorModel) moveSectionCursor(delta int) {
	tree := m.activeTree()
	next := m.cursor.sectionIdx + delta
	if next < 0 || next >= len(tree) {
		return
	}
	m.cursor = canvasCursor{sectionIdx: next}
	m.clampCursor()
}
