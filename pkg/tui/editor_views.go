package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
)

// Rows consumed by header, tab bar, footer and status bar around the canvas
// viewport.
const canvasChromeHeight = 9

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	sectionFocusedStyle = sectionStyle.
				BorderForeground(lipgloss.Color("170"))

	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true)

	elementStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	elementFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	elementMovingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	emptyColumnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	paletteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	paletteCategoryStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	paletteSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62"))

	paletteDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)
)

func (m *EditorModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.width, m.page.Title))
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	m.canvas.SetContent(m.renderCanvas())
	b.WriteString(m.canvas.View())
	b.WriteString("\n")

	switch m.mode {
	case modePalette:
		b.WriteString(m.renderPalette())
	case modeEditText:
		b.WriteString(inputBoxStyle.Render("Edit text\n" + m.textInput.View()))
	case modeTabInput:
		label := "New tab"
		if m.renameTabID != "" {
			label = "Rename tab"
		}
		b.WriteString(inputBoxStyle.Render(label + "\n" + m.textInput.View()))
	default:
		b.WriteString(m.renderHelp())
	}
	b.WriteString("\n")

	if m.confirmation.Active() {
		b.WriteString(m.confirmation.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *EditorModel) renderTabBar() string {
	if !m.page.TabsEnabled || len(m.page.Tabs) == 0 {
		return tabInactiveStyle.Render("— no tabs —")
	}
	activeID := page.ActiveTabID(m.page, m.activeTabID)
	parts := make([]string, 0, len(m.page.Tabs))
	for _, tab := range m.page.Tabs {
		label := tab.Label
		if tab.ID == activeID {
			parts = append(parts, tabActiveStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *EditorModel) renderCanvas() string {
	tree := m.activeTree()
	if len(tree) == 0 {
		return emptyColumnStyle.Render("Empty page. Press 'a' to add a section.")
	}

	sections := make([]string, 0, len(tree))
	for si, section := range tree {
		columns := make([]string, 0, len(section.Columns))
		colWidth := m.columnWidth(len(section.Columns))
		for ci, column := range section.Columns {
			columns = append(columns, m.renderColumn(column, colWidth, si == m.cursor.sectionIdx && ci == m.cursor.columnIdx))
		}
		body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
		style := sectionStyle
		if si == m.cursor.sectionIdx {
			style = sectionFocusedStyle
		}
		sections = append(sections, style.Width(m.width-4).Render(body))
	}
	return strings.Join(sections, "\n")
}

func (m *EditorModel) columnWidth(count int) int {
	if count < 1 {
		count = 1
	}
	w := (m.width - 8) / count
	if w < 12 {
		w = 12
	}
	return w
}

func (m *EditorModel) renderColumn(column models.Column, width int, focused bool) string {
	var b strings.Builder
	settings := column.EffectiveSettings()
	if settings.Background != "none" {
		b.WriteString(columnHeaderStyle.Render("bg: " + settings.Background))
		b.WriteString("\n")
	}

	if len(column.Elements) == 0 {
		line := "  (empty)"
		if focused && m.cursor.elementIdx == -1 {
			line = elementFocusedStyle.Render("> (empty)")
		}
		b.WriteString(emptyColumnStyle.Render(line))
	}

	for ei, el := range column.Elements {
		line := elementLine(el, width-4)
		switch {
		case el.ID == m.movingID:
			line = elementMovingStyle.Render("~ " + line)
		case focused && ei == m.cursor.elementIdx:
			line = elementFocusedStyle.Render("> " + line)
		default:
			line = elementStyle.Render("  " + line)
		}
		b.WriteString(line)
		if ei < len(column.Elements)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// elementLine is the one-line canvas summary of an element: its kind plus a
// preview of its primary text, if it has one.
func elementLine(el models.Element, width int) string {
	kind := string(el.Data.Kind())
	preview := ""
	if field := primaryTextField(el.Data.Kind()); field != "" {
		preview = payloadField(el.Data, field)
	}
	line := kind
	if preview != "" {
		line = fmt.Sprintf("%s: %s", kind, preview)
	}
	if width > 4 {
		wrapped := wordwrap.String(line, width)
		if idx := strings.IndexByte(wrapped, '\n'); idx >= 0 {
			line = wrapped[:idx] + "…"
		}
	}
	return line
}

func (m *EditorModel) renderPalette() string {
	var b strings.Builder
	b.WriteString(m.paletteInput.View())
	b.WriteString("\n\n")

	groups := m.palette.VisibleGroups()
	if len(groups) == 0 {
		b.WriteString(paletteDisabledStyle.Render("No blocks match"))
	}
	for gi, group := range groups {
		marker := "▾"
		if group.Collapsed {
			marker = "▸"
		}
		b.WriteString(paletteCategoryStyle.Render(marker + " " + group.Category))
		b.WriteString("\n")
		for _, cmd := range group.Commands {
			line := fmt.Sprintf("%-16s %s", cmd.Label, cmd.Description)
			switch {
			case cmd.Disabled:
				line = paletteDisabledStyle.Render("  " + line)
			case m.palette.IsSelected(cmd):
				line = paletteSelectedStyle.Render("> " + line)
			default:
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if gi < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter insert • ctrl+o fold category • esc close"))
	return paletteBoxStyle.Width(m.width - 4).Render(b.String())
}

func (m *EditorModel) renderHelp() string {
	switch m.mode {
	case modeMove:
		return helpStyle.Render("move: ↑/↓/←/→ pick destination • enter drop • esc cancel")
	case modeLayout:
		return helpStyle.Render("new section: 1/2/3 columns • esc cancel")
	}
	return helpStyle.Render("/ insert • e edit • m move • x/X delete • a section • t/R/W/T tabs • [ ] switch • ctrl+s save • q back")
}

func (m *EditorModel) renderStatusBar() string {
	left := m.statusMsg
	if left == "" {
		if m.dirty {
			left = "● unsaved changes"
		} else {
			left = "saved"
		}
	}
	right := fmt.Sprintf("%d blocks", models.CountElements(m.activeTree()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
