package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
)

// PageListModel is the landing view: pick a page to edit, create a new one,
// or archive/delete an existing one.
type PageListModel struct {
	pages     []string
	cursor    int
	statusMsg string
	width     int
	height    int

	creating  bool
	nameInput textinput.Model

	confirmation *ConfirmationModel
}

func NewPageListModel() *PageListModel {
	input := textinput.New()
	input.Placeholder = "page title"
	input.CharLimit = 80

	m := &PageListModel{
		nameInput:    input,
		confirmation: NewConfirmation(),
	}
	m.loadPages()
	return m
}

func (m *PageListModel) Init() tea.Cmd {
	return nil
}

func (m *PageListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *PageListModel) loadPages() {
	pages, err := files.ListPages()
	if err != nil {
		m.statusMsg = fmt.Sprintf("Failed to list pages: %v", err)
		return
	}
	m.pages = pages
	if m.cursor >= len(m.pages) {
		m.cursor = 0
	}
}

func (m *PageListModel) selected() (string, bool) {
	if len(m.pages) == 0 || m.cursor >= len(m.pages) {
		return "", false
	}
	return m.pages[m.cursor], true
}

func (m *PageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmation.Active() {
		return m, m.confirmation.Update(keyMsg)
	}

	if m.creating {
		return m.updateCreating(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.pages)-1 {
			m.cursor++
		}

	case "enter":
		if name, ok := m.selected(); ok {
			return m, switchToEditor(name)
		}

	case "n":
		m.creating = true
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()

	case "a":
		name, ok := m.selected()
		if !ok {
			break
		}
		m.confirmation.Show(ConfirmationConfig{
			Message: fmt.Sprintf("Archive page '%s'?", name),
		}, func() tea.Cmd {
			if err := files.ArchivePage(name); err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Archived '%s'", name)
			}
			m.loadPages()
			return nil
		}, nil)

	case "d":
		name, ok := m.selected()
		if !ok {
			break
		}
		m.confirmation.Show(ConfirmationConfig{
			Message:     fmt.Sprintf("Delete page '%s'? This cannot be undone.", name),
			Destructive: true,
		}, func() tea.Cmd {
			if err := files.DeletePage(name); err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Deleted '%s'", name)
			}
			m.loadPages()
			return nil
		}, nil)
	}

	return m, nil
}

func (m *PageListModel) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		return m, nil

	case "enter":
		title := m.nameInput.Value()
		name := files.SanitizePageName(title)
		if name == "" {
			m.statusMsg = "Page title must contain a letter or digit"
			return m, nil
		}
		p := &models.Page{
			Name:     name,
			Title:    title,
			Sections: []models.Section{page.NewSection(models.LayoutSingle)},
		}
		if err := files.WritePage(p); err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		m.creating = false
		m.loadPages()
		return m, switchToEditor(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

var (
	listTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	listSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	listDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func (m *PageListModel) View() string {
	header := renderHeader(m.width, "Pages")

	var body string
	switch {
	case m.creating:
		body = "  New page title:\n\n  " + m.nameInput.View() +
			"\n\n" + listDimStyle.Render("  enter: create   esc: cancel")

	case len(m.pages) == 0:
		body = listDimStyle.Render("  No pages yet. Press 'n' to create one.")

	default:
		lines := make([]string, 0, len(m.pages))
		for i, name := range m.pages {
			prefix := "  "
			line := name
			if i == m.cursor {
				prefix = "> "
				line = listSelectedStyle.Render(name)
			}
			lines = append(lines, prefix+line)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	footer := listDimStyle.Render("  enter: edit   n: new   a: archive   d: delete   q: quit")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	if m.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusBarStyle.Render(m.statusMsg))
	}
	if m.confirmation.Active() {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.confirmation.View())
	}
	return content
}
