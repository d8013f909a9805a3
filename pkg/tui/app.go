package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pagecraft/pagecraft-cli/internal/telemetry"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
)

type sessionState int

const (
	pageListView sessionState = iota
	editorView
)

type App struct {
	state    sessionState
	pageList *PageListModel
	editor   *EditorModel
	logger   *telemetry.Logger
	width    int
	height   int
}

func NewApp() *App {
	logger, err := telemetry.New(filepath.Join(files.PagecraftDir, files.LogFile))
	if err != nil {
		// A page that cannot log is still editable.
		logger, _ = telemetry.New("")
	}
	return &App{
		state:    pageListView,
		pageList: NewPageListModel(),
		logger:   logger,
	}
}

func (a *App) Init() tea.Cmd {
	return a.pageList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.pageList != nil {
			a.pageList.SetSize(msg.Width, msg.Height)
		}
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case SwitchViewMsg:
		switch msg.view {
		case pageListView:
			a.state = pageListView
			a.pageList.loadPages()
			return a, a.pageList.Init()
		case editorView:
			a.state = editorView
			if a.editor == nil {
				a.editor = NewEditorModel(a.logger)
			}
			a.editor.SetSize(a.width, a.height)
			if err := a.editor.LoadPage(msg.page); err != nil {
				a.state = pageListView
				a.pageList.statusMsg = err.Error()
				return a, nil
			}
			return a, a.editor.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case pageListView:
		var m tea.Model
		m, cmd = a.pageList.Update(msg)
		if pl, ok := m.(*PageListModel); ok {
			a.pageList = pl
		}
	case editorView:
		var m tea.Model
		m, cmd = a.editor.Update(msg)
		if ed, ok := m.(*EditorModel); ok {
			a.editor = ed
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	switch a.state {
	case pageListView:
		return a.pageList.View()
	case editorView:
		return a.editor.View()
	}
	return "Unknown view"
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view sessionState
	page string // storage name of the page to edit
}

func switchToEditor(name string) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: editorView, page: name}
	}
}

func switchToList() tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: pageListView}
	}
}

var statusBarStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230")).
	Padding(0, 1)
