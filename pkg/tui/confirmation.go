package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Message     string // Main confirmation message
	Warning     string // Optional warning text (shown in orange)
	Destructive bool   // If true, Yes is rendered in red
}

// ConfirmationModel handles inline yes/no confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

var (
	confirmMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Bold(true)

	confirmWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	confirmYesDestructive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)

	confirmKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)
)

// View renders the confirmation prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	line := confirmMessageStyle.Render(m.config.Message)
	if m.config.Warning != "" {
		line += "  " + confirmWarningStyle.Render(m.config.Warning)
	}

	yes := confirmKeyStyle.Render("y")
	if m.config.Destructive {
		yes = confirmYesDestructive.Render("y")
	}
	return line + "  " + yes + "/" + confirmKeyStyle.Render("n")
}
