package palette

import (
	"strings"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
)

// Target names the column a confirmed command inserts into, captured when the
// palette opens. AnchorRow is the optional row the gesture originated at,
// used only for placing the overlay.
type Target struct {
	SectionID string
	ColumnID  string
	AnchorRow int
}

// Selection is the outcome of a confirmed command: a default-initialized
// element plus the target captured at open time.
type Selection struct {
	Target  Target
	Element models.Element
}

// Group is one category's slice of the registry as currently visible.
type Group struct {
	Category  string
	Collapsed bool
	Commands  []Command
}

// State is the palette state machine: closed -> open -> (confirm | dismiss).
type State struct {
	open      bool
	target    Target
	query     string
	selection int // index into the navigable flattened command list
	collapsed map[string]bool
	commands  []Command
}

// New returns a closed palette over the standard command registry.
func New() *State {
	return &State{
		collapsed: make(map[string]bool),
		commands:  Commands(),
	}
}

// Open activates the palette for the given target with an empty query and the
// selection on the first navigable command. Collapse state survives reopens.
func (s *State) Open(target Target) {
	s.open = true
	s.target = target
	s.query = ""
	s.selection = 0
}

// Close dismisses the palette without inserting anything.
func (s *State) Close() {
	s.open = false
}

// IsOpen reports whether the palette is showing.
func (s *State) IsOpen() bool {
	return s.open
}

// Target returns the insertion target captured at open time.
func (s *State) Target() Target {
	return s.target
}

// Query returns the current search text.
func (s *State) Query() string {
	return s.query
}

// SetQuery replaces the search text and resets the selection to the first
// match. Matching is a case-insensitive substring test against each command's
// label, description and category.
func (s *State) SetQuery(query string) {
	s.query = query
	s.selection = 0
}

func (s *State) matches(cmd Command) bool {
	if s.query == "" {
		return true
	}
	q := strings.ToLower(s.query)
	return strings.Contains(strings.ToLower(cmd.Label), q) ||
		strings.Contains(strings.ToLower(cmd.Description), q) ||
		strings.Contains(strings.ToLower(cmd.Category), q)
}

// collapsedNow reports whether a category is collapsed for display purposes.
// Collapsing is suppressed while a search filter is active: every match stays
// visible during search.
func (s *State) collapsedNow(category string) bool {
	if s.query != "" {
		return false
	}
	return s.collapsed[category]
}

// ToggleCategory collapses or expands a category. Ignored while a search
// filter is active.
func (s *State) ToggleCategory(category string) {
	if s.query != "" {
		return
	}
	s.collapsed[category] = !s.collapsed[category]
	s.clampSelection()
}

// VisibleGroups returns the registry grouped by category in fixed order,
// filtered by the current query. Categories with no matching commands are
// omitted while filtering. A collapsed group is present with its commands
// hidden so the header can still render.
func (s *State) VisibleGroups() []Group {
	var groups []Group
	for _, category := range Categories() {
		var cmds []Command
		for _, cmd := range s.commands {
			if cmd.Category == category && s.matches(cmd) {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			if s.query == "" {
				groups = append(groups, Group{Category: category, Collapsed: s.collapsedNow(category)})
			}
			continue
		}
		group := Group{Category: category, Collapsed: s.collapsedNow(category)}
		if !group.Collapsed {
			group.Commands = cmds
		}
		groups = append(groups, group)
	}
	return groups
}

// navigable flattens the currently visible, enabled commands: the set Up/Down
// moves over. Commands inside collapsed categories and disabled commands are
// excluded.
func (s *State) navigable() []Command {
	var cmds []Command
	for _, group := range s.VisibleGroups() {
		for _, cmd := range group.Commands {
			if !cmd.Disabled {
				cmds = append(cmds, cmd)
			}
		}
	}
	return cmds
}

// Selected returns the command the cursor is on, if any.
func (s *State) Selected() (Command, bool) {
	cmds := s.navigable()
	if len(cmds) == 0 {
		return Command{}, false
	}
	if s.selection >= len(cmds) {
		return cmds[0], true
	}
	return cmds[s.selection], true
}

// IsSelected reports whether the given command is the current cursor target.
func (s *State) IsSelected(cmd Command) bool {
	selected, ok := s.Selected()
	return ok && selected.Kind == cmd.Kind
}

// MoveSelection moves the cursor by delta with wraparound over the navigable
// command list.
func (s *State) MoveSelection(delta int) {
	cmds := s.navigable()
	if len(cmds) == 0 {
		return
	}
	s.clampSelection()
	s.selection = ((s.selection+delta)%len(cmds) + len(cmds)) % len(cmds)
}

func (s *State) clampSelection() {
	if n := len(s.navigable()); s.selection >= n {
		s.selection = 0
	}
}

// Confirm constructs a default-initialized element of the selected kind and
// closes the palette. Returns false (palette stays open) when nothing
// selectable is under the cursor.
func (s *State) Confirm() (Selection, bool) {
	cmd, ok := s.Selected()
	if !ok || cmd.Disabled {
		return Selection{}, false
	}
	s.open = false
	return Selection{
		Target: s.target,
		Element: models.Element{
			ID:   page.NewElementID(),
			Data: models.DefaultData(cmd.Kind),
		},
	}, true
}
