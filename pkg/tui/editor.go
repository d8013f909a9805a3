package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pagecraft/pagecraft-cli/internal/telemetry"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
	"github.com/pagecraft/pagecraft-cli/pkg/palette"
)

type editorMode int

const (
	modeNormal   editorMode = iota
	modeMove                // an element is picked up, cursor chooses the drop target
	modePalette             // insertion palette is open
	modeEditText            // editing the focused element's primary text field
	modeTabInput            // typing a label for a new or renamed tab
	modeLayout              // choosing the layout of a new section
)

// canvasCursor addresses the focused element by position in the active tree.
// elementIdx is -1 when the focused column is empty.
type canvasCursor struct {
	sectionIdx int
	columnIdx  int
	elementIdx int
}

// EditorModel is the canvas editor for a single page. All structural
// mutations go through applyTree, which routes them via the view redirector
// so the editor never needs to know whether the page is partitioned.
type EditorModel struct {
	page        models.Page
	activeTabID string
	dirty       bool
	gen         int // bumped on every mutation; guards autosave races
	settings    *models.Settings
	logger      *telemetry.Logger

	mode     editorMode
	cursor   canvasCursor
	movingID string // element in flight during move mode

	palette      *palette.State
	paletteInput textinput.Model

	textInput   textinput.Model
	renameTabID string // tab being renamed in modeTabInput, "" means adding

	confirmation *ConfirmationModel
	canvas       viewport.Model
	statusMsg    string
	width        int
	height       int
}

func NewEditorModel(logger *telemetry.Logger) *EditorModel {
	paletteInput := textinput.New()
	paletteInput.Placeholder = "search blocks"
	paletteInput.Prompt = "/ "

	textInput := textinput.New()
	textInput.CharLimit = 400

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	return &EditorModel{
		settings:     settings,
		logger:       logger,
		palette:      palette.New(),
		paletteInput: paletteInput,
		textInput:    textInput,
		confirmation: NewConfirmation(),
		canvas:       viewport.New(0, 0),
	}
}

// LoadPage reads a page from disk and resets the editor onto it.
func (m *EditorModel) LoadPage(name string) error {
	p, err := files.ReadPage(name)
	if err != nil {
		return err
	}
	m.page = *p
	m.activeTabID = page.ActiveTabID(m.page, m.activeTabID)
	m.mode = modeNormal
	m.cursor = canvasCursor{}
	m.dirty = false
	m.statusMsg = ""
	m.clampCursor()
	return nil
}

func (m *EditorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleAutosave())
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.canvas.Width = width
	m.canvas.Height = height - canvasChromeHeight
	if m.canvas.Height < 1 {
		m.canvas.Height = 1
	}
}

// activeTree is the tree mutations currently target, via the redirector.
func (m *EditorModel) activeTree() []models.Section {
	return page.ActiveTree(m.page, m.activeTabID)
}

// applyTree funnels a structural mutation through the view redirector and
// marks the page dirty for the next autosave tick.
func (m *EditorModel) applyTree(fn func([]models.Section) []models.Section) {
	m.page = page.UpdateActiveTree(m.page, m.activeTabID, fn)
	m.markDirty()
}

// setPage replaces the whole page after a page-level operation (tab changes,
// partition toggles).
func (m *EditorModel) setPage(p models.Page) {
	m.page = p
	m.activeTabID = page.ActiveTabID(m.page, m.activeTabID)
	m.markDirty()
}

func (m *EditorModel) markDirty() {
	m.dirty = true
	m.gen++
	m.clampCursor()
}

// clampCursor keeps the cursor on a real section/column/element after any
// tree change.
func (m *EditorModel) clampCursor() {
	tree := m.activeTree()
	if len(tree) == 0 {
		m.cursor = canvasCursor{elementIdx: -1}
		return
	}
	if m.cursor.sectionIdx >= len(tree) {
		m.cursor.sectionIdx = len(tree) - 1
	}
	if m.cursor.sectionIdx < 0 {
		m.cursor.sectionIdx = 0
	}
	section := tree[m.cursor.sectionIdx]
	if m.cursor.columnIdx >= len(section.Columns) {
		m.cursor.columnIdx = len(section.Columns) - 1
	}
	if m.cursor.columnIdx < 0 {
		m.cursor.columnIdx = 0
	}
	column := section.Columns[m.cursor.columnIdx]
	if len(column.Elements) == 0 {
		m.cursor.elementIdx = -1
		return
	}
	if m.cursor.elementIdx >= len(column.Elements) {
		m.cursor.elementIdx = len(column.Elements) - 1
	}
	if m.cursor.elementIdx < 0 {
		m.cursor.elementIdx = 0
	}
}

func (m *EditorModel) focusedSection() (models.Section, bool) {
	tree := m.activeTree()
	if m.cursor.sectionIdx >= len(tree) {
		return models.Section{}, false
	}
	return tree[m.cursor.sectionIdx], true
}

func (m *EditorModel) focusedColumn() (models.Section, models.Column, bool) {
	section, ok := m.focusedSection()
	if !ok || m.cursor.columnIdx >= len(section.Columns) {
		return models.Section{}, models.Column{}, false
	}
	return section, section.Columns[m.cursor.columnIdx], true
}

func (m *EditorModel) focusedElement() (models.Element, bool) {
	_, column, ok := m.focusedColumn()
	if !ok || m.cursor.elementIdx < 0 || m.cursor.elementIdx >= len(column.Elements) {
		return models.Element{}, false
	}
	return column.Elements[m.cursor.elementIdx], true
}

// moveCursorTo points the cursor at an element wherever it now lives in the
// active tree.
func (m *EditorModel) moveCursorTo(elementID string) {
	tree := m.activeTree()
	for si, section := range tree {
		for ci, column := range section.Columns {
			for ei, el := range column.Elements {
				if el.ID == elementID {
					m.cursor = canvasCursor{sectionIdx: si, columnIdx: ci, elementIdx: ei}
					return
				}
			}
		}
	}
}
