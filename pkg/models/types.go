package models

import (
	"regexp"
	"strings"
)

// Layout fixes how many side-by-side columns a section has. It is chosen at
// section creation time and never changes afterwards.
type Layout string

const (
	LayoutSingle Layout = "single"
	LayoutDouble Layout = "double"
	LayoutTriple Layout = "triple"
)

// ColumnsForLayout returns the column count a layout dictates. Unknown layouts
// fall back to a single column so malformed documents stay loadable.
func ColumnsForLayout(layout Layout) int {
	switch layout {
	case LayoutDouble:
		return 2
	case LayoutTriple:
		return 3
	default:
		return 1
	}
}

// ColumnSettings are the optional visual-style settings of a column.
type ColumnSettings struct {
	Background string `json:"background"` // "none", "color" or "image"
	Color      string `json:"color"`
	Border     bool   `json:"border"`
	Radius     int    `json:"radius"`
	Padding    int    `json:"padding"`
}

// DefaultColumnSettings returns the settings a column has when none were
// stored with it.
func DefaultColumnSettings() ColumnSettings {
	return ColumnSettings{
		Background: "none",
		Padding:    16,
	}
}

// Column is an ordered container of elements. Order is significant: it is
// both rendering order and tab order.
type Column struct {
	ID       string          `json:"id"`
	Elements []Element       `json:"elements"`
	Settings *ColumnSettings `json:"settings,omitempty"`
}

// EffectiveSettings resolves the column's settings, substituting the defaults
// when none are set.
func (c Column) EffectiveSettings() ColumnSettings {
	if c.Settings == nil {
		return DefaultColumnSettings()
	}
	return *c.Settings
}

// Section is a horizontal layout band holding exactly ColumnsForLayout(Layout)
// columns.
type Section struct {
	ID      string   `json:"id"`
	Layout  Layout   `json:"layout"`
	Columns []Column `json:"columns"`
}

// Tab is a named partition owning an independent section tree.
type Tab struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Slug     string    `json:"slug"`
	Sections []Section `json:"sections"`
}

// Page is the persisted document: a flat section tree plus the optional tab
// partition. When TabsEnabled is set, Sections mirrors the first tab's tree on
// every save so readers unaware of tabs still see a coherent document.
type Page struct {
	Name        string    `json:"-"` // storage name, derived from the file
	Title       string    `json:"title"`
	Background  string    `json:"background"`
	HeaderCard  string    `json:"header_card"`
	Sections    []Section `json:"sections"`
	TabsEnabled bool      `json:"tabs_enabled"`
	Tabs        []Tab     `json:"tabs,omitempty"`
}

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a tab label: lowercased, runs of
// non-alphanumerics collapsed to a single hyphen, leading and trailing
// hyphens stripped. An all-punctuation label yields an empty slug.
func Slugify(label string) string {
	slug := slugRuns.ReplaceAllString(strings.ToLower(label), "-")
	return strings.Trim(slug, "-")
}

// CountElements returns the total element count across a section tree.
func CountElements(sections []Section) int {
	total := 0
	for _, section := range sections {
		for _, column := range section.Columns {
			total += len(column.Elements)
		}
	}
	return total
}
