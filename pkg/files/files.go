// Package files is the persistence collaborator: pages as JSON documents and
// settings as YAML under a .pagecraft project directory. Loading is
// deliberately forgiving — malformed or missing fields are replaced by their
// defaults rather than failing the load, because the in-memory page is the
// source of truth during an editing session and a page that refuses to open
// is worse than one with a repaired corner.
package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
)

const (
	PagecraftDir = ".pagecraft"
	PagesDir     = "pages"
	ArchiveDir   = "archive"
	LogFile      = "pagecraft.log"
)

// InitProjectStructure creates the .pagecraft folder layout in the current
// directory.
func InitProjectStructure() error {
	dirs := []string{
		PagecraftDir,
		filepath.Join(PagecraftDir, PagesDir),
		filepath.Join(PagecraftDir, ArchiveDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// pageFile mirrors the stored JSON but keeps elements raw so a single
// unreadable element can be dropped without losing the document.
type pageFile struct {
	Title       string        `json:"title"`
	Background  string        `json:"background"`
	HeaderCard  string        `json:"header_card"`
	Sections    []sectionFile `json:"sections"`
	TabsEnabled bool          `json:"tabs_enabled"`
	Tabs        []tabFile     `json:"tabs"`
}

type sectionFile struct {
	ID      string        `json:"id"`
	Layout  models.Layout `json:"layout"`
	Columns []columnFile  `json:"columns"`
}

type columnFile struct {
	ID       string                 `json:"id"`
	Elements []json.RawMessage      `json:"elements"`
	Settings *models.ColumnSettings `json:"settings"`
}

type tabFile struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Slug     string        `json:"slug"`
	Sections []sectionFile `json:"sections"`
}

// ReadPage loads a page by storage name, substituting per-field defaults for
// anything missing or malformed: an empty document gets one default section,
// elements of unknown kind are dropped, layouts are reconciled with their
// actual column count, and tab slugs are re-derived when absent.
func ReadPage(name string) (*models.Page, error) {
	return readPageFile(name, PagePath(name))
}

func readPageFile(name, absPath string) (*models.Page, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", name, err)
	}

	var raw pageFile
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse page JSON %s: %w", name, err)
	}

	p := repairPage(raw)
	p.Name = name
	return p, nil
}

func repairPage(raw pageFile) *models.Page {
	p := &models.Page{
		Title:       raw.Title,
		Background:  raw.Background,
		HeaderCard:  raw.HeaderCard,
		Sections:    repairTree(raw.Sections),
		TabsEnabled: raw.TabsEnabled && len(raw.Tabs) > 0,
	}

	if p.TabsEnabled {
		p.Tabs = make([]models.Tab, len(raw.Tabs))
		for i, tab := range raw.Tabs {
			slug := tab.Slug
			if slug == "" {
				slug = models.Slugify(tab.Label)
			}
			id := tab.ID
			if id == "" {
				id = page.NewTabID()
			}
			p.Tabs[i] = models.Tab{
				ID:       id,
				Label:    tab.Label,
				Slug:     slug,
				Sections: repairTree(tab.Sections),
			}
		}
	}

	return p
}

// repairTree rebuilds a section tree from its raw form, defaulting whatever
// does not hold the structural invariants.
func repairTree(sections []sectionFile) []models.Section {
	if len(sections) == 0 {
		return []models.Section{page.NewSection(models.LayoutSingle)}
	}

	out := make([]models.Section, 0, len(sections))
	for _, raw := range sections {
		section := models.Section{ID: raw.ID, Layout: raw.Layout}
		if section.ID == "" {
			section.ID = page.NewSectionID()
		}

		for _, col := range raw.Columns {
			column := models.Column{ID: col.ID, Settings: col.Settings}
			if column.ID == "" {
				column.ID = page.NewColumnID()
			}
			for _, rawEl := range col.Elements {
				var el models.Element
				if err := json.Unmarshal(rawEl, &el); err != nil {
					continue // unknown kind or garbage entry
				}
				column.Elements = append(column.Elements, el)
			}
			section.Columns = append(section.Columns, column)
		}

		section.Layout = layoutForColumnCount(len(section.Columns), section.Layout)
		for len(section.Columns) < models.ColumnsForLayout(section.Layout) {
			section.Columns = append(section.Columns, models.Column{ID: page.NewColumnID()})
		}
		out = append(out, section)
	}
	return out
}

// layoutForColumnCount reconciles a stored layout with the columns actually
// present. The column count wins when the two disagree.
func layoutForColumnCount(count int, stored models.Layout) models.Layout {
	switch {
	case count == 0:
		switch stored {
		case models.LayoutSingle, models.LayoutDouble, models.LayoutTriple:
			return stored
		}
		return models.LayoutSingle
	case count == 1:
		return models.LayoutSingle
	case count == 2:
		return models.LayoutDouble
	default:
		return models.LayoutTriple
	}
}

// WritePage persists a page, applying the tab mirror contract first: when
// partitioning is enabled the stored top-level sections equal the first tab's
// tree so tab-unaware readers still see a coherent document.
func WritePage(p *models.Page) error {
	if p.Name == "" {
		p.Name = SanitizePageName(p.Title)
	}
	if p.Name == "" {
		return fmt.Errorf("page has no usable name")
	}

	normalized := page.Normalize(*p)

	content, err := json.MarshalIndent(&normalized, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page %s: %w", p.Name, err)
	}

	absPath := PagePath(p.Name)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create pages directory: %w", err)
	}
	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", p.Name, err)
	}

	return nil
}

// ListPages returns the storage names of all active pages.
func ListPages() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(PagecraftDir, PagesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	var pages []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			pages = append(pages, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}

	return pages, nil
}

// DeletePage removes a page file permanently.
func DeletePage(name string) error {
	if err := os.Remove(PagePath(name)); err != nil {
		return fmt.Errorf("failed to delete page %s: %w", name, err)
	}
	return nil
}

// PagePath is the storage path of an active page.
func PagePath(name string) string {
	return filepath.Join(PagecraftDir, PagesDir, name+".json")
}

var nameUnsafe = regexp.MustCompile(`[^a-z0-9-_]+`)

// SanitizePageName derives a storage name from a page title.
func SanitizePageName(title string) string {
	name := nameUnsafe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(name, "-")
}
