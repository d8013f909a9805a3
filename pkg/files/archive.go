package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// ArchivePage moves a page out of the active set without deleting it.
func ArchivePage(name string) error {
	src := PagePath(name)
	dst := archivePath(name)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to archive page %s: %w", name, err)
	}
	return nil
}

// UnarchivePage restores an archived page into the active set.
func UnarchivePage(name string) error {
	src := archivePath(name)
	dst := PagePath(name)

	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("an active page named %s already exists", name)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create pages directory: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to unarchive page %s: %w", name, err)
	}
	return nil
}

// ListArchivedPages returns the storage names of archived pages.
func ListArchivedPages() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(PagecraftDir, ArchiveDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list archived pages: %w", err)
	}

	var pages []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			pages = append(pages, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	return pages, nil
}

// ReadArchivedPage loads an archived page with the same repair pass ReadPage
// applies.
func ReadArchivedPage(name string) (*models.Page, error) {
	return readPageFile(name, archivePath(name))
}

// DeleteArchivedPage removes an archived page permanently.
func DeleteArchivedPage(name string) error {
	if err := os.Remove(archivePath(name)); err != nil {
		return fmt.Errorf("failed to delete archived page %s: %w", name, err)
	}
	return nil
}

func archivePath(name string) string {
	return filepath.Join(PagecraftDir, ArchiveDir, name+".json")
}
