package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/page"
)

var (
	createTitle  string
	createLayout string
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new page",
		Long: `Create a new empty page with one section.

Examples:
  # Create a page
  pagecraft create my-page

  # Create a page with a display title
  pagecraft create my-page --title "My Page"

  # Create a page whose first section has two columns
  pagecraft create my-page --layout double`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createTitle, "title", "t", "", "Display title (defaults to the name)")
	cmd.Flags().StringVarP(&createLayout, "layout", "l", "single", "Layout of the first section: single, double or triple")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := files.SanitizePageName(args[0])
	if name == "" {
		return fmt.Errorf("page name must contain a letter or digit")
	}

	layout := models.Layout(createLayout)
	switch layout {
	case models.LayoutSingle, models.LayoutDouble, models.LayoutTriple:
	default:
		return fmt.Errorf("invalid layout %q (must be: single, double or triple)", createLayout)
	}

	if _, err := os.Stat(files.PagePath(name)); err == nil {
		return fmt.Errorf("page %q already exists", name)
	}

	title := createTitle
	if title == "" {
		title = args[0]
	}

	p := &models.Page{
		Name:     name,
		Title:    title,
		Sections: []models.Section{page.NewSection(layout)},
	}
	if err := files.WritePage(p); err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	cli.PrintSuccess("Created page %s", name)
	return nil
}
