package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single page in the list
type ListItem struct {
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	Tabs       int    `json:"tabs" yaml:"tabs"`
	Sections   int    `json:"sections" yaml:"sections"`
	Blocks     int    `json:"blocks" yaml:"blocks"`
	IsArchived bool   `json:"is_archived,omitempty" yaml:"is_archived,omitempty"`
}

var listShowArchived bool

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages in the current project",
		Long: `List all pages in the current project.

Examples:
  # List pages
  pagecraft list

  # List pages with JSON output
  pagecraft list -o json

  # Show only archived pages
  pagecraft list --archived`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runList,
	}

	cmd.Flags().BoolVarP(&listShowArchived, "archived", "a", false, "Show only archived pages")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	var names []string
	var err error
	if listShowArchived {
		names, err = files.ListArchivedPages()
	} else {
		names, err = files.ListPages()
	}
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	result := ListResult{Items: []ListItem{}}
	for _, name := range names {
		var p *models.Page
		if listShowArchived {
			p, err = files.ReadArchivedPage(name)
		} else {
			p, err = files.ReadPage(name)
		}
		if err != nil {
			cli.PrintWarning("Failed to load page %s: %v", name, err)
			continue
		}

		item := ListItem{
			Name:       name,
			Title:      p.Title,
			IsArchived: listShowArchived,
		}
		if p.TabsEnabled {
			item.Tabs = len(p.Tabs)
			for _, tab := range p.Tabs {
				item.Sections += len(tab.Sections)
				item.Blocks += models.CountElements(tab.Sections)
			}
		} else {
			item.Sections = len(p.Sections)
			item.Blocks = models.CountElements(p.Sections)
		}
		result.Items = append(result.Items, item)
	}
	result.Count = len(result.Items)

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No pages found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Name", "Title", "Tabs", "Sections", "Blocks")
	for _, item := range result.Items {
		tabs := "-"
		if item.Tabs > 0 {
			tabs = fmt.Sprintf("%d", item.Tabs)
		}
		table.Row(item.Name, cli.TruncateString(item.Title, 40), tabs,
			fmt.Sprintf("%d", item.Sections), fmt.Sprintf("%d", item.Blocks))
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d pages\n", result.Count)
	return nil
}
