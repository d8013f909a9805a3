package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <page>",
		Short: "Show the structure of a page",
		Long: `Show the tab, section, column and block structure of a page.

Examples:
  # Show a page's structure
  pagecraft show my-page

  # Dump the full page document as JSON
  pagecraft show my-page -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runShow,
	}
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, err := files.ReadPage(name)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, p)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", p.Title, name)

	if p.TabsEnabled {
		for _, tab := range p.Tabs {
			fmt.Fprintf(out, "\nTab: %s (%s)\n", tab.Label, tab.Slug)
			showTree(cmd, tab.Sections)
		}
		return nil
	}
	fmt.Fprintln(out)
	showTree(cmd, p.Sections)
	return nil
}

func showTree(cmd *cobra.Command, sections []models.Section) {
	out := cmd.OutOrStdout()
	for si, section := range sections {
		fmt.Fprintf(out, "  Section %d (%s)\n", si+1, section.Layout)
		for ci, column := range section.Columns {
			fmt.Fprintf(out, "    Column %d\n", ci+1)
			if len(column.Elements) == 0 {
				fmt.Fprintln(out, "      (empty)")
				continue
			}
			for _, el := range column.Elements {
				fmt.Fprintf(out, "      %s  %s\n", el.Data.Kind(), el.ID)
			}
		}
	}
}
