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

// NewExamplesCommand creates the examples command
func NewExamplesCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Add an example page to your project",
		Long: `Add an example page demonstrating the available block types.

The page is written as 'example-tour' so it does not collide with your own
pages. It shows sections with one, two and three columns, tab partitioning,
and one block of most kinds.

Examples:
  # Add the example page
  pagecraft examples

  # Overwrite a previously added example page
  pagecraft examples --force`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "example-tour"
			if _, err := os.Stat(files.PagePath(name)); err == nil && !force {
				return fmt.Errorf("page %q already exists (use --force to overwrite)", name)
			}
			p := examplePage(name)
			if err := files.WritePage(p); err != nil {
				return fmt.Errorf("failed to write example page: %w", err)
			}
			cli.PrintSuccess("Added example page %s", name)
			cli.PrintInfo("Run 'pagecraft' and open it to explore")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing example page")

	return cmd
}

func el(data models.ElementData) models.Element {
	return models.Element{ID: page.NewElementID(), Data: data}
}

func examplePage(name string) *models.Page {
	intro := page.NewSection(models.LayoutSingle)
	intro.Columns[0].Elements = []models.Element{
		el(&models.HeadingData{Text: "Welcome to Pagecraft", Level: 1}),
		el(&models.TextData{Text: "This page shows one block of most kinds. Open it in the editor and press '/' to add more."}),
		el(&models.CalloutData{Text: "Blocks live in columns; columns live in sections.", Emoji: "💡", Tone: "info"}),
	}

	metrics := page.NewSection(models.LayoutTriple)
	metrics.Columns[0].Elements = []models.Element{
		el(&models.KPIData{Label: "Visitors", Value: "12.4k", Trend: "up", Theme: "green"}),
	}
	metrics.Columns[1].Elements = []models.Element{
		el(&models.KPIData{Label: "Bounce rate", Value: "38%", Trend: "down", Theme: "blue"}),
	}
	metrics.Columns[2].Elements = []models.Element{
		el(&models.TrackerData{Label: "Launch progress", Current: 64, Target: 100, Unit: "%"}),
	}

	content := page.NewSection(models.LayoutDouble)
	content.Columns[0].Elements = []models.Element{
		el(&models.ListData{Style: "checklist", Items: []string{"Write copy", "Pick images", "Publish"}}),
		el(&models.QuoteData{Text: "Simplicity is the ultimate sophistication.", Attribution: "Leonardo da Vinci"}),
		el(&models.CodeData{Code: "pagecraft export example-tour", Language: "shell"}),
	}
	content.Columns[1].Elements = []models.Element{
		el(&models.ImageData{URL: "https://example.com/banner.png", Alt: "Banner", Width: "full"}),
		el(&models.ButtonData{Label: "Get started", URL: "https://example.com", Style: "primary", Align: "left"}),
		el(&models.TableData{Headers: []string{"Plan", "Price"}, Rows: [][]string{{"Free", "$0"}, {"Pro", "$9"}}}),
	}

	feedback := page.NewSection(models.LayoutDouble)
	feedback.Columns[0].Elements = []models.Element{
		el(&models.PollData{Question: "Which block do you like most?", Options: []string{"KPIs", "Tables", "Charts"}}),
		el(&models.RatingData{Question: "How useful is this tour?", Max: 5, Icon: "star"}),
	}
	feedback.Columns[1].Elements = []models.Element{
		el(&models.ShortAnswerData{Question: "What should we add next?", Placeholder: "Type your answer..."}),
		el(&models.ChartData{Style: "bar", Series: []models.ChartSeries{{Name: "Signups", Values: []float64{3, 7, 12, 18}}}}),
	}

	p := models.Page{
		Name:     name,
		Title:    "Pagecraft Tour",
		Sections: []models.Section{intro, metrics, content},
	}
	out, _ := page.SetPartitioned(p, true)
	out = page.RenameTab(out, out.Tabs[0].ID, "Overview")
	out, feedbackTabID := page.AddTab(out, "Feedback")
	out = page.UpdateActiveTree(out, feedbackTabID, func([]models.Section) []models.Section {
		return []models.Section{feedback}
	})
	return &out
}
