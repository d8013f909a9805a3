package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/models"
	"github.com/pagecraft/pagecraft-cli/pkg/renderer"
)

var (
	exportToFile    string
	exportClipboard bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <page>",
		Short: "Render a page to Markdown",
		Long: `Render a page to Markdown and write it to stdout, a file or the
clipboard.

By default the rendered content is written to stdout. Relative --file paths
are resolved against the export path from settings.yaml.

Examples:
  # Export a page to stdout
  pagecraft export my-page

  # Export to a file
  pagecraft export my-page --file out.md

  # Copy the rendered page to the clipboard
  pagecraft export my-page --copy

  # Dump the raw page document instead
  pagecraft export my-page -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Write to file instead of stdout")
	cmd.Flags().BoolVarP(&exportClipboard, "copy", "c", false, "Copy the rendered page to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, err := files.ReadPage(name)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, p)
	}

	output := renderer.RenderPage(p, settings)

	if exportClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied rendered page to clipboard")
		return nil
	}

	if exportToFile != "" {
		path := exportToFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(settings.Output.ExportPath, path)
		}
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		cli.PrintSuccess("Exported page to %s", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
