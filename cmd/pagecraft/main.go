package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/cmd/commands"
	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
	"github.com/pagecraft/pagecraft-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "pagecraft",
	Short: "Terminal-based page builder",
	Long:  `Pagecraft is a terminal-based page builder. Pages are stored as plain JSON files and edited in a TUI canvas of sections, columns and content blocks.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(files.PagecraftDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.PagecraftDir)
			fmt.Fprintf(os.Stderr, "Please run 'pagecraft init' first to initialize a new project.\n")
			os.Exit(1)
		}

		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Pagecraft project",
	Long:  `Creates the .pagecraft folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Pagecraft project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .pagecraft folder structure")
		fmt.Println("✓ You can now create pages!")
		fmt.Println("\nRun 'pagecraft' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Pagecraft",
	Long:  `Display the current version of the Pagecraft CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Pagecraft version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewArchiveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("Command execution failed: %v", err)
		os.Exit(1)
	}
}
