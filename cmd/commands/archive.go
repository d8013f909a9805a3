package commands

import (
	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
)

// NewArchiveCommand creates the archive command
func NewArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <page>",
		Short: "Move a page to the archive",
		Long: `Move a page out of the active set without deleting it. Archived
pages can be restored with 'pagecraft restore'.

Examples:
  # Archive a page
  pagecraft archive my-page`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.ArchivePage(args[0]); err != nil {
				return err
			}
			cli.PrintSuccess("Archived page %s", args[0])
			return nil
		},
	}
}

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <page>",
		Short: "Restore an archived page",
		Long: `Move an archived page back into the active set.

Examples:
  # Restore a page from the archive
  pagecraft restore my-page`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.UnarchivePage(args[0]); err != nil {
				return err
			}
			cli.PrintSuccess("Restored page %s", args[0])
			return nil
		},
	}
}
