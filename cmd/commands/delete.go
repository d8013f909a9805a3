package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft-cli/internal/cli"
	"github.com/pagecraft/pagecraft-cli/pkg/files"
)

var deleteArchived bool

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <page>",
		Short: "Delete a page permanently",
		Long: `Delete a page permanently. Prompts for confirmation unless --yes is set.

Examples:
  # Delete a page
  pagecraft delete my-page

  # Delete without a confirmation prompt
  pagecraft delete my-page --yes

  # Delete an archived page
  pagecraft delete my-page --archived`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.RequireProject()
		},
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteArchived, "archived", "a", false, "Delete from the archive instead of the active set")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	ok, err := cli.Confirm(fmt.Sprintf("Delete page '%s'? This cannot be undone.", name), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Aborted")
		return nil
	}

	if deleteArchived {
		err = files.DeleteArchivedPage(name)
	} else {
		err = files.DeletePage(name)
	}
	if err != nil {
		return err
	}

	cli.PrintSuccess("Deleted page %s", name)
	return nil
}
