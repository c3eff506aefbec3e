// cmd/library.go defines the 'library' command group and its simple
// leaves: listing files and items, and renaming a document by name.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spgraph/sharepoint-client/internal/app"
	"github.com/spgraph/sharepoint-client/internal/ui"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Document library operations",
	Long:  `Provides commands against the configured document library: files, columns, content types, items, and document sets.`,
}

var libraryFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List files and folders in the library drive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return libraryFilesLogic(a, cmd)
	},
}

var libraryItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List library items with their metadata fields",
	Long:  `Lists all items of the library list with the content-type reference and the full field map expanded inline.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return libraryItemsLogic(a, cmd)
	},
}

var libraryRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a document by its current name",
	Long:  `Finds a file or folder in the library drive by its exact current name and renames it. When no item matches, nothing is changed.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return libraryRenameLogic(a, cmd, args[0], args[1])
	},
}

// newLibraryApp initializes the app and checks the fixed library
// identifiers every library command depends on.
func newLibraryApp(cmd *cobra.Command) (*app.App, error) {
	a, err := app.NewApp(cmd)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	if err := a.Config.ValidateLibrary(); err != nil {
		return nil, err
	}
	return a, nil
}

func libraryFilesLogic(a *app.App, cmd *cobra.Command) error {
	items, err := a.SDK.ListDriveItems(cmd.Context(), a.Config.DriveID)
	if err != nil {
		return fmt.Errorf("listing files: %w", err)
	}
	return ui.DisplayDriveItems(items)
}

func libraryItemsLogic(a *app.App, cmd *cobra.Command) error {
	items, err := a.SDK.ListItemsWithFields(cmd.Context(), a.Config.SiteID, a.Config.ListID)
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}
	return ui.DisplayListItems(items)
}

func libraryRenameLogic(a *app.App, cmd *cobra.Command, oldName, newName string) error {
	err := a.RenameDocumentByName(cmd.Context(), oldName, newName)
	if errors.Is(err, app.ErrDocumentNotFound) {
		ui.Info("Document %q not found, nothing renamed.", oldName)
		return nil
	}
	if err != nil {
		return err
	}
	ui.Success("Renamed %q to %q.", oldName, newName)
	return nil
}

func init() {
	libraryCmd.AddCommand(libraryFilesCmd)
	libraryCmd.AddCommand(libraryItemsCmd)
	libraryCmd.AddCommand(libraryRenameCmd)
	rootCmd.AddCommand(libraryCmd)
}
