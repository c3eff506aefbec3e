// cmd/docset.go defines the document-set commands: creating a set and
// updating a metadata field on an existing one.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/spgraph/sharepoint-client/internal/app"
	"github.com/spgraph/sharepoint-client/internal/ui"
)

var docsetCmd = &cobra.Command{
	Use:   "docset",
	Short: "Manage document sets",
	Long:  `A document set is a drive folder plus a linked list item carrying metadata fields. These commands create sets and update their metadata.`,
}

var docsetCreateCmd = &cobra.Command{
	Use:   "create <name> <custom-value>",
	Short: "Create a document set",
	Long: `Creates a folder in the library drive, locates the list item it spawned
by its link filename, and tags that item with the document-set content
type, the title, and the configured custom field.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return docsetCreateLogic(a, cmd, args[0], args[1])
	},
}

var docsetSetFieldCmd = &cobra.Command{
	Use:   "set-field <set-name> <field> <value>",
	Short: "Update one metadata field of a document set",
	Long:  `Finds the document set whose folder name matches set-name and patches one field on its list item. When no set matches, nothing is updated.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return docsetSetFieldLogic(a, cmd, args[0], args[1], args[2])
	},
}

func docsetCreateLogic(a *app.App, cmd *cobra.Command, name, customValue string) error {
	err := a.CreateDocumentSet(cmd.Context(), name, customValue)
	if errors.Is(err, app.ErrDocumentSetNotFound) {
		ui.Info("Document set %q was not created: %v", name, err)
		return nil
	}
	if err != nil {
		return err
	}
	ui.Success("Created document set %q.", name)
	return nil
}

func docsetSetFieldLogic(a *app.App, cmd *cobra.Command, setName, field, value string) error {
	err := a.UpdateDocumentSetField(cmd.Context(), setName, field, value)
	if errors.Is(err, app.ErrDocumentSetNotFound) {
		ui.Info("Document set %q not found, nothing updated.", setName)
		return nil
	}
	if err != nil {
		return err
	}
	ui.Success("Updated field %q on document set %q.", field, setName)
	return nil
}

func init() {
	docsetCmd.AddCommand(docsetCreateCmd)
	docsetCmd.AddCommand(docsetSetFieldCmd)
	libraryCmd.AddCommand(docsetCmd)
}
