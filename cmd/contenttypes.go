// cmd/contenttypes.go defines content type listing and creation under
// 'library content-types'.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spgraph/sharepoint-client/internal/app"
	"github.com/spgraph/sharepoint-client/internal/ui"
)

var contentTypesCmd = &cobra.Command{
	Use:     "content-types",
	Aliases: []string{"content-type"},
	Short:   "Manage content types of the library list",
}

var contentTypesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List content types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return contentTypesListLogic(a, cmd)
	},
}

var contentTypesCreateCmd = &cobra.Command{
	Use:   "create <name> <description> <group>",
	Short: "Create a content type derived from the Document base type",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return contentTypesCreateLogic(a, cmd, args[0], args[1], args[2])
	},
}

func contentTypesListLogic(a *app.App, cmd *cobra.Command) error {
	contentTypes, err := a.SDK.ListContentTypes(cmd.Context(), a.Config.SiteID, a.Config.ListID)
	if err != nil {
		return fmt.Errorf("listing content types: %w", err)
	}
	return ui.DisplayContentTypes(contentTypes)
}

func contentTypesCreateLogic(a *app.App, cmd *cobra.Command, name, description, group string) error {
	contentType, err := a.SDK.CreateContentType(cmd.Context(), a.Config.SiteID, name, description, group)
	if err != nil {
		return fmt.Errorf("creating content type: %w", err)
	}
	ui.Success("Created content type %q (id %s).", contentType.Name, contentType.ID)
	return nil
}

func init() {
	contentTypesCmd.AddCommand(contentTypesListCmd)
	contentTypesCmd.AddCommand(contentTypesCreateCmd)
	libraryCmd.AddCommand(contentTypesCmd)
}
