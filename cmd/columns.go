// cmd/columns.go defines column listing and the eight column-creation
// subcommands under 'library columns'.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spgraph/sharepoint-client/internal/app"
	"github.com/spgraph/sharepoint-client/internal/ui"
	"github.com/spgraph/sharepoint-client/pkg/graph"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Manage columns of the library list",
}

var columnsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List column definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		return columnsListLogic(a, cmd)
	},
}

var columnsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a column of a specific kind",
	Long:  `Creates a column on the library list. Each kind carries fixed default options; only the name (and kind-specific inputs such as choices) come from the caller.`,
}

var columnsCreateChoiceCmd = &cobra.Command{
	Use:   "choice <name> <choice>...",
	Short: "Create a choice column",
	Long:  `Creates a choice column with the given options, rendered as a dropdown. Free-text entry is allowed.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		column, err := a.SDK.CreateChoiceColumn(cmd.Context(), a.Config.SiteID, a.Config.ListID, args[0], args[1:])
		return reportCreatedColumn(column, err)
	},
}

var columnsCreateNumberCmd = &cobra.Command{
	Use:   "number <name>",
	Short: "Create a number column",
	Args:  cobra.ExactArgs(1),
	RunE:  createSimpleColumnRunE(func(a *app.App) simpleColumnFunc { return a.SDK.CreateNumberColumn }),
}

var columnsCreateCurrencyCmd = &cobra.Command{
	Use:   "currency <name>",
	Short: "Create a currency column",
	Args:  cobra.ExactArgs(1),
	RunE:  createSimpleColumnRunE(func(a *app.App) simpleColumnFunc { return a.SDK.CreateCurrencyColumn }),
}

var columnsCreateDateTimeCmd = &cobra.Command{
	Use:   "datetime <name>",
	Short: "Create a date/time column",
	Args:  cobra.ExactArgs(1),
	RunE:  createSimpleColumnRunE(func(a *app.App) simpleColumnFunc { return a.SDK.CreateDateTimeColumn }),
}

var columnsCreateLookupCmd = &cobra.Command{
	Use:   "lookup <name> <source-list-id> <source-column>",
	Short: "Create a lookup column",
	Long:  `Creates a lookup column sourcing its values from the named column of another list.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		column, err := a.SDK.CreateLookupColumn(cmd.Context(), a.Config.SiteID, a.Config.ListID, args[0], args[1], args[2])
		return reportCreatedColumn(column, err)
	},
}

var columnsCreateBooleanCmd = &cobra.Command{
	Use:   "boolean <name>",
	Short: "Create a yes/no column",
	Args:  cobra.ExactArgs(1),
	RunE:  createSimpleColumnRunE(func(a *app.App) simpleColumnFunc { return a.SDK.CreateBooleanColumn }),
}

var columnsCreatePersonCmd = &cobra.Command{
	Use:   "person <name>",
	Short: "Create a person-or-group column",
	Args:  cobra.ExactArgs(1),
	RunE:  createSimpleColumnRunE(func(a *app.App) simpleColumnFunc { return a.SDK.CreatePersonColumn }),
}

var columnsCreateHyperlinkCmd = &cobra.Command{
	Use:   "hyperlink <name>",
	Short: "Create a hyperlink column",
	Args:  cobra.ExactArgs(1),
	RunE:  createSimpleColumnRunE(func(a *app.App) simpleColumnFunc { return a.SDK.CreateHyperlinkColumn }),
}

// simpleColumnFunc is the shared shape of every column creator that needs
// only a name beyond the fixed site and list.
type simpleColumnFunc func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)

func createSimpleColumnRunE(pick func(*app.App) simpleColumnFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newLibraryApp(cmd)
		if err != nil {
			return err
		}
		column, err := pick(a)(cmd.Context(), a.Config.SiteID, a.Config.ListID, args[0])
		return reportCreatedColumn(column, err)
	}
}

func columnsListLogic(a *app.App, cmd *cobra.Command) error {
	columns, err := a.SDK.ListColumns(cmd.Context(), a.Config.SiteID, a.Config.ListID)
	if err != nil {
		return fmt.Errorf("listing columns: %w", err)
	}
	return ui.DisplayColumns(columns)
}

func reportCreatedColumn(column graph.ColumnDefinition, err error) error {
	if err != nil {
		return fmt.Errorf("creating column: %w", err)
	}
	ui.Success("Created column %q (id %s).", column.Name, column.ID)
	return nil
}

func init() {
	columnsCreateCmd.AddCommand(columnsCreateChoiceCmd)
	columnsCreateCmd.AddCommand(columnsCreateNumberCmd)
	columnsCreateCmd.AddCommand(columnsCreateCurrencyCmd)
	columnsCreateCmd.AddCommand(columnsCreateDateTimeCmd)
	columnsCreateCmd.AddCommand(columnsCreateLookupCmd)
	columnsCreateCmd.AddCommand(columnsCreateBooleanCmd)
	columnsCreateCmd.AddCommand(columnsCreatePersonCmd)
	columnsCreateCmd.AddCommand(columnsCreateHyperlinkCmd)

	columnsCmd.AddCommand(columnsListCmd)
	columnsCmd.AddCommand(columnsCreateCmd)
	libraryCmd.AddCommand(columnsCmd)
}
