// cmd/info.go defines the 'info' command group: general tenant information
// that does not touch the document library.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spgraph/sharepoint-client/internal/app"
	"github.com/spgraph/sharepoint-client/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "General tenant information",
	Long:  `Provides commands to inspect the tenant: acquire a token, list users, locate the root site, and list its lists and drives.`,
}

var infoTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for the Graph default scope",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'info token': %w", err)
		}
		return infoTokenLogic(a, cmd)
	},
}

var infoUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List directory users",
	Long:  `Lists one page of directory users sorted by display name, showing display name, id and mail.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'info users': %w", err)
		}
		return infoUsersLogic(a, cmd)
	},
}

var infoSiteCmd = &cobra.Command{
	Use:   "site",
	Short: "Locate the configured root site",
	Long:  `Fetches all sites and shows the first whose web URL ends with the configured suffix, ignoring case and a trailing slash.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'info site': %w", err)
		}
		return infoSiteLogic(a, cmd)
	},
}

var infoListsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List all lists of the configured site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'info lists': %w", err)
		}
		return infoListsLogic(a, cmd)
	},
}

var infoDrivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List all drives of the configured site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'info drives': %w", err)
		}
		return infoDrivesLogic(a, cmd)
	},
}

func infoTokenLogic(a *app.App, cmd *cobra.Command) error {
	token, err := a.SDK.Token(cmd.Context())
	if err != nil {
		return fmt.Errorf("acquiring token: %w", err)
	}
	ui.DisplayToken(token)
	return nil
}

func infoUsersLogic(a *app.App, cmd *cobra.Command) error {
	users, err := a.SDK.ListUsers(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}
	return ui.DisplayUsers(users)
}

func infoSiteLogic(a *app.App, cmd *cobra.Command) error {
	site, err := a.SDK.FindRootSite(cmd.Context(), a.Config.SiteURLSuffix)
	if err != nil {
		return fmt.Errorf("finding root site: %w", err)
	}
	if site == nil {
		ui.Info("No site matches suffix %q.", a.Config.SiteURLSuffix)
		return nil
	}
	return ui.DisplaySite(*site)
}

func infoListsLogic(a *app.App, cmd *cobra.Command) error {
	if err := requireSiteID(a); err != nil {
		return err
	}
	lists, err := a.SDK.ListLists(cmd.Context(), a.Config.SiteID)
	if err != nil {
		return fmt.Errorf("listing lists: %w", err)
	}
	return ui.DisplayLists(lists)
}

func infoDrivesLogic(a *app.App, cmd *cobra.Command) error {
	if err := requireSiteID(a); err != nil {
		return err
	}
	drives, err := a.SDK.ListDrives(cmd.Context(), a.Config.SiteID)
	if err != nil {
		return fmt.Errorf("listing drives: %w", err)
	}
	return ui.DisplayDrives(drives)
}

func requireSiteID(a *app.App) error {
	if a.Config.SiteID == "" {
		return fmt.Errorf("missing required configuration: site_id")
	}
	return nil
}

func init() {
	infoCmd.AddCommand(infoTokenCmd)
	infoCmd.AddCommand(infoUsersCmd)
	infoCmd.AddCommand(infoSiteCmd)
	infoCmd.AddCommand(infoListsCmd)
	infoCmd.AddCommand(infoDrivesCmd)
	rootCmd.AddCommand(infoCmd)
}
