// cmd/configcmd.go defines the 'config' command group for inspecting and
// updating the stored configuration.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spgraph/sharepoint-client/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and update stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Prints the effective configuration after merging the config file and SP_-prefixed environment variables. The client secret is masked.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return configShowLogic(cfg)
	},
}

var configSetSecretCmd = &cobra.Command{
	Use:   "set-secret",
	Short: "Store the client secret",
	Long:  `Prompts for the application client secret without echoing it and writes it to the config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		fmt.Fprint(os.Stderr, "Client secret: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("reading secret: %w", err)
		}
		if len(strings.TrimSpace(string(secret))) == 0 {
			return fmt.Errorf("client secret must not be empty")
		}

		cfg.ClientSecret = strings.TrimSpace(string(secret))
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}
		fmt.Println("Client secret stored.")
		return nil
	},
}

func configShowLogic(cfg *config.Configuration) error {
	fmt.Printf("tenant_id:               %s\n", cfg.TenantID)
	fmt.Printf("client_id:               %s\n", cfg.ClientID)
	fmt.Printf("client_secret:           %s\n", maskSecret(cfg.ClientSecret))
	fmt.Printf("site_url_suffix:         %s\n", cfg.SiteURLSuffix)
	fmt.Printf("site_id:                 %s\n", cfg.SiteID)
	fmt.Printf("drive_id:                %s\n", cfg.DriveID)
	fmt.Printf("list_id:                 %s\n", cfg.ListID)
	fmt.Printf("docset_content_type_id:  %s\n", cfg.DocSetContentTypeID)
	fmt.Printf("custom_field:            %s\n", cfg.CustomField)
	fmt.Printf("debug:                   %t\n", cfg.Debug)
	return nil
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return strings.Repeat("*", 8)
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSecretCmd)
	rootCmd.AddCommand(configCmd)
}
