// Package cmd defines the cobra command tree for the sharepoint-client
// CLI. Command logic lives in small testable functions that take the app
// context; RunE wrappers stay thin.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sharepoint-client",
	Short: "A CLI client for SharePoint document libraries",
	Long: `sharepoint-client is a command-line tool for working with a SharePoint
document library through Microsoft Graph, authenticating with app-only
client credentials.

Capabilities include:
  - Tenant information (token, users, root site, lists, drives)
  - Document library operations (files, columns, content types, items)
  - Document sets (create, update metadata fields)
  - Renaming documents

Credentials and library identifiers are read from the configuration file
(~/.sharepoint-client/config.yaml) or SP_-prefixed environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Not-found outcomes are rendered as
// informational text by the leaf commands themselves and never reach here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging for SDK and internal operations")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table, json, yaml)")
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}
