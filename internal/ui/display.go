// Package ui formats and prints Graph data structures to the console.
// List-shaped results honor the global --output flag (table, json, yaml);
// tables are the default and mirror the fixed field dumps of each command.
package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/spgraph/sharepoint-client/pkg/graph"
)

// Output format values accepted by the --output flag.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Success prints a positive one-line message to standard output.
func Success(msg string, args ...any) {
	fmt.Printf(msg+"\n", args...)
}

// Info prints an informational one-line message to standard output. Used
// for "no results" and "not found" outcomes, which are not errors.
func Info(msg string, args ...any) {
	fmt.Printf(msg+"\n", args...)
}

// renderStructured writes v as JSON or YAML depending on format, returning
// false when the format calls for a table instead.
func renderStructured(v any) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case OutputFormatYAML:
		return true, yaml.NewEncoder(os.Stdout).Encode(v)
	default:
		return false, nil
	}
}

// DisplayToken prints a raw bearer token.
func DisplayToken(token string) {
	fmt.Println(token)
}

// DisplayUsers prints one page of directory users and notes when further
// pages exist.
func DisplayUsers(users graph.UserList) error {
	if done, err := renderStructured(users); done {
		return err
	}

	if len(users.Value) == 0 {
		Info("No users found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Display Name", "ID", "Mail")
	for _, user := range users.Value {
		_ = table.Append(user.DisplayName, user.ID, user.Mail)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering users table: %w", err)
	}

	if users.HasMore() {
		Info("More users exist beyond this page.")
	}
	return nil
}

// DisplaySite prints a single site's identity fields.
func DisplaySite(site graph.Site) error {
	if done, err := renderStructured(site); done {
		return err
	}

	fmt.Printf("Site ID:  %s\n", site.ID)
	fmt.Printf("Web URL:  %s\n", site.WebURL)
	return nil
}

// DisplayLists prints all lists of a site.
func DisplayLists(lists graph.ListCollection) error {
	if done, err := renderStructured(lists); done {
		return err
	}

	if len(lists.Value) == 0 {
		Info("No lists found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "Web URL")
	for _, list := range lists.Value {
		_ = table.Append(list.Name, list.ID, list.WebURL)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering lists table: %w", err)
	}
	return nil
}

// DisplayDrives prints all drives of a site.
func DisplayDrives(drives graph.DriveList) error {
	if done, err := renderStructured(drives); done {
		return err
	}

	if len(drives.Value) == 0 {
		Info("No drives found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "Web URL")
	for _, drive := range drives.Value {
		_ = table.Append(drive.Name, drive.ID, drive.WebURL)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering drives table: %w", err)
	}
	return nil
}

// DisplayDriveItems prints the files and folders of a drive.
func DisplayDriveItems(items graph.DriveItemList) error {
	if done, err := renderStructured(items); done {
		return err
	}

	if len(items.Value) == 0 {
		Info("No files found in this drive.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Size", "Type", "ID")
	for _, item := range items.Value {
		itemType := "File"
		if item.Folder != nil {
			itemType = "Folder"
		}
		_ = table.Append(item.Name, formatBytes(item.Size), itemType, item.ID)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering drive items table: %w", err)
	}
	return nil
}

// DisplayColumns prints the column definitions of a list.
func DisplayColumns(columns graph.ColumnDefinitionList) error {
	if done, err := renderStructured(columns); done {
		return err
	}

	if len(columns.Value) == 0 {
		Info("No columns found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Display Name")
	for _, column := range columns.Value {
		_ = table.Append(column.DisplayName)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering columns table: %w", err)
	}
	return nil
}

// DisplayContentTypes prints the content types of a list.
func DisplayContentTypes(contentTypes graph.ContentTypeList) error {
	if done, err := renderStructured(contentTypes); done {
		return err
	}

	if len(contentTypes.Value) == 0 {
		Info("No content types found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Description", "Group")
	for _, contentType := range contentTypes.Value {
		_ = table.Append(contentType.Name, contentType.Description, contentType.Group)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering content types table: %w", err)
	}
	return nil
}

// DisplayListItems prints list items with their content type and the
// folder name they are linked to.
func DisplayListItems(items graph.ListItemList) error {
	if done, err := renderStructured(items); done {
		return err
	}

	if len(items.Value) == 0 {
		Info("No items found in this list.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Content Type", "Linked Name", "Web URL")
	for _, item := range items.Value {
		_ = table.Append(item.ID, item.ContentType.Name, item.Fields.String(graph.FieldLinkFilename), item.WebURL)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering list items table: %w", err)
	}
	return nil
}

// formatBytes converts a size in bytes to a human-readable IEC string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
