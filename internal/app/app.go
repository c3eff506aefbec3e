// Package app wires configuration, logging and the Graph SDK together and
// implements the compound document-library flows that need more than one
// remote call.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spgraph/sharepoint-client/internal/config"
	"github.com/spgraph/sharepoint-client/internal/logger"
	"github.com/spgraph/sharepoint-client/pkg/graph"
)

// Not-found outcomes of the compound flows. These are informational, not
// failures: the command layer renders them as text and exits cleanly.
var (
	ErrDocumentSetNotFound = errors.New("document set not found")
	ErrDocumentNotFound    = errors.New("document not found")
)

// App holds the per-invocation application context: loaded configuration,
// the logger, and the Graph SDK built from the app-only credential.
type App struct {
	Config *config.Configuration
	Logger logger.Logger
	SDK    SDK
}

// NewApp loads configuration, validates the credential triple and builds
// the authenticated Graph client once. The client's token source is cached
// for the life of the process, so repeated NewApp calls within one run are
// the only way to re-authenticate, and commands never do that.
func NewApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	log := logger.NewDefaultLogger(cfg.Debug)

	if err := cfg.ValidateCredentials(); err != nil {
		return nil, err
	}

	client := graph.NewClient(cmd.Context(), cfg.TenantID, cfg.ClientID, cfg.ClientSecret, log)

	return &App{
		Config: cfg,
		Logger: log,
		SDK:    NewGraphSDK(client),
	}, nil
}

// UpdateDocumentSetField locates the document set whose link filename
// matches setName and patches one metadata field on its list item. When no
// item matches, ErrDocumentSetNotFound is returned and no update is issued.
func (a *App) UpdateDocumentSetField(ctx context.Context, setName, fieldName string, fieldValue any) error {
	items, err := a.SDK.ListItemsWithFields(ctx, a.Config.SiteID, a.Config.ListID)
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}

	item := findItemByLinkFilename(items, setName)
	if item == nil {
		return fmt.Errorf("%w: %q", ErrDocumentSetNotFound, setName)
	}

	// A matched item without these identifiers means the library schema
	// is broken, which is fatal rather than a soft miss.
	if item.ID == "" {
		return fmt.Errorf("item matching %q has no id", setName)
	}
	if item.ContentType.ID == "" {
		return fmt.Errorf("item matching %q has no content type id", setName)
	}

	_, err = a.SDK.UpdateListItemField(ctx, a.Config.SiteID, a.Config.ListID, item.ID, item.ContentType.ID, fieldName, fieldValue)
	if err != nil {
		return fmt.Errorf("updating field %q: %w", fieldName, err)
	}

	return nil
}

// CreateDocumentSet creates a folder for the set, then re-fetches the list
// to find the item the folder spawned and tags it with the document-set
// content type, title and the configured custom field. The re-fetch-and-
// match is required because folder creation does not return a list-item id.
func (a *App) CreateDocumentSet(ctx context.Context, name string, customValue any) error {
	if _, err := a.SDK.CreateFolder(ctx, a.Config.DriveID, name); err != nil {
		return fmt.Errorf("creating folder: %w", err)
	}

	items, err := a.SDK.ListItemsWithFields(ctx, a.Config.SiteID, a.Config.ListID)
	if err != nil {
		return fmt.Errorf("listing items after folder creation: %w", err)
	}

	item := findItemByLinkFilename(items, name)
	if item == nil {
		return fmt.Errorf("%w: no list item matches new folder %q", ErrDocumentSetNotFound, name)
	}
	if item.ID == "" {
		return fmt.Errorf("item matching %q has no id", name)
	}

	fields := graph.FieldValueSet{
		"Title":              name,
		a.Config.CustomField: customValue,
	}
	_, err = a.SDK.UpdateListItemFields(ctx, a.Config.SiteID, a.Config.ListID, item.ID, a.Config.DocSetContentTypeID, fields)
	if err != nil {
		return fmt.Errorf("tagging document set %q: %w", name, err)
	}

	return nil
}

// RenameDocumentByName finds a drive item by its exact current name and
// renames it. When no item matches, ErrDocumentNotFound is returned and no
// patch is issued.
func (a *App) RenameDocumentByName(ctx context.Context, oldName, newName string) error {
	items, err := a.SDK.ListDriveItems(ctx, a.Config.DriveID)
	if err != nil {
		return fmt.Errorf("listing drive items: %w", err)
	}

	var match *graph.DriveItem
	for i := range items.Value {
		if items.Value[i].Name == oldName {
			match = &items.Value[i]
			break
		}
	}
	if match == nil {
		return fmt.Errorf("%w: %q", ErrDocumentNotFound, oldName)
	}
	if match.ID == "" {
		return fmt.Errorf("item named %q has no id", oldName)
	}

	if _, err := a.SDK.RenameDriveItem(ctx, a.Config.DriveID, match.ID, newName); err != nil {
		return fmt.Errorf("renaming %q: %w", oldName, err)
	}

	return nil
}

// findItemByLinkFilename returns the first item in list order whose link
// filename field equals name, or nil. First match wins on duplicates.
func findItemByLinkFilename(items graph.ListItemList, name string) *graph.ListItem {
	for i := range items.Value {
		if items.Value[i].Fields.String(graph.FieldLinkFilename) == name {
			return &items.Value[i]
		}
	}
	return nil
}
