package app

import (
	"context"

	"github.com/spgraph/sharepoint-client/pkg/graph"
)

// SDK defines the interface for talking to Microsoft Graph. It is declared
// on the consuming side so tests can substitute a mock.
type SDK interface {
	Token(ctx context.Context) (string, error)
	ListUsers(ctx context.Context) (graph.UserList, error)
	FindRootSite(ctx context.Context, urlSuffix string) (*graph.Site, error)
	ListLists(ctx context.Context, siteID string) (graph.ListCollection, error)
	ListDrives(ctx context.Context, siteID string) (graph.DriveList, error)
	ListDriveItems(ctx context.Context, driveID string) (graph.DriveItemList, error)
	ListColumns(ctx context.Context, siteID, listID string) (graph.ColumnDefinitionList, error)
	ListContentTypes(ctx context.Context, siteID, listID string) (graph.ContentTypeList, error)
	ListItemsWithFields(ctx context.Context, siteID, listID string) (graph.ListItemList, error)
	CreateChoiceColumn(ctx context.Context, siteID, listID, name string, choices []string) (graph.ColumnDefinition, error)
	CreateNumberColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateCurrencyColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateDateTimeColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateLookupColumn(ctx context.Context, siteID, listID, name, sourceListID, sourceColumnName string) (graph.ColumnDefinition, error)
	CreateBooleanColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreatePersonColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateHyperlinkColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateContentType(ctx context.Context, siteID, name, description, group string) (graph.ContentType, error)
	CreateFolder(ctx context.Context, driveID, name string) (graph.DriveItem, error)
	RenameDriveItem(ctx context.Context, driveID, itemID, newName string) (graph.DriveItem, error)
	UpdateListItemField(ctx context.Context, siteID, listID, itemID, contentTypeID, fieldName string, fieldValue any) (graph.FieldValueSet, error)
	UpdateListItemFields(ctx context.Context, siteID, listID, itemID, contentTypeID string, fields graph.FieldValueSet) (graph.FieldValueSet, error)
}

// GraphSDK is the live SDK implementation backed by a graph.Client.
type GraphSDK struct {
	client *graph.Client
}

// NewGraphSDK wraps an authenticated Graph client.
func NewGraphSDK(client *graph.Client) *GraphSDK {
	return &GraphSDK{client: client}
}

func (s *GraphSDK) Token(ctx context.Context) (string, error) {
	return s.client.Token(ctx)
}

func (s *GraphSDK) ListUsers(ctx context.Context) (graph.UserList, error) {
	return s.client.ListUsers(ctx)
}

func (s *GraphSDK) FindRootSite(ctx context.Context, urlSuffix string) (*graph.Site, error) {
	return s.client.FindRootSite(ctx, urlSuffix)
}

func (s *GraphSDK) ListLists(ctx context.Context, siteID string) (graph.ListCollection, error) {
	return s.client.ListLists(ctx, siteID)
}

func (s *GraphSDK) ListDrives(ctx context.Context, siteID string) (graph.DriveList, error) {
	return s.client.ListDrives(ctx, siteID)
}

func (s *GraphSDK) ListDriveItems(ctx context.Context, driveID string) (graph.DriveItemList, error) {
	return s.client.ListDriveItems(ctx, driveID)
}

func (s *GraphSDK) ListColumns(ctx context.Context, siteID, listID string) (graph.ColumnDefinitionList, error) {
	return s.client.ListColumns(ctx, siteID, listID)
}

func (s *GraphSDK) ListContentTypes(ctx context.Context, siteID, listID string) (graph.ContentTypeList, error) {
	return s.client.ListContentTypes(ctx, siteID, listID)
}

func (s *GraphSDK) ListItemsWithFields(ctx context.Context, siteID, listID string) (graph.ListItemList, error) {
	return s.client.ListItemsWithFields(ctx, siteID, listID)
}

func (s *GraphSDK) CreateChoiceColumn(ctx context.Context, siteID, listID, name string, choices []string) (graph.ColumnDefinition, error) {
	return s.client.CreateChoiceColumn(ctx, siteID, listID, name, choices)
}

func (s *GraphSDK) CreateNumberColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	return s.client.CreateNumberColumn(ctx, siteID, listID, name)
}

func (s *GraphSDK) CreateCurrencyColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	return s.client.CreateCurrencyColumn(ctx, siteID, listID, name)
}

func (s *GraphSDK) CreateDateTimeColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	return s.client.CreateDateTimeColumn(ctx, siteID, listID, name)
}

func (s *GraphSDK) CreateLookupColumn(ctx context.Context, siteID, listID, name, sourceListID, sourceColumnName string) (graph.ColumnDefinition, error) {
	return s.client.CreateLookupColumn(ctx, siteID, listID, name, sourceListID, sourceColumnName)
}

func (s *GraphSDK) CreateBooleanColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	return s.client.CreateBooleanColumn(ctx, siteID, listID, name)
}

func (s *GraphSDK) CreatePersonColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	return s.client.CreatePersonColumn(ctx, siteID, listID, name)
}

func (s *GraphSDK) CreateHyperlinkColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	return s.client.CreateHyperlinkColumn(ctx, siteID, listID, name)
}

func (s *GraphSDK) CreateContentType(ctx context.Context, siteID, name, description, group string) (graph.ContentType, error) {
	return s.client.CreateContentType(ctx, siteID, name, description, group)
}

func (s *GraphSDK) CreateFolder(ctx context.Context, driveID, name string) (graph.DriveItem, error) {
	return s.client.CreateFolder(ctx, driveID, name)
}

func (s *GraphSDK) RenameDriveItem(ctx context.Context, driveID, itemID, newName string) (graph.DriveItem, error) {
	return s.client.RenameDriveItem(ctx, driveID, itemID, newName)
}

func (s *GraphSDK) UpdateListItemField(ctx context.Context, siteID, listID, itemID, contentTypeID, fieldName string, fieldValue any) (graph.FieldValueSet, error) {
	return s.client.UpdateListItemField(ctx, siteID, listID, itemID, contentTypeID, fieldName, fieldValue)
}

func (s *GraphSDK) UpdateListItemFields(ctx context.Context, siteID, listID, itemID, contentTypeID string, fields graph.FieldValueSet) (graph.FieldValueSet, error) {
	return s.client.UpdateListItemFields(ctx, siteID, listID, itemID, contentTypeID, fields)
}
