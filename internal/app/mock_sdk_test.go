package app

import (
	"context"

	"github.com/spgraph/sharepoint-client/internal/config"
	"github.com/spgraph/sharepoint-client/internal/logger"
	"github.com/spgraph/sharepoint-client/pkg/graph"
)

// MockSDK is a mock implementation of the SDK interface for testing.
type MockSDK struct {
	TokenFunc                 func(ctx context.Context) (string, error)
	ListUsersFunc             func(ctx context.Context) (graph.UserList, error)
	FindRootSiteFunc          func(ctx context.Context, urlSuffix string) (*graph.Site, error)
	ListListsFunc             func(ctx context.Context, siteID string) (graph.ListCollection, error)
	ListDrivesFunc            func(ctx context.Context, siteID string) (graph.DriveList, error)
	ListDriveItemsFunc        func(ctx context.Context, driveID string) (graph.DriveItemList, error)
	ListColumnsFunc           func(ctx context.Context, siteID, listID string) (graph.ColumnDefinitionList, error)
	ListContentTypesFunc      func(ctx context.Context, siteID, listID string) (graph.ContentTypeList, error)
	ListItemsWithFieldsFunc   func(ctx context.Context, siteID, listID string) (graph.ListItemList, error)
	CreateChoiceColumnFunc    func(ctx context.Context, siteID, listID, name string, choices []string) (graph.ColumnDefinition, error)
	CreateNumberColumnFunc    func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateCurrencyColumnFunc  func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateDateTimeColumnFunc  func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateLookupColumnFunc    func(ctx context.Context, siteID, listID, name, sourceListID, sourceColumnName string) (graph.ColumnDefinition, error)
	CreateBooleanColumnFunc   func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreatePersonColumnFunc    func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateHyperlinkColumnFunc func(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error)
	CreateContentTypeFunc     func(ctx context.Context, siteID, name, description, group string) (graph.ContentType, error)
	CreateFolderFunc          func(ctx context.Context, driveID, name string) (graph.DriveItem, error)
	RenameDriveItemFunc       func(ctx context.Context, driveID, itemID, newName string) (graph.DriveItem, error)
	UpdateListItemFieldFunc   func(ctx context.Context, siteID, listID, itemID, contentTypeID, fieldName string, fieldValue any) (graph.FieldValueSet, error)
	UpdateListItemFieldsFunc  func(ctx context.Context, siteID, listID, itemID, contentTypeID string, fields graph.FieldValueSet) (graph.FieldValueSet, error)
}

func (m *MockSDK) Token(ctx context.Context) (string, error) {
	if m.TokenFunc != nil {
		return m.TokenFunc(ctx)
	}
	return "mock-token", nil
}

func (m *MockSDK) ListUsers(ctx context.Context) (graph.UserList, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return graph.UserList{}, nil
}

func (m *MockSDK) FindRootSite(ctx context.Context, urlSuffix string) (*graph.Site, error) {
	if m.FindRootSiteFunc != nil {
		return m.FindRootSiteFunc(ctx, urlSuffix)
	}
	return nil, nil
}

func (m *MockSDK) ListLists(ctx context.Context, siteID string) (graph.ListCollection, error) {
	if m.ListListsFunc != nil {
		return m.ListListsFunc(ctx, siteID)
	}
	return graph.ListCollection{}, nil
}

func (m *MockSDK) ListDrives(ctx context.Context, siteID string) (graph.DriveList, error) {
	if m.ListDrivesFunc != nil {
		return m.ListDrivesFunc(ctx, siteID)
	}
	return graph.DriveList{}, nil
}

func (m *MockSDK) ListDriveItems(ctx context.Context, driveID string) (graph.DriveItemList, error) {
	if m.ListDriveItemsFunc != nil {
		return m.ListDriveItemsFunc(ctx, driveID)
	}
	return graph.DriveItemList{}, nil
}

func (m *MockSDK) ListColumns(ctx context.Context, siteID, listID string) (graph.ColumnDefinitionList, error) {
	if m.ListColumnsFunc != nil {
		return m.ListColumnsFunc(ctx, siteID, listID)
	}
	return graph.ColumnDefinitionList{}, nil
}

func (m *MockSDK) ListContentTypes(ctx context.Context, siteID, listID string) (graph.ContentTypeList, error) {
	if m.ListContentTypesFunc != nil {
		return m.ListContentTypesFunc(ctx, siteID, listID)
	}
	return graph.ContentTypeList{}, nil
}

func (m *MockSDK) ListItemsWithFields(ctx context.Context, siteID, listID string) (graph.ListItemList, error) {
	if m.ListItemsWithFieldsFunc != nil {
		return m.ListItemsWithFieldsFunc(ctx, siteID, listID)
	}
	return graph.ListItemList{}, nil
}

func (m *MockSDK) CreateChoiceColumn(ctx context.Context, siteID, listID, name string, choices []string) (graph.ColumnDefinition, error) {
	if m.CreateChoiceColumnFunc != nil {
		return m.CreateChoiceColumnFunc(ctx, siteID, listID, name, choices)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateNumberColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	if m.CreateNumberColumnFunc != nil {
		return m.CreateNumberColumnFunc(ctx, siteID, listID, name)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateCurrencyColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	if m.CreateCurrencyColumnFunc != nil {
		return m.CreateCurrencyColumnFunc(ctx, siteID, listID, name)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateDateTimeColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	if m.CreateDateTimeColumnFunc != nil {
		return m.CreateDateTimeColumnFunc(ctx, siteID, listID, name)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateLookupColumn(ctx context.Context, siteID, listID, name, sourceListID, sourceColumnName string) (graph.ColumnDefinition, error) {
	if m.CreateLookupColumnFunc != nil {
		return m.CreateLookupColumnFunc(ctx, siteID, listID, name, sourceListID, sourceColumnName)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateBooleanColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	if m.CreateBooleanColumnFunc != nil {
		return m.CreateBooleanColumnFunc(ctx, siteID, listID, name)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreatePersonColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	if m.CreatePersonColumnFunc != nil {
		return m.CreatePersonColumnFunc(ctx, siteID, listID, name)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateHyperlinkColumn(ctx context.Context, siteID, listID, name string) (graph.ColumnDefinition, error) {
	if m.CreateHyperlinkColumnFunc != nil {
		return m.CreateHyperlinkColumnFunc(ctx, siteID, listID, name)
	}
	return graph.ColumnDefinition{}, nil
}

func (m *MockSDK) CreateContentType(ctx context.Context, siteID, name, description, group string) (graph.ContentType, error) {
	if m.CreateContentTypeFunc != nil {
		return m.CreateContentTypeFunc(ctx, siteID, name, description, group)
	}
	return graph.ContentType{}, nil
}

func (m *MockSDK) CreateFolder(ctx context.Context, driveID, name string) (graph.DriveItem, error) {
	if m.CreateFolderFunc != nil {
		return m.CreateFolderFunc(ctx, driveID, name)
	}
	return graph.DriveItem{}, nil
}

func (m *MockSDK) RenameDriveItem(ctx context.Context, driveID, itemID, newName string) (graph.DriveItem, error) {
	if m.RenameDriveItemFunc != nil {
		return m.RenameDriveItemFunc(ctx, driveID, itemID, newName)
	}
	return graph.DriveItem{}, nil
}

func (m *MockSDK) UpdateListItemField(ctx context.Context, siteID, listID, itemID, contentTypeID, fieldName string, fieldValue any) (graph.FieldValueSet, error) {
	if m.UpdateListItemFieldFunc != nil {
		return m.UpdateListItemFieldFunc(ctx, siteID, listID, itemID, contentTypeID, fieldName, fieldValue)
	}
	return graph.FieldValueSet{}, nil
}

func (m *MockSDK) UpdateListItemFields(ctx context.Context, siteID, listID, itemID, contentTypeID string, fields graph.FieldValueSet) (graph.FieldValueSet, error) {
	if m.UpdateListItemFieldsFunc != nil {
		return m.UpdateListItemFieldsFunc(ctx, siteID, listID, itemID, contentTypeID, fields)
	}
	return graph.FieldValueSet{}, nil
}

// newTestApp creates an app instance around a mock SDK with a library fully
// configured for the compound flows.
func newTestApp(sdk SDK) *App {
	return &App{
		Config: &config.Configuration{
			SiteID:              "site-1",
			ListID:              "list-1",
			DriveID:             "drive-1",
			DocSetContentTypeID: config.DefaultDocSetContentType,
			CustomField:         config.DefaultCustomField,
		},
		Logger: logger.NoopLogger{},
		SDK:    sdk,
	}
}
