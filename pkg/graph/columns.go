package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ListColumns retrieves all column definitions on a list, projected to
// display name only.
func (c *Client) ListColumns(ctx context.Context, siteID, listID string) (ColumnDefinitionList, error) {
	c.logger.Debug("ListColumns called", "siteID", siteID, "listID", listID)
	var columns ColumnDefinitionList

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/lists/" + url.PathEscape(listID) + "/columns?$select=displayName"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return columns, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&columns); err != nil {
		return columns, fmt.Errorf("decoding columns failed: %v", err)
	}

	return columns, nil
}

// CreateChoiceColumn creates a choice column with the caller-supplied
// options rendered as a dropdown. Free-text entry is always allowed.
func (c *Client) CreateChoiceColumn(ctx context.Context, siteID, listID, name string, choices []string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name: name,
		Choice: &ChoiceColumn{
			AllowTextEntry: true,
			Choices:        choices,
			DisplayAs:      "dropDownMenu",
		},
	})
}

// CreateNumberColumn creates a number column with automatic decimal places.
func (c *Client) CreateNumberColumn(ctx context.Context, siteID, listID, name string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name:   name,
		Number: &NumberColumn{DecimalPlaces: "automatic"},
	})
}

// CreateCurrencyColumn creates a currency column with a fixed en-us locale.
func (c *Client) CreateCurrencyColumn(ctx context.Context, siteID, listID, name string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name:     name,
		Currency: &CurrencyColumn{Locale: "en-us"},
	})
}

// CreateDateTimeColumn creates a date/time column with default display.
func (c *Client) CreateDateTimeColumn(ctx context.Context, siteID, listID, name string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name:     name,
		DateTime: &DateTimeColumn{DisplayAs: "default", Format: "dateTime"},
	})
}

// CreateLookupColumn creates a lookup column sourcing its values from the
// named column of another list.
func (c *Client) CreateLookupColumn(ctx context.Context, siteID, listID, name, sourceListID, sourceColumnName string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name:   name,
		Lookup: &LookupColumn{ListID: sourceListID, ColumnName: sourceColumnName},
	})
}

// CreateBooleanColumn creates a yes/no column.
func (c *Client) CreateBooleanColumn(ctx context.Context, siteID, listID, name string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name:    name,
		Boolean: &BooleanColumn{},
	})
}

// CreatePersonColumn creates a single-select person-or-group column that
// can pick from both people and groups.
func (c *Client) CreatePersonColumn(ctx context.Context, siteID, listID, name string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name: name,
		PersonOrGroup: &PersonOrGroupColumn{
			AllowMultipleSelection: false,
			ChooseFromType:         "peopleAndGroups",
		},
	})
}

// CreateHyperlinkColumn creates a hyperlink column (not a picture column).
func (c *Client) CreateHyperlinkColumn(ctx context.Context, siteID, listID, name string) (ColumnDefinition, error) {
	return c.createColumn(ctx, siteID, listID, ColumnDefinition{
		Name:               name,
		HyperlinkOrPicture: &HyperlinkOrPictureColumn{IsPicture: false},
	})
}

// createColumn posts a fully-formed column definition to a list. The server
// rejects name collisions; no local uniqueness check is made.
func (c *Client) createColumn(ctx context.Context, siteID, listID string, definition ColumnDefinition) (ColumnDefinition, error) {
	c.logger.Debug("createColumn called", "siteID", siteID, "listID", listID, "name", definition.Name)
	var column ColumnDefinition

	jsonBody, err := json.Marshal(definition)
	if err != nil {
		return column, fmt.Errorf("marshalling column definition: %w", err)
	}

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/lists/" + url.PathEscape(listID) + "/columns"
	res, err := c.apiCall(ctx, "POST", u, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return column, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&column); err != nil {
		return column, fmt.Errorf("decoding created column failed: %v", err)
	}
	if column.ID == "" {
		return column, fmt.Errorf("%w: created column has no id", ErrEmptyResponse)
	}

	return column, nil
}
