package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// FieldLinkFilename is the well-known field key carrying the folder name a
// list item represents. Document sets are located by matching against it.
const FieldLinkFilename = "FileLeafRef"

// contentTypeIDField is the field-map key that rebinds an item's content
// type as part of a field patch.
const contentTypeIDField = "ContentTypeId"

// ListItemsWithFields retrieves all items on a list with their content-type
// reference and the full field map expanded inline.
func (c *Client) ListItemsWithFields(ctx context.Context, siteID, listID string) (ListItemList, error) {
	c.logger.Debug("ListItemsWithFields called", "siteID", siteID, "listID", listID)
	var items ListItemList

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/lists/" + url.PathEscape(listID) + "/items?$expand=fields"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return items, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return items, fmt.Errorf("decoding list items failed: %v", err)
	}

	return items, nil
}

// UpdateListItemField patches a single field on a list item while rebinding
// its content type. Fields not present in the payload are untouched.
func (c *Client) UpdateListItemField(ctx context.Context, siteID, listID, itemID, contentTypeID, fieldName string, fieldValue any) (FieldValueSet, error) {
	fields := FieldValueSet{fieldName: fieldValue}
	return c.updateListItemFields(ctx, siteID, listID, itemID, contentTypeID, fields)
}

// UpdateListItemFields patches an arbitrary set of fields on a list item at
// once, always forcing the content-type-id field. The caller's map is not
// mutated.
func (c *Client) UpdateListItemFields(ctx context.Context, siteID, listID, itemID, contentTypeID string, fields FieldValueSet) (FieldValueSet, error) {
	merged := make(FieldValueSet, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	return c.updateListItemFields(ctx, siteID, listID, itemID, contentTypeID, merged)
}

func (c *Client) updateListItemFields(ctx context.Context, siteID, listID, itemID, contentTypeID string, fields FieldValueSet) (FieldValueSet, error) {
	c.logger.Debug("updateListItemFields called", "siteID", siteID, "listID", listID, "itemID", itemID)
	var updated FieldValueSet

	fields[contentTypeIDField] = contentTypeID

	jsonBody, err := json.Marshal(fields)
	if err != nil {
		return updated, fmt.Errorf("marshalling field update: %w", err)
	}

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/lists/" + url.PathEscape(listID) + "/items/" + url.PathEscape(itemID) + "/fields"
	res, err := c.apiCall(ctx, "PATCH", u, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return updated, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&updated); err != nil {
		return updated, fmt.Errorf("decoding updated fields failed: %v", err)
	}
	if len(updated) == 0 {
		return updated, fmt.Errorf("%w: field update returned no fields", ErrEmptyResponse)
	}

	return updated, nil
}
