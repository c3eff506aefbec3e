package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ListDriveItems retrieves the immediate children of the drive's root
// folder, projected to id, name, web URL, size and the file/folder markers.
func (c *Client) ListDriveItems(ctx context.Context, driveID string) (DriveItemList, error) {
	c.logger.Debug("ListDriveItems called", "driveID", driveID)
	var items DriveItemList

	u := customRootURL + "drives/" + url.PathEscape(driveID) + "/root/children?$select=id,name,webUrl,size,file,folder"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return items, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return items, fmt.Errorf("decoding drive items failed: %v", err)
	}

	return items, nil
}

// CreateFolder creates a folder-type drive item at the drive root. A name
// collision is rejected by the server and surfaces as ErrConflict; nothing
// is overwritten or renamed.
func (c *Client) CreateFolder(ctx context.Context, driveID, name string) (DriveItem, error) {
	c.logger.Debug("CreateFolder called", "driveID", driveID, "name", name)
	var item DriveItem

	request := DriveItem{
		Name:             name,
		Folder:           &FolderFacet{},
		ConflictBehavior: "fail",
	}
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return item, fmt.Errorf("marshalling create folder request: %w", err)
	}

	u := customRootURL + "drives/" + url.PathEscape(driveID) + "/root/children"
	res, err := c.apiCall(ctx, "POST", u, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return item, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&item); err != nil {
		return item, fmt.Errorf("decoding created folder failed: %v", err)
	}
	if item.ID == "" {
		return item, fmt.Errorf("%w: created folder has no id", ErrEmptyResponse)
	}

	return item, nil
}

// RenameDriveItem patches the name of a drive item. Only the name field is
// sent; everything else on the item is untouched.
func (c *Client) RenameDriveItem(ctx context.Context, driveID, itemID, newName string) (DriveItem, error) {
	c.logger.Debug("RenameDriveItem called", "driveID", driveID, "itemID", itemID, "newName", newName)
	var item DriveItem

	jsonBody, err := json.Marshal(map[string]string{"name": newName})
	if err != nil {
		return item, fmt.Errorf("marshalling rename request: %w", err)
	}

	u := customRootURL + "drives/" + url.PathEscape(driveID) + "/items/" + url.PathEscape(itemID)
	res, err := c.apiCall(ctx, "PATCH", u, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return item, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&item); err != nil {
		return item, fmt.Errorf("decoding renamed item failed: %v", err)
	}
	if item.ID == "" {
		return item, fmt.Errorf("%w: renamed item has no id", ErrEmptyResponse)
	}

	return item, nil
}
