package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// DocumentBaseContentTypeID is the built-in Document content type every
// content type created by this client derives from.
const DocumentBaseContentTypeID = "0x0101"

// ListContentTypes retrieves all content types on a list, projected to
// name, description and group.
func (c *Client) ListContentTypes(ctx context.Context, siteID, listID string) (ContentTypeList, error) {
	c.logger.Debug("ListContentTypes called", "siteID", siteID, "listID", listID)
	var contentTypes ContentTypeList

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/lists/" + url.PathEscape(listID) + "/contentTypes?$select=name,description,group"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return contentTypes, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&contentTypes); err != nil {
		return contentTypes, fmt.Errorf("decoding content types failed: %v", err)
	}

	return contentTypes, nil
}

// CreateContentType creates a site content type as a specialization of the
// built-in Document base type.
func (c *Client) CreateContentType(ctx context.Context, siteID, name, description, group string) (ContentType, error) {
	c.logger.Debug("CreateContentType called", "siteID", siteID, "name", name)
	var contentType ContentType

	request := ContentType{
		Name:        name,
		Description: description,
		Group:       group,
		Base: &ContentType{
			ID:   DocumentBaseContentTypeID,
			Name: "Document",
		},
	}
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return contentType, fmt.Errorf("marshalling content type request: %w", err)
	}

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/contentTypes"
	res, err := c.apiCall(ctx, "POST", u, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return contentType, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&contentType); err != nil {
		return contentType, fmt.Errorf("decoding created content type failed: %v", err)
	}
	if contentType.ID == "" {
		return contentType, fmt.Errorf("%w: created content type has no id", ErrEmptyResponse)
	}

	return contentType, nil
}
