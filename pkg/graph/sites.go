package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// GetSites retrieves all sites visible to the application, projected to
// id and web URL.
func (c *Client) GetSites(ctx context.Context) (SiteList, error) {
	c.logger.Debug("GetSites called")
	var sites SiteList

	u := customRootURL + "sites?$select=id,webUrl"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return sites, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&sites); err != nil {
		return sites, fmt.Errorf("decoding sites failed: %v", err)
	}

	return sites, nil
}

// FindRootSite fetches all sites and returns the first whose web URL,
// trimmed of a trailing slash, ends with the given suffix. The comparison
// is case-insensitive. Returns nil when no site matches.
func (c *Client) FindRootSite(ctx context.Context, urlSuffix string) (*Site, error) {
	c.logger.Debug("FindRootSite called", "suffix", urlSuffix)

	sites, err := c.GetSites(ctx)
	if err != nil {
		return nil, err
	}

	suffix := strings.ToLower(urlSuffix)
	for _, site := range sites.Value {
		webURL := strings.ToLower(strings.TrimSuffix(site.WebURL, "/"))
		if strings.HasSuffix(webURL, suffix) {
			found := site
			return &found, nil
		}
	}

	return nil, nil
}

// ListLists retrieves all lists under a site, projected to id, name and
// web URL.
func (c *Client) ListLists(ctx context.Context, siteID string) (ListCollection, error) {
	c.logger.Debug("ListLists called", "siteID", siteID)
	var lists ListCollection

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/lists?$select=id,name,webUrl"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return lists, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&lists); err != nil {
		return lists, fmt.Errorf("decoding lists failed: %v", err)
	}

	return lists, nil
}

// ListDrives retrieves all drives under a site, projected to id, name and
// web URL.
func (c *Client) ListDrives(ctx context.Context, siteID string) (DriveList, error) {
	c.logger.Debug("ListDrives called", "siteID", siteID)
	var drives DriveList

	u := customRootURL + "sites/" + url.PathEscape(siteID) + "/drives?$select=id,name,webUrl"
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return drives, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&drives); err != nil {
		return drives, fmt.Errorf("decoding drives failed: %v", err)
	}

	return drives, nil
}
