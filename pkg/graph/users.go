package graph

import (
	"context"
	"encoding/json"
	"fmt"
)

// usersPageSize bounds a single listing to one page of directory users.
const usersPageSize = 25

// ListUsers retrieves one page of directory users sorted by display name,
// projected to display name, id and mail. The returned list's NextLink is
// set when more results exist beyond the page.
func (c *Client) ListUsers(ctx context.Context) (UserList, error) {
	c.logger.Debug("ListUsers called")
	var users UserList

	u := fmt.Sprintf("%susers?$top=%d&$orderby=displayName&$select=displayName,id,mail", customRootURL, usersPageSize)
	res, err := c.apiCall(ctx, "GET", u, "", nil)
	if err != nil {
		return users, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&users); err != nil {
		return users, fmt.Errorf("decoding users failed: %v", err)
	}

	return users, nil
}
