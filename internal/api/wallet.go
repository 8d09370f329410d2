package api

import (
	"context"
	"net/url"
)

// Balances fetches wallet balances for userID.
func (c *Client) Balances(ctx context.Context, userID string) (*Balances, error) {
	path := "/wallet/balances/" + url.PathEscape(userID)
	data, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decode[Balances](path, data)
}
