package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Health is the body of GET /health.
type Health struct {
	OK     bool
	Symbol string
}

type healthWire struct {
	OK     *bool   `json:"ok"`
	Symbol *string `json:"symbol"`
}

// Health calls /health. Bodies that are not JSON objects with a boolean "ok"
// and a string "symbol" yield a *DecodeError.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	data, err := c.do(ctx, http.MethodGet, "/health", nil, false)
	if err != nil {
		return nil, err
	}

	var wire healthWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &DecodeError{Path: "/health", Err: err}
	}
	switch {
	case wire.OK == nil:
		return nil, &DecodeError{Path: "/health", Err: errors.New(`missing field "ok"`)}
	case wire.Symbol == nil:
		return nil, &DecodeError{Path: "/health", Err: errors.New(`missing field "symbol"`)}
	}
	return &Health{OK: *wire.OK, Symbol: *wire.Symbol}, nil
}
