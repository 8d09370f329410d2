package api

import (
	"context"
	"net/http"
)

// Register creates an account. Email is collected later, during KYC.
func (c *Client) Register(ctx context.Context, userID, password string) (*RegisterResponse, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/register", Credentials{UserID: userID, Password: password}, false)
	if err != nil {
		return nil, err
	}
	return decode[RegisterResponse]("/auth/register", data)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, userID, password string) (*LoginResponse, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", Credentials{UserID: userID, Password: password}, false)
	if err != nil {
		return nil, err
	}
	return decode[LoginResponse]("/auth/login", data)
}
