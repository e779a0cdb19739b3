package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Login(ctx context.Context, payload LoginPayload) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
