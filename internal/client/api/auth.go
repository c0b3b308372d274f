package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/challengehub/internal/client/models"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
)

const (
	msgRegisterFailed    = "Registration failed."
	msgLoginFailed       = "Login failed."
	msgCurrentUserFailed = "Failed to fetch user data."
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	var res models.AuthResult
	r := &transport.Request{Method: http.MethodPost, Path: "/auth/login", Body: creds}
	if err := c.call(ctx, r, &res, msgLoginFailed); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	var res models.AuthResult
	r := &transport.Request{Method: http.MethodPost, Path: "/auth/register", Body: reg}
	if err := c.call(ctx, r, &res, msgRegisterFailed); err != nil {
		return nil, err
	}
	return &res, nil
}

// CurrentUser resolves the account behind the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var res struct {
		User *models.User `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", &res, msgCurrentUserFailed); err != nil {
		return nil, err
	}
	return res.User, nil
}
