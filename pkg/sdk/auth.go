package sdk

import (
	"context"
	"fmt"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// Login exchanges a username and password for a bearer token and the
// caller's identity. A rejected login returns an *APIError carrying the
// server's message.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Message: resp.Message}
	}
	if resp.Token == "" || resp.User == nil {
		return nil, fmt.Errorf("login response missing token or user")
	}
	return &LoginResult{Token: resp.Token, User: *resp.User}, nil
}

// Logout tells the server to discard the current session. The client-side
// session teardown happens regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.Message}
	}
	return nil
}

// Me returns the identity of the authenticated caller.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type resetPasswordRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword changes the password of the given account after verifying
// the current one.
func (c *Client) ResetPassword(ctx context.Context, username, password, newPassword string) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil,
		resetPasswordRequest{Username: username, Password: password, NewPassword: newPassword}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.Message}
	}
	return nil
}
