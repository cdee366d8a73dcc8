package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListAgents returns one page of agent accounts. Administrator-only on the
// server side.
func (c *Client) ListAgents(ctx context.Context, input ListAgentsInput) (*AgentPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageOrDefault(input.Page)))
	query.Set("pageSize", strconv.Itoa(pageSizeOrDefault(input.PageSize)))
	if input.Username != "" {
		query.Set("username", input.Username)
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    []User `json:"data"`
		Total   int    `json:"total"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/agents", query, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Message: resp.Message}
	}
	return &AgentPage{Agents: resp.Data, Total: resp.Total}, nil
}

type createAgentRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAgent creates a new agent account and returns it, invite code
// included.
func (c *Client) CreateAgent(ctx context.Context, username, password string) (*User, error) {
	var resp struct {
		Success bool   `json:"success"`
		Data    *User  `json:"data"`
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/agents", nil, createAgentRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Message: resp.Message}
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("create agent response missing user")
	}
	return resp.Data, nil
}

// DeleteAgent removes an agent account. Administrator accounts cannot be
// deleted; the server rejects the attempt.
func (c *Client) DeleteAgent(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/agents/%d", id)
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.Message}
	}
	return nil
}
