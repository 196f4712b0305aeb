package client

import (
	"context"
	"fmt"
	"net/http"

	"auction-storefront/internal/models"
	"auction-storefront/utils"
)

// Login authenticates and stores the issued token in the session
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	if err := c.session.SetToken(resp.Token); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	return resp, nil
}

// Logout destroys the local session first, then tells the backend to revoke
// the token. A backend failure is returned but the local session stays cleared.
func (c *Client) Logout(ctx context.Context) error {
	token, err := c.session.Token()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := c.session.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if token == "" {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", nil, "")
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	// the session is already empty, so carry the old token explicitly
	req.Header.Set("Authorization", "Bearer "+token)
	if _, err := c.send(req); err != nil {
		utils.Warn("logout: backend revoke failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ImportUsersCSV uploads a list of user emails
func (c *Client) ImportUsersCSV(ctx context.Context, filename string, data []byte) (models.UserImportResult, error) {
	var result models.UserImportResult
	if err := c.upload(ctx, "/auth/import-users", filename, data, &result); err != nil {
		return models.UserImportResult{}, fmt.Errorf("import users: %w", err)
	}
	return result, nil
}
