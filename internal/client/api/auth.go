package api

import (
	"context"
	"net/http"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// AuthAPI wraps the /auth resource.
type AuthAPI struct {
	c *Client
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates a new account. It does not log in.
func (a AuthAPI) Register(ctx context.Context, name, email, password string) error {
	body := registerRequest{Name: name, Email: email, Password: password}
	return a.c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Login exchanges credentials for a bearer token.
func (a AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	body := loginRequest{Email: email, Password: password}
	var out loginResponse
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me fetches the profile of the authenticated user.
func (a AuthAPI) Me(ctx context.Context, opts ...RequestOption) (*models.User, error) {
	var out models.User
	if err := a.c.do(ctx, http.MethodGet, "/auth/me", nil, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}
