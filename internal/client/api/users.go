package api

import (
	"context"
	"net/http"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// UsersAPI wraps the /users resource.
type UsersAPI struct {
	c *Client
}

// Update patches the authenticated user's profile.
func (u UsersAPI) Update(ctx context.Context, in models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := u.c.do(ctx, http.MethodPut, "/users/me", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the account permanently.
func (u UsersAPI) Delete(ctx context.Context) error {
	return u.c.do(ctx, http.MethodDelete, "/users/me", nil, nil)
}
