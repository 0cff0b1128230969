package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// DefaultSyncLimit is the number of activities pulled per sync when the
// caller does not say otherwise.
const DefaultSyncLimit = 30

// StravaAPI wraps the /strava resource.
type StravaAPI struct {
	c *Client
}

type connectResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

// ConnectURL returns the OAuth authorization URL the user must visit to
// link their Strava account.
func (s StravaAPI) ConnectURL(ctx context.Context) (string, error) {
	var out connectResponse
	if err := s.c.do(ctx, http.MethodGet, "/strava/connect", nil, &out); err != nil {
		return "", err
	}
	return out.AuthorizationURL, nil
}

// Disconnect unlinks the Strava account.
func (s StravaAPI) Disconnect(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/strava/disconnect", nil, nil)
}

// Status reports whether a Strava account is linked.
func (s StravaAPI) Status(ctx context.Context) (*models.StravaStatus, error) {
	var out models.StravaStatus
	if err := s.c.do(ctx, http.MethodGet, "/strava/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sync pulls the latest limit activities from Strava. A non-positive limit
// falls back to DefaultSyncLimit.
func (s StravaAPI) Sync(ctx context.Context, limit int) error {
	if limit <= 0 {
		limit = DefaultSyncLimit
	}
	return s.c.do(ctx, http.MethodPost, "/strava/sync", nil, nil,
		WithQuery("limit", strconv.Itoa(limit)))
}
