package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// DefaultPageSize applies to activity listings when the caller passes a
// non-positive size.
const DefaultPageSize = 20

// ActivitiesAPI wraps the /activities resource.
type ActivitiesAPI struct {
	c *Client
}

// List fetches one page of activities. Page numbering starts at 1.
func (a ActivitiesAPI) List(ctx context.Context, page, pageSize int) ([]models.Activity, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var out models.ActivityList
	err := a.c.do(ctx, http.MethodGet, "/activities", nil, &out,
		WithQuery("page", strconv.Itoa(page)),
		WithQuery("page_size", strconv.Itoa(pageSize)))
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Get fetches a single activity with its analyses.
func (a ActivitiesAPI) Get(ctx context.Context, id int64) (*models.Activity, error) {
	var out models.Activity
	if err := a.c.do(ctx, http.MethodGet, "/activities/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze asks the AI coach to review the activity. With force set, an
// existing analysis is regenerated.
func (a ActivitiesAPI) Analyze(ctx context.Context, id int64, force bool) error {
	return a.c.do(ctx, http.MethodPost, "/activities/"+strconv.FormatInt(id, 10)+"/analyze", nil, nil,
		WithQuery("force", strconv.FormatBool(force)))
}
