package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// RoutinesAPI wraps the /routines resource.
type RoutinesAPI struct {
	c *Client
}

func routinePath(id int64) string {
	return "/routines/" + strconv.FormatInt(id, 10)
}

// List fetches all routines of the user.
func (r RoutinesAPI) List(ctx context.Context) ([]models.Routine, error) {
	var out models.RoutineList
	if err := r.c.do(ctx, http.MethodGet, "/routines", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Create stores a new routine and returns it as the backend saved it.
func (r RoutinesAPI) Create(ctx context.Context, in models.RoutineRequest) (*models.Routine, error) {
	var out models.Routine
	if err := r.c.do(ctx, http.MethodPost, "/routines", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one routine.
func (r RoutinesAPI) Get(ctx context.Context, id int64) (*models.Routine, error) {
	var out models.Routine
	if err := r.c.do(ctx, http.MethodGet, routinePath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a routine.
func (r RoutinesAPI) Update(ctx context.Context, id int64, in models.RoutineRequest) (*models.Routine, error) {
	var out models.Routine
	if err := r.c.do(ctx, http.MethodPut, routinePath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a routine.
func (r RoutinesAPI) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, routinePath(id), nil, nil)
}

// Compliance returns the backend's adherence report for a routine. The
// report shape is backend-defined and passed through untouched.
func (r RoutinesAPI) Compliance(ctx context.Context, id int64) (map[string]any, error) {
	var out map[string]any
	if err := r.c.do(ctx, http.MethodGet, routinePath(id)+"/compliance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
