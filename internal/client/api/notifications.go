package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// NotificationsAPI wraps the /notifications resource.
type NotificationsAPI struct {
	c *Client
}

// List fetches the user's notifications.
func (n NotificationsAPI) List(ctx context.Context) ([]models.Notification, error) {
	var out models.NotificationList
	if err := n.c.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// MarkAsRead flags one notification as read.
func (n NotificationsAPI) MarkAsRead(ctx context.Context, id int64) error {
	return n.c.do(ctx, http.MethodPost, "/notifications/"+strconv.FormatInt(id, 10)+"/read", nil, nil)
}
