package models

import "time"

// Notification is a server-generated user notification.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationList is the envelope of GET /notifications.
type NotificationList struct {
	Items []Notification `json:"items"`
}

// StravaStatus reports whether the account is linked to Strava.
type StravaStatus struct {
	Connected bool `json:"connected"`
}
