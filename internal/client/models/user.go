// Package models defines the backend data records the client passes through.
// The backend owns these shapes; the client reads fields for display and
// never validates or transforms them.
package models

// User is the authenticated account profile returned by /auth/me.
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ActiveCoachID int64  `json:"active_coach_id"`
}

// UserUpdate carries the editable profile fields for PUT /users/me.
// Empty fields are omitted so the backend keeps their current values.
type UserUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
