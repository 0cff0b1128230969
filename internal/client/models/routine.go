package models

// Routine is a weekly training plan.
type Routine struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	IsActive bool         `json:"is_active"`
	Days     []RoutineDay `json:"days"`
}

// RoutineDay marks one scheduled day; DayOfWeek is 0-based starting Monday.
type RoutineDay struct {
	DayOfWeek   int    `json:"day_of_week"`
	Description string `json:"description,omitempty"`
}

// RoutineRequest is the create/update payload for /routines.
type RoutineRequest struct {
	Name     string       `json:"name"`
	IsActive bool         `json:"is_active"`
	Days     []RoutineDay `json:"days"`
}

// RoutineList is the envelope of GET /routines.
type RoutineList struct {
	Items []Routine `json:"items"`
}
