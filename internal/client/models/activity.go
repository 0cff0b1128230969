package models

import "time"

// Activity is a synced workout. Optional metrics arrive as zero values when
// the backend omits them.
type Activity struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	StartDate       time.Time  `json:"start_date"`
	DistanceKm      float64    `json:"distance_km"`
	DurationMinutes float64    `json:"duration_minutes"`
	AvgPace         float64    `json:"avg_pace"`
	AvgHeartrate    float64    `json:"avg_heartrate"`
	ElevationGain   float64    `json:"elevation_gain"`
	Calories        float64    `json:"calories"`
	Analyzed        bool       `json:"analyzed"`
	Analyses        []Analysis `json:"analyses"`
}

// Analysis is the AI coach's review of one activity.
type Analysis struct {
	TechnicalAnalysis string `json:"technical_analysis"`
	Corrections       string `json:"corrections"`
	Motivation        string `json:"motivation"`
}

// ActivityList is the paginated envelope of GET /activities.
type ActivityList struct {
	Items []Activity `json:"items"`
}
