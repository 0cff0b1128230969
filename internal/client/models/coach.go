package models

import "time"

// CoachPersonality is one selectable AI coach persona.
type CoachPersonality struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ChatMessage is one entry of the coach conversation.
type ChatMessage struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	IsFromUser bool      `json:"is_from_user"`
	CreatedAt  time.Time `json:"created_at"`
}

// CoachPersonalityList is the envelope of GET /coach/personalities.
type CoachPersonalityList struct {
	Items []CoachPersonality `json:"items"`
}

// ChatHistory is the envelope of GET /coach/chat/history.
type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
}
