package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitcoach/fitcoach/internal/client/models"
)

// DefaultHistoryLimit is the chat-history depth fetched by default.
const DefaultHistoryLimit = 50

// CoachAPI wraps the /coach resource.
type CoachAPI struct {
	c *Client
}

type chatRequest struct {
	Content string `json:"content"`
}

type chatResponse struct {
	Message string `json:"message"`
}

// Personalities lists the selectable coach personas.
func (c CoachAPI) Personalities(ctx context.Context) ([]models.CoachPersonality, error) {
	var out models.CoachPersonalityList
	if err := c.c.do(ctx, http.MethodGet, "/coach/personalities", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Active returns the currently selected persona.
func (c CoachAPI) Active(ctx context.Context) (*models.CoachPersonality, error) {
	var out models.CoachPersonality
	if err := c.c.do(ctx, http.MethodGet, "/coach/active", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetActive selects the persona with the given id.
func (c CoachAPI) SetActive(ctx context.Context, id int64) error {
	return c.c.do(ctx, http.MethodPut, "/coach/active/"+strconv.FormatInt(id, 10), nil, nil)
}

// Chat sends one user message and returns the coach's reply.
func (c CoachAPI) Chat(ctx context.Context, content string) (string, error) {
	var out chatResponse
	if err := c.c.do(ctx, http.MethodPost, "/coach/chat", chatRequest{Content: content}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// History fetches the most recent limit messages of the conversation.
// A non-positive limit falls back to DefaultHistoryLimit.
func (c CoachAPI) History(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var out models.ChatHistory
	err := c.c.do(ctx, http.MethodGet, "/coach/chat/history", nil, &out,
		WithQuery("limit", strconv.Itoa(limit)))
	if err != nil {
		return nil, err
	}
	return out.Messages, nil
}
