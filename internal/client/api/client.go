package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/fitcoach/fitcoach/internal/logging"
)

// apiPrefix is the fixed mount point of the backend REST surface.
const apiPrefix = "/api/v1"

// TokenSource supplies the currently persisted bearer credential.
// An empty string means no credential is stored.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Client is the shared gateway all resource clients funnel through.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	Auth          AuthAPI
	Users         UsersAPI
	Strava        StravaAPI
	Activities    ActivitiesAPI
	Coach         CoachAPI
	Routines      RoutinesAPI
	Notifications NotificationsAPI
}

// New builds a Client for the backend at baseURL. The token source is read
// on every outbound request; the session store remains the only writer.
func New(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
	c.Auth = AuthAPI{c}
	c.Users = UsersAPI{c}
	c.Strava = StravaAPI{c}
	c.Activities = ActivitiesAPI{c}
	c.Coach = CoachAPI{c}
	c.Routines = RoutinesAPI{c}
	c.Notifications = NotificationsAPI{c}
	return c
}

type requestOptions struct {
	header   http.Header
	query    url.Values
	token    string
	hasToken bool
}

// RequestOption customizes a single gateway call.
type RequestOption func(*requestOptions)

// WithHeader adds an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Add(key, value)
	}
}

// WithQuery adds a query-string parameter.
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.query.Set(key, value)
	}
}

// WithToken sends the given bearer credential instead of the persisted one.
// The login flow uses it to verify a freshly exchanged token before the
// session store persists it.
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
		o.hasToken = true
	}
}

// do performs one round trip: build URL, serialize body, attach credential,
// issue the call, and decode the success body into out (out may be nil).
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	ro := requestOptions{header: http.Header{}, query: url.Values{}}
	for _, opt := range opts {
		opt(&ro)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + apiPrefix + endpoint
	if len(ro.query) > 0 {
		u += "?" + ro.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for key, values := range ro.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	token := ro.token
	if !ro.hasToken {
		token, err = c.tokens.Get(ctx)
		if err != nil {
			return err
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api call", "method", method, "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
