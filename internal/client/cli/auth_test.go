package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcoach/fitcoach/internal/client/api"
	"github.com/fitcoach/fitcoach/internal/client/config"
	"github.com/fitcoach/fitcoach/internal/client/models"
	"github.com/fitcoach/fitcoach/internal/client/session"
	"github.com/fitcoach/fitcoach/internal/client/tokenstore"
	"github.com/fitcoach/fitcoach/internal/logging"
)

func stubInputs(t *testing.T, answers map[string]string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		for key, val := range answers {
			if strings.Contains(prompt, key) {
				return val, nil
			}
		}
		t.Fatalf("unexpected prompt %q", prompt)
		return "", nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// newTestApp wires a real App against an httptest backend and an in-memory
// credential store.
func newTestApp(t *testing.T, h http.Handler) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	db, err := tokenstore.InitDatabase(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logging.NewTextLogger(io.Discard, slog.LevelError)
	tokens := tokenstore.NewSQLiteRepository(db)
	apiClient := api.New(srv.URL, tokens, logger)
	store := session.New(apiClient, tokens, logger)

	out := &bytes.Buffer{}
	return &App{
		config:  &config.Config{APIBaseURL: srv.URL, ToastDelay: time.Second},
		api:     apiClient,
		session: store,
		guard:   session.NewGuard(store),
		tokens:  tokens,
		toast:   NewToast(time.Second),
		log:     logger,
		db:      db,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}, out
}

// handle registers h for path restricted to method; Go 1.21's ServeMux has
// no method patterns.
func handle(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

func authBackend(t *testing.T, token string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	handle(mux, http.MethodPost, "/api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handle(mux, http.MethodPost, "/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	})
	handle(mux, http.MethodGet, "/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Name: "Ana", Email: "ana@example.com"})
	})
	return mux
}

func TestLoginCommand(t *testing.T) {
	a, out := newTestApp(t, authBackend(t, "tok-1"))
	a.session.Bootstrap(context.Background())
	stubInputs(t, map[string]string{"email": "ana@example.com"}, "secret")

	err := a.Login(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome back, Ana!")
	assert.Equal(t, session.StateAuthenticated, a.guardState())
}

func TestRegisterCommand(t *testing.T) {
	a, out := newTestApp(t, authBackend(t, "tok-2"))
	stubInputs(t, map[string]string{"name": "Ana", "email": "ana@example.com"}, "secret")

	err := a.Register(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome, Ana!")
}

func TestLogoutCommand(t *testing.T) {
	a, out := newTestApp(t, authBackend(t, "tok-3"))
	a.session.Bootstrap(context.Background())
	stubInputs(t, map[string]string{"email": "ana@example.com"}, "secret")
	require.NoError(t, a.Login(context.Background()))

	err := a.Logout(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Logged out.")
	assert.Equal(t, session.StateUnauthenticated, a.guardState())
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	a, out := newTestApp(t, authBackend(t, "tok-4"))

	require.NoError(t, a.Whoami(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestWhoami_ShowsTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	a, out := newTestApp(t, authBackend(t, token))
	stubInputs(t, map[string]string{"email": "ana@example.com"}, "secret")
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Whoami(context.Background()))

	assert.Contains(t, out.String(), "Name:  Ana")
	assert.Contains(t, out.String(), "Email: ana@example.com")
	assert.Contains(t, out.String(), "Token expires:")
}
