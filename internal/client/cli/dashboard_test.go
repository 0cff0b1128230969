package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcoach/fitcoach/internal/client/models"
	"github.com/fitcoach/fitcoach/internal/client/session"
)

type dashboardBackend struct {
	statusCode     int
	activitiesCode int
	coachCode      int
	motivation     string

	// motivationDelay holds the daily-motivation response back so tests can
	// change the view before the background fetch lands.
	motivationDelay time.Duration
}

func (b *dashboardBackend) handler() http.Handler {
	code := func(c int) int {
		if c == 0 {
			return http.StatusOK
		}
		return c
	}
	mux := http.NewServeMux()
	handle(mux, http.MethodGet, "/api/v1/strava/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code(b.statusCode))
		_ = json.NewEncoder(w).Encode(models.StravaStatus{Connected: true})
	})
	handle(mux, http.MethodGet, "/api/v1/activities", func(w http.ResponseWriter, r *http.Request) {
		if code(b.activitiesCode) != http.StatusOK {
			w.WriteHeader(b.activitiesCode)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
			return
		}
		_ = json.NewEncoder(w).Encode(models.ActivityList{Items: []models.Activity{
			{ID: 1, Name: "Morning Run", DistanceKm: 5.2},
			{ID: 2, Name: "Evening Run", DistanceKm: 4.8},
		}})
	})
	handle(mux, http.MethodGet, "/api/v1/coach/active", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code(b.coachCode))
		_ = json.NewEncoder(w).Encode(models.CoachPersonality{ID: 3, Name: "Motivator", Icon: "🔥"})
	})
	handle(mux, http.MethodGet, "/api/v1/motivation/daily", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(b.motivationDelay)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": b.motivation})
	})
	return mux
}

func TestLoadDashboard_JoinsAllCalls(t *testing.T) {
	a, _ := newTestApp(t, (&dashboardBackend{}).handler())

	d, err := a.loadDashboard(context.Background())

	require.NoError(t, err)
	assert.True(t, d.status.Connected)
	assert.Equal(t, "Motivator", d.coach.Name)
	assert.Len(t, d.recent, 2)
}

func TestLoadDashboard_ActivitiesFailureFallsBack(t *testing.T) {
	a, _ := newTestApp(t, (&dashboardBackend{activitiesCode: http.StatusInternalServerError}).handler())

	d, err := a.loadDashboard(context.Background())

	require.NoError(t, err)
	assert.Empty(t, d.recent)
	assert.True(t, d.status.Connected)
}

func TestLoadDashboard_CoachFailureFailsLoad(t *testing.T) {
	a, _ := newTestApp(t, (&dashboardBackend{coachCode: http.StatusBadGateway}).handler())

	_, err := a.loadDashboard(context.Background())

	require.Error(t, err)
}

func TestDashboard_MotivationToastOnSameView(t *testing.T) {
	a, out := newTestApp(t, (&dashboardBackend{motivation: "Keep going!"}).handler())
	a.session.SetUser(models.User{ID: 1, Name: "Ana", Email: "ana@example.com"})

	require.NoError(t, a.Dashboard(context.Background()))

	assert.Contains(t, out.String(), "Hola, Ana!")
	assert.Eventually(t, func() bool {
		return a.toast.Message() == "Keep going!"
	}, time.Second, 10*time.Millisecond)
}

func TestDashboard_StaleMotivationDiscarded(t *testing.T) {
	b := &dashboardBackend{motivation: "Too late", motivationDelay: 100 * time.Millisecond}
	a, _ := newTestApp(t, b.handler())
	a.session.SetUser(models.User{ID: 1, Name: "Ana", Email: "ana@example.com"})

	require.NoError(t, a.Dashboard(context.Background()))
	a.nextView() // the user moved on before the background fetch landed

	assert.Never(t, func() bool {
		return a.toast.Message() != ""
	}, 400*time.Millisecond, 20*time.Millisecond)
}

func TestMotivationCommand(t *testing.T) {
	a, out := newTestApp(t, (&dashboardBackend{motivation: "Un paso más"}).handler())

	require.NoError(t, a.Motivation(context.Background()))
	assert.Contains(t, out.String(), "Un paso más")
}

func TestGuardStateTransitions(t *testing.T) {
	a, _ := newTestApp(t, (&dashboardBackend{}).handler())

	assert.Equal(t, session.StateLoading, a.guardState())

	a.session.Bootstrap(context.Background())
	assert.Equal(t, session.StateUnauthenticated, a.guardState())

	a.session.SetUser(models.User{ID: 1, Name: "Ana"})
	assert.Equal(t, session.StateAuthenticated, a.guardState())
}
