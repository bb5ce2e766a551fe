package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/vincera/internal/models"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestWorkouts verifies the HTTP client sends the timeframe and search params
// and correctly parses the JSON array response.
func TestWorkouts(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/workouts": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("timeframe"); got != "month" {
				t.Errorf("timeframe=%q, want month", got)
			}
			if got := r.URL.Query().Get("search"); got != "push" {
				t.Errorf("search=%q, want push", got)
			}
			writeTestJSON(t, w, []models.Workout{
				{ID: "w1", Name: "Push", Start: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	workouts, err := client.Workouts(context.Background(), models.Month, "push")
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 1 || workouts[0].Name != "Push" {
		t.Fatalf("workouts = %+v, want one named Push", workouts)
	}
}

// TestActiveWorkoutNone verifies a 404 from the session endpoint maps to a
// nil workout without error.
func TestActiveWorkoutNone(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/session": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	workout, err := client.ActiveWorkout(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if workout != nil {
		t.Errorf("active workout = %+v, want nil", workout)
	}
}

// TestAPIKeyHeader verifies the client attaches the X-API-Key header when
// configured.
func TestAPIKeyHeader(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/splits": func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("X-API-Key"); got != "secret" {
				t.Errorf("X-API-Key = %q, want secret", got)
			}
			writeTestJSON(t, w, []models.Split{})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	if _, err := client.Splits(context.Background()); err != nil {
		t.Fatal(err)
	}
}

// TestServerError verifies non-404 error statuses surface as errors.
func TestServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/records": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	if _, err := client.PersonalRecords(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
