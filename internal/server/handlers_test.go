package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
	"github.com/claude/vincera/internal/store"
	"github.com/claude/vincera/internal/timer"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	rs, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	catalog := []models.ListExercise{
		{ID: "52", Name: "Pull Up", BodyPart: "back", PrimaryGroup: "lats", ExerciseType: "compound", EquipmentType: "bodyweight"},
		{ID: "68", Name: "Barbell Squat", BodyPart: "legs", PrimaryGroup: "quads", ExerciseType: "compound", EquipmentType: "barbell"},
	}
	stores := Stores{
		Splits:    store.NewSplitStore(rs),
		Days:      store.NewDayStore(rs),
		Workouts:  store.NewWorkoutStore(rs),
		Exercises: store.NewExerciseStore(rs, catalog),
		Products:  store.NewProductStore(rs),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(stores, timer.New(time.Minute), "", log)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// TestDayCRUD walks a day through create, get, edit, and delete over HTTP.
func TestDayCRUD(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/days", models.Day{Name: "Push"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var day models.Day
	if err := json.NewDecoder(rec.Body).Decode(&day); err != nil {
		t.Fatal(err)
	}
	if day.ID == "" {
		t.Fatal("created day has no id")
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/days/"+day.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	day.Name = "Push A"
	rec = doJSON(t, srv, http.MethodPut, "/api/v1/days/"+day.ID, day)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/v1/days/"+day.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/days/"+day.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

// TestBuiltinSplitImmutable verifies that deleting a builtin split is rejected
// with a conflict.
func TestBuiltinSplitImmutable(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodDelete, "/api/v1/splits/PUSH_PULL_LEGS", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete builtin status = %d, want 409: %s", rec.Code, rec.Body)
	}
}

// TestSessionFlow drives a workout session from start through finish and
// checks it lands in history.
func TestSessionFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/v1/splits/current", map[string]any{"id": "PUSH_PULL_LEGS"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("select split status = %d, want 204: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/session/start", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var active models.Workout
	if err := json.NewDecoder(rec.Body).Decode(&active); err != nil {
		t.Fatal(err)
	}
	if active.Name != "Push" {
		t.Errorf("active workout name = %q, want %q", active.Name, "Push")
	}

	// A second session while one is active must conflict.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/session/start", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second start status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/session/finish?autofill=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("finish status = %d, want 200: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/workouts", nil)
	var history []models.Workout
	if err := json.NewDecoder(rec.Body).Decode(&history); err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].End == nil {
		t.Error("finished workout has no end time")
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/session", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("active after finish status = %d, want 404", rec.Code)
	}
}

// TestSessionEndResetsTimer verifies that finishing or cancelling a session
// stops the rest timer and restores the full duration.
func TestSessionEndResetsTimer(t *testing.T) {
	srv := newTestServer(t)

	timerState := func() timer.Snapshot {
		t.Helper()
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/timer", nil)
		var snap timer.Snapshot
		if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
			t.Fatal(err)
		}
		return snap
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/session/start", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d, want 201: %s", rec.Code, rec.Body)
	}
	doJSON(t, srv, http.MethodPost, "/api/v1/timer/start", nil)
	if got := timerState(); got.State != timer.StateRunning {
		t.Fatalf("state after timer start = %q, want running", got.State)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/session/cancel", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("cancel status = %d, want 204", rec.Code)
	}
	if got := timerState(); got.State != timer.StateIdle || got.Remaining != got.Duration {
		t.Fatalf("timer after cancel = %+v, want idle at full duration", got)
	}

	doJSON(t, srv, http.MethodPost, "/api/v1/session/start", nil)
	doJSON(t, srv, http.MethodPost, "/api/v1/timer/start", nil)
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/session/finish?autofill=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("finish status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if got := timerState(); got.State != timer.StateIdle || got.Remaining != got.Duration {
		t.Fatalf("timer after finish = %+v, want idle at full duration", got)
	}
}

// TestCatalogExerciseImmutable verifies that catalog entries cannot be edited
// or deleted, while custom exercises can.
func TestCatalogExerciseImmutable(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodDelete, "/api/v1/exercises/52", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete catalog entry status = %d, want 409: %s", rec.Code, rec.Body)
	}

	custom := models.ListExercise{Name: "Band Pull Apart", BodyPart: "shoulders",
		PrimaryGroup: "rear delts", ExerciseType: "isolation", EquipmentType: "cable"}
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/exercises", custom)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create custom status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var created models.ListExercise
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/v1/exercises/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete custom status = %d, want 204: %s", rec.Code, rec.Body)
	}
}

// TestShareRoundTrip exports a builtin split and imports it again under a
// fresh identity.
func TestShareRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/splits/PUSH_PULL_LEGS/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".vincera") {
		t.Errorf("Content-Disposition = %q, want a .vincera attachment", cd)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/splits/import", bytes.NewReader(rec.Body.Bytes()))
	rec2 := httptest.NewRecorder()
	srv.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("import status = %d, want 201: %s", rec2.Code, rec2.Body)
	}
	var imported models.Split
	if err := json.NewDecoder(rec2.Body).Decode(&imported); err != nil {
		t.Fatal(err)
	}
	if imported.ID == "PUSH_PULL_LEGS" {
		t.Error("imported split kept the original id, want a fresh one")
	}
	if imported.Name != "Push Pull Legs" {
		t.Errorf("imported name = %q, want %q", imported.Name, "Push Pull Legs")
	}
}

// TestVolumeEndpointSorted verifies the volume breakdown arrives ordered by
// descending share, zero-filled parts last.
func TestVolumeEndpointSorted(t *testing.T) {
	srv := newTestServer(t)

	w := models.Workout{
		Name:  "Pull",
		Start: time.Now(),
		Exercises: models.ExerciseGroups{{
			models.NewPlannedExercise("52", 8, 8, 8),
			models.NewPlannedExercise("68", 5),
		}},
	}
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/workouts", w)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create workout status = %d, want 201: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/volume", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("volume status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var volumes []models.Volume
	if err := json.NewDecoder(rec.Body).Decode(&volumes); err != nil {
		t.Fatal(err)
	}
	if len(volumes) != len(models.BodyParts) {
		t.Fatalf("volume parts = %d, want %d", len(volumes), len(models.BodyParts))
	}
	if volumes[0].BodyPart != models.Back || volumes[0].Sets != 3 {
		t.Errorf("top volume = %+v, want back with 3 sets", volumes[0])
	}
	if volumes[1].BodyPart != models.Legs || volumes[1].Sets != 1 {
		t.Errorf("second volume = %+v, want legs with 1 set", volumes[1])
	}
	for _, v := range volumes[2:] {
		if v.Sets != 0 {
			t.Errorf("unexpected sets for %s: %d", v.BodyPart, v.Sets)
		}
	}
}

// TestUnitsEndpoint verifies the unit preference round-trips and rejects
// unknown systems.
func TestUnitsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/v1/settings/units", map[string]string{"units": "Kg"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("set units status = %d, want 204: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/settings/units", nil)
	var body map[string]models.UnitSystem
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["units"] != models.Metric {
		t.Errorf("units = %q, want %q", body["units"], models.Metric)
	}

	rec = doJSON(t, srv, http.MethodPut, "/api/v1/settings/units", map[string]string{"units": "stone"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid units status = %d, want 400", rec.Code)
	}
}

// TestTimerEndpoints verifies timer state transitions over HTTP.
func TestTimerEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/timer", nil)
	var snap timer.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.State != timer.StateIdle {
		t.Errorf("initial state = %q, want idle", snap.State)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/timer/start", nil)
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.State != timer.StateRunning {
		t.Errorf("state after start = %q, want running", snap.State)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/timer/bogus", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bogus action status = %d, want 400", rec.Code)
	}
}
