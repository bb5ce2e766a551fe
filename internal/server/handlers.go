package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/store"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errStatus(err), map[string]string{"error": err.Error()})
}

// errStatus maps store errors to HTTP status codes. Persistence failures
// surface as 500; the mutation has already been rolled back.
func errStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNoActiveWorkout):
		return http.StatusNotFound
	case errors.Is(err, store.ErrImmutable), errors.Is(err, store.ErrExistingWorkout):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidWorkout):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func parseTimeframe(r *http.Request) models.Timeframe {
	switch t := models.Timeframe(r.URL.Query().Get("timeframe")); t {
	case models.Week, models.Month, models.Year:
		return t
	}
	return models.AllTime
}

// Splits

func (s *Server) handleListSplits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.splits.List())
}

func (s *Server) handleGetSplit(w http.ResponseWriter, r *http.Request) {
	split, ok := s.splits.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, store.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, split)
}

func (s *Server) handleCreateSplit(w http.ResponseWriter, r *http.Request) {
	var split models.Split
	if err := json.NewDecoder(r.Body).Decode(&split); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if split.ID == "" {
		split.ID = models.NewID()
	}
	if err := s.splits.Create(split); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, split)
}

func (s *Server) handleEditSplit(w http.ResponseWriter, r *http.Request) {
	var split models.Split
	if err := json.NewDecoder(r.Body).Decode(&split); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	split.ID = chi.URLParam(r, "id")
	if err := s.splits.Edit(split); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, split)
}

func (s *Server) handleDeleteSplit(w http.ResponseWriter, r *http.Request) {
	if err := s.splits.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentSplit(w http.ResponseWriter, r *http.Request) {
	split, ok := s.splits.Current()
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	day, _ := s.splits.CurrentDay()
	writeJSON(w, http.StatusOK, map[string]any{"split": split, "day": day})
}

func (s *Server) handleSelectSplit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID *string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.splits.Select(body.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetDayIndex(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.splits.SetDayIndex(body.Index); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNextDay(w http.ResponseWriter, r *http.Request) {
	if err := s.splits.NextDay(); err != nil {
		writeError(w, err)
		return
	}
	day, _ := s.splits.CurrentDay()
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handlePrevDay(w http.ResponseWriter, r *http.Request) {
	if err := s.splits.PrevDay(); err != nil {
		writeError(w, err)
		return
	}
	day, _ := s.splits.CurrentDay()
	writeJSON(w, http.StatusOK, day)
}

// Days

func (s *Server) handleListDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.days.List())
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := s.days.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, store.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleCreateDay(w http.ResponseWriter, r *http.Request) {
	var day models.Day
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if day.ID == "" {
		day.ID = models.NewID()
	}
	if err := s.days.Create(day); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, day)
}

func (s *Server) handleEditDay(w http.ResponseWriter, r *http.Request) {
	var day models.Day
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	day.ID = chi.URLParam(r, "id")
	if err := s.days.Edit(day); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	if err := s.days.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Workouts

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	writeJSON(w, http.StatusOK, s.workouts.Filtered(search, parseTimeframe(r)))
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, ok := s.workouts.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, store.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if workout.ID == "" {
		workout.ID = models.NewID()
	}
	if err := s.workouts.Create(workout); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (s *Server) handleEditWorkout(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workout.ID = chi.URLParam(r, "id")
	if err := s.workouts.Edit(workout); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := s.workouts.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
