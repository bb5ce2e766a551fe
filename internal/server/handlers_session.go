package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/store"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleStartWorkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DayID *string `json:"dayId"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
	}

	day, ok := s.resolveDay(body.DayID)
	if body.DayID != nil && !ok {
		writeError(w, store.ErrNotFound)
		return
	}

	workout, err := s.workouts.Start(day)
	if err != nil {
		writeError(w, err)
		return
	}
	s.log.Info("workout started", "id", workout.ID, "name", workout.Name)
	writeJSON(w, http.StatusCreated, workout)
}

// resolveDay finds the day to start from: an explicit id wins, otherwise the
// current split's scheduled day. A nil result starts an empty workout.
func (s *Server) resolveDay(dayID *string) (*models.Day, bool) {
	if dayID == nil {
		if day, ok := s.splits.CurrentDay(); ok {
			return &day, true
		}
		return nil, false
	}
	if day, ok := s.days.Get(*dayID); ok {
		return &day, true
	}
	for _, split := range s.splits.List() {
		for _, day := range split.Days {
			if day.ID == *dayID {
				return &day, true
			}
		}
	}
	return nil, false
}

func (s *Server) handleActiveWorkout(w http.ResponseWriter, r *http.Request) {
	workout, ok := s.workouts.Active()
	if !ok {
		writeError(w, store.ErrNoActiveWorkout)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleUpdateActive(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.workouts.UpdateActive(workout); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	autoFill := r.URL.Query().Get("autofill") == "true"
	workout, err := s.workouts.Finish(autoFill)
	if err != nil {
		writeError(w, err)
		return
	}
	s.rest.Reset()
	s.log.Info("workout finished", "id", workout.ID, "minutes", workout.Minutes())
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleCancelWorkout(w http.ResponseWriter, r *http.Request) {
	s.workouts.Cancel()
	s.rest.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// Rest timer

func (s *Server) handleTimerState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.rest.Snapshot())
}

func (s *Server) handleTimerAction(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "start":
		s.rest.Start()
	case "pause":
		s.rest.Pause()
	case "resume":
		s.rest.Resume()
	case "reset":
		s.rest.Reset()
	case "duration":
		var body struct {
			Seconds int `json:"seconds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Seconds <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "seconds must be a positive integer"})
			return
		}
		s.rest.SetDuration(time.Duration(body.Seconds) * time.Second)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown timer action"})
		return
	}
	writeJSON(w, http.StatusOK, s.rest.Snapshot())
}
