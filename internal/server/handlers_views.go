package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/claude/vincera/internal/models"
)

func (s *Server) handlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.workouts.PersonalRecords())
}

func (s *Server) handleListTrackers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.workouts.Trackers())
}

func (s *Server) handleAddTrackers(w http.ResponseWriter, r *http.Request) {
	var trackers []models.PRTracker
	if err := json.NewDecoder(r.Body).Decode(&trackers); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.workouts.AddTrackers(trackers); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.workouts.Trackers())
}

func (s *Server) handleDeleteTracker(w http.ResponseWriter, r *http.Request) {
	listID := r.URL.Query().Get("listId")
	unit := models.ExerciseUnit(r.URL.Query().Get("unit"))
	if listID == "" || unit == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "listId and unit parameters required"})
		return
	}
	if err := s.workouts.DeleteTracker(listID, unit); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	volumes := s.workouts.Volume(s.exercises.Lookup, parseTimeframe(r))
	writeJSON(w, http.StatusOK, volumes)
}

func (s *Server) handlePreviousExercises(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query().Get("listIds")
	if ids == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "listIds parameter required"})
		return
	}
	after := r.URL.Query().Get("after")
	previous := s.workouts.PreviousExercises(strings.Split(ids, ","), after)
	writeJSON(w, http.StatusOK, previous)
}
