package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/store"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	f := store.Filter{Search: r.URL.Query().Get("search")}
	for _, v := range splitParam(r.URL.Query().Get("types")) {
		f.ExerciseTypes = append(f.ExerciseTypes, models.ExerciseType(v))
	}
	for _, v := range splitParam(r.URL.Query().Get("equipment")) {
		f.EquipmentTypes = append(f.EquipmentTypes, models.EquipmentType(v))
	}
	for _, v := range splitParam(r.URL.Query().Get("bodyParts")) {
		f.BodyParts = append(f.BodyParts, models.BodyPart(v))
	}
	writeJSON(w, http.StatusOK, s.exercises.ListFiltered(f))
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	e, ok := s.exercises.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, store.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var e models.ListExercise
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if e.ID == "" {
		e.ID = models.NewID()
	}
	if e.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if err := s.exercises.Create(e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleEditExercise(w http.ResponseWriter, r *http.Request) {
	var e models.ListExercise
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	e.ID = chi.URLParam(r, "id")
	if err := s.exercises.Edit(e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := s.exercises.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
