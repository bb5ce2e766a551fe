package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/vincera/internal/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]models.UnitSystem{"units": s.workouts.UnitSystem()})
}

// handleSetUnits switches the display unit preference. Historical set values
// are stored as entered and are not converted.
func (s *Server) handleSetUnits(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Units models.UnitSystem `json:"units"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.Units != models.Metric && body.Units != models.Imperial {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "units must be Kg or Lbs"})
		return
	}
	if err := s.workouts.SetUnitSystem(body.Units); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.products.List())
}

func (s *Server) handlePurchaseProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.products.Purchase(id, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": "purchased"})
}
