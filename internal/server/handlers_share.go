package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/share"
	"github.com/claude/vincera/internal/store"
	"github.com/go-chi/chi/v5"
)

// handleExportSplit serves a split as a shareable document. The default is
// the .vincera JSON file; format=compact returns the base64 string form.
func (s *Server) handleExportSplit(w http.ResponseWriter, r *http.Request) {
	split, ok := s.splits.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, store.ErrNotFound)
		return
	}

	if r.URL.Query().Get("format") == "compact" {
		writeJSON(w, http.StatusOK, map[string]string{"compact": share.CompressSplit(split)})
		return
	}

	data, err := share.Encode(split)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+split.Name+share.Extension+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleImportSplit accepts either a .vincera file body or a compact string
// (format=compact) and adds the split under a fresh identity.
func (s *Server) handleImportSplit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	var split models.Split
	var decodeErr error
	if r.URL.Query().Get("format") == "compact" {
		split, decodeErr = share.DecompressSplit(strings.TrimSpace(string(body)))
	} else {
		split, decodeErr = share.Import(body)
	}
	if decodeErr != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": decodeErr.Error()})
		return
	}

	if err := s.splits.Create(split); err != nil {
		writeError(w, err)
		return
	}
	s.log.Info("split imported", "id", split.ID, "name", split.Name)
	writeJSON(w, http.StatusCreated, split)
}
