package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/skill-extractor/internal/db"
	"github.com/jonathan/skill-extractor/internal/server/middleware"
)

// handleListExtractions lists the authenticated user's saved extractions.
func (s *Server) handleListExtractions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filters := db.ExtractionFilters{
		UserID: userID,
		Limit:  parseQueryInt(r, "limit", 50, 200),
	}
	if source := r.URL.Query().Get("source"); source != "" {
		filters.Source = source
	}

	extractions, err := s.db.ListExtractions(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"extractions": extractions,
		"count":       len(extractions),
	})
}

// handleGetExtraction retrieves one of the user's saved extractions.
func (s *Server) handleGetExtraction(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid extraction ID")
		return
	}

	extraction, err := s.db.GetExtraction(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if extraction == nil || !ownedBy(extraction.UserID, userID) {
		s.errorResponse(w, http.StatusNotFound, "Extraction not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, extraction)
}

// handleDeleteExtraction deletes one of the user's saved extractions.
func (s *Server) handleDeleteExtraction(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid extraction ID")
		return
	}

	extraction, err := s.db.GetExtraction(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if extraction == nil || !ownedBy(extraction.UserID, userID) {
		s.errorResponse(w, http.StatusNotFound, "Extraction not found")
		return
	}

	if err := s.db.DeleteExtraction(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListGapSnapshots lists the authenticated user's gap snapshots.
func (s *Server) handleListGapSnapshots(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshots, err := s.db.ListGapSnapshots(r.Context(), userID, parseQueryInt(r, "limit", 50, 200))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// handleGetGapSnapshot retrieves one of the user's gap snapshots.
func (s *Server) handleGetGapSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid snapshot ID")
		return
	}

	snapshot, err := s.db.GetGapSnapshot(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if snapshot == nil || !ownedBy(snapshot.UserID, userID) {
		s.errorResponse(w, http.StatusNotFound, "Gap snapshot not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleDeleteGapSnapshot deletes one of the user's gap snapshots.
func (s *Server) handleDeleteGapSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid snapshot ID")
		return
	}

	snapshot, err := s.db.GetGapSnapshot(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if snapshot == nil || !ownedBy(snapshot.UserID, userID) {
		s.errorResponse(w, http.StatusNotFound, "Gap snapshot not found")
		return
	}

	if err := s.db.DeleteGapSnapshot(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownedBy reports whether a snapshot owner matches the authenticated user.
// Rows saved anonymously belong to nobody.
func ownedBy(owner *uuid.UUID, userID uuid.UUID) bool {
	return owner != nil && *owner == userID
}
