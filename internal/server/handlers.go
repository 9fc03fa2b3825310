package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/skill-extractor/internal/db"
	"github.com/jonathan/skill-extractor/internal/ingestion"
	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/types"
)

// ExtractResponse is the response for POST /extract.
type ExtractResponse struct {
	Keywords     []keywords.Keyword `json:"keywords"`
	ExtractionID *uuid.UUID         `json:"extraction_id,omitempty"`
}

// handleExtract runs keyword extraction over the submitted texts.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	kws, err := s.extractor.Extract(r.Context(), req.Texts, req.TopK)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Extraction failed: "+err.Error())
		return
	}

	resp := ExtractResponse{Keywords: kws}

	if req.Save {
		saved, err := s.db.SaveExtraction(r.Context(), &db.ExtractionCreateInput{
			UserID:   s.optionalUserID(r),
			Source:   "text",
			Keywords: kws,
		})
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save extraction: "+err.Error())
			return
		}
		resp.ExtractionID = &saved.ID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleNormalizeSkills maps raw skill terms onto the canonical vocabulary.
func (s *Server) handleNormalizeSkills(w http.ResponseWriter, r *http.Request) {
	var req types.NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	normalized, err := s.skills.NormalizeSkills(r.Context(), req.Terms)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Normalization failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": normalized})
}

// handleProfileSkills derives the canonical skill set of a resume.
func (s *Server) handleProfileSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills := s.skills.ComputeProfileSkills(r.Context(), req.Resume)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleJobSkills derives the canonical skill set of a job posting.
func (s *Server) handleJobSkills(w http.ResponseWriter, r *http.Request) {
	var req types.JobSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills := s.skills.ComputeJobSkills(r.Context(), req.Job)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// GapResponse is the response for POST /gap.
type GapResponse struct {
	Matched    []string   `json:"matched"`
	Missing    []string   `json:"missing"`
	SnapshotID *uuid.UUID `json:"snapshot_id,omitempty"`
}

// handleGap computes the skill gap between a profile and a job.
func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	var req types.GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.ProfileSkills) == 0 && req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "profile_skills or resume is required")
		return
	}
	if len(req.JobSkills) == 0 && req.Job == nil {
		s.errorResponse(w, http.StatusBadRequest, "job_skills or job is required")
		return
	}

	result, err := s.computeGap(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Gap computation failed: "+err.Error())
		return
	}

	resp := GapResponse{Matched: result.Matched, Missing: result.Missing}

	if req.Save {
		jobURL := ""
		if req.Job != nil {
			jobURL = req.Job.URL
		}
		saved, err := s.db.SaveGapSnapshot(r.Context(), s.optionalUserID(r), jobURL, result.Matched, result.Missing)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save gap snapshot: "+err.Error())
			return
		}
		resp.SnapshotID = &saved.ID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// IngestJobRequest is the payload for POST /jobs/ingest.
type IngestJobRequest struct {
	URL     string `json:"url"`
	Extract bool   `json:"extract,omitempty"`
	TopK    int    `json:"top_k,omitempty"`
}

// IngestJobResponse is the response for POST /jobs/ingest.
type IngestJobResponse struct {
	Text     string              `json:"text"`
	Metadata *ingestion.Metadata `json:"metadata"`
	Keywords []keywords.Keyword  `json:"keywords,omitempty"`
}

// handleIngestJob fetches a job posting URL, caches it, and optionally
// runs keyword extraction on the cleaned text.
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req IngestJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	text, metadata, err := ingestion.IngestFromURL(r.Context(), req.URL, &ingestion.URLOptions{
		Fetcher: s.fetcher,
	})
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Ingestion failed: "+err.Error())
		return
	}

	resp := IngestJobResponse{Text: text, Metadata: metadata}

	if req.Extract {
		kws, err := s.extractor.Extract(r.Context(), []string{text}, req.TopK)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Extraction failed: "+err.Error())
			return
		}
		resp.Keywords = kws
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// optionalUserID returns the user ID from a bearer token when one is
// supplied; unauthenticated requests get nil.
func (s *Server) optionalUserID(r *http.Request) *uuid.UUID {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil
	}
	id := claims.UserID
	return &id
}

// parseQueryInt parses an integer query parameter with a default and an
// optional cap (0 means uncapped).
func parseQueryInt(r *http.Request, name string, def, cap int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return def
	}
	if cap > 0 && value > cap {
		return cap
	}
	return value
}
