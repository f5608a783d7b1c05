package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-engine/internal/engine"
	"github.com/jonathan/resume-engine/internal/types"
)

const defaultListLimit = 50

// scoreRequest carries a job description for the read-only analysis path.
type scoreRequest struct {
	JobDescription string `json:"job_description"`
}

// handleScore scores a job description against the career ledger without
// generating anything.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	breakdown, err := s.engine.Score(r.Context(), req.JobDescription)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, breakdown)
}

// handleGenerateResume runs the full generation pipeline. A candidate that
// exhausts the validation attempts is returned with 422 alongside its
// errors; nothing is persisted in that case.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	result, err := s.engine.Generate(r.Context(), req)
	if err != nil {
		var genErr *engine.GenerationError
		if errors.As(err, &genErr) && result != nil {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":             genErr.Error(),
				"document":          result.Document,
				"validation_errors": result.Validation.Errors,
				"analysis":          result.Breakdown,
			})
			return
		}
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"resume":   result.Resume,
		"analysis": result.Breakdown,
	})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	resumes, err := s.store.ListResumes(r.Context(), limit)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleResumeAnalysis returns the score breakdown stored with a resume.
func (s *Server) handleResumeAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	breakdown, err := s.engine.Analysis(r.Context(), id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, breakdown)
}
