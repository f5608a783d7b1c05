package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-engine/internal/types"
)

// handleRefine processes one chat refinement turn against a generated
// resume. Requires an LLM client; without one the endpoint is disabled.
func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	if s.loop == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "chat refinement requires an LLM API key")
		return
	}

	var req types.RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	resp, err := s.loop.Refine(r.Context(), req)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListChat returns a resume's refinement history in order.
func (s *Server) handleListChat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Confirm the resume exists so a bad id is a 404, not an empty list.
	if _, err := s.store.GetResume(r.Context(), id); err != nil {
		s.domainError(w, err)
		return
	}

	turns, err := s.store.ListChatTurns(r.Context(), id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if turns == nil {
		turns = []types.ChatTurn{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"turns": turns})
}
