package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/resume-engine/internal/types"
)

// parseDate parses an optional YYYY-MM-DD value. Request validation has
// already checked the format, so a parse failure maps to nil.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	proficiency := req.Proficiency
	if proficiency == 0 {
		proficiency = 3
	}
	skill, err := s.store.CreateSkill(r.Context(), types.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: proficiency,
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, skill)
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListSkills(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var req types.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	proficiency := req.Proficiency
	if proficiency == 0 {
		proficiency = 3
	}
	skill, err := s.store.UpdateSkill(r.Context(), types.Skill{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: proficiency,
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, skill)
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteSkill(r.Context(), id); err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	project, err := s.store.CreateProject(r.Context(), types.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Impact:       req.Impact,
		Domain:       req.Domain,
		URL:          req.URL,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, project)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"projects": projects})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	project, err := s.store.UpdateProject(r.Context(), types.Project{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Impact:       req.Impact,
		Domain:       req.Domain,
		URL:          req.URL,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var req types.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	exp, err := s.store.CreateExperience(r.Context(), types.Experience{
		Company:      req.Company,
		Role:         req.Role,
		Description:  req.Description,
		Technologies: req.Technologies,
		Location:     req.Location,
		IsCurrent:    req.IsCurrent,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, exp)
}

func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.store.ListExperiences(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"experiences": experiences})
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var req types.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	exp, err := s.store.UpdateExperience(r.Context(), types.Experience{
		ID:           id,
		Company:      req.Company,
		Role:         req.Role,
		Description:  req.Description,
		Technologies: req.Technologies,
		Location:     req.Location,
		IsCurrent:    req.IsCurrent,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, exp)
}

func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteExperience(r.Context(), id); err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req types.CreateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	ach, err := s.store.CreateAchievement(r.Context(), types.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Date:        parseDate(req.Date),
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, ach)
}

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.store.ListAchievements(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"achievements": achievements})
}

func (s *Server) handleUpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var req types.CreateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.domainError(w, err)
		return
	}

	ach, err := s.store.UpdateAchievement(r.Context(), types.Achievement{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        parseDate(req.Date),
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ach)
}

func (s *Server) handleDeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.DeleteAchievement(r.Context(), id); err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
