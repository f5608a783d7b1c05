// Package server provides the HTTP REST API for the resume engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/db"
	"github.com/jonathan/resume-engine/internal/engine"
	"github.com/jonathan/resume-engine/internal/generation"
	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/refinement"
	"github.com/jonathan/resume-engine/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies it.
type Store interface {
	ledger.Store

	CreateSkill(ctx context.Context, skill types.Skill) (*types.Skill, error)
	UpdateSkill(ctx context.Context, skill types.Skill) (*types.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	CreateProject(ctx context.Context, project types.Project) (*types.Project, error)
	UpdateProject(ctx context.Context, project types.Project) (*types.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	CreateExperience(ctx context.Context, exp types.Experience) (*types.Experience, error)
	UpdateExperience(ctx context.Context, exp types.Experience) (*types.Experience, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	CreateAchievement(ctx context.Context, ach types.Achievement) (*types.Achievement, error)
	UpdateAchievement(ctx context.Context, ach types.Achievement) (*types.Achievement, error)
	DeleteAchievement(ctx context.Context, id uuid.UUID) error

	CreateTemplate(ctx context.Context, tmpl types.ResumeTemplate) (*types.ResumeTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*types.ResumeTemplate, error)
	ListTemplates(ctx context.Context) ([]types.ResumeTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	GetResume(ctx context.Context, id uuid.UUID) (*types.GeneratedResume, error)
	ListResumes(ctx context.Context, limit int) ([]types.GeneratedResume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
	ListChatTurns(ctx context.Context, resumeID uuid.UUID) ([]types.ChatTurn, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	engine     *engine.Engine
	loop       *refinement.Loop
	database   *db.DB
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	RankLimit    int
	MaxAttempts  int
}

// New creates a new server instance, connecting to the database and wiring
// the engine and refinement loop. With no API key the engine runs fully
// deterministic and chat refinement is disabled.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	accessor := ledger.NewAccessor(database)
	eng, err := engine.New(database, accessor, generation.New(client), engine.Options{
		RankLimit:   cfg.RankLimit,
		MaxAttempts: cfg.MaxAttempts,
	})
	if err != nil {
		database.Close()
		return nil, err
	}

	var loop *refinement.Loop
	if client != nil {
		loop = refinement.NewLoop(database, accessor, client)
	}

	s := newServer(database, eng, loop, cfg.Port)
	s.database = database
	return s, nil
}

// newServer wires routes around already-built dependencies.
func newServer(store Store, eng *engine.Engine, loop *refinement.Loop, port int) *Server {
	s := &Server{
		store:  store,
		engine: eng,
		loop:   loop,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Analysis and generation endpoints
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /resumes/generate", s.handleGenerateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("GET /resumes/{id}/analysis", s.handleResumeAnalysis)
	mux.HandleFunc("GET /resumes/{id}/chat", s.handleListChat)

	// Chat refinement endpoint
	mux.HandleFunc("POST /chat/refine", s.handleRefine)

	// Career ledger endpoints
	mux.HandleFunc("POST /skills", s.handleCreateSkill)
	mux.HandleFunc("GET /skills", s.handleListSkills)
	mux.HandleFunc("PUT /skills/{id}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /skills/{id}", s.handleDeleteSkill)
	mux.HandleFunc("POST /projects", s.handleCreateProject)
	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("PUT /projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", s.handleDeleteProject)
	mux.HandleFunc("POST /experiences", s.handleCreateExperience)
	mux.HandleFunc("GET /experiences", s.handleListExperiences)
	mux.HandleFunc("PUT /experiences/{id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /experiences/{id}", s.handleDeleteExperience)
	mux.HandleFunc("POST /achievements", s.handleCreateAchievement)
	mux.HandleFunc("GET /achievements", s.handleListAchievements)
	mux.HandleFunc("PUT /achievements/{id}", s.handleUpdateAchievement)
	mux.HandleFunc("DELETE /achievements/{id}", s.handleDeleteAchievement)

	// Template endpoints
	mux.HandleFunc("POST /templates", s.handleCreateTemplate)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /templates/{id}", s.handleGetTemplate)
	mux.HandleFunc("DELETE /templates/{id}", s.handleDeleteTemplate)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation can take several LLM round trips
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// domainError maps a domain error to its HTTP status and writes it.
func (s *Server) domainError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
