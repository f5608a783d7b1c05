package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-engine/internal/db"
	"github.com/jonathan/resume-engine/internal/engine"
	"github.com/jonathan/resume-engine/internal/generation"
	"github.com/jonathan/resume-engine/internal/ingestion"
	"github.com/jonathan/resume-engine/internal/refinement"
	"github.com/jonathan/resume-engine/internal/rendering"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"malformed jd", &ingestion.MalformedJDError{Reason: "empty"}, http.StatusBadRequest},
		{"unknown placeholder", &rendering.UnknownPlaceholderError{Name: "HOBBIES"}, http.StatusBadRequest},
		{"unresolved placeholder", &rendering.UnresolvedPlaceholderError{Name: "SKILLS"}, http.StatusBadRequest},
		{"input error", &engine.InputError{Reason: "bad id"}, http.StatusBadRequest},
		{"not found", &db.NotFoundError{Kind: "resume", ID: uuid.New()}, http.StatusNotFound},
		{"version conflict", &db.VersionConflictError{ID: uuid.New(), Expected: 2}, http.StatusConflict},
		{"empty section", &generation.EmptySectionError{Section: "SKILLS"}, http.StatusUnprocessableEntity},
		{"generation failed", &engine.GenerationError{Attempts: 3}, http.StatusUnprocessableEntity},
		{"upstream failure", &refinement.UpstreamError{Cause: errors.New("quota")}, http.StatusBadGateway},
		{"wrapped not found", fmt.Errorf("loading: %w", &db.NotFoundError{Kind: "template", ID: uuid.New()}), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
