package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-engine/internal/db"
	"github.com/jonathan/resume-engine/internal/engine"
	"github.com/jonathan/resume-engine/internal/generation"
	"github.com/jonathan/resume-engine/internal/ingestion"
	"github.com/jonathan/resume-engine/internal/refinement"
	"github.com/jonathan/resume-engine/internal/rendering"
)

// HTTPStatus maps domain errors to HTTP status codes. Unknown errors are
// treated as internal.
func HTTPStatus(err error) int {
	var (
		malformed    *ingestion.MalformedJDError
		unknownPH    *rendering.UnknownPlaceholderError
		unresolvedPH *rendering.UnresolvedPlaceholderError
		input        *engine.InputError
		fieldErrs    validator.ValidationErrors
		notFound     *db.NotFoundError
		conflict     *db.VersionConflictError
		emptySection *generation.EmptySectionError
		genFailed    *engine.GenerationError
		upstream     *refinement.UpstreamError
	)

	switch {
	case errors.As(err, &malformed),
		errors.As(err, &unknownPH),
		errors.As(err, &unresolvedPH),
		errors.As(err, &input),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &emptySection),
		errors.As(err, &genFailed):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
