package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// getPathUUID extracts a UUID from the URL path parameters.
//
// Returns a ValidationError wrapping domain.ErrInvalidID when the parameter
// is missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handleUserIDAndPathUUID extracts both the user ID from context and a UUID
// from the path parameters. It writes an error response if either extraction
// fails.
//
// Returns:
//   - (userID, pathID, true): both were extracted successfully
//   - (uuid.Nil, uuid.Nil, false): extraction failed and an error was written
func handleUserIDAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (uuid.UUID, uuid.UUID, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgNotAuthorized)
		return uuid.Nil, uuid.Nil, false
	}

	pathID, err := getPathUUID(r, paramName)
	if err != nil {
		log.Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, pathID, true
}

// parseTaskQuery builds a TaskQuery from the URL query string. Malformed
// numbers and unknown sort fields fall back to the defaults.
func parseTaskQuery(r *http.Request) store.TaskQuery {
	values := r.URL.Query()
	var q store.TaskQuery

	if raw, ok := values["completed"]; ok && len(raw) > 0 {
		completed := raw[0] == "true"
		q.Completed = &completed
	}
	if raw := values.Get("priority"); raw != "" {
		p := domain.Priority(raw)
		q.Priority = &p
	}
	if raw := values.Get("category"); raw != "" {
		q.Category = &raw
	}

	q.SortBy = values.Get("sortBy")
	q.Order = store.SortOrder(values.Get("order"))

	q.Page = atoiOrZero(values.Get("page"))
	q.Limit = atoiOrZero(values.Get("limit"))

	return q.Normalize()
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
