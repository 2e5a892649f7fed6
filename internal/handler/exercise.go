package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/exertrack/exertrack/internal/handler/dto"
	"github.com/exertrack/exertrack/internal/service"
)

// LogHandler handles exercise appends and log queries.
type LogHandler struct {
	svc    *service.LogService
	logger *slog.Logger
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(svc *service.LogService, logger *slog.Logger) *LogHandler {
	return &LogHandler{
		svc:    svc,
		logger: logger,
	}
}

// AddExercise handles POST /api/users/{id}/exercises.
// An empty date defaults to the current day.
func (h *LogHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	values, err := requestValues(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	description := strings.TrimSpace(values.Get("description"))
	if description == "" {
		writeError(w, http.StatusBadRequest, "MISSING_DESCRIPTION", "Description is required")
		return
	}

	view, err := h.svc.AddExercise(r.Context(), userID, description, values.Get("duration"), values.Get("date"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("exercise_added",
		"user_id", view.UserID,
		"description", view.Exercise.Description,
		"duration", view.Exercise.Duration,
		"date", view.Exercise.DateString(),
	)

	writeJSON(w, http.StatusCreated, dto.ToExerciseResponse(view))
}

// GetLog handles GET /api/users/{id}/logs.
// Supports optional from, to and limit query parameters; unparseable
// values are ignored rather than rejected.
func (h *LogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	query := r.URL.Query()

	view, err := h.svc.GetLog(r.Context(), userID, query.Get("from"), query.Get("to"), query.Get("limit"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogResponse(view))
}

// handleServiceError maps service errors to HTTP responses.
func (h *LogHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user id")
	case errors.Is(err, service.ErrInvalidDuration):
		writeError(w, http.StatusBadRequest, "INVALID_DURATION", "Duration must be a whole number of minutes")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "INVALID_DATE", "Date could not be parsed")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Storage backend unavailable")
	case errors.Is(err, service.ErrInternalInconsistency):
		writeError(w, http.StatusInternalServerError, "INTERNAL_INCONSISTENCY", "Stored data is inconsistent")
	default:
		h.logger.Error("unexpected service error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
