package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movieverse/internal/dto/request"
	"movieverse/internal/usecase"
	"movieverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	resp, err := h.service.GetMovies(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetMovie handles GET /api/movies/{id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	resp, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// CreateMovie handles POST /api/movies (admin)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", resp)
}

// UpdateMovie handles PUT /api/movies/{id} (admin)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", resp)
}

// DeleteMovie handles DELETE /api/movies/{id} (admin)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
