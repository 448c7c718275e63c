package adaptor

import (
	"net/http"
	"strings"

	"movieverse/internal/dto/request"
	"movieverse/internal/usecase"
	"movieverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetProfile(r.Context(), caller)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAllUsers handles GET /api/users (admin)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	resp, err := h.service.GetAllUsers(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteUser handles DELETE /api/users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

// GetFavorites handles GET /api/user/favorites (protected)
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	resp, err := h.service.GetFavorites(r.Context(), caller, &req)
	if err != nil {
		h.handleServiceError(w, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// AddFavorite handles POST /api/user/favorites/{movieId} (protected)
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")

	if err := h.service.AddFavorite(r.Context(), caller, movieID); err != nil {
		h.handleServiceError(w, err, "add favorite")
		return
	}

	utils.ResponseCreated(w, "Movie added to favorites", nil)
}

// RemoveFavorite handles DELETE /api/user/favorites/{movieId} (protected)
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")

	if err := h.service.RemoveFavorite(r.Context(), caller, movieID); err != nil {
		h.handleServiceError(w, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Movie removed from favorites", nil)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already in favorites"):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
