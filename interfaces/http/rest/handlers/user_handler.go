package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/application/services"
	"blogapi/infrastructure/config"
	"blogapi/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  *services.UserService
	cfg    *config.Config
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *services.UserService, cfg *config.Config, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// CreateUserRequest represents the request body for registering a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

// UpdateUserRequest represents the request body for replacing a user.
// Updates are full replacements: every field must be supplied.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	IsActive bool   `json:"is_active"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	user, err := h.users.Create(r.Context(), services.UserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseSkipLimit(r, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	users, err := h.users.List(r.Context(), skip, limit)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, users)
}

// GetUser handles GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	user, err := h.users.Replace(r.Context(), userID, services.UserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.users.Delete(r.Context(), userID); err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
