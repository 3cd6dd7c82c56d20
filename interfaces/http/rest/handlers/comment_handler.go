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

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	comments *services.CommentService
	cfg      *config.Config
	logger   *zap.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments *services.CommentService, cfg *config.Config, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		cfg:      cfg,
		logger:   logger,
	}
}

// CreateCommentRequest represents the request body for adding a comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=500"`
	PostID   string `json:"post_id" validate:"required"`
	AuthorID string `json:"author_id" validate:"required"`
}

// CreateComment handles POST /comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	comment, err := h.comments.Create(r.Context(), services.CommentInput{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, comment)
}

// ListPostComments handles GET /posts/{postID}/comments
func (h *CommentHandler) ListPostComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	skip, limit := parseSkipLimit(r, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	comments, err := h.comments.ListForPost(r.Context(), postID, skip, limit)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, comments)
}
