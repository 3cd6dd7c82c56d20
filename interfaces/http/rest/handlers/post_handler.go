package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/application/ports"
	"blogapi/application/services"
	"blogapi/domain/blog"
	"blogapi/infrastructure/config"
	"blogapi/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	posts  *services.PostService
	cfg    *config.Config
	logger *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(posts *services.PostService, cfg *config.Config, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		posts:  posts,
		cfg:    cfg,
		logger: logger,
	}
}

// CreatePostRequest represents the request body for publishing a post
type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required,min=5,max=200"`
	Content  string   `json:"content" validate:"required,min=10"`
	Tags     []string `json:"tags,omitempty"`
	AuthorID string   `json:"author_id" validate:"required"`
}

// UpdatePostRequest represents the request body for patching a post.
// Absent fields are left unchanged.
type UpdatePostRequest struct {
	Title   *string   `json:"title,omitempty" validate:"omitempty,min=5,max=200"`
	Content *string   `json:"content,omitempty" validate:"omitempty,min=10"`
	Tags    *[]string `json:"tags,omitempty"`
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	post, err := h.posts.Create(r.Context(), services.PostInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, post)
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseSkipLimit(r, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)
	filter := ports.PostFilter{
		Tag:      r.URL.Query().Get("tag"),
		AuthorID: r.URL.Query().Get("author_id"),
	}

	posts, err := h.posts.List(r.Context(), filter, skip, limit)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, posts)
}

// GetPost handles GET /posts/{postID}. Each successful read counts as a
// view on the returned post.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	post, err := h.posts.Get(r.Context(), postID)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, post)
}

// UpdatePost handles PUT /posts/{postID}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	post, err := h.posts.Update(r.Context(), postID, blog.PostPatch{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{postID}. Deleting a post also removes
// all of its comments.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	if err := h.posts.Delete(r.Context(), postID); err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LikePost handles POST /posts/{postID}/like
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	post, err := h.posts.Like(r.Context(), postID)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, post)
}

// SearchPosts handles GET /search
func (h *PostHandler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, h.logger, http.StatusBadRequest, "query parameter q is required")
		return
	}

	skip, limit := parseSkipLimit(r, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	posts, err := h.posts.Search(r.Context(), query, skip, limit)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, posts)
}
