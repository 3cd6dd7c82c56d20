package services

import (
	"context"

	"blogapi/application/ports"
	"blogapi/domain/blog"
	"blogapi/pkg/errors"

	"go.uber.org/zap"
)

// CommentInput carries the boundary-validated fields of a comment create
// request.
type CommentInput struct {
	Content  string
	PostID   string
	AuthorID string
}

// CommentService implements the comment operations.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   *zap.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	comments ports.CommentRepository,
	posts ports.PostRepository,
	users ports.UserRepository,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		users:    users,
		logger:   logger,
	}
}

// Create attaches a comment to an existing post by an existing author.
// Existence checks do not count as post views.
func (s *CommentService) Create(ctx context.Context, in CommentInput) (*blog.Comment, error) {
	if !s.posts.Exists(ctx, in.PostID) {
		return nil, errors.NewNotFoundError("post")
	}
	if !s.users.Exists(ctx, in.AuthorID) {
		return nil, errors.NewNotFoundError("author")
	}

	comment := blog.NewComment(in.Content, in.PostID, in.AuthorID)
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		zap.String("commentID", comment.ID),
		zap.String("postID", comment.PostID),
	)
	return comment, nil
}

// ListForPost returns a post's comments in insertion order. The post must
// exist; listing an unknown post is an error, not an empty list.
func (s *CommentService) ListForPost(ctx context.Context, postID string, skip, limit int) ([]*blog.Comment, error) {
	if !s.posts.Exists(ctx, postID) {
		return nil, errors.NewNotFoundError("post")
	}
	return s.comments.ListByPost(ctx, postID, skip, limit)
}
