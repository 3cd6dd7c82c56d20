package memory

import (
	"context"

	"blogapi/application/ports"
	"blogapi/domain/blog"
	"blogapi/pkg/errors"

	"go.uber.org/zap"
)

// CommentRepository is the in-memory implementation of
// ports.CommentRepository.
type CommentRepository struct {
	comments *collection[blog.Comment]
	logger   *zap.Logger
}

// NewCommentRepository creates an empty comment repository.
func NewCommentRepository(logger *zap.Logger) *CommentRepository {
	return &CommentRepository{
		comments: newCollection[blog.Comment](),
		logger:   logger,
	}
}

// Create inserts the comment.
func (r *CommentRepository) Create(ctx context.Context, comment *blog.Comment) error {
	if msg := r.comments.insert(comment.ID, comment); msg != "" {
		return errors.NewConflictError(msg)
	}
	r.logger.Debug("comment created",
		zap.String("commentID", comment.ID),
		zap.String("postID", comment.PostID),
	)
	return nil
}

// Get returns the comment for id.
func (r *CommentRepository) Get(ctx context.Context, id string) (*blog.Comment, error) {
	comment := r.comments.get(id)
	if comment == nil {
		return nil, errors.NewNotFoundError("comment")
	}
	return comment, nil
}

// ListByPost returns the post's comments in insertion order, sliced to
// [skip, skip+limit).
func (r *CommentRepository) ListByPost(ctx context.Context, postID string, skip, limit int) ([]*blog.Comment, error) {
	matched := r.comments.list(func(c *blog.Comment) bool {
		return c.PostID == postID
	})
	return paginate(matched, skip, limit), nil
}

// Delete removes a single comment.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	if !r.comments.remove(id) {
		return errors.NewNotFoundError("comment")
	}
	return nil
}

// DeleteByPost removes every comment referencing postID in one scan and
// returns the number removed.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) int {
	removed := r.comments.removeWhere(func(c *blog.Comment) bool {
		return c.PostID == postID
	})
	if removed > 0 {
		r.logger.Debug("comments cascaded",
			zap.String("postID", postID),
			zap.Int("removed", removed),
		)
	}
	return removed
}

// Count returns the number of stored comments.
func (r *CommentRepository) Count(ctx context.Context) int {
	return r.comments.len()
}

var _ ports.CommentRepository = (*CommentRepository)(nil)
