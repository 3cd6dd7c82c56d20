package memory

import (
	"context"

	"blogapi/application/ports"
	"blogapi/domain/blog"
	"blogapi/pkg/errors"

	"go.uber.org/zap"
)

// PostRepository is the in-memory implementation of ports.PostRepository.
type PostRepository struct {
	posts  *collection[blog.Post]
	logger *zap.Logger
}

// NewPostRepository creates an empty post repository.
func NewPostRepository(logger *zap.Logger) *PostRepository {
	return &PostRepository{
		posts:  newCollection[blog.Post](),
		logger: logger,
	}
}

// Create inserts the post. Ids are store-generated, so no uniqueness check
// is needed beyond the key itself.
func (r *PostRepository) Create(ctx context.Context, post *blog.Post) error {
	if msg := r.posts.insert(post.ID, post); msg != "" {
		return errors.NewConflictError(msg)
	}
	r.logger.Debug("post created", zap.String("postID", post.ID), zap.String("authorID", post.AuthorID))
	return nil
}

// Get returns the post for id without touching its counters.
func (r *PostRepository) Get(ctx context.Context, id string) (*blog.Post, error) {
	post := r.posts.get(id)
	if post == nil {
		return nil, errors.NewNotFoundError("post")
	}
	return post, nil
}

// View returns the post for id, incrementing its view counter by exactly
// one as a side effect. Only the single-post read path uses this.
func (r *PostRepository) View(ctx context.Context, id string) (*blog.Post, error) {
	post := r.posts.mutate(id, func(p *blog.Post) {
		p.Views++
	})
	if post == nil {
		return nil, errors.NewNotFoundError("post")
	}
	return post, nil
}

// List returns posts satisfying every filter constraint, in insertion
// order, sliced to [skip, skip+limit).
func (r *PostRepository) List(ctx context.Context, filter ports.PostFilter, skip, limit int) ([]*blog.Post, error) {
	matched := r.posts.list(func(p *blog.Post) bool {
		if filter.Tag != "" && !p.HasTag(filter.Tag) {
			return false
		}
		if filter.AuthorID != "" && p.AuthorID != filter.AuthorID {
			return false
		}
		if filter.Query != "" && !p.MatchesQuery(filter.Query) {
			return false
		}
		return true
	})
	return paginate(matched, skip, limit), nil
}

// Update applies the patch to the stored post and refreshes its UpdatedAt.
func (r *PostRepository) Update(ctx context.Context, id string, patch blog.PostPatch) (*blog.Post, error) {
	post := r.posts.mutate(id, func(p *blog.Post) {
		p.Apply(patch)
	})
	if post == nil {
		return nil, errors.NewNotFoundError("post")
	}
	return post, nil
}

// Like increments the post's like counter and returns the updated post.
func (r *PostRepository) Like(ctx context.Context, id string) (*blog.Post, error) {
	post := r.posts.mutate(id, func(p *blog.Post) {
		p.Likes++
	})
	if post == nil {
		return nil, errors.NewNotFoundError("post")
	}
	return post, nil
}

// Delete removes the post. The comment cascade is coordinated by the
// service layer, which owns both repositories.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if !r.posts.remove(id) {
		return errors.NewNotFoundError("post")
	}
	r.logger.Debug("post deleted", zap.String("postID", id))
	return nil
}

// Exists reports whether a post with id is stored.
func (r *PostRepository) Exists(ctx context.Context, id string) bool {
	return r.posts.exists(id)
}

// Count returns the number of stored posts.
func (r *PostRepository) Count(ctx context.Context) int {
	return r.posts.len()
}

// CounterTotals sums likes and views over all stored posts.
func (r *PostRepository) CounterTotals(ctx context.Context) (likes, views int) {
	for _, p := range r.posts.list(nil) {
		likes += p.Likes
		views += p.Views
	}
	return likes, views
}

var _ ports.PostRepository = (*PostRepository)(nil)
