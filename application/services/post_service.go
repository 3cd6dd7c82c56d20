package services

import (
	"context"

	"blogapi/application/ports"
	"blogapi/domain/blog"
	"blogapi/pkg/errors"
	"blogapi/pkg/observability"

	"go.uber.org/zap"
)

// PostInput carries the boundary-validated fields of a post create request.
type PostInput struct {
	Title    string
	Content  string
	Tags     []string
	AuthorID string
}

// PostService implements the post operations, including the comment
// cascade on delete.
type PostService struct {
	posts    ports.PostRepository
	users    ports.UserRepository
	comments ports.CommentRepository
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(
	posts ports.PostRepository,
	users ports.UserRepository,
	comments ports.CommentRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		posts:    posts,
		users:    users,
		comments: comments,
		metrics:  metrics,
		logger:   logger,
	}
}

// Create publishes a new post. The author must exist at creation time;
// nothing re-checks the reference afterwards.
func (s *PostService) Create(ctx context.Context, in PostInput) (*blog.Post, error) {
	if !s.users.Exists(ctx, in.AuthorID) {
		return nil, errors.NewNotFoundError("author")
	}

	post := blog.NewPost(in.Title, in.Content, in.Tags, in.AuthorID)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.metrics.PostsCreated.Inc()
	s.logger.Info("post published",
		zap.String("postID", post.ID),
		zap.String("authorID", post.AuthorID),
	)
	return post, nil
}

// Get returns a single post, counting the read as a view.
func (s *PostService) Get(ctx context.Context, id string) (*blog.Post, error) {
	post, err := s.posts.View(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.PostViews.Inc()
	return post, nil
}

// List returns posts matching the filter, in insertion order.
func (s *PostService) List(ctx context.Context, filter ports.PostFilter, skip, limit int) ([]*blog.Post, error) {
	return s.posts.List(ctx, filter, skip, limit)
}

// Search returns posts whose title, content or tags contain the query,
// ignoring case.
func (s *PostService) Search(ctx context.Context, query string, skip, limit int) ([]*blog.Post, error) {
	return s.posts.List(ctx, ports.PostFilter{Query: query}, skip, limit)
}

// Update applies a partial patch and returns the full updated post.
func (s *PostService) Update(ctx context.Context, id string, patch blog.PostPatch) (*blog.Post, error) {
	return s.posts.Update(ctx, id, patch)
}

// Like increments the post's like counter and returns the updated post.
func (s *PostService) Like(ctx context.Context, id string) (*blog.Post, error) {
	post, err := s.posts.Like(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.PostLikes.Inc()
	return post, nil
}

// Delete removes the post and cascades to every comment referencing it.
// The cascade has no fallible step, so it always completes once the post
// removal succeeds.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	removed := s.comments.DeleteByPost(ctx, id)
	s.metrics.PostsDeleted.Inc()
	s.logger.Info("post deleted",
		zap.String("postID", id),
		zap.Int("commentsRemoved", removed),
	)
	return nil
}
