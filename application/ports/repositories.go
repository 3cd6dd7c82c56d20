// Package ports defines the repository interfaces the application layer
// depends on. Implementations live under infrastructure/persistence.
package ports

import (
	"context"

	"blogapi/domain/blog"
)

// PostFilter narrows a post listing. Zero values mean "no constraint".
// Tag matches any tag element ignoring case; Query matches title, content
// or any tag as a case-insensitive substring.
type PostFilter struct {
	Tag      string
	AuthorID string
	Query    string
}

// UserRepository stores users. Create enforces username and email
// uniqueness atomically with the insert.
type UserRepository interface {
	Create(ctx context.Context, user *blog.User) error
	Get(ctx context.Context, id string) (*blog.User, error)
	List(ctx context.Context, skip, limit int) ([]*blog.User, error)
	Replace(ctx context.Context, id string, candidate *blog.User) (*blog.User, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) bool
	Count(ctx context.Context) int
}

// PostRepository stores posts. Get is a plain read; View is the read used
// by the single-post endpoint and increments the view counter by one.
type PostRepository interface {
	Create(ctx context.Context, post *blog.Post) error
	Get(ctx context.Context, id string) (*blog.Post, error)
	View(ctx context.Context, id string) (*blog.Post, error)
	List(ctx context.Context, filter PostFilter, skip, limit int) ([]*blog.Post, error)
	Update(ctx context.Context, id string, patch blog.PostPatch) (*blog.Post, error)
	Like(ctx context.Context, id string) (*blog.Post, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) bool
	Count(ctx context.Context) int
	CounterTotals(ctx context.Context) (likes, views int)
}

// CommentRepository stores comments. DeleteByPost removes every comment of
// a post in one pass and reports how many were removed.
type CommentRepository interface {
	Create(ctx context.Context, comment *blog.Comment) error
	Get(ctx context.Context, id string) (*blog.Comment, error)
	ListByPost(ctx context.Context, postID string, skip, limit int) ([]*blog.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) int
	Count(ctx context.Context) int
}
