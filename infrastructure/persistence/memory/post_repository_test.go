package memory

import (
	"context"
	"testing"
	"time"

	"blogapi/application/ports"
	"blogapi/domain/blog"
	"blogapi/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPost(t *testing.T, repo *PostRepository, title string, tags []string, authorID string) *blog.Post {
	t.Helper()
	post := blog.NewPost(title, "Some content here", tags, authorID)
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepositoryViewIncrements(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(zap.NewNop())
	post := newTestPost(t, repo, "Hello World!", nil, "author-1")

	for want := 1; want <= 3; want++ {
		got, err := repo.View(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.Views)
	}

	// Plain reads and lists never touch the counter.
	got, err := repo.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Views)

	_, err = repo.List(ctx, ports.PostFilter{}, 0, 10)
	require.NoError(t, err)
	got, err = repo.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Views)

	_, err = repo.View(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestPostRepositoryLike(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(zap.NewNop())
	post := newTestPost(t, repo, "Hello World!", nil, "author-1")

	got, err := repo.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	got, err = repo.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Likes)
	assert.Zero(t, got.Views, "likes must not move views")

	_, err = repo.Like(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestPostRepositoryListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(zap.NewNop())

	first := newTestPost(t, repo, "Intro to Go", []string{"Go", "beginners"}, "ana")
	second := newTestPost(t, repo, "Advanced Python", []string{"python"}, "bob")
	third := newTestPost(t, repo, "Go concurrency", []string{"go"}, "ana")

	tests := []struct {
		name    string
		filter  ports.PostFilter
		wantIDs []string
	}{
		{"no filter keeps insertion order", ports.PostFilter{}, []string{first.ID, second.ID, third.ID}},
		{"tag is case-insensitive", ports.PostFilter{Tag: "GO"}, []string{first.ID, third.ID}},
		{"author filter", ports.PostFilter{AuthorID: "bob"}, []string{second.ID}},
		{"tag and author combined", ports.PostFilter{Tag: "go", AuthorID: "ana"}, []string{first.ID, third.ID}},
		{"query matches title", ports.PostFilter{Query: "concurrency"}, []string{third.ID}},
		{"no match", ports.PostFilter{Tag: "rust"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repo.List(ctx, tt.filter, 0, 10)
			require.NoError(t, err)
			ids := make([]string, 0, len(posts))
			for _, p := range posts {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPostRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(zap.NewNop())
	post := newTestPost(t, repo, "Original title", []string{"go"}, "ana")

	_, err := repo.Like(ctx, post.ID)
	require.NoError(t, err)
	before := post.UpdatedAt

	time.Sleep(time.Millisecond)
	title := "New Title"
	updated, err := repo.Update(ctx, post.ID, blog.PostPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Some content here", updated.Content)
	assert.Equal(t, []string{"go"}, updated.Tags)
	assert.Equal(t, 1, updated.Likes)
	assert.True(t, !updated.UpdatedAt.Before(before))

	_, err = repo.Update(ctx, "missing", blog.PostPatch{Title: &title})
	assert.True(t, errors.IsNotFound(err))
}

func TestPostRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(zap.NewNop())
	post := newTestPost(t, repo, "Hello World!", nil, "ana")

	require.NoError(t, repo.Delete(ctx, post.ID))
	assert.False(t, repo.Exists(ctx, post.ID))
	assert.True(t, errors.IsNotFound(repo.Delete(ctx, post.ID)))
}

func TestPostRepositoryCounterTotals(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(zap.NewNop())

	likes, views := repo.CounterTotals(ctx)
	assert.Zero(t, likes)
	assert.Zero(t, views)

	a := newTestPost(t, repo, "First post", nil, "ana")
	b := newTestPost(t, repo, "Second post", nil, "ana")

	for i := 0; i < 3; i++ {
		_, err := repo.Like(ctx, a.ID)
		require.NoError(t, err)
	}
	_, err := repo.View(ctx, b.ID)
	require.NoError(t, err)

	likes, views = repo.CounterTotals(ctx)
	assert.Equal(t, 3, likes)
	assert.Equal(t, 1, views)
}
