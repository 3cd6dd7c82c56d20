package services

import (
	"context"
	"testing"

	"blogapi/domain/blog"
	"blogapi/infrastructure/persistence/memory"
	"blogapi/pkg/errors"
	"blogapi/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	users    *UserService
	posts    *PostService
	comments *CommentService
	stats    *StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	userRepo := memory.NewUserRepository(logger)
	postRepo := memory.NewPostRepository(logger)
	commentRepo := memory.NewCommentRepository(logger)
	metrics := observability.NewCollector("test")

	return &fixture{
		users:    NewUserService(userRepo, logger),
		posts:    NewPostService(postRepo, userRepo, commentRepo, metrics, logger),
		comments: NewCommentService(commentRepo, postRepo, userRepo, logger),
		stats:    NewStatsService(userRepo, postRepo, commentRepo),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *blog.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), UserInput{
		Username: username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createPost(t *testing.T, authorID string) *blog.Post {
	t.Helper()
	post, err := f.posts.Create(context.Background(), PostInput{
		Title:    "Hello World!",
		Content:  "Some content here",
		AuthorID: authorID,
	})
	require.NoError(t, err)
	return post
}

func TestPostServiceCreateUnknownAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.posts.Create(ctx, PostInput{
		Title:    "Hello World!",
		Content:  "Some content here",
		AuthorID: "ghost",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	stats := f.stats.Collect(ctx)
	assert.Zero(t, stats.TotalPosts, "failed create must leave the store unchanged")
}

func TestPostServiceLikeAndView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana := f.createUser(t, "ana")
	post := f.createPost(t, ana.ID)

	liked, err := f.posts.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	liked, err = f.posts.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)

	got, err := f.posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
	assert.Equal(t, 2, got.Likes)
}

func TestPostServiceDeleteCascadesComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana := f.createUser(t, "ana")
	post := f.createPost(t, ana.ID)
	other := f.createPost(t, ana.ID)

	for i := 0; i < 2; i++ {
		_, err := f.comments.Create(ctx, CommentInput{
			Content:  "nice post",
			PostID:   post.ID,
			AuthorID: ana.ID,
		})
		require.NoError(t, err)
	}
	surviving, err := f.comments.Create(ctx, CommentInput{
		Content:  "on the other post",
		PostID:   other.ID,
		AuthorID: ana.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.posts.Delete(ctx, post.ID))

	_, err = f.posts.Get(ctx, post.ID)
	assert.True(t, errors.IsNotFound(err))

	stats := f.stats.Collect(ctx)
	assert.Equal(t, 1, stats.TotalPosts)
	assert.Equal(t, 1, stats.TotalComments)

	remaining, err := f.comments.ListForPost(ctx, other.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, surviving.ID, remaining[0].ID)
}

func TestPostServiceDeleteMissing(t *testing.T) {
	f := newFixture(t)
	err := f.posts.Delete(context.Background(), "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestPostServiceSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana := f.createUser(t, "ana")
	_, err := f.posts.Create(ctx, PostInput{
		Title:    "Cooking with Go",
		Content:  "A post about golang recipes",
		Tags:     []string{"golang"},
		AuthorID: ana.ID,
	})
	require.NoError(t, err)
	_, err = f.posts.Create(ctx, PostInput{
		Title:    "Gardening basics",
		Content:  "Nothing about programming",
		AuthorID: ana.ID,
	})
	require.NoError(t, err)

	results, err := f.posts.Search(ctx, "GOLANG", 0, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cooking with Go", results[0].Title)

	results, err = f.posts.Search(ctx, "basics", 0, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
}
