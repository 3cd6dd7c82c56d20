package memory

import (
	"context"
	"testing"

	"blogapi/domain/blog"
	"blogapi/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommentRepositoryListByPost(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(zap.NewNop())

	first := blog.NewComment("first", "post-1", "ana")
	second := blog.NewComment("second", "post-2", "ana")
	third := blog.NewComment("third", "post-1", "bob")
	for _, c := range []*blog.Comment{first, second, third} {
		require.NoError(t, repo.Create(ctx, c))
	}

	comments, err := repo.ListByPost(ctx, "post-1", 0, 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, third.ID, comments[1].ID)

	comments, err = repo.ListByPost(ctx, "post-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, third.ID, comments[0].ID)
}

func TestCommentRepositoryDeleteByPost(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(zap.NewNop())

	kept := blog.NewComment("keep me", "post-2", "ana")
	doomedA := blog.NewComment("a", "post-1", "ana")
	doomedB := blog.NewComment("b", "post-1", "bob")
	for _, c := range []*blog.Comment{doomedA, kept, doomedB} {
		require.NoError(t, repo.Create(ctx, c))
	}

	removed := repo.DeleteByPost(ctx, "post-1")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, repo.Count(ctx))

	_, err := repo.Get(ctx, doomedA.ID)
	assert.True(t, errors.IsNotFound(err))
	_, err = repo.Get(ctx, doomedB.ID)
	assert.True(t, errors.IsNotFound(err))
	_, err = repo.Get(ctx, kept.ID)
	assert.NoError(t, err)

	assert.Zero(t, repo.DeleteByPost(ctx, "post-1"), "second cascade finds nothing")
}
