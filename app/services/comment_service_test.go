package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	postService, repo := newTestPostService()
	commentService := NewCommentService(repo)
	commentService.SetClock(func() time.Time { return fixedNow.Add(time.Hour) })

	post, err := postService.CreatePost(ctx, "Author", "Commented Post", "Say something")
	require.NoError(t, err)

	t.Run("add comment", func(t *testing.T) {
		comment, err := commentService.AddComment(ctx, post.ID.Hex(), "Reader", "Nice post")
		require.NoError(t, err)
		assert.False(t, comment.ID.IsZero())
		assert.Equal(t, fixedNow.Add(time.Hour), comment.Date)

		stored, err := postService.GetPost(ctx, post.ID.Hex())
		require.NoError(t, err)
		require.Len(t, stored.Comments, 1)
		assert.Equal(t, "Reader", stored.Comments[0].Author)
		assert.Equal(t, "Nice post", stored.Comments[0].Message)
	})

	t.Run("post does not exist", func(t *testing.T) {
		_, err := commentService.AddComment(ctx, "000000000000000000000000", "Reader", "Hello?")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("malformed post id", func(t *testing.T) {
		_, err := commentService.AddComment(ctx, "xyz", "Reader", "Hello?")
		assert.ErrorIs(t, err, models.ErrInvalidID)
	})

	t.Run("message too long", func(t *testing.T) {
		_, err := commentService.AddComment(ctx, post.ID.Hex(), "Reader", strings.Repeat("m", 751))
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "message", verr.Field)
		assert.Equal(t, "Character count exceeded 750", verr.Message)
	})

	t.Run("author too long", func(t *testing.T) {
		_, err := commentService.AddComment(ctx, post.ID.Hex(), strings.Repeat("a", 41), "Fine")
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "author", verr.Field)
	})
}
