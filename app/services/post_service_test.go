package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 11, 20, 8, 30, 0, 0, time.UTC)

func newTestPostService() (*PostService, *mock.PostRepository) {
	repo := mock.NewPostRepository()
	service := NewPostService(repo, 100)
	service.SetClock(func() time.Time { return fixedNow })
	return service, repo
}

func TestPostService(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestPostService()

	var created *models.Post

	t.Run("create post", func(t *testing.T) {
		post, err := service.CreatePost(ctx, "Test Author", "Test Post", "This is a test post message")
		require.NoError(t, err)
		assert.False(t, post.ID.IsZero())
		assert.Equal(t, fixedNow, post.Date)
		assert.NotNil(t, post.Comments)
		created = post

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("get post", func(t *testing.T) {
		post, err := service.GetPost(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Test Author", post.Author)
		assert.Equal(t, "Test Post", post.Title)
		assert.Equal(t, "This is a test post message", post.Message)
	})

	t.Run("get post with malformed id", func(t *testing.T) {
		_, err := service.GetPost(ctx, "123456789012")
		assert.ErrorIs(t, err, models.ErrInvalidID)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := service.GetPost(ctx, "000000000000000000000000")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete post", func(t *testing.T) {
		other, err := service.CreatePost(ctx, "Someone", "Other", "Stays put")
		require.NoError(t, err)

		err = service.DeletePost(ctx, created.ID.Hex())
		require.NoError(t, err)

		_, err = service.GetPost(ctx, created.ID.Hex())
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = service.GetPost(ctx, other.ID.Hex())
		assert.NoError(t, err)

		err = service.DeletePost(ctx, created.ID.Hex())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete with malformed id", func(t *testing.T) {
		err := service.DeletePost(ctx, "not-an-id")
		assert.ErrorIs(t, err, models.ErrInvalidID)
	})
}

func TestPostServiceList(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPostService()

	for i := 0; i < 5; i++ {
		_, err := service.CreatePost(ctx, "Author", "List Test Post", "Message for list test")
		require.NoError(t, err)
	}

	page, err := service.ListPosts(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 3)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Limit)

	page, err = service.ListPosts(ctx, 2, 3)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)

	page, err = service.ListPosts(ctx, 3, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	for _, tc := range []struct{ page, limit int }{{6148914691236517206, 3}, {math.MaxInt, 1}, {math.MaxInt, 100}} {
		page, err := service.ListPosts(ctx, tc.page, tc.limit)
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.Equal(t, 5, page.Total)
	}

	for _, tc := range []struct{ page, limit int }{{0, 10}, {1, 0}, {1, 101}, {-1, 5}} {
		_, err := service.ListPosts(ctx, tc.page, tc.limit)
		assert.ErrorIs(t, err, ErrInvalidPage)
	}
}

func TestPostServiceValidation(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestPostService()

	tests := []struct {
		name    string
		author  string
		title   string
		message string
		field   string
		msg     string
	}{
		{"author too long", strings.Repeat("a", 41), "Title", "Message", "author", "Character count exceeded"},
		{"title too long", "Author", strings.Repeat("t", 41), "Message", "title", "Character count exceeded"},
		{"message too long", "Author", "Title", strings.Repeat("m", 3001), "message", "Character count exceeded"},
		{"empty title", "Author", "", "Message", "title", "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreatePost(ctx, tt.author, tt.title, tt.message)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.msg, verr.Message)
		})
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostServiceStoreFailure(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestPostService()
	repo.Err = errors.New("disk on fire")

	_, err := service.CreatePost(ctx, "Author", "Title", "Message")
	assert.ErrorIs(t, err, repo.Err)

	_, err = service.ListPosts(ctx, 1, 10)
	assert.ErrorIs(t, err, repo.Err)
}
