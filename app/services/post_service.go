package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

const (
	// Character-limit messages returned to clients.
	postLimitMessage    = "Character count exceeded"
	commentLimitMessage = "Character count exceeded 750"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
	maxLimit int
}

// NewPostService creates a new PostService. maxLimit caps the page size a
// client may request.
func NewPostService(postRepo repositories.PostRepository, maxLimit int) *PostService {
	return &PostService{
		postRepo: postRepo,
		now:      time.Now,
		maxLimit: maxLimit,
	}
}

// SetClock replaces the time source used for creation timestamps
func (s *PostService) SetClock(now func() time.Time) {
	s.now = now
}

// CreatePost validates and stores a new post with an empty comment sequence
func (s *PostService) CreatePost(ctx context.Context, author, title, message string) (*models.Post, error) {
	post := &models.Post{
		Author:  author,
		Title:   title,
		Message: message,
	}
	if err := post.Validate(); err != nil {
		return nil, newValidationError(err, postLimitMessage)
	}

	post.BeforeCreate(s.now())

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by its hex identifier
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	return post, nil
}

// PostPage is one page of posts plus the total number of posts stored.
type PostPage struct {
	Page  int
	Limit int
	Total int
	Posts []*models.Post
}

// ListPosts retrieves page (1-based) of at most limit posts
func (s *PostService) ListPosts(ctx context.Context, page, limit int) (*PostPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", ErrInvalidPage)
	}
	if limit < 1 || (s.maxLimit > 0 && limit > s.maxLimit) {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPage, s.maxLimit)
	}

	// A page whose window ends past math.MaxInt is beyond any store.
	posts := []*models.Post{}
	if page-1 <= (math.MaxInt-limit)/limit {
		var err error
		posts, err = s.postRepo.List(ctx, limit, (page-1)*limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list posts: %w", err)
		}
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	return &PostPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Posts: posts,
	}, nil
}

// DeletePost deletes the post with the given hex identifier
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	return nil
}
