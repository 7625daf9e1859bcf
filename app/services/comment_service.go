package services

import (
	"context"
	"fmt"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		postRepo: postRepo,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for creation timestamps
func (s *CommentService) SetClock(now func() time.Time) {
	s.now = now
}

// AddComment validates a comment and appends it to the post's comments
func (s *CommentService) AddComment(ctx context.Context, postID, author, message string) (*models.Comment, error) {
	oid, err := models.ParseID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Author:  author,
		Message: message,
	}
	if err := comment.Validate(); err != nil {
		return nil, newValidationError(err, commentLimitMessage)
	}

	comment.BeforeCreate(s.now())

	if err := s.postRepo.AppendComment(ctx, oid, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment to post %s: %w", postID, err)
	}
	return comment, nil
}
