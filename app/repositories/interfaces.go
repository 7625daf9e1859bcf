package repositories

import (
	"context"

	"blogapi/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostRepository defines the interface for post document access.
// Comments live inside their post, so appending one is a post operation.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Count(ctx context.Context) (int, error)
	AppendComment(ctx context.Context, id primitive.ObjectID, comment *models.Comment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
