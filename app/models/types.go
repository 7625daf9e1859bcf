package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post with its comments.
type Post struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Author   string             `json:"author" bson:"author" validate:"required,max=40"`
	Title    string             `json:"title" bson:"title" validate:"required,max=40"`
	Message  string             `json:"message" bson:"message" validate:"required,max=3000"`
	Date     time.Time          `json:"date" bson:"date"`
	Comments []Comment          `json:"comments" bson:"comments" validate:"-"`
}

// Comment represents a comment on a blog post. It only exists as an
// element of its parent post's comment sequence.
type Comment struct {
	ID      primitive.ObjectID `json:"id" bson:"id"`
	Author  string             `json:"author" bson:"author" validate:"required,max=40"`
	Message string             `json:"message" bson:"message" validate:"required,max=750"`
	Date    time.Time          `json:"date" bson:"date"`
}
