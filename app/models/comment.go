package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate(now time.Time) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Date.IsZero() {
		c.Date = now
	}
}
