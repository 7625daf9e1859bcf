package repositories

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// PostKeyPrefix prefixes every post document key.
	PostKeyPrefix = "post:"
)

// postKey builds the badger key of a post. ObjectIDs begin with a
// big-endian timestamp, so hex keys sort in creation order.
func postKey(id primitive.ObjectID) []byte {
	return []byte(PostKeyPrefix + id.Hex())
}

// marshalEntity encodes an entity as a BSON document
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := bson.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity decodes a BSON document into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := bson.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
