package repositories

import (
	"context"
	"errors"
	"fmt"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxAppendAttempts bounds the retries of a comment append that lost a
// write conflict to a concurrent transaction.
const maxAppendAttempts = 16

// AppendComment appends comment to the post's comment sequence. The read and
// the write share one transaction; badger aborts it with ErrConflict when
// another append committed first, and the whole transaction is retried.
func (r *BadgerPostRepository) AppendComment(ctx context.Context, id primitive.ObjectID, comment *models.Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	var err error
	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		err = r.db.Update(func(txn *badger.Txn) error {
			var post models.Post
			if err := getPost(txn, id, &post); err != nil {
				return err
			}
			if err := post.AddComment(comment); err != nil {
				return err
			}

			data, err := marshalEntity(&post)
			if err != nil {
				return err
			}
			return txn.Set(postKey(id), data)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("append comment to post %s after %d attempts: %w", id.Hex(), maxAppendAttempts, err)
}
