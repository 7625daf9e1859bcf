package mock

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostRepository is an in-memory repositories.PostRepository. Stored posts
// are copied on the way in and out so callers never share state.
type PostRepository struct {
	posts map[primitive.ObjectID]*models.Post
	mutex sync.RWMutex

	// Err, when set, is returned by every call.
	Err error
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[primitive.ObjectID]*models.Post),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[primitive.ObjectID]*models.Post)
}

func (m *PostRepository) Create(_ context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post), nil
}

func (m *PostRepository) List(_ context.Context, limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}

	ids := make([]primitive.ObjectID, 0, len(m.posts))
	for id := range m.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	posts := []*models.Post{}
	if offset >= len(ids) {
		return posts, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	for _, id := range ids[offset:end] {
		posts = append(posts, clonePost(m.posts[id]))
	}
	return posts, nil
}

func (m *PostRepository) Count(_ context.Context) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.posts), nil
}

func (m *PostRepository) AppendComment(_ context.Context, id primitive.ObjectID, comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	post, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}
	return post.AddComment(comment)
}

func (m *PostRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	if p.Comments != nil {
		cp.Comments = make([]models.Comment, len(p.Comments))
		copy(cp.Comments, p.Comments)
	}
	return &cp
}
