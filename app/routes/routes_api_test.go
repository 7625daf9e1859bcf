package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"blogapi/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postPayload struct {
	Author  string `json:"author"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type commentPayload struct {
	Author  string `json:"author"`
	Message string `json:"message"`
}

type apiResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
	Posts []models.PostView `json:"posts"`
}

func createPost(t *testing.T, router http.Handler, p postPayload) string {
	w := do(t, router, "POST", "/blog/post", p)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var id string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
	return id
}

func getPost(t *testing.T, router http.Handler, id string) models.PostView {
	w := do(t, router, "GET", "/blog/post/"+id+"/", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view models.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestAPIRoutes(t *testing.T) {
	router, _ := setupTestRouter(t)

	var id string

	t.Run("POST /blog/post returns a parsable identifier", func(t *testing.T) {
		id = createPost(t, router, postPayload{Author: "Grace", Title: "Compilers", Message: "A-0 notes"})
		assert.Len(t, id, 24)
		_, err := models.ParseID(id)
		assert.NoError(t, err)
	})

	t.Run("GET /blog/post returns what was posted", func(t *testing.T) {
		view := getPost(t, router, id)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "Grace", view.Author)
		assert.Equal(t, "Compilers", view.Title)
		assert.Equal(t, "A-0 notes", view.Message)
		assert.Regexp(t, `^Posted \d{8} at \d{2}:\d{2}$`, view.Date)
	})

	t.Run("POST /blog/post rejects oversized fields", func(t *testing.T) {
		for _, p := range []postPayload{
			{Author: strings.Repeat("a", 41), Title: "t", Message: "m"},
			{Author: "a", Title: strings.Repeat("t", 41), Message: "m"},
			{Author: "a", Title: "t", Message: strings.Repeat("m", 3001)},
		} {
			w := do(t, router, "POST", "/blog/post", p)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Character count exceeded"}`, w.Body.String())
		}
	})

	t.Run("GET /blog/post rejects malformed identifiers", func(t *testing.T) {
		for _, bad := range []string{"123456789012", "xyz", id + "00"} {
			w := do(t, router, "GET", "/blog/post/"+bad+"/", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		}
	})

	t.Run("PUT /blog/comment appends a comment", func(t *testing.T) {
		w := do(t, router, "PUT", "/blog/comment/"+id+"/", commentPayload{Author: "Ada", Message: "Lovely"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())

		view := getPost(t, router, id)
		require.Len(t, view.Comments, 1)
		assert.Equal(t, "Ada", view.Comments[0].Author)
		assert.Equal(t, "Lovely", view.Comments[0].Message)
		assert.Len(t, view.Comments[0].ID, 24)
	})

	t.Run("PUT /blog/comment on a missing post", func(t *testing.T) {
		w := do(t, router, "PUT", "/blog/comment/"+strings.Repeat("a", 24)+"/", commentPayload{Author: "Ada", Message: "Hello?"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DELETE /blog/remove deletes exactly that post", func(t *testing.T) {
		other := createPost(t, router, postPayload{Author: "Alan", Title: "Machines", Message: "Can they think"})

		w := do(t, router, "DELETE", "/blog/remove/"+id, nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())

		w = do(t, router, "GET", "/blog/post/"+id+"/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Alan", getPost(t, router, other).Author)

		w = do(t, router, "DELETE", "/blog/remove/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(t, router, "DELETE", "/blog/remove/short", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPIListPosts(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := do(t, router, "GET", "/blog/posts?limit=2&page=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	var ids []string
	for i := 0; i < 5; i++ {
		ids = append(ids, createPost(t, router, postPayload{Author: "Author", Title: fmt.Sprintf("Post %d", i), Message: "Body"}))
	}

	t.Run("GET /blog/posts returns list with pagination", func(t *testing.T) {
		w := do(t, router, "GET", "/blog/posts?limit=2&page=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res apiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 2, res.Limit)
		assert.Equal(t, 5, res.Total)
		require.Len(t, res.Posts, 2)
		assert.Equal(t, ids[0], res.Posts[0].ID)
		assert.Equal(t, ids[1], res.Posts[1].ID)
	})

	t.Run("last page is partial", func(t *testing.T) {
		w := do(t, router, "GET", "/blog/posts?limit=2&page=3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res apiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Posts, 1)
		assert.Equal(t, ids[4], res.Posts[0].ID)
	})

	t.Run("page past the end", func(t *testing.T) {
		w := do(t, router, "GET", "/blog/posts?limit=2&page=4", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("page far past the end", func(t *testing.T) {
		for _, q := range []string{"limit=3&page=6148914691236517206", "limit=1&page=9223372036854775807"} {
			w := do(t, router, "GET", "/blog/posts?"+q, nil)
			assert.Equal(t, http.StatusNotFound, w.Code, q)
			assert.JSONEq(t, `{}`, w.Body.String())
		}
	})

	t.Run("non-numeric parameters", func(t *testing.T) {
		w := do(t, router, "GET", "/blog/posts?limit=ten", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPIConcurrentComments(t *testing.T) {
	router, _ := setupTestRouter(t)
	id := createPost(t, router, postPayload{Author: "Author", Title: "Popular", Message: "Discuss"})

	const writers = 6
	var wg sync.WaitGroup
	codes := make(chan int, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := do(t, router, "PUT", "/blog/comment/"+id+"/", commentPayload{Author: "Reader", Message: fmt.Sprintf("take %d", i)})
			codes <- w.Code
		}(i)
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}
	assert.Len(t, getPost(t, router, id).Comments, writers)
}
