package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func setupTestDB(t *testing.T) *badger.DB {
	db, err := repositories.OpenBadger("", true, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) (*mux.Router, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	router := SetupRoutes(Deps{
		Posts:        repositories.NewBadgerPostRepository(setupTestDB(t)),
		Logger:       zaptest.NewLogger(t),
		Registry:     registry,
		DefaultLimit: 10,
		MaxLimit:     100,
	})
	return router, registry
}

// do sends a request with an optional JSON body through router.
func do(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
