package routes

import (
	"encoding/json"
	"net/http"

	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Posts        repositories.PostRepository
	Logger       *zap.Logger
	Registry     *prometheus.Registry
	DefaultLimit int
	MaxLimit     int
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(d Deps) *mux.Router {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := d.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.NewMetrics(registry).Handler)
	router.Use(middleware.Recoverer(logger))

	postService := services.NewPostService(d.Posts, d.MaxLimit)
	commentService := services.NewCommentService(d.Posts)

	postController := controllers.NewPostController(postService, logger, d.DefaultLimit)
	commentController := controllers.NewCommentController(commentService, logger)

	// Blog API endpoints
	blog := router.PathPrefix(middleware.APIPrefix).Subrouter()
	handle(blog, "/post", postController.Create, http.MethodPost)
	handle(blog, "/posts", postController.Index, http.MethodGet)
	handle(blog, "/post/{id}", postController.Show, http.MethodGet)
	handle(blog, "/remove/{id}", postController.Delete, http.MethodDelete)
	handle(blog, "/comment/{postId}", commentController.Create, http.MethodPut)

	// Operational endpoints
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	return router
}

// handle registers h for path both with and without a trailing slash.
func handle(r *mux.Router, path string, h http.HandlerFunc, method string) {
	r.HandleFunc(path, h).Methods(method)
	r.HandleFunc(path+"/", h).Methods(method)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
