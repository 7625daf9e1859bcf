package controllers

import (
	"net/http"
	"strconv"

	"blogapi/app/models"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService  *services.PostService
	logger       *zap.Logger
	defaultLimit int
}

// NewPostController creates a new PostController. defaultLimit is the page
// size used when the client sends none.
func NewPostController(postService *services.PostService, logger *zap.Logger, defaultLimit int) *PostController {
	return &PostController{
		postService:  postService,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

type createPostRequest struct {
	Author  string `json:"author"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type listPostsResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
	Posts []models.PostView `json:"posts"`
}

// Create handles creating a new post and responds with its identifier
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(r.Context(), req.Author, req.Title, req.Message)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	sendJSON(w, http.StatusCreated, post.ID.Hex())
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	view, err := models.SanitizePost(post)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	sendJSON(w, http.StatusOK, view)
}

// Index handles listing one page of posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	limit, ok := pc.queryInt(w, r, "limit", pc.defaultLimit)
	if !ok {
		return
	}
	page, ok := pc.queryInt(w, r, "page", 1)
	if !ok {
		return
	}

	result, err := pc.postService.ListPosts(r.Context(), page, limit)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	views, err := models.SanitizePosts(result.Posts)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	if len(views) == 0 {
		sendEmpty(w, http.StatusNotFound)
		return
	}

	sendJSON(w, http.StatusOK, listPostsResponse{
		Page:  result.Page,
		Limit: result.Limit,
		Total: result.Total,
		Posts: views,
	})
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}

	sendEmpty(w, http.StatusAccepted)
}

// queryInt reads an integer query parameter, writing a 400 if it is
// present but not a number.
func (pc *PostController) queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		sendError(w, "Invalid "+name+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}
