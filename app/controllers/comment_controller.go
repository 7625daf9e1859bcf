package controllers

import (
	"net/http"

	"blogapi/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	logger         *zap.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger *zap.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

type createCommentRequest struct {
	Author  string `json:"author"`
	Message string `json:"message"`
}

// Create handles appending a new comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	var req createCommentRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := cc.commentService.AddComment(r.Context(), postID, req.Author, req.Message); err != nil {
		sendServiceError(w, r, cc.logger, err)
		return
	}

	sendEmpty(w, http.StatusCreated)
}
