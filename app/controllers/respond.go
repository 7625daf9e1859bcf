package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"blogapi/app/middleware"
	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; the largest valid post is well below it.
const maxBodyBytes = 64 << 10

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendEmpty(w http.ResponseWriter, status int) {
	sendJSON(w, status, struct{}{})
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// decodeBody decodes a JSON object body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}

// sendServiceError maps a service error onto the API's status codes.
func sendServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		sendError(w, verr.Message, http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidID):
		sendError(w, "Invalid Post ID", http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidPage):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		sendEmpty(w, http.StatusNotFound)
	case errors.Is(err, models.ErrSanitize):
		logger.Error("invalid data sanitization",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		)
		sendEmpty(w, http.StatusMethodNotAllowed)
	default:
		logger.Error("request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		)
		sendError(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
