package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/EduFeed/internal/middleware"
	"github.com/atinyakov/EduFeed/internal/models"
)

// CommentService defines the interface for comment operations required by
// the HTTP handlers.
type CommentService interface {
	// Comments returns the comments under postID, oldest first.
	Comments(ctx context.Context, postID string) ([]models.Comment, error)
	// Add appends a comment under postID and bumps the post's counter.
	Add(ctx context.Context, postID, userID, username, content string) (models.Comment, error)
}

// CommentHandler handles HTTP requests for post comments.
type CommentHandler struct {
	// CommentService performs the underlying comment operations.
	CommentService CommentService
}

// AddCommentBody represents the JSON payload for adding a comment.
type AddCommentBody struct {
	// Content is the comment text.
	Content string `json:"content"`
}

// CommentResponse is the success envelope carrying a comment record.
type CommentResponse struct {
	Success bool           `json:"success"`
	Comment models.Comment `json:"comment"`
}

// GetComments returns the comments of the post named in the URL as a JSON
// array, oldest first.
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	comments, err := h.CommentService.Comments(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, comments)
}

// AddComment appends a comment by the session user to the post named in
// the URL. Empty content is rejected before it reaches the service.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var body AddCommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	postID := chi.URLParam(r, "postID")
	comment, err := h.CommentService.Add(r.Context(), postID, user.ID, user.Username, body.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, CommentResponse{Success: true, Comment: comment})
}
