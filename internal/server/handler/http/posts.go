package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/EduFeed/internal/middleware"
	"github.com/atinyakov/EduFeed/internal/models"
	"github.com/atinyakov/EduFeed/internal/service"
)

// PostService defines the interface for feed operations required by the
// HTTP handlers.
type PostService interface {
	// Posts returns the feed, newest first.
	Posts(ctx context.Context) ([]models.Post, error)
	// Create prepends a new post to the feed.
	Create(ctx context.Context, req service.CreatePostRequest) (models.Post, error)
	// ToggleLike flips userID's membership in the post's liker set.
	ToggleLike(ctx context.Context, postID, userID string) (models.Post, error)
}

// PostHandler handles HTTP requests for the post feed.
type PostHandler struct {
	// PostService performs the underlying feed operations.
	PostService PostService
}

// CreatePostBody represents the JSON payload for creating a post. The
// author fields come from the session, not the body.
type CreatePostBody struct {
	// Content is the post text.
	Content string `json:"content"`
	// Image is an optional image URL.
	Image string `json:"image"`
}

// PostResponse is the success envelope carrying a post record.
type PostResponse struct {
	Success bool        `json:"success"`
	Post    models.Post `json:"post"`
}

// GetPosts returns the full feed as a JSON array, newest first.
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.Posts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, posts)
}

// CreatePost creates a post authored by the session user. The body must
// carry non-empty content.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var body CreatePostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Create(r.Context(), service.CreatePostRequest{
		UserID:    user.ID,
		Author:    user.Username,
		Avatar:    user.Avatar,
		Content:   body.Content,
		Image:     body.Image,
		IsPremium: user.IsPremium,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, PostResponse{Success: true, Post: post})
}

// ToggleLike flips the session user's like on the post named in the URL
// and returns the updated post.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	postID := chi.URLParam(r, "postID")
	post, err := h.PostService.ToggleLike(r.Context(), postID, user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, PostResponse{Success: true, Post: post})
}
