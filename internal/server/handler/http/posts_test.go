package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/EduFeed/internal/models"
	"github.com/atinyakov/EduFeed/internal/service"
)

// fakePostService implements PostService for testing.
type fakePostService struct {
	posts      []models.Post
	postsErr   error
	created    models.Post
	createErr  error
	createReq  service.CreatePostRequest
	toggled    models.Post
	toggleErr  error
	toggleArgs [2]string
}

func (f *fakePostService) Posts(ctx context.Context) ([]models.Post, error) {
	return f.posts, f.postsErr
}
func (f *fakePostService) Create(ctx context.Context, req service.CreatePostRequest) (models.Post, error) {
	f.createReq = req
	return f.created, f.createErr
}
func (f *fakePostService) ToggleLike(ctx context.Context, postID, userID string) (models.Post, error) {
	f.toggleArgs = [2]string{postID, userID}
	return f.toggled, f.toggleErr
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPostHandler_GetPosts(t *testing.T) {
	svc := &fakePostService{posts: []models.Post{
		{ID: "p2", Content: "newer"},
		{ID: "p1", Content: "older"},
	}}
	h := &PostHandler{PostService: svc}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/posts", nil)
	h.GetPosts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var posts []models.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "p2" {
		t.Errorf("unexpected posts: %+v", posts)
	}
}

func TestPostHandler_CreatePost(t *testing.T) {
	session := &models.User{ID: "u1", Username: "alice", Avatar: "a.svg", IsPremium: true}

	tests := []struct {
		name         string
		session      *models.User
		body         string
		expectedCode int
	}{
		{
			name:         "no session",
			session:      nil,
			body:         `{"content":"hi"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "blank content",
			session:      session,
			body:         `{"content":"   "}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "success",
			session:      session,
			body:         `{"content":"hi","image":"pic.jpg"}`,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePostService{created: models.Post{ID: "p1"}}
			h := &PostHandler{PostService: svc}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/posts", bytes.NewBufferString(tt.body))
			withSession(tt.session, h.CreatePost).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK {
				// author fields must come from the session, not the body
				if svc.createReq.UserID != "u1" || svc.createReq.Author != "alice" {
					t.Errorf("unexpected author fields: %+v", svc.createReq)
				}
				if !svc.createReq.IsPremium || svc.createReq.Avatar != "a.svg" {
					t.Errorf("session profile not carried over: %+v", svc.createReq)
				}
				if svc.createReq.Image != "pic.jpg" {
					t.Errorf("image = %q; want %q", svc.createReq.Image, "pic.jpg")
				}
			}
		})
	}
}

func TestPostHandler_ToggleLike(t *testing.T) {
	session := &models.User{ID: "u1", Username: "alice"}

	t.Run("post not found", func(t *testing.T) {
		svc := &fakePostService{toggleErr: service.ErrPostNotFound}
		h := &PostHandler{PostService: svc}

		rec := httptest.NewRecorder()
		req := withURLParam(httptest.NewRequest("POST", "/api/posts/missing/like", nil), "postID", "missing")
		withSession(session, h.ToggleLike).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakePostService{toggled: models.Post{ID: "p1", Likes: 1, LikedBy: []string{"u1"}}}
		h := &PostHandler{PostService: svc}

		rec := httptest.NewRecorder()
		req := withURLParam(httptest.NewRequest("POST", "/api/posts/p1/like", nil), "postID", "p1")
		withSession(session, h.ToggleLike).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if svc.toggleArgs != [2]string{"p1", "u1"} {
			t.Errorf("ToggleLike called with %v", svc.toggleArgs)
		}
		var resp PostResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if !resp.Success || resp.Post.Likes != 1 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}
