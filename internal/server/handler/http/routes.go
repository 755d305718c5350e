package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/atinyakov/EduFeed/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// EduFeed API. It applies JSON content-type enforcement and request
// logging, and guards the mutating feed endpoints behind the persisted
// session.
//
// Routes:
//
//	POST /api/register                 → authHandler.Register
//	POST /api/login                    → authHandler.Login
//	POST /api/logout                   → authHandler.Logout
//	GET  /api/me                       → authHandler.Me
//	GET  /api/posts                    → postHandler.GetPosts
//	GET  /api/posts/{postID}/comments  → commentHandler.GetComments
//	GET  /api/news                     → materialsHandler.News
//	GET  /api/questions                → materialsHandler.Questions
//
// Protected by SessionAuth (401 without a session):
//
//	POST /api/posts                    → postHandler.CreatePost
//	POST /api/posts/{postID}/like      → postHandler.ToggleLike
//	POST /api/posts/{postID}/comments  → commentHandler.AddComment
//	PUT  /api/user                     → authHandler.UpdateUser
//	GET  /api/notifications            → materialsHandler.Notifications
func NewRouter(
	authHandler *AuthHandler,
	postHandler *PostHandler,
	commentHandler *CommentHandler,
	materialsHandler *MaterialsHandler,
	sessions middleware.SessionReader,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
		r.Get("/posts", postHandler.GetPosts)
		r.Get("/posts/{postID}/comments", commentHandler.GetComments)
		r.Get("/news", materialsHandler.News)
		r.Get("/questions", materialsHandler.Questions)

		// Protected group: requires a logged-in session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(sessions))
			r.Post("/posts", postHandler.CreatePost)
			r.Post("/posts/{postID}/like", postHandler.ToggleLike)
			r.Post("/posts/{postID}/comments", commentHandler.AddComment)
			r.Put("/user", authHandler.UpdateUser)
			r.Get("/notifications", materialsHandler.Notifications)
		})
	})

	return r
}
