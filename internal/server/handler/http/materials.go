package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/EduFeed/internal/content"
	"github.com/atinyakov/EduFeed/internal/models"
)

// NotificationService defines the interface for notification reads
// required by the HTTP handlers.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
}

// MaterialsHandler serves the study-materials section: news, practice
// questions and notifications.
type MaterialsHandler struct {
	// NotificationService lists the persisted notifications.
	NotificationService NotificationService
}

// News returns the static news items.
func (h *MaterialsHandler) News(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, content.News())
}

// Questions returns the static practice questions.
func (h *MaterialsHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, content.Questions())
}

// Notifications returns the persisted notifications for the session user.
func (h *MaterialsHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	notifs, err := h.NotificationService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, notifs)
}
