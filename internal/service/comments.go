package service

import (
	"context"
	"time"

	"github.com/rs/xid"

	"github.com/atinyakov/EduFeed/internal/models"
)

// CommentRepository defines the persistence operations required by the
// comment service. It spans both the comment and post collections because
// adding a comment also bumps the parent post's counter.
type CommentRepository interface {
	// Comments returns the full comment collection in insertion order.
	Comments(ctx context.Context) ([]models.Comment, error)
	// SaveComments persists the full comment collection.
	SaveComments(ctx context.Context, comments []models.Comment) error
	// Posts returns the full post collection in storage order.
	Posts(ctx context.Context) ([]models.Post, error)
	// SavePosts persists the full post collection.
	SavePosts(ctx context.Context, posts []models.Post) error
}

// CommentService implements comment operations by delegating to a
// CommentRepository.
type CommentService struct {
	// repo performs the data-layer operations.
	repo CommentRepository
	// latency is the simulated network latency per operation.
	latency time.Duration
}

// NewCommentService constructs a CommentService using the provided
// repository and simulated latency.
func NewCommentService(repo CommentRepository, latency time.Duration) *CommentService {
	return &CommentService{repo: repo, latency: latency}
}

// Comments returns the comments whose parent is postID, oldest first.
func (s *CommentService) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	all, err := s.repo.Comments(ctx)
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	for _, c := range all {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// Add appends a new comment under postID and increments the parent post's
// comment counter. The post is checked first, so an unknown postID yields
// ErrPostNotFound and writes nothing. The comment and counter writes are
// two separate document writes and are not atomic; a crash between them
// leaves the counter one behind, which the design accepts.
func (s *CommentService) Add(ctx context.Context, postID, userID, username, content string) (models.Comment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return models.Comment{}, err
	}

	posts, err := s.repo.Posts(ctx)
	if err != nil {
		return models.Comment{}, err
	}
	index := -1
	for i := range posts {
		if posts[i].ID == postID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Comment{}, ErrPostNotFound
	}

	comment := models.Comment{
		ID:       xid.New().String(),
		PostID:   postID,
		UserID:   userID,
		Username: username,
		Content:  content,
		Time:     timeLabelNow,
	}

	comments, err := s.repo.Comments(ctx)
	if err != nil {
		return models.Comment{}, err
	}
	comments = append(comments, comment)
	if err := s.repo.SaveComments(ctx, comments); err != nil {
		return models.Comment{}, err
	}

	posts[index].Comments++
	if err := s.repo.SavePosts(ctx, posts); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
