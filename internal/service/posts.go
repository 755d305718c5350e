package service

import (
	"context"
	"time"

	"github.com/rs/xid"

	"github.com/atinyakov/EduFeed/internal/models"
)

// PostRepository defines the persistence operations required by the post
// service.
type PostRepository interface {
	// Posts returns the full post collection in storage order.
	Posts(ctx context.Context) ([]models.Post, error)
	// SavePosts persists the full post collection.
	SavePosts(ctx context.Context, posts []models.Post) error
}

// CreatePostRequest carries the caller-supplied fields of a new post.
// The author fields are denormalized copies of the posting user.
type CreatePostRequest struct {
	// UserID is the ID of the author.
	UserID string
	// Author is the author's display name.
	Author string
	// Avatar is the author's avatar URL.
	Avatar string
	// Content is the post text.
	Content string
	// Image is an optional image URL.
	Image string
	// IsPremium marks the post as premium-only content.
	IsPremium bool
}

// PostService implements feed operations by delegating to a PostRepository.
type PostService struct {
	// repo performs the data-layer operations.
	repo PostRepository
	// latency is the simulated network latency per operation.
	latency time.Duration
}

// NewPostService constructs a PostService using the provided repository
// and simulated latency.
func NewPostService(repo PostRepository, latency time.Duration) *PostService {
	return &PostService{repo: repo, latency: latency}
}

// Posts returns the feed in storage order. New posts are prepended on
// creation, so the order is newest first.
func (s *PostService) Posts(ctx context.Context) ([]models.Post, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.Posts(ctx)
}

// Create wraps the request in a new post with a generated ID, zero likes
// and comments, an empty liker set and a "Just now" time label, prepends
// it to the feed and returns it. Post IDs are xids: unique under
// rapid-fire creation yet still ordered by creation time.
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (models.Post, error) {
	if err := wait(ctx, s.latency); err != nil {
		return models.Post{}, err
	}

	posts, err := s.repo.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:        xid.New().String(),
		UserID:    req.UserID,
		Author:    req.Author,
		Avatar:    req.Avatar,
		Time:      timeLabelNow,
		Content:   req.Content,
		Image:     req.Image,
		Likes:     0,
		LikedBy:   []string{},
		Comments:  0,
		IsPremium: req.IsPremium,
	}

	posts = append([]models.Post{post}, posts...)
	if err := s.repo.SavePosts(ctx, posts); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ToggleLike adds userID to the post's liker set if absent, removes it if
// present, and recomputes the like count from the resulting set so the two
// can never diverge. It returns the updated post, or ErrPostNotFound for
// an unknown postID. The simulated latency is skipped here on purpose so
// likes feel responsive.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (models.Post, error) {
	posts, err := s.repo.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	index := -1
	for i := range posts {
		if posts[i].ID == postID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Post{}, ErrPostNotFound
	}

	likedBy := posts[index].LikedBy
	found := false
	for i, id := range likedBy {
		if id == userID {
			likedBy = append(likedBy[:i], likedBy[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		likedBy = append(likedBy, userID)
	}

	posts[index].LikedBy = likedBy
	posts[index].Likes = len(likedBy)

	if err := s.repo.SavePosts(ctx, posts); err != nil {
		return models.Post{}, err
	}
	return posts[index], nil
}
