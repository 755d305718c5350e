// Package models defines the core data structures for users, posts,
// comments and study materials.
package models

// User represents an application user with credentials and profile state.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// Password is the user's password. It is stored as plain text:
	// the store has no real trust boundary and hardening is out of scope.
	Password string `json:"password"`
	// IsPremium reports whether the user has premium access.
	IsPremium bool `json:"isPremium"`
	// Avatar is the URL of the user's avatar image.
	Avatar string `json:"avatar"`
	// SavedPosts holds the IDs of posts the user has bookmarked.
	SavedPosts []string `json:"savedPosts"`
}

// Post represents a feed post with denormalized author fields and counters.
type Post struct {
	// ID is the unique identifier for the post.
	ID string `json:"id"`
	// UserID is the ID of the author.
	UserID string `json:"userId"`
	// Author is the author's display name at creation time.
	Author string `json:"user"`
	// Avatar is the author's avatar URL at creation time.
	Avatar string `json:"avatar"`
	// Time is the human-readable creation-time label.
	Time string `json:"time"`
	// Content is the post text.
	Content string `json:"content"`
	// Image is an optional image URL attached to the post.
	Image string `json:"image,omitempty"`
	// Likes is the like count. It always equals len(LikedBy).
	Likes int `json:"likes"`
	// LikedBy holds the IDs of users who liked the post, each at most once.
	LikedBy []string `json:"likedBy"`
	// Comments is the number of comments referencing this post.
	Comments int `json:"comments"`
	// IsPremium marks the post as premium-only content.
	IsPremium bool `json:"isPremium"`
}

// Comment represents a comment on a post.
type Comment struct {
	// ID is the unique identifier for the comment.
	ID string `json:"id"`
	// PostID is the ID of the parent post.
	PostID string `json:"postId"`
	// UserID is the ID of the comment author.
	UserID string `json:"userId"`
	// Username is the author's display name at creation time.
	Username string `json:"username"`
	// Content is the comment text.
	Content string `json:"content"`
	// Time is the human-readable creation-time label.
	Time string `json:"time"`
}

// Notification represents a notification addressed to a user.
type Notification struct {
	// ID is the unique identifier for the notification.
	ID string `json:"id"`
	// UserID is the ID of the addressed user.
	UserID string `json:"userId"`
	// Message is the notification text.
	Message string `json:"message"`
	// Time is the human-readable creation-time label.
	Time string `json:"time"`
	// Read reports whether the user has seen the notification.
	Read bool `json:"read"`
}

// NewsItem is a short news entry shown in the study-materials section.
type NewsItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Question is a practice question with its answer and explanation.
type Question struct {
	ID          int      `json:"id"`
	Content     string   `json:"content"`
	Image       string   `json:"image,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Tags        []string `json:"tags"`
}
