// Package client provides a thin HTTP client for the EduFeed API, used by
// the interactive shell.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/atinyakov/EduFeed/internal/models"
)

// Client calls the EduFeed API over HTTP.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New constructs a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{HTTP: &http.Client{}, BaseURL: baseURL}
}

type userEnvelope struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

type postEnvelope struct {
	Success bool        `json:"success"`
	Post    models.Post `json:"post"`
}

type commentEnvelope struct {
	Success bool           `json:"success"`
	Comment models.Comment `json:"comment"`
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.HTTP.Get(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: %s", path, bytes.TrimSpace(msg))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) sendJSON(method, path string, payload, out any) error {
	body := []byte("{}")
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: %s", method, path, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates with the given credentials.
func (c *Client) Login(username, password string) (models.User, error) {
	var env userEnvelope
	err := c.sendJSON(http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}, &env)
	return env.User, err
}

// Signup registers a new account and logs it in.
func (c *Client) Signup(username, password string) (models.User, error) {
	var env userEnvelope
	err := c.sendJSON(http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"password": password,
	}, &env)
	return env.User, err
}

// Logout clears the server-side session.
func (c *Client) Logout() error {
	return c.sendJSON(http.MethodPost, "/api/logout", nil, nil)
}

// Me returns the logged-in user, or nil when nobody is logged in.
func (c *Client) Me() (*models.User, error) {
	var user *models.User
	if err := c.getJSON("/api/me", &user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the logged-in user's record.
func (c *Client) UpdateUser(user models.User) (models.User, error) {
	var env userEnvelope
	err := c.sendJSON(http.MethodPut, "/api/user", user, &env)
	return env.User, err
}

// Feed returns the post feed, newest first.
func (c *Client) Feed() ([]models.Post, error) {
	var posts []models.Post
	err := c.getJSON("/api/posts", &posts)
	return posts, err
}

// CreatePost publishes a new post.
func (c *Client) CreatePost(content, image string) (models.Post, error) {
	var env postEnvelope
	err := c.sendJSON(http.MethodPost, "/api/posts", map[string]string{
		"content": content,
		"image":   image,
	}, &env)
	return env.Post, err
}

// ToggleLike flips the logged-in user's like on the post.
func (c *Client) ToggleLike(postID string) (models.Post, error) {
	var env postEnvelope
	err := c.sendJSON(http.MethodPost, "/api/posts/"+postID+"/like", nil, &env)
	return env.Post, err
}

// Comments returns the comments under the post, oldest first.
func (c *Client) Comments(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.getJSON("/api/posts/"+postID+"/comments", &comments)
	return comments, err
}

// AddComment appends a comment under the post.
func (c *Client) AddComment(postID, content string) (models.Comment, error) {
	var env commentEnvelope
	err := c.sendJSON(http.MethodPost, "/api/posts/"+postID+"/comments", map[string]string{
		"content": content,
	}, &env)
	return env.Comment, err
}

// News returns the study-materials news items.
func (c *Client) News() ([]models.NewsItem, error) {
	var news []models.NewsItem
	err := c.getJSON("/api/news", &news)
	return news, err
}

// Questions returns the practice questions.
func (c *Client) Questions() ([]models.Question, error) {
	var questions []models.Question
	err := c.getJSON("/api/questions", &questions)
	return questions, err
}

// Notifications returns the persisted notifications.
func (c *Client) Notifications() ([]models.Notification, error) {
	var notifs []models.Notification
	err := c.getJSON("/api/notifications", &notifs)
	return notifs, err
}
