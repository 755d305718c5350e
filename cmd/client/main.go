package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atinyakov/EduFeed/internal/client"
	"github.com/atinyakov/EduFeed/internal/models"
)

var (
	version   string
	buildDate string
)

// toggleSaved flips postID in the user's saved set and pushes the full
// record back to the server.
func toggleSaved(user models.User, postID string) models.User {
	saved := user.SavedPosts
	for i, id := range saved {
		if id == postID {
			user.SavedPosts = append(saved[:i], saved[i+1:]...)
			return user
		}
	}
	user.SavedPosts = append(saved, postID)
	return user
}

func printFeed(posts []models.Post) {
	for _, p := range posts {
		premium := ""
		if p.IsPremium {
			premium = " [premium]"
		}
		fmt.Printf("%s  %s (%s)%s\n  %s\n  likes: %d  comments: %d\n---\n",
			p.ID, p.Author, p.Time, premium, p.Content, p.Likes, p.Comments)
	}
}

// repl runs the interactive shell loop, accepting commands to browse and
// act on the feed.
func repl(api *client.Client) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("edufeed> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, signup <user> <pass>, login <user> <pass>, logout, me, feed, post <text>, like <id>, comments <id>, comment <id> <text>, save <id>, premium, news, questions, notifs, exit")
		case "signup":
			if len(args) < 3 {
				fmt.Println("Usage: signup <user> <pass>")
				continue
			}
			user, err := api.Signup(args[1], args[2])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Welcome, %s!\n", user.Username)
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <user> <pass>")
				continue
			}
			user, err := api.Login(args[1], args[2])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Logged in as %s\n", user.Username)
		case "logout":
			if err := api.Logout(); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Logged out")
		case "me":
			user, err := api.Me()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if user == nil {
				fmt.Println("Not logged in")
				continue
			}
			fmt.Printf("%s (premium: %v, saved posts: %d)\n", user.Username, user.IsPremium, len(user.SavedPosts))
		case "feed":
			posts, err := api.Feed()
			if err != nil {
				fmt.Println(err)
				continue
			}
			printFeed(posts)
		case "post":
			if len(args) < 2 {
				fmt.Println("Usage: post <text>")
				continue
			}
			created, err := api.CreatePost(strings.Join(args[1:], " "), "")
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Posted %s\n", created.ID)
		case "like":
			if len(args) < 2 {
				fmt.Println("Usage: like <id>")
				continue
			}
			post, err := api.ToggleLike(args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Post %s now has %d likes\n", post.ID, post.Likes)
		case "comments":
			if len(args) < 2 {
				fmt.Println("Usage: comments <id>")
				continue
			}
			comments, err := api.Comments(args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, c := range comments {
				fmt.Printf("%s (%s): %s\n", c.Username, c.Time, c.Content)
			}
		case "comment":
			if len(args) < 3 {
				fmt.Println("Usage: comment <id> <text>")
				continue
			}
			c, err := api.AddComment(args[1], strings.Join(args[2:], " "))
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Comment %s added\n", c.ID)
		case "save":
			if len(args) < 2 {
				fmt.Println("Usage: save <id>")
				continue
			}
			user, err := api.Me()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if user == nil {
				fmt.Println("Not logged in")
				continue
			}
			updated, err := api.UpdateUser(toggleSaved(*user, args[1]))
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Saved posts: %v\n", updated.SavedPosts)
		case "premium":
			user, err := api.Me()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if user == nil {
				fmt.Println("Not logged in")
				continue
			}
			user.IsPremium = !user.IsPremium
			updated, err := api.UpdateUser(*user)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Premium: %v\n", updated.IsPremium)
		case "news":
			news, err := api.News()
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, n := range news {
				fmt.Printf("[%s] %s\n", n.Title, n.Content)
			}
		case "questions":
			questions, err := api.Questions()
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, q := range questions {
				fmt.Printf("Q%d: %s\n  %s (%s)\n", q.ID, q.Content, q.Answer, strings.Join(q.Tags, ", "))
			}
		case "notifs":
			notifs, err := api.Notifications()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if len(notifs) == 0 {
				fmt.Println("No notifications")
				continue
			}
			for _, n := range notifs {
				fmt.Printf("%s: %s\n", n.Time, n.Message)
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and starts the interactive shell.
func main() {
	var (
		baseURL string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("EduFeed Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	repl(client.New(baseURL))
}
