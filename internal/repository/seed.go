package repository

import "github.com/atinyakov/EduFeed/internal/models"

// SeedPosts returns the posts the feed starts with before any user has
// posted. Like counts start at zero so they always match the liker set.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:      "seed-1",
			UserID:  "admin",
			Author:  "Sakib Ahmed",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Sakib",
			Time:    "2 hrs ago",
			Content: "Physics vector math problem help needed!",
			Image:   "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=500&auto=format&fit=crop&q=60",
			LikedBy: []string{},
		},
		{
			ID:      "seed-2",
			UserID:  "system",
			Author:  "EduFeed Official",
			Avatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=System",
			Time:    "1 hr ago",
			Content: "📢 Important Update: HSC-24 Special Suggestion (Physics 1st Paper) is now available for everyone! Check the Study Materials section.",
			LikedBy: []string{},
		},
	}
}
