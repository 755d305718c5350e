// Package content holds the static study-materials data: news items and
// practice questions. The data is compiled in, not persisted.
package content

import "github.com/atinyakov/EduFeed/internal/models"

var news = []models.NewsItem{
	{ID: 1, Title: "HSC 24", Content: "Physics 1st Paper exam postponed due to rain."},
	{ID: 2, Title: "Admission", Content: "DU A Unit admission circular published."},
	{ID: 3, Title: "Update", Content: "New study materials added to the platform."},
	{ID: 4, Title: "Notice", Content: "Server maintenance scheduled for tonight."},
}

var questions = []models.Question{
	{
		ID:          1,
		Content:     "A body moves on a circular path so that its speed at points A, B, C and D is the same while the direction of the velocity differs. Despite equal speeds, the changing direction produces an acceleration directed at the centre, ac = v^2/r, where v is the speed and r the radius of the path. What is this acceleration called?",
		Image:       "https://i.ibb.co/RDmnqHP/physics-q1.jpg",
		Answer:      "Answer: centripetal acceleration",
		Explanation: "Uniform speed on a circle is not uniform velocity: the direction changes continuously, so there is always an acceleration pointing at the centre.",
		Tags:        []string{"Physics", "Vector", "HSC"},
	},
	{
		ID:          2,
		Content:     "A body starts from rest and covers 16 m in 4 s under uniform acceleration. How far does it travel in 8 s?",
		Answer:      "64m",
		Explanation: "s ∝ t^2. So, s2/s1 = (t2/t1)^2 => s2 = 16 * (8/4)^2 = 16 * 4 = 64m.",
		Tags:        []string{"Physics", "Dynamics", "Admission"},
	},
}

// News returns the news feed shown in the study-materials section.
func News() []models.NewsItem {
	return news
}

// Questions returns the practice questions.
func Questions() []models.Question {
	return questions
}
