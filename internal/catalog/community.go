package catalog

import "time"

// ForumTopic is one discussion thread listing.
type ForumTopic struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Author       string    `json:"author"`
	Replies      int       `json:"replies"`
	Views        int       `json:"views"`
	LastActivity time.Time `json:"lastActivity"`
	Tags         []string  `json:"tags"`
}

// ForumCategories is the closed list of forum sections.
var ForumCategories = []string{"Academic", "Career", "Projects", "Competitive Exams", "Events", "General"}

var forumTopics = []ForumTopic{
	{
		ID: 1, Title: "Best Study Resources for Data Structures", Category: "Academic",
		Author: "Senior Student", Replies: 15, Views: 120,
		LastActivity: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Tags:         []string{"Data Structures", "Study Tips", "Computer Science"},
	},
	{
		ID: 2, Title: "Internship Opportunities for 3rd Year Students", Category: "Career",
		Author: "Placement Cell", Replies: 8, Views: 85,
		LastActivity: time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
		Tags:         []string{"Internships", "Career", "3rd Year"},
	},
	{
		ID: 3, Title: "Project Ideas for Final Year", Category: "Projects",
		Author: "Faculty Member", Replies: 12, Views: 95,
		LastActivity: time.Date(2024, 1, 13, 16, 45, 0, 0, time.UTC),
		Tags:         []string{"Projects", "Final Year", "Ideas"},
	},
	{
		ID: 4, Title: "Tips for JEE Advanced Preparation", Category: "Competitive Exams",
		Author: "Alumni", Replies: 6, Views: 67,
		LastActivity: time.Date(2024, 1, 12, 11, 15, 0, 0, time.UTC),
		Tags:         []string{"JEE", "Preparation", "Tips"},
	},
	{
		ID: 5, Title: "College Fest 2024 - Call for Volunteers", Category: "Events",
		Author: "Student Council", Replies: 3, Views: 45,
		LastActivity: time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC),
		Tags:         []string{"Events", "Volunteers", "College Fest"},
	},
}

// ForumTopics returns the forum thread listings.
func ForumTopics() []ForumTopic {
	return forumTopics
}

// Event is one campus event.
type Event struct {
	ID                   int       `json:"id"`
	Title                string    `json:"title"`
	Type                 string    `json:"type"`
	Date                 time.Time `json:"date"`
	Duration             string    `json:"duration"`
	Location             string    `json:"location"`
	Organizer            string    `json:"organizer"`
	Description          string    `json:"description"`
	RegistrationRequired bool      `json:"registrationRequired"`
	MaxParticipants      int       `json:"maxParticipants"`
	CurrentParticipants  int       `json:"currentParticipants"`
}

var events = []Event{
	{
		ID: 1, Title: "Tech Talk: AI in Modern Applications", Type: "Workshop",
		Date: time.Date(2024, 2, 15, 14, 0, 0, 0, time.UTC), Duration: "2 hours",
		Location: "Main Auditorium", Organizer: "Computer Science Department",
		Description:          "Learn about practical applications of AI in modern software development",
		RegistrationRequired: true, MaxParticipants: 100, CurrentParticipants: 45,
	},
	{
		ID: 2, Title: "Coding Competition", Type: "Competition",
		Date: time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC), Duration: "4 hours",
		Location: "Computer Lab 1", Organizer: "Programming Club",
		Description:          "Annual coding competition with exciting prizes",
		RegistrationRequired: true, MaxParticipants: 50, CurrentParticipants: 32,
	},
	{
		ID: 3, Title: "Career Fair 2024", Type: "Career",
		Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Duration: "6 hours",
		Location: "Sports Complex", Organizer: "Placement Cell",
		Description:          "Meet top companies and explore career opportunities",
		RegistrationRequired: false, MaxParticipants: 500, CurrentParticipants: 0,
	},
	{
		ID: 4, Title: "Alumni Meet", Type: "Networking",
		Date: time.Date(2024, 2, 25, 18, 0, 0, 0, time.UTC), Duration: "3 hours",
		Location: "College Garden", Organizer: "Alumni Association",
		Description:          "Network with successful alumni and learn from their experiences",
		RegistrationRequired: true, MaxParticipants: 200, CurrentParticipants: 78,
	},
}

// Events returns all campus event listings.
func Events() []Event {
	return events
}
