package catalog

// InterviewQuestion is one mock-interview question with model answer and
// coaching material. FollowUps is used for technical questions, Tips for
// HR ones.
type InterviewQuestion struct {
	ID             int      `json:"id"`
	Question       string   `json:"question"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty"`
	ExpectedAnswer string   `json:"expectedAnswer"`
	FollowUps      []string `json:"followUpQuestions,omitempty"`
	Tips           []string `json:"tips,omitempty"`
}

var technicalQuestions = []InterviewQuestion{
	{
		ID:             1,
		Question:       "What is the difference between stack and queue?",
		Category:       "Data Structures",
		Difficulty:     "Easy",
		ExpectedAnswer: "Stack follows LIFO (Last In First Out) while Queue follows FIFO (First In First Out). Stack has push/pop operations, Queue has enqueue/dequeue operations.",
		FollowUps: []string{
			"How would you implement a stack using an array?",
			"What are the applications of stack and queue?",
		},
	},
	{
		ID:             2,
		Question:       "Explain time complexity of binary search",
		Category:       "Algorithms",
		Difficulty:     "Medium",
		ExpectedAnswer: "Binary search has O(log n) time complexity. It works by dividing the search space in half with each iteration, making it very efficient for sorted arrays.",
		FollowUps: []string{
			"What is the space complexity of binary search?",
			"When would you use binary search vs linear search?",
		},
	},
	{
		ID:             3,
		Question:       "What are ACID properties in database?",
		Category:       "Database",
		Difficulty:     "Medium",
		ExpectedAnswer: "ACID stands for Atomicity, Consistency, Isolation, and Durability. These properties ensure reliable transaction processing in databases.",
		FollowUps: []string{
			"Explain each ACID property in detail",
			"How do databases implement these properties?",
		},
	},
	{
		ID:             4,
		Question:       "Write a program to reverse a string",
		Category:       "Programming",
		Difficulty:     "Easy",
		ExpectedAnswer: "Multiple approaches: using built-in methods, iterative approach, or recursive approach. Consider edge cases like null strings.",
		FollowUps: []string{
			"What is the time complexity of your solution?",
			"How would you handle special characters?",
		},
	},
	{
		ID:             5,
		Question:       "Explain the difference between REST and GraphQL",
		Category:       "Web Development",
		Difficulty:     "Medium",
		ExpectedAnswer: "REST is a stateless architecture style with predefined endpoints, while GraphQL is a query language that allows clients to request exactly the data they need.",
		FollowUps: []string{
			"When would you choose GraphQL over REST?",
			"What are the trade-offs of each approach?",
		},
	},
}

var hrQuestions = []InterviewQuestion{
	{
		ID:             1,
		Question:       "Tell me about yourself",
		Category:       "Introduction",
		Difficulty:     "Easy",
		ExpectedAnswer: "A concise 2-3 minute summary covering education, relevant experience, skills, and career goals.",
		Tips: []string{
			"Start with current situation",
			"Highlight relevant achievements",
			"Connect to the role you're applying for",
		},
	},
	{
		ID:             2,
		Question:       "Why do you want to join this company?",
		Category:       "Motivation",
		Difficulty:     "Medium",
		ExpectedAnswer: "Show research about the company, align your values with company culture, and connect your skills to the role.",
		Tips: []string{
			"Research company values and mission",
			"Connect your background to the role",
			"Show enthusiasm and genuine interest",
		},
	},
	{
		ID:             3,
		Question:       "What are your strengths and weaknesses?",
		Category:       "Self-Assessment",
		Difficulty:     "Medium",
		ExpectedAnswer: "Strengths: Provide specific examples. Weaknesses: Show self-awareness and steps taken to improve.",
		Tips: []string{
			"Use specific examples for strengths",
			"Show growth mindset for weaknesses",
			"Keep it professional and relevant",
		},
	},
	{
		ID:             4,
		Question:       "Describe a challenging project you worked on",
		Category:       "Experience",
		Difficulty:     "Hard",
		ExpectedAnswer: "Use STAR method: Situation, Task, Action, Result. Focus on your role, challenges faced, and outcomes achieved.",
		Tips: []string{
			"Use STAR method structure",
			"Quantify results when possible",
			"Show problem-solving skills",
		},
	},
	{
		ID:             5,
		Question:       "Where do you see yourself in 5 years?",
		Category:       "Career Goals",
		Difficulty:     "Medium",
		ExpectedAnswer: "Show realistic career progression, alignment with company growth, and continuous learning mindset.",
		Tips: []string{
			"Show ambition but be realistic",
			"Connect to company opportunities",
			"Emphasize continuous learning",
		},
	},
}

// TechnicalQuestions returns the technical interview question bank.
func TechnicalQuestions() []InterviewQuestion {
	return technicalQuestions
}

// HRQuestions returns the HR interview question bank.
func HRQuestions() []InterviewQuestion {
	return hrQuestions
}

// InterviewFeedbackContent is the canned portion of mock-interview feedback.
type InterviewFeedbackContent struct {
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Recommendations     []string `json:"recommendations"`
}

// InterviewFeedback returns the fixed coaching content attached to every
// mock-interview feedback response. Only the score varies per submission.
func InterviewFeedback() InterviewFeedbackContent {
	return InterviewFeedbackContent{
		Strengths: []string{
			"Good technical knowledge",
			"Clear communication",
			"Problem-solving approach",
		},
		AreasForImprovement: []string{
			"Practice more coding problems",
			"Improve time management",
			"Work on system design concepts",
		},
		Recommendations: []string{
			"Solve 2-3 coding problems daily",
			"Practice mock interviews regularly",
			"Read system design blogs",
		},
	}
}
