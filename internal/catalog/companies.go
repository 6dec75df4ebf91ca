package catalog

// AptitudeKit describes the aptitude round of a company's hiring process.
type AptitudeKit struct {
	Topics    []string `json:"topics"`
	Pattern   string   `json:"pattern"`
	Resources []string `json:"resources"`
}

// TechnicalKit describes the technical round.
type TechnicalKit struct {
	Topics          []string `json:"topics"`
	CommonQuestions []string `json:"commonQuestions"`
	Resources       []string `json:"resources"`
}

// HRKit describes the HR round.
type HRKit struct {
	CommonQuestions []string `json:"commonQuestions"`
	Tips            []string `json:"tips"`
}

// PrepKit bundles the rounds for one company.
type PrepKit struct {
	Aptitude  AptitudeKit  `json:"aptitude"`
	Technical TechnicalKit `json:"technical"`
	HR        HRKit        `json:"hr"`
}

// Company is one employer with a curated preparation kit.
type Company struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Logo        string  `json:"logo"`
	Description string  `json:"description"`
	PrepKit     PrepKit `json:"prepKit"`
}

var companies = []Company{
	{
		ID:          1,
		Name:        "TCS",
		Logo:        "https://via.placeholder.com/100x50/0066CC/FFFFFF?text=TCS",
		Description: "Tata Consultancy Services - IT Services and Consulting",
		PrepKit: PrepKit{
			Aptitude: AptitudeKit{
				Topics:  []string{"Quantitative Aptitude", "Verbal Ability", "Logical Reasoning", "Programming"},
				Pattern: "90 minutes, 30 questions",
				Resources: []string{
					"https://www.geeksforgeeks.org/tcs-nqt-preparation/",
					"https://www.indiabix.com/aptitude/questions-and-answers/",
					"https://www.hackerrank.com/domains/tutorials/10-days-of-statistics",
				},
			},
			Technical: TechnicalKit{
				Topics: []string{"Data Structures", "Algorithms", "Database", "Programming Languages"},
				CommonQuestions: []string{
					"What is the difference between stack and queue?",
					"Explain time complexity of binary search",
					"What are ACID properties in database?",
					"Write a program to reverse a string",
				},
				Resources: []string{
					"https://www.geeksforgeeks.org/tcs-interview-experience/",
					"https://www.interviewbit.com/tcs-interview-questions/",
					"https://www.hackerrank.com/domains/algorithms",
				},
			},
			HR: HRKit{
				CommonQuestions: []string{
					"Tell me about yourself",
					"Why do you want to join TCS?",
					"What are your strengths and weaknesses?",
					"Where do you see yourself in 5 years?",
				},
				Tips: []string{
					"Research about TCS values and culture",
					"Prepare examples for behavioral questions",
					"Show enthusiasm for learning and growth",
				},
			},
		},
	},
	{
		ID:          2,
		Name:        "Wipro",
		Logo:        "https://via.placeholder.com/100x50/DA291C/FFFFFF?text=Wipro",
		Description: "Wipro Limited - Global Information Technology Company",
		PrepKit: PrepKit{
			Aptitude: AptitudeKit{
				Topics:  []string{"Quantitative Aptitude", "Verbal Ability", "Logical Reasoning", "Coding"},
				Pattern: "60 minutes, 20 questions",
				Resources: []string{
					"https://www.geeksforgeeks.org/wipro-nlh-preparation/",
					"https://www.indiabix.com/aptitude/questions-and-answers/",
					"https://www.hackerrank.com/domains/tutorials/10-days-of-javascript",
				},
			},
			Technical: TechnicalKit{
				Topics: []string{"Programming Fundamentals", "Data Structures", "Database Concepts", "Computer Networks"},
				CommonQuestions: []string{
					"Explain different types of sorting algorithms",
					"What is normalization in database?",
					"Explain OSI model layers",
					"Write a program to find factorial",
				},
				Resources: []string{
					"https://www.geeksforgeeks.org/wipro-interview-experience/",
					"https://www.interviewbit.com/wipro-interview-questions/",
					"https://www.hackerrank.com/domains/data-structures",
				},
			},
			HR: HRKit{
				CommonQuestions: []string{
					"Introduce yourself",
					"Why Wipro?",
					"What are your career goals?",
					"How do you handle pressure?",
				},
				Tips: []string{
					"Learn about Wipro's digital transformation focus",
					"Prepare for situational questions",
					"Show adaptability and learning mindset",
				},
			},
		},
	},
	{
		ID:          3,
		Name:        "Amazon",
		Logo:        "https://via.placeholder.com/100x50/FF9900/000000?text=Amazon",
		Description: "Amazon - E-commerce and Cloud Computing Giant",
		PrepKit: PrepKit{
			Aptitude: AptitudeKit{
				Topics:  []string{"Quantitative Aptitude", "Logical Reasoning", "Data Interpretation"},
				Pattern: "90 minutes, 35 questions",
				Resources: []string{
					"https://www.geeksforgeeks.org/amazon-interview-preparation/",
					"https://www.hackerrank.com/domains/tutorials/10-days-of-statistics",
					"https://www.interviewbit.com/amazon-interview-questions/",
				},
			},
			Technical: TechnicalKit{
				Topics: []string{"Data Structures", "Algorithms", "System Design", "Database", "Operating Systems"},
				CommonQuestions: []string{
					"Implement a stack using queues",
					"Design a parking lot system",
					"Explain ACID properties",
					"What is virtual memory?",
				},
				Resources: []string{
					"https://www.geeksforgeeks.org/amazon-interview-experience/",
					"https://www.hackerrank.com/domains/algorithms",
					"https://www.interviewbit.com/system-design-interview-questions/",
				},
			},
			HR: HRKit{
				CommonQuestions: []string{
					"Tell me about a challenging project",
					"Why Amazon?",
					"What is Amazon's leadership principle you relate to?",
					"Describe a time you failed",
				},
				Tips: []string{
					"Study Amazon's 14 Leadership Principles",
					"Prepare STAR method answers",
					"Show customer obsession and ownership",
				},
			},
		},
	},
}

// Companies returns the curated company prep kits.
func Companies() []Company {
	return companies
}
