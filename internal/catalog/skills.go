package catalog

import (
	"github.com/noah-isme/engineering-compass-api/internal/models"
	"github.com/noah-isme/engineering-compass-api/internal/progress"
)

// skillRecommendations maps branch and career goal to suggested skills.
// Only the software branches have curated entries so far.
var skillRecommendations = progress.SkillTable{
	models.BranchComputerScience: {
		models.GoalMNCJob:        {"Data Structures", "Algorithms", "System Design", "Database Management", "Cloud Computing"},
		models.GoalStartup:       {"Full-Stack Development", "Mobile Development", "DevOps", "Product Management", "UI/UX Design"},
		models.GoalMSAbroad:      {"Research Methodology", "Advanced Algorithms", "Machine Learning", "Computer Vision", "Natural Language Processing"},
		models.GoalGovernmentJob: {"Computer Networks", "Operating Systems", "Database Systems", "Software Engineering", "Information Security"},
	},
	models.BranchInformationTech: {
		models.GoalMNCJob:        {"Web Development", "Database Management", "Software Testing", "IT Infrastructure", "Cybersecurity"},
		models.GoalStartup:       {"Full-Stack Development", "API Development", "DevOps", "Product Management", "Agile Methodologies"},
		models.GoalMSAbroad:      {"Data Science", "Machine Learning", "Big Data Analytics", "Cloud Computing", "Information Systems"},
		models.GoalGovernmentJob: {"Network Administration", "System Administration", "Database Administration", "IT Security", "Software Development"},
	},
}

// SkillRecommendations returns the branch/goal recommendation table.
func SkillRecommendations() progress.SkillTable {
	return skillRecommendations
}

// PathStep is one step of a learning path.
type PathStep struct {
	Step          int      `json:"step"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Resources     []string `json:"resources"`
	EstimatedTime string   `json:"estimatedTime"`
}

// LearningPath is a curated multi-week study track.
type LearningPath struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"`
	Duration    string     `json:"duration"`
	Steps       []PathStep `json:"steps"`
}

var learningPaths = []LearningPath{
	{
		ID:          1,
		Title:       "Full-Stack Web Development",
		Description: "Master modern web development from frontend to backend",
		Difficulty:  "Intermediate",
		Duration:    "12 weeks",
		Steps: []PathStep{
			{Step: 1, Title: "HTML & CSS Fundamentals", Description: "Learn the basics of web markup and styling", EstimatedTime: "2 weeks", Resources: []string{
				"https://developer.mozilla.org/en-US/docs/Learn/HTML",
				"https://developer.mozilla.org/en-US/docs/Learn/CSS",
				"https://www.freecodecamp.org/learn/responsive-web-design/",
			}},
			{Step: 2, Title: "JavaScript Essentials", Description: "Master JavaScript programming fundamentals", EstimatedTime: "3 weeks", Resources: []string{
				"https://javascript.info/",
				"https://eloquentjavascript.net/",
				"https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
			}},
			{Step: 3, Title: "React.js Framework", Description: "Build modern user interfaces with React", EstimatedTime: "3 weeks", Resources: []string{
				"https://react.dev/learn",
				"https://www.freecodecamp.org/learn/front-end-development-libraries/",
				"https://www.youtube.com/watch?v=bMknfKXIFA8",
			}},
			{Step: 4, Title: "Node.js & Express", Description: "Create robust backend APIs", EstimatedTime: "2 weeks", Resources: []string{
				"https://nodejs.org/en/learn/",
				"https://expressjs.com/",
				"https://www.freecodecamp.org/learn/back-end-development-and-apis/",
			}},
			{Step: 5, Title: "Database Integration", Description: "Connect your app with a document database", EstimatedTime: "2 weeks", Resources: []string{
				"https://www.mongodb.com/developer/languages/javascript/",
				"https://mongoosejs.com/docs/",
				"https://www.freecodecamp.org/learn/back-end-development-and-apis/",
			}},
		},
	},
	{
		ID:          2,
		Title:       "Data Science & Machine Learning",
		Description: "Learn data analysis and ML fundamentals",
		Difficulty:  "Advanced",
		Duration:    "16 weeks",
		Steps: []PathStep{
			{Step: 1, Title: "Python Programming", Description: "Master Python for data science", EstimatedTime: "3 weeks", Resources: []string{
				"https://www.python.org/doc/",
				"https://www.freecodecamp.org/learn/scientific-computing-with-python/",
				"https://www.youtube.com/watch?v=_uQrJ0TkZlc",
			}},
			{Step: 2, Title: "Data Analysis with Pandas", Description: "Learn data manipulation and analysis", EstimatedTime: "2 weeks", Resources: []string{
				"https://pandas.pydata.org/docs/",
				"https://www.kaggle.com/learn/pandas",
				"https://www.youtube.com/watch?v=dcqPhpY7tWk",
			}},
			{Step: 3, Title: "Data Visualization", Description: "Create compelling data visualizations", EstimatedTime: "2 weeks", Resources: []string{
				"https://matplotlib.org/",
				"https://seaborn.pydata.org/",
				"https://plotly.com/python/",
			}},
			{Step: 4, Title: "Machine Learning Basics", Description: "Introduction to ML algorithms", EstimatedTime: "4 weeks", Resources: []string{
				"https://scikit-learn.org/stable/",
				"https://www.coursera.org/learn/machine-learning",
				"https://www.kaggle.com/learn/intro-to-machine-learning",
			}},
			{Step: 5, Title: "Deep Learning", Description: "Neural networks and deep learning", EstimatedTime: "5 weeks", Resources: []string{
				"https://www.tensorflow.org/tutorials",
				"https://pytorch.org/tutorials/",
				"https://www.fast.ai/",
			}},
		},
	},
	{
		ID:          3,
		Title:       "Mobile App Development",
		Description: "Build cross-platform mobile applications",
		Difficulty:  "Intermediate",
		Duration:    "10 weeks",
		Steps: []PathStep{
			{Step: 1, Title: "React Native Basics", Description: "Learn cross-platform mobile development", EstimatedTime: "3 weeks", Resources: []string{
				"https://reactnative.dev/docs/getting-started",
				"https://www.freecodecamp.org/learn/front-end-development-libraries/",
				"https://www.youtube.com/watch?v=0-S5a0eXPoc",
			}},
			{Step: 2, Title: "Mobile UI/UX Design", Description: "Design beautiful mobile interfaces", EstimatedTime: "2 weeks", Resources: []string{
				"https://www.figma.com/",
				"https://material.io/design",
				"https://developer.apple.com/design/",
			}},
			{Step: 3, Title: "State Management", Description: "Manage app state with Redux", EstimatedTime: "2 weeks", Resources: []string{
				"https://redux.js.org/",
				"https://redux-toolkit.js.org/",
				"https://www.youtube.com/watch?v=CVpUuw9XSjY",
			}},
			{Step: 4, Title: "API Integration", Description: "Connect your app to backend services", EstimatedTime: "2 weeks", Resources: []string{
				"https://axios-http.com/",
				"https://www.youtube.com/watch?v=Oive66jrwBs",
				"https://www.freecodecamp.org/learn/back-end-development-and-apis/",
			}},
			{Step: 5, Title: "App Deployment", Description: "Deploy to app stores", EstimatedTime: "1 week", Resources: []string{
				"https://expo.dev/",
				"https://developer.apple.com/app-store/",
				"https://play.google.com/console/",
			}},
		},
	},
}

// LearningPaths returns all curated learning paths.
func LearningPaths() []LearningPath {
	return learningPaths
}

// LearningPathByID returns the path with the given id, or false.
func LearningPathByID(id int) (LearningPath, bool) {
	for _, path := range learningPaths {
		if path.ID == id {
			return path, true
		}
	}
	return LearningPath{}, false
}
