package models

// CGPAUpdateRequest upserts one semester of graded subjects.
type CGPAUpdateRequest struct {
	Semester int       `json:"semester" validate:"required,gte=1,lte=8"`
	GPA      float64   `json:"gpa" validate:"gte=0,lte=10"`
	Subjects []Subject `json:"subjects" validate:"required,min=1,dive"`
}

// TimelineGoalsRequest replaces the goals of one semester.
type TimelineGoalsRequest struct {
	Semester int    `json:"semester" validate:"required,gte=1,lte=8"`
	Goals    []Goal `json:"goals" validate:"required,dive"`
}

// ToggleRequest flips a completion flag on a goal or task.
type ToggleRequest struct {
	Completed bool `json:"completed"`
}

// WeeklyFocusRequest replaces the resident week of tasks.
type WeeklyFocusRequest struct {
	CurrentWeek int    `json:"currentWeek"`
	Tasks       []Task `json:"tasks" validate:"required,dive"`
}

// SkillsAssessmentRequest replaces the self-assessed skill list.
type SkillsAssessmentRequest struct {
	Skills []Skill `json:"skills" validate:"required,min=1,dive"`
}

// PathRequest addresses one learning path.
type PathRequest struct {
	PathID int `json:"pathId" validate:"required"`
}

// PathStepRequest addresses one step of a started learning path.
type PathStepRequest struct {
	PathID int `json:"pathId" validate:"required"`
	Step   int `json:"step" validate:"required,gte=1"`
}

// SkillGoalRequest promotes a recommended skill into a timeline goal.
type SkillGoalRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// ResumeUpdateRequest replaces the stored resume document.
type ResumeUpdateRequest struct {
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
}

// ConnectRequest initiates a connection with another student.
type ConnectRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=Mentor Mentee Peer"`
	Message   string `json:"message"`
}

// ConnectionDecisionRequest accepts or rejects a pending connection.
type ConnectionDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted Rejected"`
}

// ChatRequest carries one advisor chat turn.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}

// ProjectIdeasRequest tunes generated project idea difficulty.
type ProjectIdeasRequest struct {
	Complexity string `json:"complexity" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

// InterviewFeedbackRequest submits mock-interview answers for review.
type InterviewFeedbackRequest struct {
	Type        string   `json:"type" validate:"required,oneof=technical hr"`
	QuestionIDs []int    `json:"questionIds"`
	Answers     []string `json:"answers" validate:"required,min=1"`
}
