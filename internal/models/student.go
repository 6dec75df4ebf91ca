package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// College tiers.
const (
	TierOne   = "Tier-1"
	TierTwo   = "Tier-2"
	TierThree = "Tier-3"
)

// Engineering branches.
const (
	BranchComputerScience = "Computer Science"
	BranchInformationTech = "Information Technology"
	BranchElectronics     = "Electronics"
	BranchMechanical      = "Mechanical"
	BranchCivil           = "Civil"
	BranchChemical        = "Chemical"
	BranchElectrical      = "Electrical"
	BranchOther           = "Other"
)

// Career goals.
const (
	GoalMNCJob           = "MNC Job"
	GoalStartup          = "Startup"
	GoalMSAbroad         = "MS Abroad"
	GoalGovernmentJob    = "Government Job"
	GoalEntrepreneurship = "Entrepreneurship"
	GoalResearch         = "Research"
)

// Skill levels.
const (
	LevelNone         = "None"
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Connection relations and statuses.
const (
	RelationMentor = "Mentor"
	RelationMentee = "Mentee"
	RelationPeer   = "Peer"

	ConnectionPending  = "Pending"
	ConnectionAccepted = "Accepted"
	ConnectionRejected = "Rejected"
)

// Recommendation priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Record-wide bounds.
const (
	MinSemester          = 1
	MaxSemester          = 8
	RecentRecsShown      = 3
	CohortSliceMax       = 10
	RecommendedSkillsMax = 10
)

// Closed enumerations for weekly tasks and grades.
var (
	TaskCategories   = []string{"Academic", "Skill", "Career", "Coding", "Networking", "Soft Skills"}
	TaskTimeBuckets  = []string{"30 minutes", "1 hour", "2 hours", "3 hours", "5+ hours"}
	KnownGrades      = []string{"A+", "A", "B+", "B", "C+", "C", "D", "F"}
	KnownCareerGoals = []string{GoalMNCJob, GoalStartup, GoalMSAbroad, GoalGovernmentJob, GoalEntrepreneurship, GoalResearch}
)

// College identifies the student's institution.
type College struct {
	Name       string `json:"name" validate:"required"`
	Tier       string `json:"tier" validate:"required,oneof=Tier-1 Tier-2 Tier-3"`
	University string `json:"university"`
}

// Interest is one interest-quiz category score.
type Interest struct {
	Category string  `json:"category"`
	Score    float64 `json:"score" validate:"gte=0,lte=10"`
}

// Subject is one graded course inside a semester record.
type Subject struct {
	Name    string  `json:"name"`
	Grade   string  `json:"grade"`
	Credits float64 `json:"credits"`
}

// SemesterRecord holds one semester's graded subjects.
type SemesterRecord struct {
	Semester int       `json:"semester"`
	GPA      float64   `json:"gpa"`
	Subjects []Subject `json:"subjects"`
}

// CGPA tracks derived and target grade averages. Current is derived state,
// recomputed from SemesterWise on every write; it is never set directly.
type CGPA struct {
	Current      float64          `json:"current"`
	Target       float64          `json:"target"`
	SemesterWise []SemesterRecord `json:"semesterWise"`
}

// Skill is a self-assessed ability.
type Skill struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	SelfRated int    `json:"selfRated,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	GithubLink   string     `json:"githubLink,omitempty"`
	LiveLink     string     `json:"liveLink,omitempty"`
	Complexity   string     `json:"complexity,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Goal is a semester-scoped objective with a completion flag.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// SemesterGoals groups goals under their semester. Semester numbers are
// unique within a record's TimelineGoals list.
type SemesterGoals struct {
	Semester int    `json:"semester"`
	Goals    []Goal `json:"goals"`
}

// TimelineGoal is a goal tagged with its owning semester, used for the
// flattened timeline view.
type TimelineGoal struct {
	Goal
	Semester int `json:"semester"`
}

// Task is a weekly focus item.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	Completed     bool   `json:"completed"`
}

// WeeklyFocus holds the single resident week of tasks. Starting a new week
// replaces the list; no history is retained.
type WeeklyFocus struct {
	CurrentWeek int    `json:"currentWeek"`
	Tasks       []Task `json:"tasks"`
}

// Experience is a resume work entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Certification is a resume credential entry.
type Certification struct {
	Name   string     `json:"name"`
	Issuer string     `json:"issuer"`
	Date   *time.Time `json:"date,omitempty"`
}

// Resume is the student's resume document.
type Resume struct {
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
}

// Connection links two students. Every connection has a mirrored,
// inverse-typed entry on the counterpart record.
type Connection struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}

// Recommendation is one advisor suggestion.
type Recommendation struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PathProgress tracks a started learning path.
type PathProgress struct {
	PathID         int       `json:"pathId"`
	StartedAt      time.Time `json:"startedAt"`
	CompletedSteps []int     `json:"completedSteps"`
}

// CompletionFlags are the five milestone booleans. Each is set once by the
// handler owning that milestone; they are never derived.
type CompletionFlags struct {
	BasicInfo        bool `json:"basicInfo"`
	AcademicInfo     bool `json:"academicInfo"`
	InterestQuiz     bool `json:"interestQuiz"`
	SkillsAssessment bool `json:"skillsAssessment"`
	Projects         bool `json:"projects"`
}

// Profile is the document portion of a student record: everything except
// identity and credential, persisted as a single JSONB column and always
// read and written whole.
type Profile struct {
	Name              string           `json:"name"`
	Phone             string           `json:"phone,omitempty"`
	College           College          `json:"college"`
	Branch            string           `json:"branch"`
	AdmissionYear     int              `json:"admissionYear"`
	CurrentYear       int              `json:"currentYear"`
	CurrentSemester   int              `json:"currentSemester"`
	TwelfthPercentage float64          `json:"twelfthPercentage,omitempty"`
	JEEScore          float64          `json:"jeeScore,omitempty"`
	CETScore          float64          `json:"cetScore,omitempty"`
	Interests         []Interest       `json:"interests"`
	CareerGoals       []string         `json:"careerGoals"`
	CGPA              CGPA             `json:"cgpa"`
	Skills            []Skill          `json:"skills"`
	Projects          []Project        `json:"projects"`
	TimelineGoals     []SemesterGoals  `json:"timelineGoals"`
	WeeklyFocus       WeeklyFocus      `json:"weeklyFocus"`
	Resume            Resume           `json:"resume"`
	LearningPaths     []PathProgress   `json:"learningPaths"`
	Connections       []Connection     `json:"connections"`
	AIRecommendations []Recommendation `json:"aiRecommendations"`
	ProfileCompletion CompletionFlags  `json:"profileCompletion"`
}

// Value implements driver.Valuer so Profile persists as JSONB.
func (p Profile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for the JSONB document column.
func (p *Profile) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = Profile{}
		return nil
	default:
		return fmt.Errorf("unsupported profile column type %T", src)
	}
}

// StudentRecord is the root per-user aggregate: identity columns plus the
// Profile document and an optimistic-concurrency version.
type StudentRecord struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Profile      Profile   `db:"document" json:"profile"`
	Version      int       `db:"version" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// CohortEntry is the projection used by community cohort listings.
type CohortEntry struct {
	ID              string `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Branch          string `db:"branch" json:"branch"`
	CurrentYear     int    `db:"current_year" json:"currentYear"`
	CurrentSemester int    `db:"current_semester" json:"currentSemester"`
	SkillCount      int    `db:"skill_count" json:"skillCount"`
	ProjectCount    int    `db:"project_count" json:"projectCount"`
}
