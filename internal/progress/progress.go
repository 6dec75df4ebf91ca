// Package progress is the profile aggregation engine: pure computation over
// a StudentRecord snapshot. It never persists, never logs, and knows nothing
// about HTTP; callers fetch the snapshot and save it back if they mutate.
package progress

import (
	"errors"
	"math"
	"sort"

	"github.com/noah-isme/engineering-compass-api/internal/models"
)

// Addressed-but-absent entities. Distinct from ErrInvalidSemester so the
// boundary can choose 404 vs 400.
var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrTaskNotFound     = errors.New("task not found")

	// ErrInvalidSemester marks malformed input: a semester outside 1..8.
	ErrInvalidSemester = errors.New("semester out of range")
)

// GoalProgress is the derived dashboard view of timeline goals.
type GoalProgress struct {
	CompletedGoals       int                   `json:"completedGoals"`
	TotalGoals           int                   `json:"totalGoals"`
	ProgressPercentage   float64               `json:"progressPercentage"`
	CurrentSemesterGoals []models.Goal         `json:"currentSemesterGoals"`
	AllGoals             []models.TimelineGoal `json:"allGoals"`
}

// ComputeGoalProgress derives goal counters, the current-semester subset and
// the flattened semester-tagged timeline from the record snapshot. Empty
// timelines are a valid zero result, never an error.
func ComputeGoalProgress(p *models.Profile) GoalProgress {
	result := GoalProgress{
		CurrentSemesterGoals: []models.Goal{},
		AllGoals:             []models.TimelineGoal{},
	}

	entries := make([]models.SemesterGoals, len(p.TimelineGoals))
	copy(entries, p.TimelineGoals)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Semester < entries[j].Semester
	})

	for _, entry := range entries {
		for _, goal := range entry.Goals {
			result.TotalGoals++
			if goal.Completed {
				result.CompletedGoals++
			}
			result.AllGoals = append(result.AllGoals, models.TimelineGoal{Goal: goal, Semester: entry.Semester})
		}
		if entry.Semester == p.CurrentSemester {
			result.CurrentSemesterGoals = append(result.CurrentSemesterGoals, entry.Goals...)
		}
	}

	if result.TotalGoals > 0 {
		result.ProgressPercentage = float64(result.CompletedGoals) / float64(result.TotalGoals) * 100
	}
	return result
}

// completionChecks is the fixed, ordered list of presence predicates behind
// the display completion percentage. Order is part of the contract.
var completionChecks = []func(email string, p *models.Profile) bool{
	func(_ string, p *models.Profile) bool { return p.Name != "" },
	func(email string, _ *models.Profile) bool { return email != "" },
	func(_ string, p *models.Profile) bool { return p.Phone != "" },
	func(_ string, p *models.Profile) bool { return p.College.Name != "" },
	func(_ string, p *models.Profile) bool { return p.College.Tier != "" },
	func(_ string, p *models.Profile) bool { return p.College.University != "" },
	func(_ string, p *models.Profile) bool { return p.Branch != "" },
	func(_ string, p *models.Profile) bool { return p.CurrentYear != 0 },
	func(_ string, p *models.Profile) bool { return p.CurrentSemester != 0 },
	func(_ string, p *models.Profile) bool { return p.TwelfthPercentage != 0 },
	func(_ string, p *models.Profile) bool { return len(p.Interests) > 0 },
	func(_ string, p *models.Profile) bool { return len(p.CareerGoals) > 0 },
	func(_ string, p *models.Profile) bool { return len(p.Skills) > 0 },
	func(_ string, p *models.Profile) bool { return len(p.Projects) > 0 },
}

// CompletionPercentage scores profile fullness for display: the share of 14
// field-presence checks that pass, rounded to an integer percentage. It is
// unrelated to the explicit milestone flags and never writes them.
func CompletionPercentage(email string, p *models.Profile) int {
	passed := 0
	for _, check := range completionChecks {
		if check(email, p) {
			passed++
		}
	}
	return int(math.Round(float64(passed) / float64(len(completionChecks)) * 100))
}
