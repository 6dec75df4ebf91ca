package progress

import "github.com/noah-isme/engineering-compass-api/internal/models"

// ToggleGoal sets the completed flag on the goal addressed by semester and
// goal id, mutating the snapshot in place. The record is untouched on any
// error. No cascading side effects: completing every goal in a semester
// does not advance the current semester.
func ToggleGoal(p *models.Profile, semester int, goalID string, completed bool) error {
	if semester < models.MinSemester || semester > models.MaxSemester {
		return ErrInvalidSemester
	}
	for i := range p.TimelineGoals {
		if p.TimelineGoals[i].Semester != semester {
			continue
		}
		for j := range p.TimelineGoals[i].Goals {
			if p.TimelineGoals[i].Goals[j].ID == goalID {
				p.TimelineGoals[i].Goals[j].Completed = completed
				return nil
			}
		}
		return ErrGoalNotFound
	}
	return ErrSemesterNotFound
}

// ToggleTask sets the completed flag on the weekly focus task with the
// given id, mutating the snapshot in place.
func ToggleTask(p *models.Profile, taskID string, completed bool) error {
	for i := range p.WeeklyFocus.Tasks {
		if p.WeeklyFocus.Tasks[i].ID == taskID {
			p.WeeklyFocus.Tasks[i].Completed = completed
			return nil
		}
	}
	return ErrTaskNotFound
}
