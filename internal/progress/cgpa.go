package progress

import "github.com/noah-isme/engineering-compass-api/internal/models"

// gradePoints is the fixed grade-to-points table. Grades outside the table
// contribute zero points; rejecting them is the write boundary's job.
var gradePoints = map[string]float64{
	"A+": 10, "A": 9, "B+": 8, "B": 7, "C+": 6, "C": 5, "D": 4, "F": 0,
}

// GradePoints returns the point value for a grade string, zero when unknown.
func GradePoints(grade string) float64 {
	return gradePoints[grade]
}

// RecomputeCGPA returns the credit-weighted grade-point average over the
// full semester history. It is deliberately not incremental: every write to
// any semester re-reads everything, so the cached value can never drift.
func RecomputeCGPA(semesterWise []models.SemesterRecord) float64 {
	var totalCredits, totalPoints float64
	for _, sem := range semesterWise {
		for _, subject := range sem.Subjects {
			totalCredits += subject.Credits
			totalPoints += gradePoints[subject.Grade] * subject.Credits
		}
	}
	if totalCredits <= 0 {
		return 0
	}
	return totalPoints / totalCredits
}

// UpsertSemester replaces the record for the given semester number or
// appends a new one, returning the updated list. Callers recompute the
// CGPA afterwards.
func UpsertSemester(semesterWise []models.SemesterRecord, record models.SemesterRecord) ([]models.SemesterRecord, error) {
	if record.Semester < models.MinSemester || record.Semester > models.MaxSemester {
		return nil, ErrInvalidSemester
	}
	for i, sem := range semesterWise {
		if sem.Semester == record.Semester {
			updated := make([]models.SemesterRecord, len(semesterWise))
			copy(updated, semesterWise)
			updated[i] = record
			return updated, nil
		}
	}
	return append(append([]models.SemesterRecord{}, semesterWise...), record), nil
}
