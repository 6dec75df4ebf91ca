package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/engineering-compass-api/internal/models"
)

var testSkillTable = SkillTable{
	models.BranchComputerScience: {
		models.GoalMNCJob:  {"DSA", "Java", "SQL", "System Design", "Git"},
		models.GoalStartup: {"JavaScript", "React", "Node.js", "DSA", "Product Thinking"},
	},
}

func TestDiffRecommendedSkills(t *testing.T) {
	got := DiffRecommendedSkills(testSkillTable, models.BranchComputerScience,
		[]string{models.GoalMNCJob}, []string{"Java", "Git"})

	assert.Equal(t, []string{"DSA", "SQL", "System Design"}, got)
}

func TestDiffRecommendedSkillsDedupeAcrossGoals(t *testing.T) {
	got := DiffRecommendedSkills(testSkillTable, models.BranchComputerScience,
		[]string{models.GoalMNCJob, models.GoalStartup}, nil)

	// DSA appears under both goals but only once in the output, at its
	// first table position.
	assert.Equal(t, []string{
		"DSA", "Java", "SQL", "System Design", "Git",
		"JavaScript", "React", "Node.js", "Product Thinking",
	}, got)
}

func TestDiffRecommendedSkillsCap(t *testing.T) {
	wide := SkillTable{
		models.BranchComputerScience: {
			models.GoalMNCJob: {
				"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12",
			},
		},
	}

	got := DiffRecommendedSkills(wide, models.BranchComputerScience,
		[]string{models.GoalMNCJob}, nil)

	assert.Len(t, got, models.RecommendedSkillsMax)
	assert.Equal(t, "s10", got[len(got)-1])
}

func TestDiffRecommendedSkillsUnknownPairs(t *testing.T) {
	assert.Empty(t, DiffRecommendedSkills(testSkillTable, models.BranchMechanical,
		[]string{models.GoalMNCJob}, nil))
	assert.Empty(t, DiffRecommendedSkills(testSkillTable, models.BranchComputerScience,
		[]string{models.GoalResearch}, nil))
	assert.Empty(t, DiffRecommendedSkills(testSkillTable, models.BranchComputerScience, nil, nil))
}

func TestDiffRecommendedSkillsAllHeld(t *testing.T) {
	got := DiffRecommendedSkills(testSkillTable, models.BranchComputerScience,
		[]string{models.GoalMNCJob}, []string{"DSA", "Java", "SQL", "System Design", "Git"})
	assert.Empty(t, got)
}
