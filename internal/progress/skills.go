package progress

import "github.com/noah-isme/engineering-compass-api/internal/models"

// SkillTable maps branch -> career goal -> ordered skill list. Pairs absent
// from the table simply contribute no candidates.
type SkillTable map[string]map[string][]string

// DiffRecommendedSkills returns the skills suggested for the branch and
// career goals that the student does not already hold. Output preserves
// table order, is deduplicated, and is capped at ten entries.
func DiffRecommendedSkills(table SkillTable, branch string, careerGoals []string, currentSkillNames []string) []string {
	held := make(map[string]struct{}, len(currentSkillNames))
	for _, name := range currentSkillNames {
		held[name] = struct{}{}
	}

	byGoal := table[branch]
	seen := make(map[string]struct{})
	result := []string{}
	for _, goal := range careerGoals {
		for _, skill := range byGoal[goal] {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			if _, has := held[skill]; has {
				continue
			}
			result = append(result, skill)
			if len(result) == models.RecommendedSkillsMax {
				return result
			}
		}
	}
	return result
}
