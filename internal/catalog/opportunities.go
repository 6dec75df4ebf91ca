package catalog

// EligibilityAll marks an opportunity open to every branch.
const EligibilityAll = "All Branches"

// Opportunity is one external internship, program or hackathon listing.
type Opportunity struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Company     string   `json:"company"`
	Deadline    string   `json:"deadline"`
	Description string   `json:"description"`
	Eligibility []string `json:"eligibility"`
	Skills      []string `json:"skills"`
	Link        string   `json:"link"`
}

var opportunities = []Opportunity{
	{
		ID: 1, Title: "Google Summer of Code 2024", Type: "Internship", Company: "Google",
		Deadline: "2024-03-15", Description: "Open source internship program",
		Eligibility: []string{"Computer Science", "Information Technology"},
		Skills:      []string{"Programming", "Open Source"},
		Link:        "https://summerofcode.withgoogle.com",
	},
	{
		ID: 2, Title: "Microsoft Learn Student Ambassador", Type: "Program", Company: "Microsoft",
		Deadline: "2024-02-28", Description: "Student ambassador program",
		Eligibility: []string{EligibilityAll},
		Skills:      []string{"Leadership", "Communication"},
		Link:        "https://studentambassadors.microsoft.com",
	},
	{
		ID: 3, Title: "HackMIT 2024", Type: "Hackathon", Company: "MIT",
		Deadline: "2024-04-01", Description: "Annual hackathon at MIT",
		Eligibility: []string{"Computer Science", "Information Technology"},
		Skills:      []string{"Programming", "Innovation"},
		Link:        "https://hackmit.org",
	},
}

// OpportunitiesForBranch returns listings the branch is eligible for.
func OpportunitiesForBranch(branch string) []Opportunity {
	matched := []Opportunity{}
	for _, opp := range opportunities {
		for _, e := range opp.Eligibility {
			if e == EligibilityAll || e == branch {
				matched = append(matched, opp)
				break
			}
		}
	}
	return matched
}
