package profile

import (
	"math"
	"strings"
)

// CompleteThreshold is the score from which a profile counts as complete.
const CompleteThreshold = 70

// Completeness is the checklist result of one profile.
type Completeness struct {
	Score    int      `json:"score"`
	Complete bool     `json:"complete"`
	Present  int      `json:"present"`
	Total    int      `json:"total"`
	Missing  []string `json:"missing"`
}

type checkItem struct {
	name    string
	present bool
}

// score computes round(100 * present / len(items)).
func score(items []checkItem) Completeness {
	c := Completeness{Total: len(items), Missing: []string{}}
	for _, it := range items {
		if it.present {
			c.Present++
		} else {
			c.Missing = append(c.Missing, it.name)
		}
	}
	if c.Total > 0 {
		c.Score = int(math.Round(100 * float64(c.Present) / float64(c.Total)))
	}
	c.Complete = c.Score >= CompleteThreshold
	return c
}

func filled(s string) bool { return strings.TrimSpace(s) != "" }

func (p *JobSeekerProfile) Completeness() Completeness {
	return score([]checkItem{
		{"first_name", filled(p.FirstName)},
		{"last_name", filled(p.LastName)},
		{"phone", filled(p.Phone)},
		{"headline", filled(p.Headline)},
		{"bio", filled(p.Bio)},
		{"experience_level", filled(string(p.ExperienceLevel))},
		{"skills", len(p.Skills) > 0},
		{"resume", filled(p.ResumePath)},
	})
}

func (p *EmployerProfile) Completeness() Completeness {
	return score([]checkItem{
		{"company_name", filled(p.CompanyName)},
		{"description", filled(p.Description)},
		{"industry", filled(p.Industry)},
		{"company_size", filled(string(p.CompanySize))},
		{"contact_person", filled(p.ContactPerson)},
		{"contact_email", filled(p.ContactEmail)},
		{"website", filled(p.Website)},
		{"headquarters", filled(p.Headquarters)},
	})
}
