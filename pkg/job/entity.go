package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "full_time"
	TypePartTime   Type = "part_time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
	TypeFreelance  Type = "freelance"
)

var types = []Type{TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeFreelance}

func Types() []Type { return append([]Type(nil), types...) }

func (t Type) Valid() bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

// ExperienceLevel is shared by jobs and job seeker profiles.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

var experienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceLead}

func ExperienceLevels() []ExperienceLevel { return append([]ExperienceLevel(nil), experienceLevels...) }

func (e ExperienceLevel) Valid() bool {
	for _, x := range experienceLevels {
		if x == e {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

var statuses = []Status{StatusDraft, StatusActive, StatusPaused, StatusClosed}

func Statuses() []Status { return append([]Status(nil), statuses...) }

func (s Status) Valid() bool {
	for _, x := range statuses {
		if x == s {
			return true
		}
	}
	return false
}

// Job описывает вакансию работодателя (EmployerID равен id пользователя-работодателя).
type Job struct {
	ID               uuid.UUID       `json:"id"`
	EmployerID       uuid.UUID       `json:"employerId"`
	CompanyName      string          `json:"companyName,omitempty"`
	CategoryID       *uuid.UUID      `json:"categoryId,omitempty"`
	CategoryName     string          `json:"categoryName,omitempty"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements"`
	Responsibilities string          `json:"responsibilities"`
	Type             Type            `json:"jobType"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	Location         string          `json:"location"`
	IsRemote         bool            `json:"isRemote"`
	SalaryMin        *int            `json:"salaryMin,omitempty"`
	SalaryMax        *int            `json:"salaryMax,omitempty"`
	SalaryCurrency   string          `json:"salaryCurrency"`
	RequiredSkills   []string        `json:"requiredSkills"`
	PreferredSkills  []string        `json:"preferredSkills"`
	Status           Status          `json:"status"`
	Deadline         *time.Time      `json:"deadline,omitempty"`
	ViewsCount       int             `json:"viewsCount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// SalaryRange renders the salary the way listings show it.
func (j Job) SalaryRange() string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return j.SalaryCurrency + " " + groupThousands(*j.SalaryMin) + " - " + groupThousands(*j.SalaryMax)
	case j.SalaryMin != nil:
		return j.SalaryCurrency + " " + groupThousands(*j.SalaryMin) + "+"
	default:
		return "Salary not specified"
	}
}

func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := []byte{}
	for i := 0; ; i++ {
		if i > 0 && i%3 == 0 {
			digits = append(digits, ',')
		}
		digits = append(digits, byte('0'+n%10))
		n /= 10
		if n == 0 {
			break
		}
	}
	if neg {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Listing is a job together with the counters employers see on their own list.
type Listing struct {
	Job
	ApplicationsCount int `json:"applicationsCount"`
}

// Category: категория вакансий. ActiveJobs заполняется только в списках.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ActiveJobs  int       `json:"activeJobs"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Detail is the public job page as seen by one caller.
type Detail struct {
	Job           Job      `json:"job"`
	HasApplied    bool     `json:"hasApplied"`
	IsSaved       bool     `json:"isSaved"`
	MatchedSkills []string `json:"matchedSkills,omitempty"`
	MissingSkills []string `json:"missingSkills,omitempty"`
	Related       []Job    `json:"related"`
}

// Page is one page of search results.
type Page struct {
	Items []Job `json:"items"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
