package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/job"
)

type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityPrivate       Visibility = "private"
	VisibilityEmployersOnly Visibility = "employers_only"
)

var visibilities = []Visibility{VisibilityPublic, VisibilityPrivate, VisibilityEmployersOnly}

func Visibilities() []Visibility { return append([]Visibility(nil), visibilities...) }

func (v Visibility) Valid() bool {
	for _, x := range visibilities {
		if x == v {
			return true
		}
	}
	return false
}

type CompanySize string

const (
	CompanyStartup    CompanySize = "startup"
	CompanySmall      CompanySize = "small"
	CompanyMedium     CompanySize = "medium"
	CompanyLarge      CompanySize = "large"
	CompanyEnterprise CompanySize = "enterprise"
)

var companySizes = []CompanySize{CompanyStartup, CompanySmall, CompanyMedium, CompanyLarge, CompanyEnterprise}

func CompanySizes() []CompanySize { return append([]CompanySize(nil), companySizes...) }

func (c CompanySize) Valid() bool {
	for _, x := range companySizes {
		if x == c {
			return true
		}
	}
	return false
}

// Industries is the suggested industry list; employers may enter any value.
func Industries() []string {
	return []string{
		"Technology", "Finance", "Healthcare", "Education", "Retail", "Manufacturing",
		"Consulting", "Media", "Government", "Non-profit", "Other",
	}
}

// JobSeekerProfile is keyed by its owner's user id.
type JobSeekerProfile struct {
	UserID             uuid.UUID           `json:"userId"`
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Phone              string              `json:"phone"`
	City               string              `json:"city"`
	Country            string              `json:"country"`
	Headline           string              `json:"headline"`
	Bio                string              `json:"bio"`
	ExperienceLevel    job.ExperienceLevel `json:"experienceLevel"`
	CurrentPosition    string              `json:"currentPosition"`
	CurrentCompany     string              `json:"currentCompany"`
	Skills             []string            `json:"skills"`
	DesiredJobTypes    []job.Type          `json:"desiredJobTypes"`
	DesiredSalaryMin   *int                `json:"desiredSalaryMin,omitempty"`
	DesiredSalaryMax   *int                `json:"desiredSalaryMax,omitempty"`
	PreferredLocations []string            `json:"preferredLocations"`
	WillingToRelocate  bool                `json:"willingToRelocate"`
	OpenToRemote       bool                `json:"openToRemote"`
	ResumePath         string              `json:"resumePath,omitempty"`
	ResumeText         string              `json:"-"`
	LinkedInURL        string              `json:"linkedinUrl"`
	GitHubURL          string              `json:"githubUrl"`
	PortfolioURL       string              `json:"portfolioUrl"`
	Visibility         Visibility          `json:"visibility"`
	IsProfileComplete  bool                `json:"isProfileComplete"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

func (p *JobSeekerProfile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}

// EmployerProfile is keyed by its owner's user id.
type EmployerProfile struct {
	UserID            uuid.UUID   `json:"userId"`
	CompanyName       string      `json:"companyName"`
	Description       string      `json:"description"`
	Industry          string      `json:"industry"`
	CompanySize       CompanySize `json:"companySize"`
	FoundedYear       *int        `json:"foundedYear,omitempty"`
	ContactPerson     string      `json:"contactPerson"`
	ContactEmail      string      `json:"contactEmail"`
	Phone             string      `json:"phone"`
	Headquarters      string      `json:"headquarters"`
	City              string      `json:"city"`
	Country           string      `json:"country"`
	Website           string      `json:"website"`
	LinkedInURL       string      `json:"linkedinUrl"`
	IsVerified        bool        `json:"isVerified"`
	IsProfileComplete bool        `json:"isProfileComplete"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// Profile is the role-specific profile of a user: *JobSeekerProfile or *EmployerProfile.
// Admins have none, which Lookup reports as a nil Profile.
type Profile interface {
	OwnerID() uuid.UUID
	Completeness() Completeness
}

func (p *JobSeekerProfile) OwnerID() uuid.UUID { return p.UserID }
func (p *EmployerProfile) OwnerID() uuid.UUID  { return p.UserID }
