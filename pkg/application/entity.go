package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterviewed Status = "interviewed"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

var statuses = []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusInterviewed, StatusRejected, StatusAccepted}

func Statuses() []Status { return append([]Status(nil), statuses...) }

func (s Status) Valid() bool {
	for _, x := range statuses {
		if x == s {
			return true
		}
	}
	return false
}

// Application связывает соискателя с вакансией; пара уникальна.
type Application struct {
	ID            uuid.UUID `json:"id"`
	JobID         uuid.UUID `json:"jobId"`
	ApplicantID   uuid.UUID `json:"applicantId"`
	CoverLetter   string    `json:"coverLetter"`
	Status        Status    `json:"status"`
	EmployerNotes string    `json:"employerNotes,omitempty"`
	AppliedAt     time.Time `json:"appliedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Filled by reads that join the job and the applicant.
	EmployerID     uuid.UUID `json:"employerId"`
	JobTitle       string    `json:"jobTitle,omitempty"`
	CompanyName    string    `json:"companyName,omitempty"`
	ApplicantName  string    `json:"applicantName,omitempty"`
	ApplicantEmail string    `json:"applicantEmail,omitempty"`
}

// Filter narrows application listings; an empty Status means any.
type Filter struct {
	Status Status
}

// BulkResult reports a bulk status change. Failed maps application ids to reasons.
type BulkResult struct {
	Updated int               `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}
