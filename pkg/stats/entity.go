package stats

import (
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/profile"
)

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type GrowthPoint struct {
	Date       string `json:"date"`
	Daily      int    `json:"daily"`
	Cumulative int    `json:"cumulative"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type CategoryCount struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ActiveJobs int       `json:"activeJobs"`
}

type CategoryStat struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TotalJobs         int       `json:"totalJobs"`
	ActiveJobs        int       `json:"activeJobs"`
	TotalApplications int       `json:"totalApplications"`
}

type EmployerStat struct {
	EmployerID            uuid.UUID `json:"employerId"`
	CompanyName           string    `json:"companyName"`
	TotalJobs             int       `json:"totalJobs"`
	TotalApplications     int       `json:"totalApplications"`
	AvgApplicationsPerJob float64   `json:"avgApplicationsPerJob"`
}

type UserTotals struct {
	Total       int `json:"total"`
	JobSeekers  int `json:"jobSeekers"`
	Employers   int `json:"employers"`
	NewInWindow int `json:"newInWindow"`
}

type JobTotals struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	NewInWindow int `json:"newInWindow"`
}

type ApplicationTotals struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Accepted    int `json:"accepted"`
	NewInWindow int `json:"newInWindow"`
}

// Dashboard is the admin overview for one window.
type Dashboard struct {
	Days                 int                       `json:"days"`
	Users                UserTotals                `json:"users"`
	Jobs                 JobTotals                 `json:"jobs"`
	Applications         ApplicationTotals         `json:"applications"`
	ApplicationsByStatus []StatusCount             `json:"applicationsByStatus"`
	TopCategories        []CategoryCount           `json:"topCategories"`
	DailyRegistrations   []DayCount                `json:"dailyRegistrations"`
	MonthlyJobs          []MonthCount              `json:"monthlyJobs"`
	RecentUsers          []auth.User               `json:"recentUsers"`
	RecentJobs           []job.Job                 `json:"recentJobs"`
	RecentApplications   []application.Application `json:"recentApplications"`
}

type Analytics struct {
	Days                int            `json:"days"`
	UserGrowth          []GrowthPoint  `json:"userGrowth"`
	ApplicationTimeline []DayCount     `json:"applicationTimeline"`
	SuccessRate         float64        `json:"successRate"`
	Categories          []CategoryStat `json:"categories"`
	TopEmployers        []EmployerStat `json:"topEmployers"`
}

type QuickStats struct {
	UsersToday          int `json:"usersToday"`
	JobsToday           int `json:"jobsToday"`
	ApplicationsToday   int `json:"applicationsToday"`
	PendingApplications int `json:"pendingApplications"`
}

// Counts is a total split by status.
type Counts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type EmployerDashboard struct {
	Jobs               Counts                    `json:"jobs"`
	Applications       Counts                    `json:"applications"`
	RecentApplications []application.Application `json:"recentApplications"`
}

type SeekerDashboard struct {
	Applications       int                       `json:"applications"`
	SavedJobs          int                       `json:"savedJobs"`
	Completeness       profile.Completeness      `json:"completeness"`
	RecentApplications []application.Application `json:"recentApplications"`
	Recommended        []job.Job                 `json:"recommended"`
}
