package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/apperr"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/nlp"
	"github.com/artem13815/jobboard/pkg/resume"
)

// SeekerInput replaces the editable fields of a job seeker profile.
type SeekerInput struct {
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
	DesiredSalaryMin   *int                `json:"desiredSalaryMin"`
	DesiredSalaryMax   *int                `json:"desiredSalaryMax"`
	PreferredLocations []string            `json:"preferredLocations"`
	WillingToRelocate  bool                `json:"willingToRelocate"`
	OpenToRemote       bool                `json:"openToRemote"`
	LinkedInURL        string              `json:"linkedinUrl"`
	GitHubURL          string              `json:"githubUrl"`
	PortfolioURL       string              `json:"portfolioUrl"`
	Visibility         Visibility          `json:"visibility"`
}

// EmployerInput replaces the editable fields of an employer profile.
type EmployerInput struct {
	CompanyName   string      `json:"companyName"`
	Description   string      `json:"description"`
	Industry      string      `json:"industry"`
	CompanySize   CompanySize `json:"companySize"`
	FoundedYear   *int        `json:"foundedYear"`
	ContactPerson string      `json:"contactPerson"`
	ContactEmail  string      `json:"contactEmail"`
	Phone         string      `json:"phone"`
	Headquarters  string      `json:"headquarters"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	Website       string      `json:"website"`
	LinkedInURL   string      `json:"linkedinUrl"`
}

// UseCase manages role-specific profiles. It doubles as the post-create hook of the
// auth service, provisioning the profile that matches a new user's role.
type UseCase interface {
	auth.PostCreateHook

	Lookup(ctx context.Context, userID uuid.UUID, role auth.Role) (Profile, error)
	Seeker(ctx context.Context, userID uuid.UUID) (*JobSeekerProfile, error)
	Employer(ctx context.Context, userID uuid.UUID) (*EmployerProfile, error)
	UpdateSeeker(ctx context.Context, userID uuid.UUID, in SeekerInput) (*JobSeekerProfile, error)
	UpdateEmployer(ctx context.Context, userID uuid.UUID, in EmployerInput) (*EmployerProfile, error)
	AttachResume(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*JobSeekerProfile, error)
	Completeness(ctx context.Context, userID uuid.UUID, role auth.Role) (Completeness, error)

	PublicSeeker(ctx context.Context, viewer auth.Identity, id uuid.UUID) (*JobSeekerProfile, error)
	PublicEmployer(ctx context.Context, id uuid.UUID) (*EmployerProfile, error)
	VerifyEmployer(ctx context.Context, id uuid.UUID, verified bool) (*EmployerProfile, error)
}

type service struct {
	repo    Repository
	resumes resume.UseCase
	now     func() time.Time
}

func NewService(repo Repository, resumes resume.UseCase) UseCase {
	return &service{repo: repo, resumes: resumes, now: time.Now}
}

func (s *service) AfterUserCreated(ctx context.Context, u auth.User) error {
	switch u.Role {
	case auth.RoleJobSeeker:
		_, err := s.Seeker(ctx, u.ID)
		return err
	case auth.RoleEmployer:
		_, err := s.Employer(ctx, u.ID)
		return err
	}
	return nil
}

func (s *service) Lookup(ctx context.Context, userID uuid.UUID, role auth.Role) (Profile, error) {
	switch role {
	case auth.RoleJobSeeker:
		p, err := s.Seeker(ctx, userID)
		if err != nil {
			return nil, err
		}
		return p, nil
	case auth.RoleEmployer:
		p, err := s.Employer(ctx, userID)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, nil
	}
}

// Seeker returns the user's job seeker profile, creating an empty one on first access.
func (s *service) Seeker(ctx context.Context, userID uuid.UUID) (*JobSeekerProfile, error) {
	p, err := s.repo.GetSeeker(ctx, userID)
	if err == nil {
		return &p, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}
	now := s.now().UTC()
	p = JobSeekerProfile{
		UserID:     userID,
		Skills:     []string{},
		Visibility: VisibilityEmployersOnly,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.IsProfileComplete = p.Completeness().Complete
	if err := s.repo.CreateSeeker(ctx, p); err != nil {
		return nil, fmt.Errorf("create job seeker profile: %w", err)
	}
	p, err = s.repo.GetSeeker(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Employer returns the user's employer profile, creating an empty one on first access.
func (s *service) Employer(ctx context.Context, userID uuid.UUID) (*EmployerProfile, error) {
	p, err := s.repo.GetEmployer(ctx, userID)
	if err == nil {
		return &p, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}
	now := s.now().UTC()
	p = EmployerProfile{UserID: userID, CreatedAt: now, UpdatedAt: now}
	p.IsProfileComplete = p.Completeness().Complete
	if err := s.repo.CreateEmployer(ctx, p); err != nil {
		return nil, fmt.Errorf("create employer profile: %w", err)
	}
	p, err = s.repo.GetEmployer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) UpdateSeeker(ctx context.Context, userID uuid.UUID, in SeekerInput) (*JobSeekerProfile, error) {
	p, err := s.Seeker(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := applySeeker(p, in); err != nil {
		return nil, err
	}
	if err := s.saveSeeker(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateEmployer(ctx context.Context, userID uuid.UUID, in EmployerInput) (*EmployerProfile, error) {
	p, err := s.Employer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := applyEmployer(p, in); err != nil {
		return nil, err
	}
	p.IsProfileComplete = p.Completeness().Complete
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateEmployer(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachResume stores a new resume and replaces the previous one.
func (s *service) AttachResume(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*JobSeekerProfile, error) {
	if s.resumes == nil {
		return nil, errors.New("resume storage is not configured")
	}
	p, err := s.Seeker(ctx, userID)
	if err != nil {
		return nil, err
	}
	doc, err := s.resumes.Ingest(ctx, userID, filename, data)
	if err != nil {
		return nil, err
	}
	previous := p.ResumePath
	p.ResumePath = doc.Path
	p.ResumeText = doc.Text
	if err := s.saveSeeker(ctx, p); err != nil {
		_ = s.resumes.Discard(ctx, doc.Path)
		return nil, err
	}
	if previous != "" && previous != doc.Path {
		if err := s.resumes.Discard(ctx, previous); err != nil {
			log.Printf("profile: remove old resume %s: %v", previous, err)
		}
	}
	return p, nil
}

func (s *service) saveSeeker(ctx context.Context, p *JobSeekerProfile) error {
	p.IsProfileComplete = p.Completeness().Complete
	p.UpdatedAt = s.now().UTC()
	return s.repo.UpdateSeeker(ctx, *p)
}

func (s *service) Completeness(ctx context.Context, userID uuid.UUID, role auth.Role) (Completeness, error) {
	p, err := s.Lookup(ctx, userID, role)
	if err != nil {
		return Completeness{}, err
	}
	if p == nil {
		return Completeness{}, ErrNotFound
	}
	return p.Completeness(), nil
}

// PublicSeeker applies the profile's visibility: private is owner only, employers_only
// admits the owner and employers, public admits anyone.
func (s *service) PublicSeeker(ctx context.Context, viewer auth.Identity, id uuid.UUID) (*JobSeekerProfile, error) {
	p, err := s.repo.GetSeeker(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanView(p.Visibility, viewer, id) {
		return nil, ErrHidden
	}
	return &p, nil
}

// CanView reports whether viewer may see a job seeker profile owned by owner.
func CanView(v Visibility, viewer auth.Identity, owner uuid.UUID) bool {
	if viewer.Authenticated() && viewer.UserID == owner {
		return true
	}
	switch v {
	case VisibilityPublic:
		return true
	case VisibilityEmployersOnly:
		return viewer.Is(auth.RoleEmployer)
	default:
		return false
	}
}

func (s *service) PublicEmployer(ctx context.Context, id uuid.UUID) (*EmployerProfile, error) {
	p, err := s.repo.GetEmployer(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) VerifyEmployer(ctx context.Context, id uuid.UUID, verified bool) (*EmployerProfile, error) {
	if err := s.repo.SetEmployerVerified(ctx, id, verified); err != nil {
		return nil, err
	}
	return s.PublicEmployer(ctx, id)
}

func applySeeker(p *JobSeekerProfile, in SeekerInput) error {
	if in.ExperienceLevel != "" && !in.ExperienceLevel.Valid() {
		return apperr.Validation("invalid experience level")
	}
	if in.Visibility == "" {
		in.Visibility = p.Visibility
	}
	if !in.Visibility.Valid() {
		return apperr.Validation("invalid profile visibility")
	}
	for _, t := range in.DesiredJobTypes {
		if !t.Valid() {
			return apperr.Validation("invalid desired job type: " + string(t))
		}
	}
	for _, v := range []*int{in.DesiredSalaryMin, in.DesiredSalaryMax} {
		if v != nil && (*v < 0 || *v > job.MaxSalary) {
			return apperr.Validation("desired salary is out of range")
		}
	}
	if in.DesiredSalaryMin != nil && in.DesiredSalaryMax != nil && *in.DesiredSalaryMin > *in.DesiredSalaryMax {
		return apperr.Validation("minimum desired salary cannot exceed maximum")
	}
	for _, u := range []string{in.LinkedInURL, in.GitHubURL, in.PortfolioURL} {
		if err := checkURL(u); err != nil {
			return err
		}
	}
	if err := checkLen(map[string]string{
		"first name": in.FirstName, "last name": in.LastName, "phone": in.Phone, "headline": in.Headline,
	}); err != nil {
		return err
	}

	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.Phone = strings.TrimSpace(in.Phone)
	p.City = strings.TrimSpace(in.City)
	p.Country = strings.TrimSpace(in.Country)
	p.Headline = strings.TrimSpace(in.Headline)
	p.Bio = strings.TrimSpace(in.Bio)
	p.ExperienceLevel = in.ExperienceLevel
	p.CurrentPosition = strings.TrimSpace(in.CurrentPosition)
	p.CurrentCompany = strings.TrimSpace(in.CurrentCompany)
	p.Skills = nlp.CleanList(in.Skills)
	p.DesiredJobTypes = dedupeTypes(in.DesiredJobTypes)
	p.DesiredSalaryMin = in.DesiredSalaryMin
	p.DesiredSalaryMax = in.DesiredSalaryMax
	p.PreferredLocations = nlp.CleanList(in.PreferredLocations)
	p.WillingToRelocate = in.WillingToRelocate
	p.OpenToRemote = in.OpenToRemote
	p.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	p.GitHubURL = strings.TrimSpace(in.GitHubURL)
	p.PortfolioURL = strings.TrimSpace(in.PortfolioURL)
	p.Visibility = in.Visibility
	return nil
}

func applyEmployer(p *EmployerProfile, in EmployerInput) error {
	if in.CompanySize != "" && !in.CompanySize.Valid() {
		return apperr.Validation("invalid company size")
	}
	if email := strings.TrimSpace(in.ContactEmail); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return apperr.Validation("invalid contact email")
		}
	}
	for _, u := range []string{in.Website, in.LinkedInURL} {
		if err := checkURL(u); err != nil {
			return err
		}
	}
	if in.FoundedYear != nil && (*in.FoundedYear < 1800 || *in.FoundedYear > time.Now().Year()) {
		return apperr.Validation("invalid founded year")
	}
	if err := checkLen(map[string]string{
		"company name": in.CompanyName, "contact person": in.ContactPerson, "phone": in.Phone, "headquarters": in.Headquarters,
	}); err != nil {
		return err
	}

	p.CompanyName = strings.TrimSpace(in.CompanyName)
	p.Description = strings.TrimSpace(in.Description)
	p.Industry = strings.TrimSpace(in.Industry)
	p.CompanySize = in.CompanySize
	p.FoundedYear = in.FoundedYear
	p.ContactPerson = strings.TrimSpace(in.ContactPerson)
	p.ContactEmail = strings.ToLower(strings.TrimSpace(in.ContactEmail))
	p.Phone = strings.TrimSpace(in.Phone)
	p.Headquarters = strings.TrimSpace(in.Headquarters)
	p.City = strings.TrimSpace(in.City)
	p.Country = strings.TrimSpace(in.Country)
	p.Website = strings.TrimSpace(in.Website)
	p.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	return nil
}

const maxShortField = 200

func checkLen(fields map[string]string) error {
	for name, v := range fields {
		if len(strings.TrimSpace(v)) > maxShortField {
			return apperr.Validation(name + " is too long")
		}
	}
	return nil
}

func checkURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.Validation("invalid URL: " + raw)
	}
	return nil
}

func dedupeTypes(in []job.Type) []job.Type {
	out := []job.Type{}
	seen := map[job.Type]bool{}
	for _, t := range in {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
