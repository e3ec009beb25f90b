package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/nlp"
	"github.com/artem13815/jobboard/pkg/profile"
)

const seekerColumns = `user_id, first_name, last_name, phone, city, country, headline, bio,
	experience_level, current_position, current_company, skills, desired_job_types,
	desired_salary_min, desired_salary_max, preferred_locations, willing_to_relocate,
	open_to_remote, resume_path, resume_text, linkedin_url, github_url, portfolio_url,
	visibility, is_profile_complete, created_at, updated_at`

const employerColumns = `user_id, company_name, description, industry, company_size, founded_year,
	contact_person, contact_email, phone, headquarters, city, country, website, linkedin_url,
	is_verified, is_profile_complete, created_at, updated_at`

var _ profile.Repository = (*ProfileRepository)(nil)

// ProfileRepository хранит профили соискателей и работодателей.
// Списки (навыки, типы занятости) лежат в TEXT через запятую.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func scanSeeker(row scanner) (profile.JobSeekerProfile, error) {
	var (
		p                             profile.JobSeekerProfile
		level, visibility             string
		skills, jobTypes, preferences string
	)
	err := row.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.City, &p.Country, &p.Headline, &p.Bio,
		&level, &p.CurrentPosition, &p.CurrentCompany, &skills, &jobTypes,
		&p.DesiredSalaryMin, &p.DesiredSalaryMax, &preferences, &p.WillingToRelocate,
		&p.OpenToRemote, &p.ResumePath, &p.ResumeText, &p.LinkedInURL, &p.GitHubURL, &p.PortfolioURL,
		&visibility, &p.IsProfileComplete, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return profile.JobSeekerProfile{}, err
	}
	p.ExperienceLevel = job.ExperienceLevel(level)
	p.Visibility = profile.Visibility(visibility)
	p.Skills = nlp.ParseList(skills)
	p.PreferredLocations = nlp.ParseList(preferences)
	p.DesiredJobTypes = []job.Type{}
	for _, t := range nlp.ParseList(jobTypes) {
		p.DesiredJobTypes = append(p.DesiredJobTypes, job.Type(t))
	}
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}

func scanEmployer(row scanner) (profile.EmployerProfile, error) {
	var p profile.EmployerProfile
	var size string
	err := row.Scan(&p.UserID, &p.CompanyName, &p.Description, &p.Industry, &size, &p.FoundedYear,
		&p.ContactPerson, &p.ContactEmail, &p.Phone, &p.Headquarters, &p.City, &p.Country, &p.Website, &p.LinkedInURL,
		&p.IsVerified, &p.IsProfileComplete, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return profile.EmployerProfile{}, err
	}
	p.CompanySize = profile.CompanySize(size)
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}

func seekerArgs(p profile.JobSeekerProfile) []any {
	types := make([]string, 0, len(p.DesiredJobTypes))
	for _, t := range p.DesiredJobTypes {
		types = append(types, string(t))
	}
	return []any{p.UserID, p.FirstName, p.LastName, p.Phone, p.City, p.Country, p.Headline, p.Bio,
		string(p.ExperienceLevel), p.CurrentPosition, p.CurrentCompany, nlp.FormatList(p.Skills), nlp.FormatList(types),
		p.DesiredSalaryMin, p.DesiredSalaryMax, nlp.FormatList(p.PreferredLocations), p.WillingToRelocate,
		p.OpenToRemote, p.ResumePath, p.ResumeText, p.LinkedInURL, p.GitHubURL, p.PortfolioURL,
		string(p.Visibility), p.IsProfileComplete, p.CreatedAt, p.UpdatedAt}
}

func employerArgs(p profile.EmployerProfile) []any {
	return []any{p.UserID, p.CompanyName, p.Description, p.Industry, string(p.CompanySize), p.FoundedYear,
		p.ContactPerson, p.ContactEmail, p.Phone, p.Headquarters, p.City, p.Country, p.Website, p.LinkedInURL,
		p.IsVerified, p.IsProfileComplete, p.CreatedAt, p.UpdatedAt}
}

func (r *ProfileRepository) CreateSeeker(ctx context.Context, p profile.JobSeekerProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO job_seeker_profiles (`+seekerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27)
		ON CONFLICT (user_id) DO NOTHING
	`, seekerArgs(p)...)
	return mapError(err, profile.ErrNotFound)
}

func (r *ProfileRepository) CreateEmployer(ctx context.Context, p profile.EmployerProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO employer_profiles (`+employerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id) DO NOTHING
	`, employerArgs(p)...)
	return mapError(err, profile.ErrNotFound)
}

func (r *ProfileRepository) GetSeeker(ctx context.Context, userID uuid.UUID) (profile.JobSeekerProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+seekerColumns+` FROM job_seeker_profiles WHERE user_id = $1`, userID)
	p, err := scanSeeker(row)
	if err != nil {
		return profile.JobSeekerProfile{}, mapError(err, profile.ErrNotFound)
	}
	return p, nil
}

func (r *ProfileRepository) GetEmployer(ctx context.Context, userID uuid.UUID) (profile.EmployerProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+employerColumns+` FROM employer_profiles WHERE user_id = $1`, userID)
	p, err := scanEmployer(row)
	if err != nil {
		return profile.EmployerProfile{}, mapError(err, profile.ErrNotFound)
	}
	return p, nil
}

func (r *ProfileRepository) UpdateSeeker(ctx context.Context, p profile.JobSeekerProfile) error {
	args := append(seekerArgs(p)[:25], p.UpdatedAt)
	tag, err := r.pool.Exec(ctx, `
		UPDATE job_seeker_profiles SET
			first_name = $2, last_name = $3, phone = $4, city = $5, country = $6, headline = $7, bio = $8,
			experience_level = $9, current_position = $10, current_company = $11, skills = $12,
			desired_job_types = $13, desired_salary_min = $14, desired_salary_max = $15,
			preferred_locations = $16, willing_to_relocate = $17, open_to_remote = $18,
			resume_path = $19, resume_text = $20, linkedin_url = $21, github_url = $22,
			portfolio_url = $23, visibility = $24, is_profile_complete = $25, updated_at = $26
		WHERE user_id = $1
	`, args...)
	if err != nil {
		return mapError(err, profile.ErrNotFound)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// UpdateEmployer saves the editable fields; verification is only changed by SetEmployerVerified.
func (r *ProfileRepository) UpdateEmployer(ctx context.Context, p profile.EmployerProfile) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employer_profiles SET
			company_name = $2, description = $3, industry = $4, company_size = $5, founded_year = $6,
			contact_person = $7, contact_email = $8, phone = $9, headquarters = $10, city = $11,
			country = $12, website = $13, linkedin_url = $14, is_profile_complete = $15, updated_at = $16
		WHERE user_id = $1
	`, p.UserID, p.CompanyName, p.Description, p.Industry, string(p.CompanySize), p.FoundedYear,
		p.ContactPerson, p.ContactEmail, p.Phone, p.Headquarters, p.City,
		p.Country, p.Website, p.LinkedInURL, p.IsProfileComplete, p.UpdatedAt)
	if err != nil {
		return mapError(err, profile.ErrNotFound)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) SetEmployerVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employer_profiles SET is_verified = $2, updated_at = now() WHERE user_id = $1
	`, userID, verified)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}
