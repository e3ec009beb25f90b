package stats

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/profile"
)

const (
	topCategories   = 5
	topEmployers    = 10
	recentUsers     = 5
	recentJobs      = 5
	recentApps      = 10
	dashboardRecent = 5
	recommendLimit  = 5
	monthsShown     = 12
	timelineDays    = 30
)

// Series names a table whose rows are counted over time.
type Series string

const (
	SeriesUsers        Series = "users"
	SeriesJobs         Series = "jobs"
	SeriesApplications Series = "applications"
)

// Store runs the read-only aggregate queries. Day keys are YYYY-MM-DD and month keys
// YYYY-MM, both in UTC.
type Store interface {
	UserTotals(ctx context.Context, since time.Time) (UserTotals, error)
	JobTotals(ctx context.Context, since time.Time) (JobTotals, error)
	ApplicationTotals(ctx context.Context, since time.Time) (ApplicationTotals, error)
	ApplicationsByStatus(ctx context.Context) ([]StatusCount, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
	DailyCounts(ctx context.Context, s Series, from time.Time) (map[string]int, error)
	MonthlyCounts(ctx context.Context, s Series, from time.Time) (map[string]int, error)
	CountBefore(ctx context.Context, s Series, t time.Time) (int, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
	EmployerStats(ctx context.Context, limit int) ([]EmployerStat, error)
	RecentUsers(ctx context.Context, limit int) ([]auth.User, error)
	RecentJobs(ctx context.Context, limit int) ([]job.Job, error)
	RecentApplications(ctx context.Context, limit int) ([]application.Application, error)
	EmployerJobCounts(ctx context.Context, employerID uuid.UUID) (map[string]int, error)
	EmployerApplicationCounts(ctx context.Context, employerID uuid.UUID) (map[string]int, error)
	SeekerCounts(ctx context.Context, seekerID uuid.UUID) (applications, saved int, err error)
}

// ApplicationLister provides the recent-applications panels.
type ApplicationLister interface {
	ListForSeeker(ctx context.Context, seekerID uuid.UUID, f application.Filter, page, limit int) ([]application.Application, int, error)
	ListForEmployer(ctx context.Context, employerID uuid.UUID, f application.Filter, page, limit int) ([]application.Application, int, error)
}

// Recommender suggests jobs from a seeker's skills.
type Recommender interface {
	Recommend(ctx context.Context, skills []string, limit int) ([]job.Job, error)
}

type UseCase interface {
	Dashboard(ctx context.Context, days int) (Dashboard, error)
	Analytics(ctx context.Context, days int) (Analytics, error)
	Quick(ctx context.Context) (QuickStats, error)
	Employer(ctx context.Context, employerID uuid.UUID) (EmployerDashboard, error)
	Seeker(ctx context.Context, p *profile.JobSeekerProfile) (SeekerDashboard, error)
}

type service struct {
	store Store
	apps  ApplicationLister
	jobs  Recommender
	now   func() time.Time
}

func NewService(store Store, apps ApplicationLister, jobs Recommender) UseCase {
	return &service{store: store, apps: apps, jobs: jobs, now: time.Now}
}

// Dashboard runs its independent queries concurrently; the first failure cancels the rest.
func (s *service) Dashboard(ctx context.Context, days int) (Dashboard, error) {
	now := s.now()
	w := NewWindow(days, now)
	d := Dashboard{Days: w.Days}
	var daily, monthly map[string]int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { d.Users, err = s.store.UserTotals(gctx, w.Start); return })
	g.Go(func() (err error) { d.Jobs, err = s.store.JobTotals(gctx, w.Start); return })
	g.Go(func() (err error) { d.Applications, err = s.store.ApplicationTotals(gctx, w.Start); return })
	g.Go(func() (err error) { d.ApplicationsByStatus, err = s.store.ApplicationsByStatus(gctx); return })
	g.Go(func() (err error) { d.TopCategories, err = s.store.TopCategories(gctx, topCategories); return })
	g.Go(func() (err error) { daily, err = s.store.DailyCounts(gctx, SeriesUsers, w.Start); return })
	g.Go(func() (err error) {
		monthly, err = s.store.MonthlyCounts(gctx, SeriesJobs, startOfMonth(now).AddDate(0, -(monthsShown-1), 0))
		return
	})
	g.Go(func() (err error) { d.RecentUsers, err = s.store.RecentUsers(gctx, recentUsers); return })
	g.Go(func() (err error) { d.RecentJobs, err = s.store.RecentJobs(gctx, recentJobs); return })
	g.Go(func() (err error) { d.RecentApplications, err = s.store.RecentApplications(gctx, recentApps); return })
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	d.ApplicationsByStatus = denseStatuses(d.ApplicationsByStatus)
	d.DailyRegistrations = fillDays(w, daily)
	d.MonthlyJobs = fillMonths(now, monthsShown, monthly)
	if d.TopCategories == nil {
		d.TopCategories = []CategoryCount{}
	}
	if d.RecentUsers == nil {
		d.RecentUsers = []auth.User{}
	}
	if d.RecentJobs == nil {
		d.RecentJobs = []job.Job{}
	}
	if d.RecentApplications == nil {
		d.RecentApplications = []application.Application{}
	}
	return d, nil
}

func (s *service) Analytics(ctx context.Context, days int) (Analytics, error) {
	now := s.now()
	w := NewWindow(days, now)
	timeline := NewWindow(timelineDays, now)
	a := Analytics{Days: w.Days}
	var (
		userDaily, appDaily map[string]int
		baseline            int
		totals              ApplicationTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { userDaily, err = s.store.DailyCounts(gctx, SeriesUsers, w.Start); return })
	g.Go(func() (err error) { baseline, err = s.store.CountBefore(gctx, SeriesUsers, w.Start); return })
	g.Go(func() (err error) { appDaily, err = s.store.DailyCounts(gctx, SeriesApplications, timeline.Start); return })
	g.Go(func() (err error) { totals, err = s.store.ApplicationTotals(gctx, w.Start); return })
	g.Go(func() (err error) { a.Categories, err = s.store.CategoryStats(gctx); return })
	g.Go(func() (err error) { a.TopEmployers, err = s.store.EmployerStats(gctx, topEmployers); return })
	if err := g.Wait(); err != nil {
		return Analytics{}, err
	}

	a.UserGrowth = growth(fillDays(w, userDaily), baseline)
	a.ApplicationTimeline = fillDays(timeline, appDaily)
	a.SuccessRate = SafeRate(totals.Accepted, totals.Total)
	if a.Categories == nil {
		a.Categories = []CategoryStat{}
	}
	if a.TopEmployers == nil {
		a.TopEmployers = []EmployerStat{}
	}
	for i := range a.TopEmployers {
		e := &a.TopEmployers[i]
		e.AvgApplicationsPerJob = SafeRatio(e.TotalApplications, e.TotalJobs)
	}
	return a, nil
}

func (s *service) Quick(ctx context.Context) (QuickStats, error) {
	today := startOfDay(s.now())
	var (
		q    QuickStats
		u    UserTotals
		j    JobTotals
		apps ApplicationTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { u, err = s.store.UserTotals(gctx, today); return })
	g.Go(func() (err error) { j, err = s.store.JobTotals(gctx, today); return })
	g.Go(func() (err error) { apps, err = s.store.ApplicationTotals(gctx, today); return })
	if err := g.Wait(); err != nil {
		return QuickStats{}, err
	}
	q.UsersToday = u.NewInWindow
	q.JobsToday = j.NewInWindow
	q.ApplicationsToday = apps.NewInWindow
	q.PendingApplications = apps.Pending
	return q, nil
}

func (s *service) Employer(ctx context.Context, employerID uuid.UUID) (EmployerDashboard, error) {
	var (
		d      EmployerDashboard
		jobsBy map[string]int
		appsBy map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { jobsBy, err = s.store.EmployerJobCounts(gctx, employerID); return })
	g.Go(func() (err error) { appsBy, err = s.store.EmployerApplicationCounts(gctx, employerID); return })
	g.Go(func() (err error) {
		d.RecentApplications, _, err = s.apps.ListForEmployer(gctx, employerID, application.Filter{}, 1, dashboardRecent)
		return
	})
	if err := g.Wait(); err != nil {
		return EmployerDashboard{}, err
	}
	d.Jobs = counts(jobsBy, jobStatusKeys())
	d.Applications = counts(appsBy, applicationStatusKeys())
	if d.RecentApplications == nil {
		d.RecentApplications = []application.Application{}
	}
	return d, nil
}

func (s *service) Seeker(ctx context.Context, p *profile.JobSeekerProfile) (SeekerDashboard, error) {
	d := SeekerDashboard{Completeness: p.Completeness()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { d.Applications, d.SavedJobs, err = s.store.SeekerCounts(gctx, p.UserID); return })
	g.Go(func() (err error) {
		d.RecentApplications, _, err = s.apps.ListForSeeker(gctx, p.UserID, application.Filter{}, 1, dashboardRecent)
		return
	})
	g.Go(func() (err error) { d.Recommended, err = s.jobs.Recommend(gctx, p.Skills, recommendLimit); return })
	if err := g.Wait(); err != nil {
		return SeekerDashboard{}, err
	}
	if d.RecentApplications == nil {
		d.RecentApplications = []application.Application{}
	}
	if d.Recommended == nil {
		d.Recommended = []job.Job{}
	}
	return d, nil
}

// growth adds a running total, starting from the count before the first day.
func growth(days []DayCount, baseline int) []GrowthPoint {
	out := make([]GrowthPoint, 0, len(days))
	total := baseline
	for _, d := range days {
		total += d.Count
		out = append(out, GrowthPoint{Date: d.Date, Daily: d.Count, Cumulative: total})
	}
	return out
}

// denseStatuses lists every application status, known ones first in lifecycle order.
func denseStatuses(in []StatusCount) []StatusCount {
	byStatus := map[string]int{}
	for _, sc := range in {
		byStatus[sc.Status] += sc.Count
	}
	out := make([]StatusCount, 0, len(byStatus))
	for _, st := range applicationStatusKeys() {
		out = append(out, StatusCount{Status: st, Count: byStatus[st]})
		delete(byStatus, st)
	}
	rest := make([]string, 0, len(byStatus))
	for st := range byStatus {
		rest = append(rest, st)
	}
	sort.Strings(rest)
	for _, st := range rest {
		out = append(out, StatusCount{Status: st, Count: byStatus[st]})
	}
	return out
}

func counts(by map[string]int, keys []string) Counts {
	c := Counts{ByStatus: map[string]int{}}
	for _, k := range keys {
		c.ByStatus[k] = 0
	}
	for k, n := range by {
		c.ByStatus[k] += n
		c.Total += n
	}
	return c
}

func jobStatusKeys() []string {
	var out []string
	for _, s := range job.Statuses() {
		out = append(out, string(s))
	}
	return out
}

func applicationStatusKeys() []string {
	var out []string
	for _, s := range application.Statuses() {
		out = append(out, string(s))
	}
	return out
}
