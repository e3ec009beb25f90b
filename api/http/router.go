package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/handlers"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/security/jwt"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Meta     *handlers.MetaHandler
	Jobs     *handlers.JobHandler
	Profile  *handlers.ProfileHandler
	Seeker   *handlers.SeekerHandler
	Employer *handlers.EmployerHandler
	Admin    *handlers.AdminHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, verifier *jwt.Verifier) {
	authMW := jwt.NewAuthMiddleware(verifier)
	optionalMW := jwt.NewOptionalAuthMiddleware(verifier)
	seekerOnly := jwt.RequireRole(auth.RoleJobSeeker)
	employerOnly := jwt.RequireRole(auth.RoleEmployer)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)
	v1.Get("/meta", h.Meta.Get)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Post("/logout", authMW, h.Auth.Logout)

	v1.Get("/categories", h.Jobs.Categories)
	jobs := v1.Group("/jobs")
	jobs.Get("/", h.Jobs.Search)
	jobs.Get("/:id", optionalMW, h.Jobs.Detail)
	jobs.Post("/:id/apply", authMW, seekerOnly, h.Jobs.Apply)
	jobs.Post("/:id/save", authMW, seekerOnly, h.Jobs.Save)

	// Group middleware matches by plain prefix, which would also catch /profiles,
	// so auth is attached per route here.
	p := v1.Group("/profile")
	p.Get("/", authMW, h.Profile.Get)
	p.Get("/completeness", authMW, h.Profile.Completeness)
	p.Put("/seeker", authMW, seekerOnly, h.Profile.UpdateSeeker)
	p.Put("/employer", authMW, employerOnly, h.Profile.UpdateEmployer)
	p.Post("/resume", authMW, seekerOnly, h.Profile.UploadResume)

	pub := v1.Group("/profiles")
	pub.Get("/seekers/:id", optionalMW, h.Profile.PublicSeeker)
	pub.Get("/employers/:id", optionalMW, h.Profile.PublicEmployer)

	s := v1.Group("/seeker", authMW, seekerOnly)
	s.Get("/dashboard", h.Seeker.Dashboard)
	s.Get("/applications", h.Seeker.Applications)
	s.Get("/applications/:id", h.Seeker.Application)
	s.Delete("/applications/:id", h.Seeker.Withdraw)
	s.Get("/saved", h.Seeker.Saved)

	e := v1.Group("/employer", authMW, employerOnly)
	e.Get("/dashboard", h.Employer.Dashboard)
	e.Get("/jobs", h.Employer.Jobs)
	e.Post("/jobs", h.Employer.CreateJob)
	e.Put("/jobs/:id", h.Employer.UpdateJob)
	e.Delete("/jobs/:id", h.Employer.DeleteJob)
	e.Get("/jobs/:id/applications", h.Employer.JobApplications)
	e.Get("/applications", h.Employer.Applications)
	// Registered before /applications/:id so "bulk" is not taken for an id.
	e.Post("/applications/bulk", h.Employer.BulkUpdate)
	e.Get("/applications/:id", h.Employer.Application)
	e.Post("/applications/:id", h.Employer.UpdateApplication)

	adm := v1.Group("/admin", authMW, jwt.RequireRole(auth.RoleAdmin))
	adm.Get("/dashboard", h.Admin.Dashboard)
	adm.Get("/analytics", h.Admin.Analytics)
	adm.Get("/quick-stats", h.Admin.QuickStats)
	adm.Get("/users", h.Admin.Users)
	adm.Post("/users/:id/toggle-active", h.Admin.ToggleActive)
	adm.Post("/employers/:id/verify", h.Admin.VerifyEmployer)
	adm.Get("/jobs", h.Admin.Jobs)
	adm.Post("/jobs/:id/status", h.Admin.SetJobStatus)
	adm.Post("/categories", h.Admin.CreateCategory)
	adm.Get("/export/users", h.Admin.ExportUsers)
	adm.Get("/export/jobs", h.Admin.ExportJobs)
}
