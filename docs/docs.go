// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/analytics": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Analytics reports growth, success rate, categories and top employers.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Admin analytics",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "window length in days (1-365)",
                        "name": "days",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.Analytics"
                        }
                    }
                }
            }
        },
        "/admin/categories": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "CreateCategory adds a job category.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Create category",
                "parameters": [
                    {
                        "description": "category",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.categoryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/job.Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Dashboard is the platform overview for the last ?days days.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Admin dashboard",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "window length in days (1-365)",
                        "name": "days",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.Dashboard"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/admin/employers/{id}/verify": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "VerifyEmployer sets an employer's verified badge; an empty body verifies.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Verify employer",
                "parameters": [
                    {
                        "type": "string",
                        "description": "employer id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "verified flag (default true)",
                        "name": "input",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handlers.verifyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.EmployerProfile"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/admin/export/jobs": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "ExportJobs downloads every job as CSV.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Export jobs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/admin/export/users": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "ExportUsers downloads every account as CSV.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Export users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/admin/jobs": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Jobs lists every job for moderation.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Manage jobs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "draft, active, paused or closed",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "category id",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "title or company substring",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-job_Listing"
                        }
                    }
                }
            }
        },
        "/admin/jobs/{id}/status": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "SetJobStatus changes any job's status.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Set job status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "new status",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.jobStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/job.Job"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/admin/quick-stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "QuickStats counts today's activity.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Quick statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.QuickStats"
                        }
                    }
                }
            }
        },
        "/admin/users": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Users lists accounts.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job_seeker, employer or admin",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "username or email substring",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "active flag",
                        "name": "active",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-auth_User"
                        }
                    }
                }
            }
        },
        "/admin/users/{id}/toggle-active": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "ToggleActive activates or deactivates an account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Toggle user active flag",
                "parameters": [
                    {
                        "type": "string",
                        "description": "user id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.User"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Login handles user login.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "login payload",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Logout revokes the presented token until it expires.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Register handles user registration. The role's profile is created with the account.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register user",
                "parameters": [
                    {
                        "description": "registration payload (role: job_seeker or employer)",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.registerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Categories lists job categories with their active job counts.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Job categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/job.Category"
                            }
                        }
                    }
                }
            }
        },
        "/employer/applications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Applications lists applications across all of the caller's jobs.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "All received applications",
                "parameters": [
                    {
                        "type": "string",
                        "description": "application status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-application_Application"
                        }
                    }
                }
            }
        },
        "/employer/applications/bulk": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "BulkUpdate sets one status on many applications and reports how many changed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Bulk status update",
                "parameters": [
                    {
                        "description": "application ids and target status",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.bulkRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/application.BulkResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/employer/applications/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Application shows one application to the caller's jobs.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Application detail",
                "parameters": [
                    {
                        "type": "string",
                        "description": "application id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/application.Application"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "UpdateApplication changes an application's status and/or notes.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Update application",
                "parameters": [
                    {
                        "type": "string",
                        "description": "application id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "new status and/or notes",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/application.StatusUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/application.Application"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/employer/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Dashboard reports job and application counts by status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Employer dashboard",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.EmployerDashboard"
                        }
                    }
                }
            }
        },
        "/employer/jobs": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Jobs lists the employer's jobs in every status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "My jobs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-job_Listing"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "CreateJob posts a new job owned by the caller.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Create job",
                "parameters": [
                    {
                        "description": "job fields",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/job.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/job.Job"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/employer/jobs/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "UpdateJob replaces one of the caller's jobs.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Update job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "job fields",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/job.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/job.Job"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "DeleteJob removes one of the caller's jobs with its applications and bookmarks.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Delete job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/employer/jobs/{id}/applications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "JobApplications lists applications to one of the caller's jobs.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "employer"
                ],
                "summary": "Applications for a job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "application status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-application_Application"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Health: basic liveness check.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/jobs": {
            "get": {
                "description": "Search lists active jobs.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Search jobs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "keyword over title, company, description and skills",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "category id",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "location substring",
                        "name": "location",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "full_time, part_time, contract, internship, freelance",
                        "name": "job_type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "entry, junior, mid, senior, lead",
                        "name": "experience_level",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "minimum salary floor",
                        "name": "salary_min",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "remote jobs only",
                        "name": "is_remote",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "newest, oldest, salary_desc, salary_asc, popular, title",
                        "name": "sort_by",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size (max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/job.Page"
                        }
                    }
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Detail returns an active job, counts the view and, for job seekers, whether they applied or saved it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Job detail",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/job.Detail"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/jobs/{id}/apply": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Apply submits an application for an active job.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Apply for a job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "cover letter",
                        "name": "input",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handlers.applyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/application.Application"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/jobs/{id}/save": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Save toggles the bookmark of a job.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Save or unsave a job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "boolean"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/meta": {
            "get": {
                "description": "Get returns the site branding and every choice list.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meta"
                ],
                "summary": "Site metadata",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/meta.Info"
                        }
                    }
                }
            }
        },
        "/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get returns the caller's account and role-specific profile; admins have no profile.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Own profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.profileResponse"
                        }
                    }
                }
            }
        },
        "/profile/completeness": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Completeness scores the caller's profile.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Profile completeness",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.Completeness"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profile/employer": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "UpdateEmployer replaces the editable fields of the caller's company profile.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Update employer profile",
                "parameters": [
                    {
                        "description": "company fields",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/profile.EmployerInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.EmployerProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profile/resume": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "UploadResume stores a PDF or DOCX resume and keeps its text for matching.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Upload resume",
                "parameters": [
                    {
                        "type": "file",
                        "description": "resume (PDF or DOCX)",
                        "name": "resume",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.JobSeekerProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profile/seeker": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "UpdateSeeker replaces the editable fields of the caller's job seeker profile.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Update job seeker profile",
                "parameters": [
                    {
                        "description": "profile fields",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/profile.SeekerInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.JobSeekerProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profiles/employers/{id}": {
            "get": {
                "description": "PublicEmployer shows a company profile.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Employer profile",
                "parameters": [
                    {
                        "type": "string",
                        "description": "employer id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.EmployerProfile"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profiles/seekers/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "PublicSeeker shows a job seeker profile according to its visibility.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Job seeker profile",
                "parameters": [
                    {
                        "type": "string",
                        "description": "job seeker id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.JobSeekerProfile"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Ready pings PostgreSQL and, when configured, Redis.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "object"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "object"
                            }
                        }
                    }
                }
            }
        },
        "/seeker/applications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Applications lists the seeker's applications, newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seeker"
                ],
                "summary": "My applications",
                "parameters": [
                    {
                        "type": "string",
                        "description": "application status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-application_Application"
                        }
                    }
                }
            }
        },
        "/seeker/applications/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Application shows one of the seeker's applications.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seeker"
                ],
                "summary": "My application",
                "parameters": [
                    {
                        "type": "string",
                        "description": "application id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/application.Application"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Withdraw deletes a pending application.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seeker"
                ],
                "summary": "Withdraw application",
                "parameters": [
                    {
                        "type": "string",
                        "description": "application id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/seeker/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Dashboard summarises the seeker's activity and recommends jobs.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seeker"
                ],
                "summary": "Job seeker dashboard",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.SeekerDashboard"
                        }
                    }
                }
            }
        },
        "/seeker/saved": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Saved lists bookmarked jobs, most recent first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seeker"
                ],
                "summary": "Saved jobs",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/presenter.Page-savedjob_Saved"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "application.Application": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "jobId": {
                    "type": "string",
                    "format": "uuid"
                },
                "applicantId": {
                    "type": "string",
                    "format": "uuid"
                },
                "coverLetter": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "reviewed",
                        "shortlisted",
                        "interviewed",
                        "rejected",
                        "accepted"
                    ]
                },
                "employerNotes": {
                    "type": "string"
                },
                "appliedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "employerId": {
                    "type": "string",
                    "format": "uuid"
                },
                "jobTitle": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "applicantName": {
                    "type": "string"
                },
                "applicantEmail": {
                    "type": "string"
                }
            }
        },
        "application.BulkResult": {
            "type": "object",
            "properties": {
                "updated": {
                    "type": "integer"
                },
                "failed": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "application.StatusUpdate": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "reviewed",
                        "shortlisted",
                        "interviewed",
                        "rejected",
                        "accepted"
                    ]
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "auth.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "email": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "job_seeker",
                        "employer",
                        "admin"
                    ]
                },
                "isActive": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "handlers.applyRequest": {
            "type": "object",
            "properties": {
                "coverLetter": {
                    "type": "string"
                }
            }
        },
        "handlers.authResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/auth.User"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "handlers.bulkRequest": {
            "type": "object",
            "properties": {
                "applicationIds": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "reviewed",
                        "shortlisted",
                        "interviewed",
                        "rejected",
                        "accepted"
                    ]
                }
            }
        },
        "handlers.categoryRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handlers.jobStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "active",
                        "paused",
                        "closed"
                    ]
                }
            }
        },
        "handlers.loginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handlers.profileResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/auth.User"
                },
                "profile": {
                    "type": "object"
                },
                "completeness": {
                    "$ref": "#/definitions/profile.Completeness"
                }
            }
        },
        "handlers.registerRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "job_seeker",
                        "employer",
                        "admin"
                    ]
                }
            }
        },
        "handlers.verifyRequest": {
            "type": "object",
            "properties": {
                "verified": {
                    "type": "boolean"
                }
            }
        },
        "job.Category": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "activeJobs": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "job.Detail": {
            "type": "object",
            "properties": {
                "job": {
                    "$ref": "#/definitions/job.Job"
                },
                "hasApplied": {
                    "type": "boolean"
                },
                "isSaved": {
                    "type": "boolean"
                },
                "matchedSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "missingSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "related": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/job.Job"
                    }
                }
            }
        },
        "job.Input": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "requirements": {
                    "type": "string"
                },
                "responsibilities": {
                    "type": "string"
                },
                "jobType": {
                    "type": "string",
                    "enum": [
                        "full_time",
                        "part_time",
                        "contract",
                        "internship",
                        "freelance"
                    ]
                },
                "experienceLevel": {
                    "type": "string",
                    "enum": [
                        "entry",
                        "junior",
                        "mid",
                        "senior",
                        "lead"
                    ]
                },
                "location": {
                    "type": "string"
                },
                "isRemote": {
                    "type": "boolean"
                },
                "salaryMin": {
                    "type": "integer"
                },
                "salaryMax": {
                    "type": "integer"
                },
                "salaryCurrency": {
                    "type": "string"
                },
                "requiredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "preferredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "active",
                        "paused",
                        "closed"
                    ]
                },
                "deadline": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "job.Job": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "employerId": {
                    "type": "string",
                    "format": "uuid"
                },
                "companyName": {
                    "type": "string"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid"
                },
                "categoryName": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "requirements": {
                    "type": "string"
                },
                "responsibilities": {
                    "type": "string"
                },
                "jobType": {
                    "type": "string",
                    "enum": [
                        "full_time",
                        "part_time",
                        "contract",
                        "internship",
                        "freelance"
                    ]
                },
                "experienceLevel": {
                    "type": "string",
                    "enum": [
                        "entry",
                        "junior",
                        "mid",
                        "senior",
                        "lead"
                    ]
                },
                "location": {
                    "type": "string"
                },
                "isRemote": {
                    "type": "boolean"
                },
                "salaryMin": {
                    "type": "integer"
                },
                "salaryMax": {
                    "type": "integer"
                },
                "salaryCurrency": {
                    "type": "string"
                },
                "requiredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "preferredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "active",
                        "paused",
                        "closed"
                    ]
                },
                "deadline": {
                    "type": "string",
                    "format": "date-time"
                },
                "viewsCount": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "job.Listing": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "employerId": {
                    "type": "string",
                    "format": "uuid"
                },
                "companyName": {
                    "type": "string"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid"
                },
                "categoryName": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "requirements": {
                    "type": "string"
                },
                "responsibilities": {
                    "type": "string"
                },
                "jobType": {
                    "type": "string",
                    "enum": [
                        "full_time",
                        "part_time",
                        "contract",
                        "internship",
                        "freelance"
                    ]
                },
                "experienceLevel": {
                    "type": "string",
                    "enum": [
                        "entry",
                        "junior",
                        "mid",
                        "senior",
                        "lead"
                    ]
                },
                "location": {
                    "type": "string"
                },
                "isRemote": {
                    "type": "boolean"
                },
                "salaryMin": {
                    "type": "integer"
                },
                "salaryMax": {
                    "type": "integer"
                },
                "salaryCurrency": {
                    "type": "string"
                },
                "requiredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "preferredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "active",
                        "paused",
                        "closed"
                    ]
                },
                "deadline": {
                    "type": "string",
                    "format": "date-time"
                },
                "viewsCount": {
                    "type": "integer"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "applicationsCount": {
                    "type": "integer"
                }
            }
        },
        "job.Page": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/job.Job"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                }
            }
        },
        "meta.Choice": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "meta.Choices": {
            "type": "object",
            "properties": {
                "roles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "jobTypes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "experienceLevels": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "jobStatuses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "applicationStatuses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "sortKeys": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "companySizes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "industries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                },
                "visibilities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/meta.Choice"
                    }
                }
            }
        },
        "meta.Info": {
            "type": "object",
            "properties": {
                "site": {
                    "$ref": "#/definitions/meta.Site"
                },
                "choices": {
                    "$ref": "#/definitions/meta.Choices"
                }
            }
        },
        "meta.Site": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "header": {
                    "type": "string"
                }
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "presenter.Page-application_Application": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/application.Application"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                }
            }
        },
        "presenter.Page-auth_User": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/auth.User"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                }
            }
        },
        "presenter.Page-job_Listing": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/job.Listing"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                }
            }
        },
        "presenter.Page-savedjob_Saved": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/savedjob.Saved"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                }
            }
        },
        "profile.Completeness": {
            "type": "object",
            "properties": {
                "score": {
                    "type": "integer"
                },
                "complete": {
                    "type": "boolean"
                },
                "present": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "missing": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "profile.EmployerInput": {
            "type": "object",
            "properties": {
                "companyName": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "companySize": {
                    "type": "string",
                    "enum": [
                        "startup",
                        "small",
                        "medium",
                        "large",
                        "enterprise"
                    ]
                },
                "foundedYear": {
                    "type": "integer"
                },
                "contactPerson": {
                    "type": "string"
                },
                "contactEmail": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "headquarters": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "linkedinUrl": {
                    "type": "string"
                }
            }
        },
        "profile.EmployerProfile": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "string",
                    "format": "uuid"
                },
                "companyName": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "companySize": {
                    "type": "string",
                    "enum": [
                        "startup",
                        "small",
                        "medium",
                        "large",
                        "enterprise"
                    ]
                },
                "foundedYear": {
                    "type": "integer"
                },
                "contactPerson": {
                    "type": "string"
                },
                "contactEmail": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "headquarters": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "linkedinUrl": {
                    "type": "string"
                },
                "isVerified": {
                    "type": "boolean"
                },
                "isProfileComplete": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "profile.JobSeekerProfile": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "string",
                    "format": "uuid"
                },
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "headline": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "experienceLevel": {
                    "type": "string",
                    "enum": [
                        "entry",
                        "junior",
                        "mid",
                        "senior",
                        "lead"
                    ]
                },
                "currentPosition": {
                    "type": "string"
                },
                "currentCompany": {
                    "type": "string"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "desiredJobTypes": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "enum": [
                            "full_time",
                            "part_time",
                            "contract",
                            "internship",
                            "freelance"
                        ]
                    }
                },
                "desiredSalaryMin": {
                    "type": "integer"
                },
                "desiredSalaryMax": {
                    "type": "integer"
                },
                "preferredLocations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "willingToRelocate": {
                    "type": "boolean"
                },
                "openToRemote": {
                    "type": "boolean"
                },
                "resumePath": {
                    "type": "string"
                },
                "linkedinUrl": {
                    "type": "string"
                },
                "githubUrl": {
                    "type": "string"
                },
                "portfolioUrl": {
                    "type": "string"
                },
                "visibility": {
                    "type": "string",
                    "enum": [
                        "public",
                        "private",
                        "employers_only"
                    ]
                },
                "isProfileComplete": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "profile.SeekerInput": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "headline": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "experienceLevel": {
                    "type": "string",
                    "enum": [
                        "entry",
                        "junior",
                        "mid",
                        "senior",
                        "lead"
                    ]
                },
                "currentPosition": {
                    "type": "string"
                },
                "currentCompany": {
                    "type": "string"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "desiredJobTypes": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "enum": [
                            "full_time",
                            "part_time",
                            "contract",
                            "internship",
                            "freelance"
                        ]
                    }
                },
                "desiredSalaryMin": {
                    "type": "integer"
                },
                "desiredSalaryMax": {
                    "type": "integer"
                },
                "preferredLocations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "willingToRelocate": {
                    "type": "boolean"
                },
                "openToRemote": {
                    "type": "boolean"
                },
                "linkedinUrl": {
                    "type": "string"
                },
                "githubUrl": {
                    "type": "string"
                },
                "portfolioUrl": {
                    "type": "string"
                },
                "visibility": {
                    "type": "string",
                    "enum": [
                        "public",
                        "private",
                        "employers_only"
                    ]
                }
            }
        },
        "savedjob.Saved": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "job": {
                    "$ref": "#/definitions/job.Job"
                },
                "savedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "stats.Analytics": {
            "type": "object",
            "properties": {
                "days": {
                    "type": "integer"
                },
                "userGrowth": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.GrowthPoint"
                    }
                },
                "applicationTimeline": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.DayCount"
                    }
                },
                "successRate": {
                    "type": "number"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.CategoryStat"
                    }
                },
                "topEmployers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.EmployerStat"
                    }
                }
            }
        },
        "stats.ApplicationTotals": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "pending": {
                    "type": "integer"
                },
                "accepted": {
                    "type": "integer"
                },
                "newInWindow": {
                    "type": "integer"
                }
            }
        },
        "stats.CategoryCount": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "activeJobs": {
                    "type": "integer"
                }
            }
        },
        "stats.CategoryStat": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "totalJobs": {
                    "type": "integer"
                },
                "activeJobs": {
                    "type": "integer"
                },
                "totalApplications": {
                    "type": "integer"
                }
            }
        },
        "stats.Counts": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "byStatus": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "stats.Dashboard": {
            "type": "object",
            "properties": {
                "days": {
                    "type": "integer"
                },
                "users": {
                    "$ref": "#/definitions/stats.UserTotals"
                },
                "jobs": {
                    "$ref": "#/definitions/stats.JobTotals"
                },
                "applications": {
                    "$ref": "#/definitions/stats.ApplicationTotals"
                },
                "applicationsByStatus": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.StatusCount"
                    }
                },
                "topCategories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.CategoryCount"
                    }
                },
                "dailyRegistrations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.DayCount"
                    }
                },
                "monthlyJobs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.MonthCount"
                    }
                },
                "recentUsers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/auth.User"
                    }
                },
                "recentJobs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/job.Job"
                    }
                },
                "recentApplications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/application.Application"
                    }
                }
            }
        },
        "stats.DayCount": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "stats.EmployerDashboard": {
            "type": "object",
            "properties": {
                "jobs": {
                    "$ref": "#/definitions/stats.Counts"
                },
                "applications": {
                    "$ref": "#/definitions/stats.Counts"
                },
                "recentApplications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/application.Application"
                    }
                }
            }
        },
        "stats.EmployerStat": {
            "type": "object",
            "properties": {
                "employerId": {
                    "type": "string",
                    "format": "uuid"
                },
                "companyName": {
                    "type": "string"
                },
                "totalJobs": {
                    "type": "integer"
                },
                "totalApplications": {
                    "type": "integer"
                },
                "avgApplicationsPerJob": {
                    "type": "number"
                }
            }
        },
        "stats.GrowthPoint": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "daily": {
                    "type": "integer"
                },
                "cumulative": {
                    "type": "integer"
                }
            }
        },
        "stats.JobTotals": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "active": {
                    "type": "integer"
                },
                "newInWindow": {
                    "type": "integer"
                }
            }
        },
        "stats.MonthCount": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "stats.QuickStats": {
            "type": "object",
            "properties": {
                "usersToday": {
                    "type": "integer"
                },
                "jobsToday": {
                    "type": "integer"
                },
                "applicationsToday": {
                    "type": "integer"
                },
                "pendingApplications": {
                    "type": "integer"
                }
            }
        },
        "stats.SeekerDashboard": {
            "type": "object",
            "properties": {
                "applications": {
                    "type": "integer"
                },
                "savedJobs": {
                    "type": "integer"
                },
                "completeness": {
                    "$ref": "#/definitions/profile.Completeness"
                },
                "recentApplications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/application.Application"
                    }
                },
                "recommended": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/job.Job"
                    }
                }
            }
        },
        "stats.StatusCount": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "stats.UserTotals": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "jobSeekers": {
                    "type": "integer"
                },
                "employers": {
                    "type": "integer"
                },
                "newInWindow": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Authorization token. Both \"Bearer <JWT>\" and \"<JWT>\" are accepted.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "jobboard API",
	Description:      "Job board service: job search, applications, profiles, employer and admin dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
