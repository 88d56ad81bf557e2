// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the gradebook API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(book, sqlSink, cfg)

# Endpoints

Health and frontend:

	GET /health   - Liveness check
	GET /         - {StaticDir}/index.html, or a plain banner
	GET /static/  - Files under StaticDir

Students:

	GET    /api/students      - List in insertion order
	POST   /api/students      - Create (optionally with grades)
	GET    /api/students/{id} - Get one
	PUT    /api/students/{id} - Rename and/or set grades
	DELETE /api/students/{id} - Remove

Grades:

	POST   /api/students/{id}/grades           - Set one score
	DELETE /api/students/{id}/grades/{subject} - Remove one score

Reports:

	GET /api/students/honors/{honors} - Students holding a letter grade
	GET /api/top_students             - Ranked, ?min_avg= and ?limit=
	GET /api/statistics               - Collection summary
	GET /api/export                   - Rewrite the CSV snapshot

History:

	GET /api/changes - Recent change records, ?limit= (needs a database)

Every /api route is wrapped with middleware.WithLogging.
*/
package router
