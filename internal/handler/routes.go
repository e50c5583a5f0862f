// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ikowalczyk/cvfolio/internal/middleware"
	"github.com/ikowalczyk/cvfolio/internal/session"
)

// Route paths shared between the router and tests.
const (
	RouteHealth    = "/healthz"
	RouteCV        = "/api/cv"
	RouteTranslate = "/api/translate"
	RouteLogin     = "/api/admin/login"
	RouteLogout    = "/api/admin/logout"
	RouteMe        = "/api/admin/me"
	RouteAdminBase = "/api/admin/cv"
)

// Deps bundles everything the router needs.
type Deps struct {
	Auth       *AuthHandler
	CV         *CVHandler
	Translate  *TranslateHandler
	Health     *HealthHandler
	Sessions   *session.Manager
	Protection *middleware.LoginProtection
}

// Routes assembles the HTTP router: public CV and translation endpoints,
// the login surface, and the session-gated admin CRUD tree.
func Routes(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get(RouteHealth, deps.Health.Health)

	// Public surface
	r.Get(RouteCV, deps.CV.PublicCV)
	r.Post(RouteTranslate, deps.Translate.Translate)

	// Login surface; rate limited per IP
	r.With(deps.Protection.Middleware()).Post(RouteLogin, deps.Auth.Login)
	r.Post(RouteLogout, deps.Auth.Logout)

	// Admin surface; every route below requires a valid session
	r.Group(func(r chi.Router) {
		r.Use(deps.Sessions.RequireAdmin(RouteLogin))

		r.Get(RouteMe, deps.Auth.Me)

		r.Route(RouteAdminBase, func(r chi.Router) {
			r.Get("/", deps.CV.AdminCV)

			r.Get("/personal-info", deps.CV.GetPersonalInfo)
			r.Put("/personal-info", deps.CV.SavePersonalInfo)

			r.Get("/education", deps.CV.ListEducation)
			r.Post("/education", deps.CV.SaveEducation)
			r.Delete("/education/{id}", deps.CV.DeleteEducation)

			r.Get("/skill-categories", deps.CV.ListSkillCategories)
			r.Post("/skill-categories", deps.CV.SaveSkillCategory)
			r.Delete("/skill-categories/{id}", deps.CV.DeleteSkillCategory)

			r.Post("/skills", deps.CV.SaveSkill)
			r.Delete("/skills/{id}", deps.CV.DeleteSkill)

			r.Get("/experiences", deps.CV.ListExperiences)
			r.Post("/experiences", deps.CV.SaveExperience)
			r.Delete("/experiences/{id}", deps.CV.DeleteExperience)

			r.Get("/projects", deps.CV.ListProjects)
			r.Get("/projects/{id}", deps.CV.GetProject)
			r.Post("/projects", deps.CV.SaveProject)
			r.Delete("/projects/{id}", deps.CV.DeleteProject)

			r.Post("/project-links", deps.CV.SaveProjectLink)
			r.Delete("/project-links/{id}", deps.CV.DeleteProjectLink)

			r.Post("/project-images", deps.CV.SaveProjectImage)
			r.Delete("/project-images/{id}", deps.CV.DeleteProjectImage)
		})
	})

	return r
}
