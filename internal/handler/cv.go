// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package handler

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ikowalczyk/cvfolio/internal/cv"
)

// CVHandler serves the public CV aggregate and the admin CRUD endpoints
// for the five content families.
type CVHandler struct {
	repo *cv.Repository
}

// NewCVHandler creates a CV handler.
func NewCVHandler(repo *cv.Repository) *CVHandler {
	return &CVHandler{repo: repo}
}

// PublicCV returns the aggregate CV, falling back to the bundled seed
// dataset when the store is empty or unreachable.
func (h *CVHandler) PublicCV(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.Data(r.Context(), cv.DataOptions{})
	if err != nil {
		slog.Error("fetching cv failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to load CV")
		return
	}
	WriteSuccess(w, data, nil)
}

// AdminCV returns the aggregate CV without seed substitution, so the admin
// panel always edits what is really stored.
func (h *CVHandler) AdminCV(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.Data(r.Context(), cv.DataOptions{DisableSeedFallback: true})
	if err != nil {
		slog.Error("fetching cv failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to load CV")
		return
	}
	WriteSuccess(w, data, nil)
}

// Personal info ---------------------------------------------------------------

// GetPersonalInfo returns the singleton personal info entry, or null data
// when it has never been saved.
func (h *CVHandler) GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.repo.PersonalInfo(r.Context())
	if err != nil {
		slog.Error("fetching personal info failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to load personal info")
		return
	}
	WriteSuccess(w, info, nil)
}

// SavePersonalInfo upserts the singleton personal info entry.
func (h *CVHandler) SavePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var in cv.PersonalInfoInput
	if !decodeBody(w, r, &in) {
		return
	}
	if err := h.repo.SavePersonalInfo(r.Context(), in); err != nil {
		writeSaveError(w, err, "personal info")
		return
	}
	info, err := h.repo.PersonalInfo(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load personal info")
		return
	}
	WriteSuccess(w, info, nil)
}

// Education -------------------------------------------------------------------

// ListEducation returns all education entries.
func (h *CVHandler) ListEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.ListEducation(r.Context())
	if err != nil {
		slog.Error("listing education failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to list education")
		return
	}
	WriteSuccess(w, entries, &Meta{Total: int64(len(entries))})
}

// SaveEducation creates or updates an education entry.
func (h *CVHandler) SaveEducation(w http.ResponseWriter, r *http.Request) {
	var in cv.EducationInput
	if !decodeBody(w, r, &in) {
		return
	}
	entry, err := h.repo.SaveEducation(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "education entry")
		return
	}
	if in.ID == nil {
		WriteCreated(w, entry)
		return
	}
	WriteSuccess(w, entry, nil)
}

// DeleteEducation removes an education entry.
func (h *CVHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "education entry", h.repo.DeleteEducation)
}

// Skills ----------------------------------------------------------------------

// ListSkillCategories returns all skill categories with their skills.
func (h *CVHandler) ListSkillCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListSkillCategories(r.Context())
	if err != nil {
		slog.Error("listing skills failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to list skills")
		return
	}
	WriteSuccess(w, categories, &Meta{Total: int64(len(categories))})
}

// SaveSkillCategory creates or updates a skill category; on create, nested
// skills are created with it.
func (h *CVHandler) SaveSkillCategory(w http.ResponseWriter, r *http.Request) {
	var in cv.SkillCategoryInput
	if !decodeBody(w, r, &in) {
		return
	}
	category, err := h.repo.SaveSkillCategory(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "skill category")
		return
	}
	if in.ID == nil {
		WriteCreated(w, category)
		return
	}
	WriteSuccess(w, category, nil)
}

// DeleteSkillCategory removes a skill category and its skills.
func (h *CVHandler) DeleteSkillCategory(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "skill category", h.repo.DeleteSkillCategory)
}

// SaveSkill creates or updates a single skill.
func (h *CVHandler) SaveSkill(w http.ResponseWriter, r *http.Request) {
	var in cv.SkillInput
	if !decodeBody(w, r, &in) {
		return
	}
	skill, err := h.repo.SaveSkill(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "skill")
		return
	}
	if in.ID == nil {
		WriteCreated(w, skill)
		return
	}
	WriteSuccess(w, skill, nil)
}

// DeleteSkill removes a skill.
func (h *CVHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "skill", h.repo.DeleteSkill)
}

// Experiences -----------------------------------------------------------------

// ListExperiences returns all experience entries.
func (h *CVHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.ListExperiences(r.Context())
	if err != nil {
		slog.Error("listing experiences failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to list experiences")
		return
	}
	WriteSuccess(w, entries, &Meta{Total: int64(len(entries))})
}

// SaveExperience creates or updates an experience entry.
func (h *CVHandler) SaveExperience(w http.ResponseWriter, r *http.Request) {
	var in cv.ExperienceInput
	if !decodeBody(w, r, &in) {
		return
	}
	entry, err := h.repo.SaveExperience(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "experience")
		return
	}
	if in.ID == nil {
		WriteCreated(w, entry)
		return
	}
	WriteSuccess(w, entry, nil)
}

// DeleteExperience removes an experience entry.
func (h *CVHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "experience", h.repo.DeleteExperience)
}

// Projects --------------------------------------------------------------------

// ListProjects returns all projects with links and images.
func (h *CVHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.ListProjects(r.Context())
	if err != nil {
		slog.Error("listing projects failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to list projects")
		return
	}
	WriteSuccess(w, projects, &Meta{Total: int64(len(projects))})
}

// GetProject returns a single project.
func (h *CVHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}
	project, err := h.repo.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
			return
		}
		slog.Error("fetching project failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to load project")
		return
	}
	WriteSuccess(w, project, nil)
}

// SaveProject creates or updates a project; on create, nested links and
// images are created with it.
func (h *CVHandler) SaveProject(w http.ResponseWriter, r *http.Request) {
	var in cv.ProjectInput
	if !decodeBody(w, r, &in) {
		return
	}
	project, err := h.repo.SaveProject(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "project")
		return
	}
	if in.ID == nil {
		WriteCreated(w, project)
		return
	}
	WriteSuccess(w, project, nil)
}

// DeleteProject removes a project and its links and images.
func (h *CVHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "project", h.repo.DeleteProject)
}

// SaveProjectLink creates or updates a project link.
func (h *CVHandler) SaveProjectLink(w http.ResponseWriter, r *http.Request) {
	var in cv.ProjectLinkInput
	if !decodeBody(w, r, &in) {
		return
	}
	link, err := h.repo.SaveProjectLink(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "project link")
		return
	}
	if in.ID == nil {
		WriteCreated(w, link)
		return
	}
	WriteSuccess(w, link, nil)
}

// DeleteProjectLink removes a project link.
func (h *CVHandler) DeleteProjectLink(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "project link", h.repo.DeleteProjectLink)
}

// SaveProjectImage creates or updates a project image.
func (h *CVHandler) SaveProjectImage(w http.ResponseWriter, r *http.Request) {
	var in cv.ProjectImageInput
	if !decodeBody(w, r, &in) {
		return
	}
	image, err := h.repo.SaveProjectImage(r.Context(), in)
	if err != nil {
		writeSaveError(w, err, "project image")
		return
	}
	if in.ID == nil {
		WriteCreated(w, image)
		return
	}
	WriteSuccess(w, image, nil)
}

// DeleteProjectImage removes a project image.
func (h *CVHandler) DeleteProjectImage(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "project image", h.repo.DeleteProjectImage)
}

// delete handles the shared id-parse/delete/error-map flow.
func (h *CVHandler) delete(w http.ResponseWriter, r *http.Request, entityName string,
	remove func(ctx context.Context, id int64) error) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid "+entityName+" ID", nil)
		return
	}
	if err := remove(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, entityName+" not found")
			return
		}
		slog.Error("deleting "+entityName+" failed", "error", err, "category", "content")
		WriteInternalError(w, "Failed to delete "+entityName)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}
