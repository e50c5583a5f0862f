// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ikowalczyk/cvfolio/internal/model"
	"github.com/ikowalczyk/cvfolio/internal/store"
)

// Repository reads and writes the five CV entity families and normalizes
// rows into view models.
type Repository struct {
	db      *sql.DB
	queries *store.Queries
}

// NewRepository creates a repository over the given database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:      db,
		queries: store.New(db),
	}
}

// DataOptions controls the aggregate fetch.
type DataOptions struct {
	// DisableSeedFallback forces store errors to propagate instead of
	// silently substituting the bundled seed dataset. Used by operations
	// that must not show sample data.
	DisableSeedFallback bool
}

// Data fetches all five entity families concurrently and assembles the
// aggregate view model. When the store holds no content at all, or when it
// is unreachable, the bundled seed dataset is returned instead (tagged
// FromSeed) unless the fallback is disabled.
func (r *Repository) Data(ctx context.Context, opts DataOptions) (Data, error) {
	var (
		personal    *model.PersonalInfo
		education   []model.Education
		categories  []model.SkillCategory
		skills      []model.Skill
		experiences []model.Experience
		projects    []model.Project
		links       []model.ProjectLink
		images      []model.ProjectImage
	)

	// All five fetches are launched before any is awaited.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := r.queries.GetPersonalInfo(gctx)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		personal = &p
		return nil
	})
	g.Go(func() error {
		var err error
		education, err = r.queries.ListEducation(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if categories, err = r.queries.ListSkillCategories(gctx); err != nil {
			return err
		}
		skills, err = r.queries.ListSkills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		experiences, err = r.queries.ListExperiences(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if projects, err = r.queries.ListProjects(gctx); err != nil {
			return err
		}
		if links, err = r.queries.ListProjectLinks(gctx); err != nil {
			return err
		}
		images, err = r.queries.ListProjectImages(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if opts.DisableSeedFallback {
			return Data{}, fmt.Errorf("fetching cv data: %w", err)
		}
		slog.Warn("cv store unreachable, falling back to seed data", "error", err)
		return SeedData(), nil
	}

	if !hasAnyContent(personal, education, categories, experiences, projects) {
		if opts.DisableSeedFallback {
			return r.assemble(personal, education, categories, skills, experiences, projects, links, images), nil
		}
		return SeedData(), nil
	}

	return r.assemble(personal, education, categories, skills, experiences, projects, links, images), nil
}

// hasAnyContent is the seed-suppression predicate: a single populated entity
// family is enough to serve live data, even if the other four are empty.
// This lets an operator populate sections incrementally and see empty
// sections rather than seed substitutes once any real edit has occurred.
func hasAnyContent(personal *model.PersonalInfo, education []model.Education,
	categories []model.SkillCategory, experiences []model.Experience, projects []model.Project) bool {
	return personal != nil ||
		len(education) > 0 ||
		len(categories) > 0 ||
		len(experiences) > 0 ||
		len(projects) > 0
}

func (r *Repository) assemble(personal *model.PersonalInfo, education []model.Education,
	categories []model.SkillCategory, skills []model.Skill, experiences []model.Experience,
	projects []model.Project, links []model.ProjectLink, images []model.ProjectImage) Data {

	data := Data{
		Education:       make([]Education, 0, len(education)),
		SkillCategories: skillCategoryViews(categories, skills),
		Experiences:     make([]Experience, 0, len(experiences)),
		Projects:        projectViews(projects, links, images),
	}
	if personal != nil {
		data.PersonalInfo = personalInfoView(*personal)
	}
	for _, e := range education {
		data.Education = append(data.Education, educationView(e))
	}
	for _, e := range experiences {
		data.Experiences = append(data.Experiences, experienceView(e))
	}
	return data
}

// Personal info ---------------------------------------------------------------

// PersonalInfo returns the singleton personal info view model, or nil when
// the row does not exist.
func (r *Repository) PersonalInfo(ctx context.Context) (*PersonalInfo, error) {
	p, err := r.queries.GetPersonalInfo(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return personalInfoView(p), nil
}

// SavePersonalInfo validates and upserts the singleton personal info row.
func (r *Repository) SavePersonalInfo(ctx context.Context, in PersonalInfoInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return r.queries.UpsertPersonalInfo(ctx, store.UpsertPersonalInfoParams{
		FullName:    in.FullName,
		Title:       in.Title,
		PhotoURL:    in.PhotoURL,
		ShortBio:    in.ShortBio,
		Email:       in.Email,
		City:        in.City,
		GithubURL:   in.GithubURL,
		LinkedinURL: in.LinkedinURL,
		WebsiteURL:  optionalString(in.WebsiteURL),
	})
}

// Education -------------------------------------------------------------------

// ListEducation returns all education entries sorted by order.
func (r *Repository) ListEducation(ctx context.Context) ([]Education, error) {
	rows, err := r.queries.ListEducation(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]Education, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, educationView(row))
	}
	return entries, nil
}

// GetEducation returns a single education entry by id.
func (r *Repository) GetEducation(ctx context.Context, id int64) (Education, error) {
	row, err := r.queries.GetEducationByID(ctx, id)
	if err != nil {
		return Education{}, err
	}
	return educationView(row), nil
}

// SaveEducation validates and upserts an education entry: a present client-
// supplied id updates, an absent one creates.
func (r *Repository) SaveEducation(ctx context.Context, in EducationInput) (Education, error) {
	if err := in.Validate(); err != nil {
		return Education{}, err
	}

	start, err := ParseMonth(in.StartDate)
	if err != nil {
		return Education{}, &ValidationError{Fields: map[string]string{"start_date": err.Error()}}
	}
	end, err := optionalMonth(in.EndDate)
	if err != nil {
		return Education{}, &ValidationError{Fields: map[string]string{"end_date": err.Error()}}
	}

	row := model.Education{
		School:      in.School,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   start,
		EndDate:     end,
		Description: in.Description,
		Position:    in.Order,
	}

	if in.ID != nil {
		row.ID = *in.ID
		if err := r.queries.UpdateEducation(ctx, row); err != nil {
			return Education{}, err
		}
		return educationView(row), nil
	}

	created, err := r.queries.CreateEducation(ctx, row)
	if err != nil {
		return Education{}, err
	}
	return educationView(created), nil
}

// DeleteEducation removes an education entry.
func (r *Repository) DeleteEducation(ctx context.Context, id int64) error {
	return r.queries.DeleteEducation(ctx, id)
}

// Skills ----------------------------------------------------------------------

// ListSkillCategories returns all categories with their skills, both levels
// sorted by order.
func (r *Repository) ListSkillCategories(ctx context.Context) ([]SkillCategory, error) {
	categories, err := r.queries.ListSkillCategories(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := r.queries.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	return skillCategoryViews(categories, skills), nil
}

// GetSkillCategory returns a single category with its skills.
func (r *Repository) GetSkillCategory(ctx context.Context, id int64) (SkillCategory, error) {
	c, err := r.queries.GetSkillCategoryByID(ctx, id)
	if err != nil {
		return SkillCategory{}, err
	}
	skills, err := r.queries.ListSkills(ctx)
	if err != nil {
		return SkillCategory{}, err
	}
	views := skillCategoryViews([]model.SkillCategory{c}, skills)
	return views[0], nil
}

// SaveSkillCategory validates and upserts a skill category. On create,
// nested skills from the payload are cascade-created under the new category
// within a single transaction.
func (r *Repository) SaveSkillCategory(ctx context.Context, in SkillCategoryInput) (SkillCategory, error) {
	if err := in.Validate(); err != nil {
		return SkillCategory{}, err
	}

	if in.ID != nil {
		row := model.SkillCategory{ID: *in.ID, Name: in.Name, Position: in.Order}
		if err := r.queries.UpdateSkillCategory(ctx, row); err != nil {
			return SkillCategory{}, err
		}
		return r.GetSkillCategory(ctx, *in.ID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return SkillCategory{}, err
	}
	defer func() { _ = tx.Rollback() }()

	qtx := r.queries.WithTx(tx)
	created, err := qtx.CreateSkillCategory(ctx, model.SkillCategory{Name: in.Name, Position: in.Order})
	if err != nil {
		return SkillCategory{}, err
	}
	for _, s := range in.Skills {
		_, err := qtx.CreateSkill(ctx, model.Skill{
			CategoryID: created.ID,
			Name:       s.Name,
			Level:      optionalString(s.Level),
			Position:   s.Order,
		})
		if err != nil {
			return SkillCategory{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return SkillCategory{}, err
	}

	return r.GetSkillCategory(ctx, created.ID)
}

// DeleteSkillCategory removes a category; its skills cascade in the store.
func (r *Repository) DeleteSkillCategory(ctx context.Context, id int64) error {
	return r.queries.DeleteSkillCategory(ctx, id)
}

// SaveSkill validates and upserts a single skill.
func (r *Repository) SaveSkill(ctx context.Context, in SkillInput) (Skill, error) {
	if err := in.Validate(); err != nil {
		return Skill{}, err
	}

	row := model.Skill{
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Level:      optionalString(in.Level),
		Position:   in.Order,
	}

	if in.ID != nil {
		row.ID = *in.ID
		if err := r.queries.UpdateSkill(ctx, row); err != nil {
			return Skill{}, err
		}
		// Re-read so the response reflects what is actually stored.
		stored, err := r.queries.GetSkillByID(ctx, row.ID)
		if err != nil {
			return Skill{}, err
		}
		return skillView(stored), nil
	}

	created, err := r.queries.CreateSkill(ctx, row)
	if err != nil {
		return Skill{}, err
	}
	return skillView(created), nil
}

// DeleteSkill removes a skill.
func (r *Repository) DeleteSkill(ctx context.Context, id int64) error {
	return r.queries.DeleteSkill(ctx, id)
}

// Experiences -----------------------------------------------------------------

// ListExperiences returns all experience entries sorted by order.
func (r *Repository) ListExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := r.queries.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]Experience, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, experienceView(row))
	}
	return entries, nil
}

// GetExperience returns a single experience entry by id.
func (r *Repository) GetExperience(ctx context.Context, id int64) (Experience, error) {
	row, err := r.queries.GetExperienceByID(ctx, id)
	if err != nil {
		return Experience{}, err
	}
	return experienceView(row), nil
}

// SaveExperience validates and upserts an experience entry.
func (r *Repository) SaveExperience(ctx context.Context, in ExperienceInput) (Experience, error) {
	if err := in.Validate(); err != nil {
		return Experience{}, err
	}

	start, err := ParseMonth(in.StartDate)
	if err != nil {
		return Experience{}, &ValidationError{Fields: map[string]string{"start_date": err.Error()}}
	}
	end, err := optionalMonth(in.EndDate)
	if err != nil {
		return Experience{}, &ValidationError{Fields: map[string]string{"end_date": err.Error()}}
	}

	row := model.Experience{
		Company:      in.Company,
		Role:         in.Role,
		Location:     optionalString(in.Location),
		StartDate:    start,
		EndDate:      end,
		Description:  in.Description,
		Technologies: in.Technologies,
		Position:     in.Order,
	}

	if in.ID != nil {
		row.ID = *in.ID
		if err := r.queries.UpdateExperience(ctx, row); err != nil {
			return Experience{}, err
		}
		return experienceView(row), nil
	}

	created, err := r.queries.CreateExperience(ctx, row)
	if err != nil {
		return Experience{}, err
	}
	return experienceView(created), nil
}

// DeleteExperience removes an experience entry.
func (r *Repository) DeleteExperience(ctx context.Context, id int64) error {
	return r.queries.DeleteExperience(ctx, id)
}

// Projects --------------------------------------------------------------------

// ListProjects returns all projects with their links and images, sorted by order.
func (r *Repository) ListProjects(ctx context.Context) ([]Project, error) {
	projects, err := r.queries.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	links, err := r.queries.ListProjectLinks(ctx)
	if err != nil {
		return nil, err
	}
	images, err := r.queries.ListProjectImages(ctx)
	if err != nil {
		return nil, err
	}
	return projectViews(projects, links, images), nil
}

// GetProject returns a single project with its links and images.
func (r *Repository) GetProject(ctx context.Context, id int64) (Project, error) {
	p, err := r.queries.GetProjectByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	links, err := r.queries.ListProjectLinks(ctx)
	if err != nil {
		return Project{}, err
	}
	images, err := r.queries.ListProjectImages(ctx)
	if err != nil {
		return Project{}, err
	}
	views := projectViews([]model.Project{p}, links, images)
	return views[0], nil
}

// SaveProject validates and upserts a project. An empty slug on create is
// derived from the name; slugs must be unique. On create, nested links and
// images are cascade-created under the new project within a transaction.
func (r *Repository) SaveProject(ctx context.Context, in ProjectInput) (Project, error) {
	if in.Slug == "" && in.ID == nil {
		in.Slug = Slugify(in.Name)
	}
	in.Slug = strings.TrimSpace(in.Slug)
	if err := in.Validate(); err != nil {
		return Project{}, err
	}

	var excludeID int64
	if in.ID != nil {
		excludeID = *in.ID
	}
	taken, err := r.queries.CountProjectsBySlug(ctx, in.Slug, excludeID)
	if err != nil {
		return Project{}, err
	}
	if taken != 0 {
		return Project{}, &ValidationError{Fields: map[string]string{"slug": "already exists"}}
	}

	row := model.Project{
		Slug:             in.Slug,
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		TechStack:        in.TechStack,
		Position:         in.Order,
	}

	if in.ID != nil {
		row.ID = *in.ID
		if err := r.queries.UpdateProject(ctx, row); err != nil {
			return Project{}, err
		}
		return r.GetProject(ctx, row.ID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Project{}, err
	}
	defer func() { _ = tx.Rollback() }()

	qtx := r.queries.WithTx(tx)
	created, err := qtx.CreateProject(ctx, row)
	if err != nil {
		return Project{}, err
	}
	for _, l := range in.Links {
		_, err := qtx.CreateProjectLink(ctx, model.ProjectLink{
			ProjectID: created.ID,
			Label:     l.Label,
			URL:       l.URL,
			Position:  l.Order,
		})
		if err != nil {
			return Project{}, err
		}
	}
	for _, img := range in.Images {
		_, err := qtx.CreateProjectImage(ctx, model.ProjectImage{
			ProjectID: created.ID,
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			Position:  img.Order,
		})
		if err != nil {
			return Project{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return Project{}, err
	}

	return r.GetProject(ctx, created.ID)
}

// DeleteProject removes a project; its links and images cascade in the store.
func (r *Repository) DeleteProject(ctx context.Context, id int64) error {
	return r.queries.DeleteProject(ctx, id)
}

// SaveProjectLink validates and upserts a project link.
func (r *Repository) SaveProjectLink(ctx context.Context, in ProjectLinkInput) (ProjectLink, error) {
	if err := in.Validate(); err != nil {
		return ProjectLink{}, err
	}

	row := model.ProjectLink{
		ProjectID: in.ProjectID,
		Label:     in.Label,
		URL:       in.URL,
		Position:  in.Order,
	}

	if in.ID != nil {
		row.ID = *in.ID
		if err := r.queries.UpdateProjectLink(ctx, row); err != nil {
			return ProjectLink{}, err
		}
		return projectLinkView(row), nil
	}

	created, err := r.queries.CreateProjectLink(ctx, row)
	if err != nil {
		return ProjectLink{}, err
	}
	return projectLinkView(created), nil
}

// DeleteProjectLink removes a project link.
func (r *Repository) DeleteProjectLink(ctx context.Context, id int64) error {
	return r.queries.DeleteProjectLink(ctx, id)
}

// SaveProjectImage validates and upserts a project image.
func (r *Repository) SaveProjectImage(ctx context.Context, in ProjectImageInput) (ProjectImage, error) {
	if err := in.Validate(); err != nil {
		return ProjectImage{}, err
	}

	row := model.ProjectImage{
		ProjectID: in.ProjectID,
		ImageURL:  in.ImageURL,
		AltText:   in.AltText,
		Position:  in.Order,
	}

	if in.ID != nil {
		row.ID = *in.ID
		if err := r.queries.UpdateProjectImage(ctx, row); err != nil {
			return ProjectImage{}, err
		}
		return projectImageView(row), nil
	}

	created, err := r.queries.CreateProjectImage(ctx, row)
	if err != nil {
		return ProjectImage{}, err
	}
	return projectImageView(created), nil
}

// DeleteProjectImage removes a project image.
func (r *Repository) DeleteProjectImage(ctx context.Context, id int64) error {
	return r.queries.DeleteProjectImage(ctx, id)
}

// Helpers ---------------------------------------------------------------------

func optionalString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func optionalMonth(s string) (sql.NullTime, error) {
	if s == "" {
		return sql.NullTime{}, nil
	}
	t, err := ParseMonth(s)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}
