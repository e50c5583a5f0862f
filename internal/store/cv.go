// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"

	"github.com/ikowalczyk/cvfolio/internal/model"
)

// Personal info ---------------------------------------------------------------

// GetPersonalInfo returns the singleton personal info row.
func (q *Queries) GetPersonalInfo(ctx context.Context) (model.PersonalInfo, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, full_name, title, photo_url, short_bio, email, city,
		       github_url, linkedin_url, website_url
		FROM personal_info WHERE id = ?`, model.PersonalInfoID)
	var p model.PersonalInfo
	err := row.Scan(&p.ID, &p.FullName, &p.Title, &p.PhotoURL, &p.ShortBio,
		&p.Email, &p.City, &p.GithubURL, &p.LinkedinURL, &p.WebsiteURL)
	return p, err
}

// UpsertPersonalInfoParams holds the fields of the personal info upsert.
type UpsertPersonalInfoParams struct {
	FullName    string
	Title       string
	PhotoURL    string
	ShortBio    string
	Email       string
	City        string
	GithubURL   string
	LinkedinURL string
	WebsiteURL  sql.NullString
}

// UpsertPersonalInfo creates or replaces the singleton personal info row,
// keyed by the fixed identifier.
func (q *Queries) UpsertPersonalInfo(ctx context.Context, arg UpsertPersonalInfoParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO personal_info
			(id, full_name, title, photo_url, short_bio, email, city, github_url, linkedin_url, website_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			full_name = excluded.full_name,
			title = excluded.title,
			photo_url = excluded.photo_url,
			short_bio = excluded.short_bio,
			email = excluded.email,
			city = excluded.city,
			github_url = excluded.github_url,
			linkedin_url = excluded.linkedin_url,
			website_url = excluded.website_url`,
		model.PersonalInfoID, arg.FullName, arg.Title, arg.PhotoURL, arg.ShortBio,
		arg.Email, arg.City, arg.GithubURL, arg.LinkedinURL, arg.WebsiteURL)
	return err
}

// Education -------------------------------------------------------------------

const educationColumns = `id, school, degree, field, start_date, end_date, description, position`

func scanEducation(row interface{ Scan(...any) error }) (model.Education, error) {
	var e model.Education
	err := row.Scan(&e.ID, &e.School, &e.Degree, &e.Field, &e.StartDate,
		&e.EndDate, &e.Description, &e.Position)
	return e, err
}

// ListEducation returns all education entries ordered by position.
func (q *Queries) ListEducation(ctx context.Context) ([]model.Education, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+educationColumns+` FROM education ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetEducationByID returns a single education entry.
func (q *Queries) GetEducationByID(ctx context.Context, id int64) (model.Education, error) {
	return scanEducation(q.db.QueryRowContext(ctx,
		`SELECT `+educationColumns+` FROM education WHERE id = ?`, id))
}

// CreateEducation inserts a new education entry.
func (q *Queries) CreateEducation(ctx context.Context, e model.Education) (model.Education, error) {
	return scanEducation(q.db.QueryRowContext(ctx, `
		INSERT INTO education (school, degree, field, start_date, end_date, description, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+educationColumns,
		e.School, e.Degree, e.Field, e.StartDate, e.EndDate, e.Description, e.Position))
}

// UpdateEducation rewrites an existing education entry.
func (q *Queries) UpdateEducation(ctx context.Context, e model.Education) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE education
		SET school = ?, degree = ?, field = ?, start_date = ?, end_date = ?, description = ?, position = ?
		WHERE id = ?`,
		e.School, e.Degree, e.Field, e.StartDate, e.EndDate, e.Description, e.Position, e.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteEducation removes an education entry.
func (q *Queries) DeleteEducation(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM education WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Skills ----------------------------------------------------------------------

// ListSkillCategories returns all skill categories ordered by position.
func (q *Queries) ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, position FROM skill_categories ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.SkillCategory
	for rows.Next() {
		var c model.SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Position); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetSkillCategoryByID returns a single skill category.
func (q *Queries) GetSkillCategoryByID(ctx context.Context, id int64) (model.SkillCategory, error) {
	var c model.SkillCategory
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, position FROM skill_categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Position)
	return c, err
}

// CreateSkillCategory inserts a new skill category.
func (q *Queries) CreateSkillCategory(ctx context.Context, c model.SkillCategory) (model.SkillCategory, error) {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO skill_categories (name, position) VALUES (?, ?)
		RETURNING id, name, position`,
		c.Name, c.Position).Scan(&c.ID, &c.Name, &c.Position)
	return c, err
}

// UpdateSkillCategory rewrites an existing skill category.
func (q *Queries) UpdateSkillCategory(ctx context.Context, c model.SkillCategory) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE skill_categories SET name = ?, position = ? WHERE id = ?`,
		c.Name, c.Position, c.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteSkillCategory removes a skill category; owned skills cascade.
func (q *Queries) DeleteSkillCategory(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM skill_categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// ListSkills returns all skills ordered by position within their category.
func (q *Queries) ListSkills(ctx context.Context) ([]model.Skill, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, category_id, name, level, position FROM skills ORDER BY category_id, position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Level, &s.Position); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// GetSkillByID returns a single skill.
func (q *Queries) GetSkillByID(ctx context.Context, id int64) (model.Skill, error) {
	var s model.Skill
	err := q.db.QueryRowContext(ctx,
		`SELECT id, category_id, name, level, position FROM skills WHERE id = ?`, id).
		Scan(&s.ID, &s.CategoryID, &s.Name, &s.Level, &s.Position)
	return s, err
}

// CreateSkill inserts a new skill into its category.
func (q *Queries) CreateSkill(ctx context.Context, s model.Skill) (model.Skill, error) {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO skills (category_id, name, level, position) VALUES (?, ?, ?, ?)
		RETURNING id, category_id, name, level, position`,
		s.CategoryID, s.Name, s.Level, s.Position).
		Scan(&s.ID, &s.CategoryID, &s.Name, &s.Level, &s.Position)
	return s, err
}

// UpdateSkill rewrites an existing skill.
func (q *Queries) UpdateSkill(ctx context.Context, s model.Skill) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE skills SET category_id = ?, name = ?, level = ?, position = ? WHERE id = ?`,
		s.CategoryID, s.Name, s.Level, s.Position, s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteSkill removes a skill.
func (q *Queries) DeleteSkill(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Experiences -----------------------------------------------------------------

const experienceColumns = `id, company, role, location, start_date, end_date, description, technologies, position`

func scanExperience(row interface{ Scan(...any) error }) (model.Experience, error) {
	var e model.Experience
	err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Location, &e.StartDate,
		&e.EndDate, &e.Description, &e.Technologies, &e.Position)
	return e, err
}

// ListExperiences returns all experience entries ordered by position.
func (q *Queries) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetExperienceByID returns a single experience entry.
func (q *Queries) GetExperienceByID(ctx context.Context, id int64) (model.Experience, error) {
	return scanExperience(q.db.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id))
}

// CreateExperience inserts a new experience entry.
func (q *Queries) CreateExperience(ctx context.Context, e model.Experience) (model.Experience, error) {
	return scanExperience(q.db.QueryRowContext(ctx, `
		INSERT INTO experiences (company, role, location, start_date, end_date, description, technologies, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+experienceColumns,
		e.Company, e.Role, e.Location, e.StartDate, e.EndDate, e.Description, e.Technologies, e.Position))
}

// UpdateExperience rewrites an existing experience entry.
func (q *Queries) UpdateExperience(ctx context.Context, e model.Experience) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE experiences
		SET company = ?, role = ?, location = ?, start_date = ?, end_date = ?,
		    description = ?, technologies = ?, position = ?
		WHERE id = ?`,
		e.Company, e.Role, e.Location, e.StartDate, e.EndDate, e.Description,
		e.Technologies, e.Position, e.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteExperience removes an experience entry.
func (q *Queries) DeleteExperience(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Projects --------------------------------------------------------------------

const projectColumns = `id, slug, name, short_description, long_description, tech_stack, position`

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.ShortDescription,
		&p.LongDescription, &p.TechStack, &p.Position)
	return p, err
}

// ListProjects returns all projects ordered by position.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProjectByID returns a single project.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	return scanProject(q.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
}

// CountProjectsBySlug returns the number of projects carrying the slug,
// excluding the given id (0 to match all).
func (q *Queries) CountProjectsBySlug(ctx context.Context, slug string, excludeID int64) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE slug = ? AND id != ?`, slug, excludeID).Scan(&n)
	return n, err
}

// CreateProject inserts a new project.
func (q *Queries) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	return scanProject(q.db.QueryRowContext(ctx, `
		INSERT INTO projects (slug, name, short_description, long_description, tech_stack, position)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+projectColumns,
		p.Slug, p.Name, p.ShortDescription, p.LongDescription, p.TechStack, p.Position))
}

// UpdateProject rewrites an existing project.
func (q *Queries) UpdateProject(ctx context.Context, p model.Project) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE projects
		SET slug = ?, name = ?, short_description = ?, long_description = ?, tech_stack = ?, position = ?
		WHERE id = ?`,
		p.Slug, p.Name, p.ShortDescription, p.LongDescription, p.TechStack, p.Position, p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteProject removes a project; owned links and images cascade.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// ListProjectLinks returns all project links ordered by position within their project.
func (q *Queries) ListProjectLinks(ctx context.Context) ([]model.ProjectLink, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, project_id, label, url, position FROM project_links ORDER BY project_id, position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []model.ProjectLink
	for rows.Next() {
		var l model.ProjectLink
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Label, &l.URL, &l.Position); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// CreateProjectLink inserts a new project link.
func (q *Queries) CreateProjectLink(ctx context.Context, l model.ProjectLink) (model.ProjectLink, error) {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO project_links (project_id, label, url, position) VALUES (?, ?, ?, ?)
		RETURNING id, project_id, label, url, position`,
		l.ProjectID, l.Label, l.URL, l.Position).
		Scan(&l.ID, &l.ProjectID, &l.Label, &l.URL, &l.Position)
	return l, err
}

// UpdateProjectLink rewrites an existing project link.
func (q *Queries) UpdateProjectLink(ctx context.Context, l model.ProjectLink) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE project_links SET project_id = ?, label = ?, url = ?, position = ? WHERE id = ?`,
		l.ProjectID, l.Label, l.URL, l.Position, l.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteProjectLink removes a project link.
func (q *Queries) DeleteProjectLink(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM project_links WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// ListProjectImages returns all project images ordered by position within their project.
func (q *Queries) ListProjectImages(ctx context.Context) ([]model.ProjectImage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, project_id, image_url, alt_text, position FROM project_images ORDER BY project_id, position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.ProjectImage
	for rows.Next() {
		var img model.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.AltText, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// CreateProjectImage inserts a new project image.
func (q *Queries) CreateProjectImage(ctx context.Context, img model.ProjectImage) (model.ProjectImage, error) {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO project_images (project_id, image_url, alt_text, position) VALUES (?, ?, ?, ?)
		RETURNING id, project_id, image_url, alt_text, position`,
		img.ProjectID, img.ImageURL, img.AltText, img.Position).
		Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.AltText, &img.Position)
	return img, err
}

// UpdateProjectImage rewrites an existing project image.
func (q *Queries) UpdateProjectImage(ctx context.Context, img model.ProjectImage) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE project_images SET project_id = ?, image_url = ?, alt_text = ?, position = ? WHERE id = ?`,
		img.ProjectID, img.ImageURL, img.AltText, img.Position, img.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteProjectImage removes a project image.
func (q *Queries) DeleteProjectImage(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM project_images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected converts a zero-row update or delete into sql.ErrNoRows
// so callers can distinguish a missing id from success.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
