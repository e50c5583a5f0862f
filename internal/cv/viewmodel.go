// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

// Package cv is the repository adapter for the five CV content families.
// It maps stored rows to view models with derived fields, validates admin
// input, and substitutes a bundled seed dataset when the store is empty or
// unreachable.
package cv

import (
	"time"

	"github.com/ikowalczyk/cvfolio/internal/model"
)

// PersonalInfo is the view model of the singleton header section.
type PersonalInfo struct {
	ID          *int64  `json:"id,omitempty"`
	FullName    string  `json:"full_name"`
	Title       string  `json:"title"`
	PhotoURL    string  `json:"photo_url"`
	ShortBio    string  `json:"short_bio"`
	Email       string  `json:"email"`
	City        string  `json:"city"`
	GithubURL   string  `json:"github_url"`
	LinkedinURL string  `json:"linkedin_url"`
	WebsiteURL  *string `json:"website_url,omitempty"`
}

// Education is the view model of a single education entry. Dates are
// serialized as full timestamps; use MonthValue to truncate for edit forms.
type Education struct {
	ID          *int64  `json:"id,omitempty"`
	School      string  `json:"school"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	Description string  `json:"description"`
	Order       int64   `json:"order"`
}

// Skill is the view model of a single skill.
type Skill struct {
	ID    *int64  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Level *string `json:"level,omitempty"`
	Order int64   `json:"order"`
}

// SkillCategory is the view model of a skill category with its owned skills.
type SkillCategory struct {
	ID     *int64  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Order  int64   `json:"order"`
	Skills []Skill `json:"skills"`
}

// Experience is the view model of a work history entry. TechnologiesList is
// derived from Technologies on every read and never stored.
type Experience struct {
	ID               *int64   `json:"id,omitempty"`
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Location         *string  `json:"location,omitempty"`
	StartDate        string   `json:"start_date"`
	EndDate          *string  `json:"end_date,omitempty"`
	Description      string   `json:"description"`
	Technologies     string   `json:"technologies"`
	TechnologiesList []string `json:"technologies_list"`
	Order            int64    `json:"order"`
}

// ProjectLink is the view model of an external project link.
type ProjectLink struct {
	ID    *int64 `json:"id,omitempty"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Order int64  `json:"order"`
}

// ProjectImage is the view model of a project gallery image.
type ProjectImage struct {
	ID       *int64 `json:"id,omitempty"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
	Order    int64  `json:"order"`
}

// Project is the view model of a portfolio entry. TechTags is derived from
// TechStack on every read and never stored.
type Project struct {
	ID               *int64         `json:"id,omitempty"`
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	ShortDescription string         `json:"short_description"`
	LongDescription  string         `json:"long_description"`
	TechStack        string         `json:"tech_stack"`
	TechTags         []string       `json:"tech_tags"`
	Order            int64          `json:"order"`
	Links            []ProjectLink  `json:"links"`
	Images           []ProjectImage `json:"images"`
}

// Data aggregates the five entity families. FromSeed marks content served
// from the bundled seed dataset so callers can display a preview notice.
type Data struct {
	PersonalInfo    *PersonalInfo   `json:"personal_info"`
	Education       []Education     `json:"education"`
	SkillCategories []SkillCategory `json:"skill_categories"`
	Experiences     []Experience    `json:"experiences"`
	Projects        []Project       `json:"projects"`
	FromSeed        bool            `json:"from_seed"`
}

// Row-to-view-model conversions ----------------------------------------------

func personalInfoView(p model.PersonalInfo) *PersonalInfo {
	return &PersonalInfo{
		ID:          &p.ID,
		FullName:    p.FullName,
		Title:       p.Title,
		PhotoURL:    p.PhotoURL,
		ShortBio:    p.ShortBio,
		Email:       p.Email,
		City:        p.City,
		GithubURL:   p.GithubURL,
		LinkedinURL: p.LinkedinURL,
		WebsiteURL:  nullableString(p.WebsiteURL.Valid, p.WebsiteURL.String),
	}
}

func educationView(e model.Education) Education {
	return Education{
		ID:          &e.ID,
		School:      e.School,
		Degree:      e.Degree,
		Field:       e.Field,
		StartDate:   e.StartDate.UTC().Format(time.RFC3339),
		EndDate:     nullableTime(e.EndDate.Valid, e.EndDate.Time),
		Description: e.Description,
		Order:       e.Position,
	}
}

func experienceView(e model.Experience) Experience {
	return Experience{
		ID:               &e.ID,
		Company:          e.Company,
		Role:             e.Role,
		Location:         nullableString(e.Location.Valid, e.Location.String),
		StartDate:        e.StartDate.UTC().Format(time.RFC3339),
		EndDate:          nullableTime(e.EndDate.Valid, e.EndDate.Time),
		Description:      e.Description,
		Technologies:     e.Technologies,
		TechnologiesList: SplitList(e.Technologies),
		Order:            e.Position,
	}
}

func skillView(s model.Skill) Skill {
	return Skill{
		ID:    &s.ID,
		Name:  s.Name,
		Level: nullableString(s.Level.Valid, s.Level.String),
		Order: s.Position,
	}
}

// skillCategoryViews groups skills under their owning categories, keeping
// both levels sorted by position.
func skillCategoryViews(categories []model.SkillCategory, skills []model.Skill) []SkillCategory {
	views := make([]SkillCategory, 0, len(categories))
	for _, c := range categories {
		view := SkillCategory{
			ID:     ptrTo(c.ID),
			Name:   c.Name,
			Order:  c.Position,
			Skills: []Skill{},
		}
		for _, s := range skills {
			if s.CategoryID == c.ID {
				view.Skills = append(view.Skills, skillView(s))
			}
		}
		views = append(views, view)
	}
	return views
}

func projectLinkView(l model.ProjectLink) ProjectLink {
	return ProjectLink{ID: &l.ID, Label: l.Label, URL: l.URL, Order: l.Position}
}

func projectImageView(img model.ProjectImage) ProjectImage {
	return ProjectImage{ID: &img.ID, ImageURL: img.ImageURL, AltText: img.AltText, Order: img.Position}
}

// projectViews attaches owned links and images to their projects.
func projectViews(projects []model.Project, links []model.ProjectLink, images []model.ProjectImage) []Project {
	views := make([]Project, 0, len(projects))
	for _, p := range projects {
		view := Project{
			ID:               ptrTo(p.ID),
			Slug:             p.Slug,
			Name:             p.Name,
			ShortDescription: p.ShortDescription,
			LongDescription:  p.LongDescription,
			TechStack:        p.TechStack,
			TechTags:         SplitList(p.TechStack),
			Order:            p.Position,
			Links:            []ProjectLink{},
			Images:           []ProjectImage{},
		}
		for _, l := range links {
			if l.ProjectID == p.ID {
				view.Links = append(view.Links, projectLinkView(l))
			}
		}
		for _, img := range images {
			if img.ProjectID == p.ID {
				view.Images = append(view.Images, projectImageView(img))
			}
		}
		views = append(views, view)
	}
	return views
}

func nullableString(valid bool, s string) *string {
	if !valid {
		return nil
	}
	return &s
}

func nullableTime(valid bool, t time.Time) *string {
	if !valid {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func ptrTo[T any](v T) *T {
	return &v
}
