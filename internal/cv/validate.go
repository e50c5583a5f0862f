// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cv

import (
	"fmt"
	"net/mail"
	"net/url"
	"sort"
	"strings"
)

// ValidationError carries field-level detail for rejected input.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("validation failed")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("; %s: %s", k, e.Fields[k]))
	}
	return sb.String()
}

// validator accumulates field errors.
type validator struct {
	fields map[string]string
}

func newValidator() *validator {
	return &validator{fields: make(map[string]string)}
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.fields[field] = "is required"
	}
}

func (v *validator) urlField(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.fields[field] = "must be a valid URL"
	}
}

// imageField accepts site-relative asset paths as well as absolute URLs.
func (v *validator) imageField(field, value string) {
	if value == "" || strings.HasPrefix(value, "/") {
		return
	}
	v.urlField(field, value)
}

func (v *validator) emailField(field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		v.fields[field] = "must be a valid email address"
	}
}

func (v *validator) monthField(field, value string, optional bool) {
	if value == "" {
		if !optional {
			v.fields[field] = "is required"
		}
		return
	}
	if !IsMonthValue(value) {
		v.fields[field] = "must be a YYYY-MM month value"
	}
}

func (v *validator) nonNegative(field string, value int64) {
	if value < 0 {
		v.fields[field] = "must not be negative"
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// Input types -----------------------------------------------------------------

// PersonalInfoInput is the payload of a personal info upsert. An empty
// WebsiteURL means no value.
type PersonalInfoInput struct {
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	PhotoURL    string `json:"photo_url"`
	ShortBio    string `json:"short_bio"`
	Email       string `json:"email"`
	City        string `json:"city"`
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
	WebsiteURL  string `json:"website_url"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in PersonalInfoInput) Validate() error {
	v := newValidator()
	v.required("full_name", in.FullName)
	v.required("title", in.Title)
	v.required("photo_url", in.PhotoURL)
	v.imageField("photo_url", in.PhotoURL)
	v.required("short_bio", in.ShortBio)
	v.emailField("email", in.Email)
	v.required("city", in.City)
	v.required("github_url", in.GithubURL)
	v.urlField("github_url", in.GithubURL)
	v.required("linkedin_url", in.LinkedinURL)
	v.urlField("linkedin_url", in.LinkedinURL)
	v.urlField("website_url", in.WebsiteURL)
	return v.err()
}

// EducationInput is the payload of an education upsert. A present ID updates;
// an absent ID creates. Dates are "YYYY-MM" month values; an empty EndDate
// means ongoing.
type EducationInput struct {
	ID          *int64 `json:"id,omitempty"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Order       int64  `json:"order"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in EducationInput) Validate() error {
	v := newValidator()
	v.required("school", in.School)
	v.required("degree", in.Degree)
	v.required("field", in.Field)
	v.monthField("start_date", in.StartDate, false)
	v.monthField("end_date", in.EndDate, true)
	v.required("description", in.Description)
	v.nonNegative("order", in.Order)
	return v.err()
}

// SkillInput is the payload of a skill upsert. An empty Level means no value.
type SkillInput struct {
	ID         *int64 `json:"id,omitempty"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	Order      int64  `json:"order"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in SkillInput) Validate() error {
	v := newValidator()
	if in.CategoryID <= 0 {
		v.fields["category_id"] = "is required"
	}
	v.required("name", in.Name)
	v.nonNegative("order", in.Order)
	return v.err()
}

// SkillCategoryInput is the payload of a skill category upsert. On create,
// nested Skills are cascade-created under the new category.
type SkillCategoryInput struct {
	ID     *int64       `json:"id,omitempty"`
	Name   string       `json:"name"`
	Order  int64        `json:"order"`
	Skills []SkillInput `json:"skills,omitempty"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in SkillCategoryInput) Validate() error {
	v := newValidator()
	v.required("name", in.Name)
	v.nonNegative("order", in.Order)
	for i, s := range in.Skills {
		if strings.TrimSpace(s.Name) == "" {
			v.fields[fmt.Sprintf("skills[%d].name", i)] = "is required"
		}
	}
	return v.err()
}

// ExperienceInput is the payload of an experience upsert. Empty Location
// means no value; Technologies is a comma-separated free-text field stored
// verbatim.
type ExperienceInput struct {
	ID           *int64 `json:"id,omitempty"`
	Company      string `json:"company"`
	Role         string `json:"role"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Order        int64  `json:"order"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in ExperienceInput) Validate() error {
	v := newValidator()
	v.required("company", in.Company)
	v.required("role", in.Role)
	v.monthField("start_date", in.StartDate, false)
	v.monthField("end_date", in.EndDate, true)
	v.required("description", in.Description)
	v.required("technologies", in.Technologies)
	v.nonNegative("order", in.Order)
	return v.err()
}

// ProjectLinkInput is the payload of a project link upsert.
type ProjectLinkInput struct {
	ID        *int64 `json:"id,omitempty"`
	ProjectID int64  `json:"project_id"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	Order     int64  `json:"order"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in ProjectLinkInput) Validate() error {
	v := newValidator()
	if in.ProjectID <= 0 {
		v.fields["project_id"] = "is required"
	}
	v.required("label", in.Label)
	v.required("url", in.URL)
	v.urlField("url", in.URL)
	v.nonNegative("order", in.Order)
	return v.err()
}

// ProjectImageInput is the payload of a project image upsert.
type ProjectImageInput struct {
	ID        *int64 `json:"id,omitempty"`
	ProjectID int64  `json:"project_id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	Order     int64  `json:"order"`
}

// Validate checks the payload and returns field-level detail on failure.
func (in ProjectImageInput) Validate() error {
	v := newValidator()
	if in.ProjectID <= 0 {
		v.fields["project_id"] = "is required"
	}
	v.required("image_url", in.ImageURL)
	v.imageField("image_url", in.ImageURL)
	v.required("alt_text", in.AltText)
	v.nonNegative("order", in.Order)
	return v.err()
}

// ProjectInput is the payload of a project upsert. An empty Slug on create
// is derived from the name. On create, nested Links and Images are
// cascade-created under the new project (their ProjectID is ignored).
type ProjectInput struct {
	ID               *int64              `json:"id,omitempty"`
	Slug             string              `json:"slug"`
	Name             string              `json:"name"`
	ShortDescription string              `json:"short_description"`
	LongDescription  string              `json:"long_description"`
	TechStack        string              `json:"tech_stack"`
	Order            int64               `json:"order"`
	Links            []ProjectLinkInput  `json:"links,omitempty"`
	Images           []ProjectImageInput `json:"images,omitempty"`
}

// Validate checks the payload and returns field-level detail on failure.
// Slug derivation happens before validation, so an empty slug here is an error.
func (in ProjectInput) Validate() error {
	v := newValidator()
	if !IsValidSlug(in.Slug) {
		v.fields["slug"] = "must contain only lowercase letters, digits, and hyphens"
	}
	v.required("name", in.Name)
	v.required("short_description", in.ShortDescription)
	v.required("long_description", in.LongDescription)
	v.required("tech_stack", in.TechStack)
	v.nonNegative("order", in.Order)
	for i, l := range in.Links {
		if strings.TrimSpace(l.URL) == "" {
			v.fields[fmt.Sprintf("links[%d].url", i)] = "is required"
		}
	}
	for i, img := range in.Images {
		if strings.TrimSpace(img.ImageURL) == "" {
			v.fields[fmt.Sprintf("images[%d].image_url", i)] = "is required"
		}
	}
	return v.err()
}
