// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package model

import (
	"database/sql"
	"time"
)

// PersonalInfoID is the fixed identifier of the singleton personal info row.
const PersonalInfoID = 1

// PersonalInfo is the singleton header section of the CV.
type PersonalInfo struct {
	ID          int64
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

// Education is a single education entry. Dates carry month precision:
// they are always the first day of a UTC month.
type Education struct {
	ID          int64
	School      string
	Degree      string
	Field       string
	StartDate   time.Time
	EndDate     sql.NullTime
	Description string
	Position    int64
}

// SkillCategory groups skills; skills are owned exclusively by their category.
type SkillCategory struct {
	ID       int64
	Name     string
	Position int64
}

// Skill is a single entry within a skill category.
type Skill struct {
	ID         int64
	CategoryID int64
	Name       string
	Level      sql.NullString
	Position   int64
}

// Experience is a single work history entry.
type Experience struct {
	ID           int64
	Company      string
	Role         string
	Location     sql.NullString
	StartDate    time.Time
	EndDate      sql.NullTime
	Description  string
	Technologies string
	Position     int64
}

// Project is a portfolio entry; links and images are owned exclusively by it.
type Project struct {
	ID               int64
	Slug             string
	Name             string
	ShortDescription string
	LongDescription  string
	TechStack        string
	Position         int64
}

// ProjectLink is an external link attached to a project.
type ProjectLink struct {
	ID        int64
	ProjectID int64
	Label     string
	URL       string
	Position  int64
}

// ProjectImage is a gallery image attached to a project.
type ProjectImage struct {
	ID        int64
	ProjectID int64
	ImageURL  string
	AltText   string
	Position  int64
}
