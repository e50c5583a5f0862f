// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cv

import (
	"context"
	"fmt"
)

// SeedData returns the bundled default CV content, served whenever the live
// store holds no content at all (or is unreachable). Derived fields are
// computed the same way as for live data so presentation code need not
// branch on the source.
func SeedData() Data {
	data := Data{
		PersonalInfo: &PersonalInfo{
			FullName: "Jordan Carter",
			Title:    "Automation & Software Engineer",
			PhotoURL: "/images/igor-profile.jpeg",
			ShortBio: "Engineer crafting resilient automation platforms, developer tooling, " +
				"and cloud-native services that keep distributed teams shipping with confidence.",
			Email:       "hello@sample.dev",
			City:        "Lisbon, Portugal",
			GithubURL:   "https://github.com/sample",
			LinkedinURL: "https://www.linkedin.com/in/jordan-carter-swe",
			WebsiteURL:  ptrTo("https://sample.dev"),
		},
		Education: []Education{
			{
				School:    "Georgia Institute of Technology",
				Degree:    "M.S. Computer Science",
				Field:     "Interactive Intelligence",
				StartDate: "2016-08-01",
				EndDate:   ptrTo("2018-05-01"),
				Description: "Research focused on automation safety, machine perception, and " +
					"distributed control systems for industrial robotics.",
				Order: 1,
			},
			{
				School:    "University of Tennessee",
				Degree:    "B.S. Mechanical Engineering",
				Field:     "Automation & Controls",
				StartDate: "2012-08-01",
				EndDate:   ptrTo("2016-05-01"),
				Description: "Graduated magna cum laude with a concentration in manufacturing " +
					"systems and embedded software design.",
				Order: 2,
			},
		},
		SkillCategories: []SkillCategory{
			{
				Name:  "Programming",
				Order: 1,
				Skills: []Skill{
					{Name: "TypeScript", Level: ptrTo("Advanced"), Order: 1},
					{Name: "Node.js", Level: ptrTo("Advanced"), Order: 2},
					{Name: "Python", Level: ptrTo("Intermediate"), Order: 3},
					{Name: "Go", Level: ptrTo("Intermediate"), Order: 4},
				},
			},
			{
				Name:  "Automation & DevOps",
				Order: 2,
				Skills: []Skill{
					{Name: "PLC/SCADA", Order: 1},
					{Name: "Kubernetes", Order: 2},
					{Name: "CI/CD (GitHub Actions, Argo)", Order: 3},
					{Name: "Observability", Order: 4},
				},
			},
			{
				Name:  "Leadership & Collaboration",
				Order: 3,
				Skills: []Skill{
					{Name: "Technical Strategy", Order: 1},
					{Name: "Mentorship", Order: 2},
					{Name: "Stakeholder Alignment", Order: 3},
					{Name: "Remote Facilitation", Order: 4},
				},
			},
		},
		Experiences: []Experience{
			{
				Company:   "Northwind Automation",
				Role:      "Principal Automation Engineer",
				Location:  ptrTo("Remote"),
				StartDate: "2021-01-01",
				Description: "Architected telemetry pipelines and developer platforms supporting " +
					"multi-region automation fleets while mentoring distributed squads.",
				Technologies: "TypeScript, GraphQL, PostgreSQL, Azure",
				Order:        1,
			},
			{
				Company:   "Atlas Robotics",
				Role:      "Senior Software & Controls Engineer",
				Location:  ptrTo("Berlin, Germany"),
				StartDate: "2018-06-01",
				EndDate:   ptrTo("2020-12-01"),
				Description: "Implemented motion-planning services powering autonomous warehouse " +
					"robots across Europe and unified PLC/ROS/cloud services.",
				Technologies: "Python, ROS, Kubernetes, Kafka",
				Order:        2,
			},
		},
		Projects: []Project{
			{
				Slug:             "ops-canvas",
				Name:             "OpsCanvas",
				ShortDescription: "Incident-ready runbook builder connected to live telemetry.",
				LongDescription: "OpsCanvas provides a collaborative space to sketch operational " +
					"workflows, attach live dashboards, and ship guardrails directly into " +
					"production. Teams orchestrate cloud automation with ready-made blueprints " +
					"and instantly roll back if telemetry drifts.",
				TechStack: "Next.js, Tailwind CSS, WebSockets, Redis",
				Order:     1,
				Links: []ProjectLink{
					{Label: "Live Demo", URL: "https://opscanvas.dev", Order: 1},
					{Label: "GitHub", URL: "https://github.com/sample/opscanvas", Order: 2},
				},
				Images: []ProjectImage{
					{ImageURL: "/images/ops-canvas-1.svg", AltText: "OpsCanvas dashboard", Order: 1},
					{ImageURL: "/images/ops-canvas-2.svg", AltText: "Automation workflow", Order: 2},
				},
			},
			{
				Slug:             "telemetry-kit",
				Name:             "Telemetry Kit",
				ShortDescription: "Unified toolkit for instrumenting automation cells.",
				LongDescription: "Telemetry Kit standardizes how robotics teams capture signals " +
					"from PLCs, IIoT gateways, and cloud services. It ships adapters, schema " +
					"validators, and ready-to-use dashboards so insights arrive in minutes, " +
					"not weeks.",
				TechStack: "TypeScript, gRPC, Docker, Prometheus",
				Order:     2,
				Links: []ProjectLink{
					{Label: "Repository", URL: "https://github.com/sample/telemetry-kit", Order: 1},
				},
				Images: []ProjectImage{
					{ImageURL: "/images/telemetry-kit.svg", AltText: "Metrics grid", Order: 1},
				},
			},
		},
		FromSeed: true,
	}

	// Derived fields are computed here, not stored in the literal, so seed
	// and live data go through the same code path.
	for i := range data.Experiences {
		data.Experiences[i].TechnologiesList = SplitList(data.Experiences[i].Technologies)
	}
	for i := range data.Projects {
		data.Projects[i].TechTags = SplitList(data.Projects[i].TechStack)
	}

	return data
}

// SeedStore writes the bundled seed dataset into an empty store so a fresh
// deployment starts with editable content instead of the read-only seed
// fallback. It reports whether anything was written; a store with any
// existing content is left untouched.
func (r *Repository) SeedStore(ctx context.Context) (bool, error) {
	data, err := r.Data(ctx, DataOptions{DisableSeedFallback: true})
	if err != nil {
		return false, err
	}
	if data.PersonalInfo != nil || len(data.Education) > 0 || len(data.SkillCategories) > 0 ||
		len(data.Experiences) > 0 || len(data.Projects) > 0 {
		return false, nil
	}

	seed := SeedData()

	pi := seed.PersonalInfo
	err = r.SavePersonalInfo(ctx, PersonalInfoInput{
		FullName:    pi.FullName,
		Title:       pi.Title,
		PhotoURL:    pi.PhotoURL,
		ShortBio:    pi.ShortBio,
		Email:       pi.Email,
		City:        pi.City,
		GithubURL:   pi.GithubURL,
		LinkedinURL: pi.LinkedinURL,
		WebsiteURL:  deref(pi.WebsiteURL),
	})
	if err != nil {
		return false, fmt.Errorf("seeding personal info: %w", err)
	}

	for _, e := range seed.Education {
		_, err := r.SaveEducation(ctx, EducationInput{
			School:      e.School,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   monthOf(e.StartDate),
			EndDate:     monthOf(deref(e.EndDate)),
			Description: e.Description,
			Order:       e.Order,
		})
		if err != nil {
			return false, fmt.Errorf("seeding education: %w", err)
		}
	}

	for _, c := range seed.SkillCategories {
		skills := make([]SkillInput, 0, len(c.Skills))
		for _, s := range c.Skills {
			skills = append(skills, SkillInput{Name: s.Name, Level: deref(s.Level), Order: s.Order})
		}
		_, err := r.SaveSkillCategory(ctx, SkillCategoryInput{Name: c.Name, Order: c.Order, Skills: skills})
		if err != nil {
			return false, fmt.Errorf("seeding skills: %w", err)
		}
	}

	for _, e := range seed.Experiences {
		_, err := r.SaveExperience(ctx, ExperienceInput{
			Company:      e.Company,
			Role:         e.Role,
			Location:     deref(e.Location),
			StartDate:    monthOf(e.StartDate),
			EndDate:      monthOf(deref(e.EndDate)),
			Description:  e.Description,
			Technologies: e.Technologies,
			Order:        e.Order,
		})
		if err != nil {
			return false, fmt.Errorf("seeding experiences: %w", err)
		}
	}

	for _, p := range seed.Projects {
		links := make([]ProjectLinkInput, 0, len(p.Links))
		for _, l := range p.Links {
			links = append(links, ProjectLinkInput{Label: l.Label, URL: l.URL, Order: l.Order})
		}
		images := make([]ProjectImageInput, 0, len(p.Images))
		for _, img := range p.Images {
			images = append(images, ProjectImageInput{ImageURL: img.ImageURL, AltText: img.AltText, Order: img.Order})
		}
		_, err := r.SaveProject(ctx, ProjectInput{
			Slug:             p.Slug,
			Name:             p.Name,
			ShortDescription: p.ShortDescription,
			LongDescription:  p.LongDescription,
			TechStack:        p.TechStack,
			Order:            p.Order,
			Links:            links,
			Images:           images,
		})
		if err != nil {
			return false, fmt.Errorf("seeding projects: %w", err)
		}
	}

	return true, nil
}

// monthOf truncates a seed date string to its "YYYY-MM" prefix.
func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
