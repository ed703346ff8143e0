package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
	"github.com/dmitrijs2005/portfolioadmin/internal/common"
)

func (a *App) AddProject(ctx context.Context) error {
	a.focus(view.SectionProjects)
	a.view.ShowProjectModal(nil)
	return a.submitProject(ctx)
}

// EditProject re-fetches the projects, opens the form for id and submits it.
func (a *App) EditProject(ctx context.Context, id string) error {
	a.focus(view.SectionProjects)

	var project models.Project
	err := a.withLoading(ctx, func(ctx context.Context) error {
		projects, err := a.portfolio.Projects(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to load project", err)
		}
		p, ok := models.FindProject(projects, id)
		if !ok {
			return a.fail(ctx, fmt.Sprintf("Project %s not found", id), common.ErrNotFound)
		}
		project = p
		return nil
	})
	if err != nil {
		return err
	}

	a.view.ShowProjectModal(&project)
	return a.submitProject(ctx)
}

func (a *App) submitProject(ctx context.Context) error {
	m := a.view.ProjectModal()

	fields := []struct {
		label string
		value *string
	}{
		{"Title", &m.ProjectTitle},
		{"Description", &m.Description},
		{"Status", &m.Status},
		{"GitHub URL", &m.GitHubURL},
		{"Docs URL", &m.DocsURL},
		{"Live URL (optional)", &m.LiveURL},
		{"Tech stack (comma separated)", &m.TechStack},
	}
	for _, f := range fields {
		v, err := getWithDefault(a.reader, f.label, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}

	in := models.ProjectInput{
		Title:       strings.TrimSpace(m.ProjectTitle),
		Description: strings.TrimSpace(m.Description),
		Status:      strings.TrimSpace(m.Status),
		GitHubURL:   strings.TrimSpace(m.GitHubURL),
		DocsURL:     strings.TrimSpace(m.DocsURL),
		LiveURL:     models.OptionalString(m.LiveURL),
		TechStack:   models.ParseTechStack(m.TechStack),
	}

	return a.withLoading(ctx, func(ctx context.Context) error {
		if err := a.portfolio.SaveProject(ctx, m.ID, in); err != nil {
			return a.fail(ctx, "Failed to save project", err)
		}
		a.view.HideProjectModal()
		projects, err := a.portfolio.Projects(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to save project", err)
		}
		a.view.RenderProjects(projects)
		a.ok("Project saved successfully")
		return nil
	})
}

func (a *App) DeleteProject(ctx context.Context, id string) error {
	yes, err := confirm(a.reader, "Are you sure you want to delete this project?", a.out)
	if err != nil || !yes {
		return err
	}

	return a.withLoading(ctx, func(ctx context.Context) error {
		if err := a.portfolio.DeleteProject(ctx, id); err != nil {
			return a.fail(ctx, "Failed to delete project", err)
		}
		projects, err := a.portfolio.Projects(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to delete project", err)
		}
		a.view.RenderProjects(projects)
		a.ok("Project deleted successfully")
		return nil
	})
}
