package cli

import (
	"context"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/client"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
)

const msgLoadFailed = "Failed to load dashboard data"

// loadDashboard fetches profile, skills and projects in that order. The first
// failure stops the remaining loads and nothing is rendered. A profile the
// server does not have yet loads as an empty form.
func (a *App) loadDashboard(ctx context.Context) error {
	return a.withLoading(ctx, func(ctx context.Context) error {
		a.log.Debug(ctx, "loading dashboard data")

		profile, err := a.portfolio.Profile(ctx)
		if err != nil && !client.IsNotFound(err) {
			a.log.Error(ctx, "dashboard load failed", "step", "profile", "error", err)
			a.view.ShowToast(msgLoadFailed, view.ToastError)
			return err
		}

		skills, err := a.portfolio.Skills(ctx)
		if err != nil {
			a.log.Error(ctx, "dashboard load failed", "step", "skills", "error", err)
			a.view.ShowToast(msgLoadFailed, view.ToastError)
			return err
		}

		projects, err := a.portfolio.Projects(ctx)
		if err != nil {
			a.log.Error(ctx, "dashboard load failed", "step", "projects", "error", err)
			a.view.ShowToast(msgLoadFailed, view.ToastError)
			return err
		}

		a.log.Debug(ctx, "dashboard loaded", "skills", len(skills), "projects", len(projects))
		a.view.RenderProfile(profile)
		a.view.RenderSkills(skills)
		a.view.RenderProjects(projects)
		return nil
	})
}

// Refresh reloads the whole dashboard.
func (a *App) Refresh(ctx context.Context) error {
	return a.loadDashboard(ctx)
}

// ShowSection switches the active dashboard panel.
func (a *App) ShowSection(_ context.Context, s view.Section) error {
	a.view.SwitchSection(s)
	return nil
}

// Backup uploads a snapshot of the dashboard to object storage.
func (a *App) Backup(ctx context.Context) error {
	if a.backup == nil {
		a.view.ShowToast("Backup is not configured (set -b bucket and -e endpoint)", view.ToastError)
		return nil
	}
	return a.withLoading(ctx, func(ctx context.Context) error {
		snap, err := a.portfolio.Snapshot(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to create backup", err)
		}
		key, err := a.backup.Upload(ctx, snap)
		if err != nil {
			return a.fail(ctx, "Failed to upload backup", err)
		}
		a.log.Info(ctx, "backup uploaded", "key", key)
		a.ok("Backup uploaded to " + key)
		return nil
	})
}
