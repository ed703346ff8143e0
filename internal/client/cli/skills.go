package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
	"github.com/dmitrijs2005/portfolioadmin/internal/common"
)

func (a *App) AddSkill(ctx context.Context) error {
	a.focus(view.SectionSkills)
	a.view.ShowSkillModal(nil)
	return a.submitSkill(ctx)
}

// EditSkill re-fetches the skills, opens the form for id and submits it.
func (a *App) EditSkill(ctx context.Context, id string) error {
	a.focus(view.SectionSkills)

	var skill models.Skill
	err := a.withLoading(ctx, func(ctx context.Context) error {
		skills, err := a.portfolio.Skills(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to load skill", err)
		}
		s, ok := models.FindSkill(skills, id)
		if !ok {
			return a.fail(ctx, fmt.Sprintf("Skill %s not found", id), common.ErrNotFound)
		}
		skill = s
		return nil
	})
	if err != nil {
		return err
	}

	a.view.ShowSkillModal(&skill)
	return a.submitSkill(ctx)
}

// submitSkill collects the open skill form and saves it. On failure the form
// stays open.
func (a *App) submitSkill(ctx context.Context) error {
	m := a.view.SkillModal()

	name, err := getWithDefault(a.reader, "Name", m.Name, a.out)
	if err != nil {
		return err
	}
	rawLevel, err := getWithDefault(a.reader, "Level ("+view.SkillLevelHint()+")", m.Level, a.out)
	if err != nil {
		return err
	}
	category, err := getWithDefault(a.reader, "Category (optional)", m.Category, a.out)
	if err != nil {
		return err
	}

	level, err := models.ParseSkillLevel(rawLevel)
	if err != nil {
		return a.fail(ctx, "Failed to save skill", err)
	}
	in := models.SkillInput{
		Name:     strings.TrimSpace(name),
		Level:    level,
		Category: models.OptionalString(category),
	}

	return a.withLoading(ctx, func(ctx context.Context) error {
		if err := a.portfolio.SaveSkill(ctx, m.ID, in); err != nil {
			return a.fail(ctx, "Failed to save skill", err)
		}
		a.view.HideSkillModal()
		skills, err := a.portfolio.Skills(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to save skill", err)
		}
		a.view.RenderSkills(skills)
		a.ok("Skill saved successfully")
		return nil
	})
}

// DeleteSkill asks for confirmation, then deletes and re-renders.
func (a *App) DeleteSkill(ctx context.Context, id string) error {
	yes, err := confirm(a.reader, "Are you sure you want to delete this skill?", a.out)
	if err != nil || !yes {
		return err
	}

	return a.withLoading(ctx, func(ctx context.Context) error {
		if err := a.portfolio.DeleteSkill(ctx, id); err != nil {
			return a.fail(ctx, "Failed to delete skill", err)
		}
		skills, err := a.portfolio.Skills(ctx)
		if err != nil {
			return a.fail(ctx, "Failed to delete skill", err)
		}
		a.view.RenderSkills(skills)
		a.ok("Skill deleted successfully")
		return nil
	})
}

// focus switches to s unless it is already active.
func (a *App) focus(s view.Section) {
	if a.view.Section() != s {
		a.view.SwitchSection(s)
	}
}
