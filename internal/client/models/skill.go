package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
	"github.com/dmitrijs2005/portfolioadmin/internal/common"
)

// Skill is one entry of the skills collection. Level runs from 1 to 5.
type Skill struct {
	ID       ID      `json:"id,omitempty"`
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	Category *string `json:"category"`
}

// SkillInput is the request body for create and update.
type SkillInput struct {
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	Category *string `json:"category"`
}

// CategoryOrEmpty dereferences Category.
func (s Skill) CategoryOrEmpty() string {
	if s.Category == nil {
		return ""
	}
	return *s.Category
}

// LevelLabel is the human label for Level.
func (s Skill) LevelLabel() string {
	return config.SkillLevelLabel(s.Level)
}

// LevelPercent is Level scaled to 0..100 for progress bars.
func (s Skill) LevelPercent() int {
	return s.Level * 100 / config.MaxSkillLevel
}

// ParseSkillLevel parses the textual level from a form and checks its range.
func ParseSkillLevel(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: "level", Err: common.ErrFieldRequired}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: "level", Err: fmt.Errorf("%w: %q", common.ErrInvalidLevel, raw)}
	}
	if n < config.MinSkillLevel || n > config.MaxSkillLevel {
		return 0, &FieldError{Field: "level", Err: common.ErrInvalidLevel}
	}
	return n, nil
}

// OptionalString returns nil for blank input so the API receives null.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Validate checks the fields the API requires.
func (in SkillInput) Validate() error {
	if err := requireField("name", in.Name); err != nil {
		return err
	}
	if in.Level < config.MinSkillLevel || in.Level > config.MaxSkillLevel {
		return &FieldError{Field: "level", Err: common.ErrInvalidLevel}
	}
	return nil
}

// FindSkill returns the skill with the given id.
func FindSkill(skills []Skill, id string) (Skill, bool) {
	for _, s := range skills {
		if string(s.ID) == id {
			return s, true
		}
	}
	return Skill{}, false
}
