package client

import (
	"context"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
)

// Client is the portfolio admin REST API contract.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
	Me(ctx context.Context) (*models.User, error)

	GetProfile(ctx context.Context) (*models.Profile, error)
	CreateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)

	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, in models.SkillInput) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id string, in models.SkillInput) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// TokenSource yields the bearer token for authenticated calls.
// An empty token means the caller is not logged in.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed value.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }
