package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/client"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
)

// ProfileSaveMode tells which request persisted the profile.
type ProfileSaveMode int

const (
	ProfileUpdated ProfileSaveMode = iota
	ProfileCreated
)

func (m ProfileSaveMode) String() string {
	if m == ProfileCreated {
		return "created"
	}
	return "updated"
}

// PortfolioService manages the profile, skills and projects collections.
type PortfolioService interface {
	Profile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) (ProfileSaveMode, error)

	Skills(ctx context.Context) ([]models.Skill, error)
	SaveSkill(ctx context.Context, id string, in models.SkillInput) error
	DeleteSkill(ctx context.Context, id string) error

	Projects(ctx context.Context) ([]models.Project, error)
	SaveProject(ctx context.Context, id string, in models.ProjectInput) error
	DeleteProject(ctx context.Context, id string) error

	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

type portfolioService struct {
	client client.Client
	now    func() time.Time
}

func NewPortfolioService(c client.Client) PortfolioService {
	return &portfolioService{client: c, now: time.Now}
}

func (s *portfolioService) Profile(ctx context.Context) (*models.Profile, error) {
	return s.client.GetProfile(ctx)
}

// SaveProfile creates the profile when the server has none and updates it
// otherwise. An update rejected as not found falls back to create.
func (s *portfolioService) SaveProfile(ctx context.Context, p *models.Profile) (ProfileSaveMode, error) {
	p.SocialLinks = models.CompactSocialLinks(p.SocialLinks)
	if err := p.Validate(); err != nil {
		return 0, err
	}

	_, err := s.client.GetProfile(ctx)
	switch {
	case client.IsNotFound(err):
		return s.createProfile(ctx, p)
	case err != nil:
		return 0, fmt.Errorf("profile lookup: %w", err)
	}

	if _, err := s.client.UpdateProfile(ctx, p); err != nil {
		if client.IsNotFound(err) {
			return s.createProfile(ctx, p)
		}
		return 0, fmt.Errorf("profile update: %w", err)
	}
	return ProfileUpdated, nil
}

func (s *portfolioService) createProfile(ctx context.Context, p *models.Profile) (ProfileSaveMode, error) {
	if _, err := s.client.CreateProfile(ctx, p); err != nil {
		return 0, fmt.Errorf("profile create: %w", err)
	}
	return ProfileCreated, nil
}

func (s *portfolioService) Skills(ctx context.Context) ([]models.Skill, error) {
	return s.client.ListSkills(ctx)
}

// SaveSkill creates when id is empty and updates otherwise.
func (s *portfolioService) SaveSkill(ctx context.Context, id string, in models.SkillInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	var err error
	if id == "" {
		_, err = s.client.CreateSkill(ctx, in)
	} else {
		_, err = s.client.UpdateSkill(ctx, id, in)
	}
	return err
}

func (s *portfolioService) DeleteSkill(ctx context.Context, id string) error {
	return s.client.DeleteSkill(ctx, id)
}

func (s *portfolioService) Projects(ctx context.Context) ([]models.Project, error) {
	return s.client.ListProjects(ctx)
}

// SaveProject creates when id is empty and updates otherwise.
func (s *portfolioService) SaveProject(ctx context.Context, id string, in models.ProjectInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.TechStack == nil {
		in.TechStack = []string{}
	}
	var err error
	if id == "" {
		_, err = s.client.CreateProject(ctx, in)
	} else {
		_, err = s.client.UpdateProject(ctx, id, in)
	}
	return err
}

func (s *portfolioService) DeleteProject(ctx context.Context, id string) error {
	return s.client.DeleteProject(ctx, id)
}

// Snapshot collects the whole dashboard. A missing profile is recorded as null.
func (s *portfolioService) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{TakenAt: s.now().UTC().Format(time.RFC3339)}

	p, err := s.client.GetProfile(ctx)
	switch {
	case client.IsNotFound(err):
	case err != nil:
		return nil, fmt.Errorf("profile: %w", err)
	default:
		snap.Profile = p
	}

	if snap.Skills, err = s.client.ListSkills(ctx); err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	if snap.Projects, err = s.client.ListProjects(ctx); err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	return snap, nil
}
