package services

import (
	"context"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
)

// fakeClient implements client.Client for unit tests and records calls.
type fakeClient struct {
	calls []string

	loginResp *models.TokenResponse
	loginErr  error
	meErr     error

	profile          *models.Profile
	getProfileErr    error
	createProfileErr error
	updateProfileErr error
	savedProfile     *models.Profile

	skills    []models.Skill
	skillsErr error
	skillErr  error
	lastSkill models.SkillInput

	projects    []models.Project
	projectsErr error
	projectErr  error
	lastProject models.ProjectInput
	lastID      string
}

func (f *fakeClient) Login(_ context.Context, _, _ string) (*models.TokenResponse, error) {
	f.calls = append(f.calls, "Login")
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Me(context.Context) (*models.User, error) {
	f.calls = append(f.calls, "Me")
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &models.User{Username: "admin"}, nil
}

func (f *fakeClient) GetProfile(context.Context) (*models.Profile, error) {
	f.calls = append(f.calls, "GetProfile")
	return f.profile, f.getProfileErr
}

func (f *fakeClient) CreateProfile(_ context.Context, p *models.Profile) (*models.Profile, error) {
	f.calls = append(f.calls, "CreateProfile")
	f.savedProfile = p
	return p, f.createProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, p *models.Profile) (*models.Profile, error) {
	f.calls = append(f.calls, "UpdateProfile")
	f.savedProfile = p
	return p, f.updateProfileErr
}

func (f *fakeClient) ListSkills(context.Context) ([]models.Skill, error) {
	f.calls = append(f.calls, "ListSkills")
	return f.skills, f.skillsErr
}

func (f *fakeClient) CreateSkill(_ context.Context, in models.SkillInput) (*models.Skill, error) {
	f.calls = append(f.calls, "CreateSkill")
	f.lastSkill = in
	return &models.Skill{ID: "new", Name: in.Name, Level: in.Level}, f.skillErr
}

func (f *fakeClient) UpdateSkill(_ context.Context, id string, in models.SkillInput) (*models.Skill, error) {
	f.calls = append(f.calls, "UpdateSkill")
	f.lastID, f.lastSkill = id, in
	return &models.Skill{ID: models.ID(id), Name: in.Name, Level: in.Level}, f.skillErr
}

func (f *fakeClient) DeleteSkill(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeleteSkill")
	f.lastID = id
	return f.skillErr
}

func (f *fakeClient) ListProjects(context.Context) ([]models.Project, error) {
	f.calls = append(f.calls, "ListProjects")
	return f.projects, f.projectsErr
}

func (f *fakeClient) CreateProject(_ context.Context, in models.ProjectInput) (*models.Project, error) {
	f.calls = append(f.calls, "CreateProject")
	f.lastProject = in
	return &models.Project{ID: "new", Title: in.Title}, f.projectErr
}

func (f *fakeClient) UpdateProject(_ context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	f.calls = append(f.calls, "UpdateProject")
	f.lastID, f.lastProject = id, in
	return &models.Project{ID: models.ID(id), Title: in.Title}, f.projectErr
}

func (f *fakeClient) DeleteProject(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeleteProject")
	f.lastID = id
	return f.projectErr
}
