package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/services"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/session"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
	"github.com/dmitrijs2005/portfolioadmin/internal/logging"
)

// ------------ helpers ------------

func newTestApp(input string, auth services.AuthService, pf services.PortfolioService) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		config:    &config.Config{},
		auth:      auth,
		portfolio: pf,
		view:      view.New(&out, time.Hour),
		log:       logging.Discard(),
		reader:    rdr(input),
		out:       &out,
	}, &out
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func strptr(s string) *string { return &s }

// ------------ fake auth ------------

type fakeAuth struct {
	store *session.MemoryStore

	loginErr error
	checkErr error
	logins   []string
}

func newFakeAuth(token string) *fakeAuth {
	return &fakeAuth{store: session.NewMemoryStore(token)}
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) error {
	f.logins = append(f.logins, username+":"+password)
	if f.loginErr != nil {
		return f.loginErr
	}
	return f.store.Save(ctx, "tok-"+username, username)
}

func (f *fakeAuth) CheckAuth(ctx context.Context) (*models.User, error) {
	if f.checkErr != nil {
		_ = f.store.Clear(ctx)
		return nil, f.checkErr
	}
	return &models.User{Username: "admin"}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.store.Clear(ctx) }

func (f *fakeAuth) HasToken(ctx context.Context) (bool, error) {
	tok, err := f.store.Token(ctx)
	return tok != "", err
}

func (f *fakeAuth) Subject(ctx context.Context) string {
	u, _ := f.store.Username(ctx)
	return u
}

func (f *fakeAuth) token() string {
	tok, _ := f.store.Token(context.Background())
	return tok
}

// ------------ fake portfolio ------------

type fakePortfolio struct {
	calls []string

	profile    *models.Profile
	profileErr error
	saveMode   services.ProfileSaveMode
	saveErr    error
	saved      *models.Profile

	skills       []models.Skill
	skillsErr    error
	skillErr     error
	savedSkill   models.SkillInput
	savedSkillID string

	projects     []models.Project
	projectsErr  error
	projectErr   error
	savedProject models.ProjectInput
	savedProjID  string
	deletedID    string
	snapshotErr  error
}

func (f *fakePortfolio) Profile(context.Context) (*models.Profile, error) {
	f.calls = append(f.calls, "Profile")
	return f.profile, f.profileErr
}

func (f *fakePortfolio) SaveProfile(_ context.Context, p *models.Profile) (services.ProfileSaveMode, error) {
	f.calls = append(f.calls, "SaveProfile")
	f.saved = p
	return f.saveMode, f.saveErr
}

func (f *fakePortfolio) Skills(context.Context) ([]models.Skill, error) {
	f.calls = append(f.calls, "Skills")
	return f.skills, f.skillsErr
}

func (f *fakePortfolio) SaveSkill(_ context.Context, id string, in models.SkillInput) error {
	f.calls = append(f.calls, "SaveSkill")
	f.savedSkillID, f.savedSkill = id, in
	return f.skillErr
}

func (f *fakePortfolio) DeleteSkill(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeleteSkill")
	f.deletedID = id
	return f.skillErr
}

func (f *fakePortfolio) Projects(context.Context) ([]models.Project, error) {
	f.calls = append(f.calls, "Projects")
	return f.projects, f.projectsErr
}

func (f *fakePortfolio) SaveProject(_ context.Context, id string, in models.ProjectInput) error {
	f.calls = append(f.calls, "SaveProject")
	f.savedProjID, f.savedProject = id, in
	return f.projectErr
}

func (f *fakePortfolio) DeleteProject(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeleteProject")
	f.deletedID = id
	return f.projectErr
}

func (f *fakePortfolio) Snapshot(context.Context) (*models.Snapshot, error) {
	f.calls = append(f.calls, "Snapshot")
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return &models.Snapshot{Profile: f.profile, Skills: f.skills, Projects: f.projects}, nil
}

// ------------ fake backup ------------

type fakeBackup struct {
	got *models.Snapshot
	key string
	err error
}

func (f *fakeBackup) Upload(_ context.Context, snap *models.Snapshot) (string, error) {
	f.got = snap
	return f.key, f.err
}
