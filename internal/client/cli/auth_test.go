package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/client"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
)

func dashboardData() *fakePortfolio {
	return &fakePortfolio{
		profile:  &models.Profile{FullName: "Jane Doe", Email: "jane@x.io"},
		skills:   []models.Skill{{ID: "s1", Name: "Go", Level: 5}},
		projects: []models.Project{{ID: "p1", Title: "Site"}},
	}
}

func TestCheckAuthState_NoToken(t *testing.T) {
	pf := dashboardData()
	a, out := newTestApp("", newFakeAuth(""), pf)

	a.checkAuthState(context.Background())

	require.False(t, a.isLoggedIn())
	require.Empty(t, pf.calls)
	require.Contains(t, out.String(), "== Login ==")
}

func TestCheckAuthState_ValidTokenLoadsDashboard(t *testing.T) {
	pf := dashboardData()
	a, _ := newTestApp("", newFakeAuth("tok"), pf)

	a.checkAuthState(context.Background())

	require.True(t, a.isLoggedIn())
	require.Equal(t, view.SectionProfile, a.view.Section())
	require.Equal(t, []string{"Profile", "Skills", "Projects"}, pf.calls)
	require.Equal(t, "Jane Doe", a.view.ProfileForm().FullName)
	require.Contains(t, a.view.SkillsPanel(), "[s1] Go")
	require.Contains(t, a.view.ProjectsPanel(), "[p1] Site")
	require.False(t, a.view.Loading())
}

func TestCheckAuthState_ExpiredToken(t *testing.T) {
	auth := newFakeAuth("stale")
	auth.checkErr = &client.APIError{StatusCode: 401, Message: "Could not validate credentials"}
	pf := dashboardData()
	a, _ := newTestApp("", auth, pf)

	a.checkAuthState(context.Background())

	require.False(t, a.isLoggedIn())
	require.Empty(t, auth.token())
	require.Empty(t, pf.calls)
	toast, ok := a.view.Toast()
	require.True(t, ok)
	require.Equal(t, view.Toast{Message: "Session expired. Please login again.", Kind: view.ToastError}, toast)
}

func TestLogin_Success(t *testing.T) {
	stubPassword(t, "secret")
	auth := newFakeAuth("")
	pf := dashboardData()
	a, _ := newTestApp(lines("admin"), auth, pf)

	require.NoError(t, a.Login(context.Background()))

	require.Equal(t, []string{"admin:secret"}, auth.logins)
	require.Equal(t, "tok-admin", auth.token())
	require.True(t, a.isLoggedIn())
	require.Equal(t, []string{"Profile", "Skills", "Projects"}, pf.calls)
	require.Equal(t, "(admin profile)", a.getStatus())
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	stubPassword(t, "wrong")
	auth := newFakeAuth("")
	auth.loginErr = &client.APIError{StatusCode: 401, Message: "Incorrect username or password"}
	pf := dashboardData()
	a, _ := newTestApp(lines("admin"), auth, pf)

	err := a.Login(context.Background())
	require.Error(t, err)

	require.False(t, a.isLoggedIn())
	require.Empty(t, auth.token())
	require.Empty(t, pf.calls)
	require.Equal(t, "Incorrect username or password", a.view.LoginError())
	require.False(t, a.view.Loading())
}

func TestLogin_InputError(t *testing.T) {
	auth := newFakeAuth("")
	a, _ := newTestApp("", auth, dashboardData())

	require.Error(t, a.Login(context.Background()))
	require.Empty(t, auth.logins)
}

func TestLogout_ClearsTokenAndView(t *testing.T) {
	auth := newFakeAuth("tok")
	a, _ := newTestApp("", auth, dashboardData())
	a.checkAuthState(context.Background())
	a.view.SwitchSection(view.SectionSkills)

	require.NoError(t, a.Logout(context.Background()))

	require.Empty(t, auth.token())
	require.False(t, a.isLoggedIn())
	require.Equal(t, view.SectionProfile, a.view.Section())
	require.Empty(t, a.view.SkillsPanel())
	require.Empty(t, a.view.ProfileForm().FullName)
	require.Equal(t, "", a.getStatus())
}

func TestLogout_StoreErrorStillResetsView(t *testing.T) {
	a, _ := newTestApp("", &failingLogoutAuth{fakeAuth: newFakeAuth("tok")}, dashboardData())
	a.view.SwitchView(true)

	require.Error(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
}

type failingLogoutAuth struct{ *fakeAuth }

func (f *failingLogoutAuth) Logout(context.Context) error { return errors.New("disk full") }
