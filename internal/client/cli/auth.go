package cli

import (
	"context"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
	"github.com/dmitrijs2005/portfolioadmin/internal/common"
)

// getSimpleText, getWithDefault, getMultiline, getPassword and confirm are
// indirections used to facilitate testing.
var (
	getSimpleText  = GetSimpleText
	getWithDefault = GetWithDefault
	getMultiline   = GetMultiline
	getPassword    = GetPassword
	confirm        = Confirm
)

// checkAuthState decides the first screen: the login view without a stored
// token, the dashboard when the stored token still works.
func (a *App) checkAuthState(ctx context.Context) {
	has, err := a.auth.HasToken(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session failed", "error", err)
	}
	if !has {
		a.view.SwitchView(false)
		return
	}

	if _, err := a.auth.CheckAuth(ctx); err != nil {
		a.log.Warn(ctx, "auth check failed", "error", err)
		a.view.SwitchView(false)
		a.view.ShowToast("Session expired. Please login again.", view.ToastError)
		return
	}
	a.log.Info(ctx, "auth check passed")
	a.enterDashboard(ctx)
}

func (a *App) enterDashboard(ctx context.Context) {
	a.view.SwitchView(true)
	a.view.SwitchSection(view.SectionProfile)
	_ = a.loadDashboard(ctx)
}

// Login prompts for credentials and authenticates. A failure is shown next
// to the login form and leaves the stored session as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.withLoading(ctx, func(ctx context.Context) error {
		return a.auth.Login(ctx, username, string(password))
	})
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		a.view.ShowLoginError(err.Error())
		return err
	}

	a.log.Info(ctx, "login successful", "username", username)
	a.enterDashboard(ctx)
	return nil
}

// Logout forgets the session and returns to a blank login screen.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	if err != nil {
		a.log.Error(ctx, "clearing session failed", "error", err)
	}
	a.view.Reset()
	a.view.SwitchView(false)
	return err
}
