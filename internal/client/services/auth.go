// Package services contains the application services of the admin console.
// This file defines the authentication service: login against the API,
// session checks, logout and the identity shown in the prompt.
package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/client"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and persist it; on failure the
//     stored session is left untouched.
//   - CheckAuth: verify the stored token; any failure clears it.
//   - Logout: forget the stored session.
//   - HasToken: report whether a token is stored.
//   - Subject: best-effort name of the logged-in user.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	CheckAuth(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	HasToken(ctx context.Context) (bool, error)
	Subject(ctx context.Context) string
}

type authService struct {
	client client.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, store session.Store) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.store.Save(ctx, resp.AccessToken, username); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// CheckAuth calls /admin/me with the stored token. The token is cleared when
// the check fails for any reason.
func (a *authService) CheckAuth(ctx context.Context) (*models.User, error) {
	u, err := a.client.Me(ctx)
	if err != nil {
		if cerr := a.store.Clear(ctx); cerr != nil {
			return nil, fmt.Errorf("auth check: %w (clearing session: %v)", err, cerr)
		}
		return nil, fmt.Errorf("auth check: %w", err)
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) HasToken(ctx context.Context) (bool, error) {
	tok, err := a.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

// Subject returns the token's "sub" claim without verifying the signature,
// falling back to the username stored at login.
func (a *authService) Subject(ctx context.Context) string {
	tok, err := a.store.Token(ctx)
	if err != nil || tok == "" {
		return ""
	}
	if sub := tokenSubject(tok); sub != "" {
		return sub
	}
	name, _ := a.store.Username(ctx)
	return name
}

func tokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
