package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/client"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/session"
)

func TestLogin_StoresTokenOnSuccess(t *testing.T) {
	fc := &fakeClient{loginResp: &models.TokenResponse{AccessToken: "tok-1", TokenType: "bearer"}}
	store := session.NewMemoryStore("")
	svc := NewAuthService(fc, store)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin", "secret"))

	tok, _ := store.Token(ctx)
	user, _ := store.Username(ctx)
	require.Equal(t, "tok-1", tok)
	require.Equal(t, "admin", user)
}

func TestLogin_FailureLeavesStoreUntouched(t *testing.T) {
	fc := &fakeClient{loginErr: &client.APIError{StatusCode: 401, Message: "Incorrect username or password"}}
	store := session.NewMemoryStore("previous")
	svc := NewAuthService(fc, store)
	ctx := context.Background()

	err := svc.Login(ctx, "admin", "wrong")
	require.EqualError(t, err, "Incorrect username or password")

	tok, _ := store.Token(ctx)
	require.Equal(t, "previous", tok)
}

func TestCheckAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("ok keeps token", func(t *testing.T) {
		store := session.NewMemoryStore("tok")
		u, err := NewAuthService(&fakeClient{}, store).CheckAuth(ctx)
		require.NoError(t, err)
		require.Equal(t, "admin", u.Username)
		tok, _ := store.Token(ctx)
		require.Equal(t, "tok", tok)
	})

	t.Run("failure clears token", func(t *testing.T) {
		store := session.NewMemoryStore("tok")
		fc := &fakeClient{meErr: errors.New("connection refused")}
		_, err := NewAuthService(fc, store).CheckAuth(ctx)
		require.Error(t, err)
		tok, _ := store.Token(ctx)
		require.Empty(t, tok)
	})
}

func TestLogoutAndHasToken(t *testing.T) {
	store := session.NewMemoryStore("tok")
	svc := NewAuthService(&fakeClient{}, store)
	ctx := context.Background()

	has, err := svc.HasToken(ctx)
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, svc.Logout(ctx))

	has, err = svc.HasToken(ctx)
	require.NoError(t, err)
	require.False(t, has)
}

func TestSubject(t *testing.T) {
	ctx := context.Background()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "jane"}).
		SignedString([]byte("any-key"))
	require.NoError(t, err)

	require.Equal(t, "jane", NewAuthService(&fakeClient{}, session.NewMemoryStore(signed)).Subject(ctx))

	opaque := session.NewMemoryStore("")
	require.NoError(t, opaque.Save(ctx, "not-a-jwt", "admin"))
	require.Equal(t, "admin", NewAuthService(&fakeClient{}, opaque).Subject(ctx))

	require.Empty(t, NewAuthService(&fakeClient{}, session.NewMemoryStore("")).Subject(ctx))
}
