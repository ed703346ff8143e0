// Package session keeps the admin bearer token (and the username it was
// issued for) between console runs.
package session

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/portfolioadmin/internal/dbx"
)

// Store holds at most one session. An empty token means logged out.
type Store interface {
	Token(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	// SetToken replaces the token and leaves the username as is.
	SetToken(ctx context.Context, token string) error
	// Save replaces both token and username.
	Save(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
}

// SQLStore persists the session in the local key/value table.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLStore) Token(ctx context.Context) (string, error) {
	return s.repo(s.db).Get(ctx, config.TokenStorageKey)
}

func (s *SQLStore) Username(ctx context.Context) (string, error) {
	return s.repo(s.db).Get(ctx, config.UsernameStorageKey)
}

func (s *SQLStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.repo(s.db).Delete(ctx, config.TokenStorageKey)
	}
	return s.repo(s.db).Set(ctx, config.TokenStorageKey, token)
}

func (s *SQLStore) Save(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, config.TokenStorageKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, config.UsernameStorageKey, username)
	})
}

func (s *SQLStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, config.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, config.UsernameStorageKey)
	})
}

// MemoryStore keeps the session in memory only.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	username string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Username(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Save(_ context.Context, token, username string) error {
	s.mu.Lock()
	s.token, s.username = token, username
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.token, s.username = "", ""
	s.mu.Unlock()
	return nil
}
