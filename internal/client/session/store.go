// Package session persists the client's credentials between runs: the opaque
// access token and the cached profile of the signed-in user. Any component
// that needs them gets the Store injected explicitly.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/payrollview/internal/common"
	"github.com/dmitrijs2005/payrollview/internal/dbx"
)

// Store is the credential store shared by the HTTP client and the front-ends.
type Store interface {
	// Token returns the stored token, or "" when there is none.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	// User returns the cached profile, or nil when there is none.
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, u *models.User) error
	// Save stores token and profile atomically. A nil user removes the cached one.
	Save(ctx context.Context, token string, u *models.User) error
	// Clear removes both the token and the cached profile.
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type sqlStore struct {
	db *sql.DB
}

// NewStore returns a Store over a migrated SQLite database.
func NewStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *sqlStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, common.SessionTokenKey)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *sqlStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.repo().Delete(ctx, common.SessionTokenKey)
	}
	return s.repo().Set(ctx, common.SessionTokenKey, []byte(token))
}

func (s *sqlStore) User(ctx context.Context) (*models.User, error) {
	v, err := s.repo().Get(ctx, common.SessionUserKey)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && len(v) == 0) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}
	return &u, nil
}

func (s *sqlStore) SetUser(ctx context.Context, u *models.User) error {
	return setUser(ctx, s.repo(), u)
}

func setUser(ctx context.Context, repo metadata.Repository, u *models.User) error {
	if u == nil {
		return repo.Delete(ctx, common.SessionUserKey)
	}
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return repo.Set(ctx, common.SessionUserKey, b)
}

func (s *sqlStore) Save(ctx context.Context, token string, u *models.User) error {
	if token == "" {
		return common.ErrNoToken
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(token)); err != nil {
			return err
		}
		return setUser(ctx, repo, u)
	})
}

func (s *sqlStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.SessionTokenKey, common.SessionUserKey)
	})
}

func (s *sqlStore) IsAuthenticated(ctx context.Context) bool {
	t, err := s.Token(ctx)
	return err == nil && t != ""
}

// TokenExpiry reports the exp claim when token happens to be a JWT. The
// signature is not verified; the value is informational only.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
