// Package session owns the bearer-token lifecycle: set on login, read on every
// outgoing request, cleared on logout or any 401 response.
package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oncall-app/oncall-cli/internal/client/repositories/metadata"
	"github.com/oncall-app/oncall-cli/internal/common"
	"github.com/oncall-app/oncall-cli/internal/dbx"
)

// Store persists the session token (and the civil ID of the patient it belongs
// to) in the local metadata table. At most one session exists per installation;
// writes are last-write-wins.
//
// The token is stored in plaintext. That matches the storage model this client
// inherited; the local database file is the trust boundary.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Token returns the persisted bearer token, or "" when no session exists.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save overwrites the persisted token. Storage errors propagate to the caller.
func (s *Store) Save(ctx context.Context, token string) error {
	return s.repo().Set(ctx, common.TokenStorageKey, []byte(token))
}

// SaveCivilID records which patient the current session belongs to.
func (s *Store) SaveCivilID(ctx context.Context, civilID string) error {
	return s.repo().Set(ctx, common.CivilIDStorageKey, []byte(civilID))
}

// CivilID returns the identifier of the last logged-in patient, or "".
func (s *Store) CivilID(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, common.CivilIDStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Clear removes the session. Idempotent: clearing an absent session succeeds.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.CivilIDStorageKey)
	})
}

// ExpiresAt reports the stored token's JWT expiry for display purposes.
// The token is treated as opaque everywhere else; if it is not a JWT or
// carries no exp claim, a zero time is returned with no error.
func (s *Store) ExpiresAt(ctx context.Context) (time.Time, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if token == "" {
		return time.Time{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
