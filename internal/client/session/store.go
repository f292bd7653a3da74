// Package session holds the authenticated user for the lifetime of the
// process and mirrors every identity change to the local database, so a
// restart resumes in the same state. It is also the single writer of the
// shared bearer-credential holder used by the API clients.
package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/models"
	"github.com/mertsakar/wantmart/internal/client/repositories/state"
	"github.com/mertsakar/wantmart/internal/dbx"
)

const (
	keyUser          = "user"
	keyPendingUserID = "pending_user_id"
)

// Store is the process-wide session holder. Construct it once in the app
// and inject it wherever the current identity is needed; there is no
// package-level singleton.
type Store struct {
	db      *sql.DB
	tokens  *api.TokenHolder
	user    *models.User
	pending string
	loading bool
}

func NewStore(db *sql.DB, tokens *api.TokenHolder) *Store {
	return &Store{db: db, tokens: tokens}
}

func (s *Store) repo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// User returns the current identity, or nil when unauthenticated.
func (s *Store) User() *models.User { return s.user }

// PendingUserID returns the user id awaiting email verification, if any.
func (s *Store) PendingUserID() string { return s.pending }

func (s *Store) SetLoading(v bool) { s.loading = v }
func (s *Store) Loading() bool     { return s.loading }

// SetUser replaces the current identity. A non-nil user is mirrored to
// durable storage and its credential propagated into the token holder;
// nil clears the stored entry and revokes the credential.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	s.user = u
	if u == nil {
		s.tokens.Clear()
		return s.repo().Delete(ctx, keyUser)
	}

	s.tokens.Set(u.Token)
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.repo().Set(ctx, keyUser, data)
}

// Logout clears the identity, revokes the credential, and forgets any
// registration still awaiting verification.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.SetUser(ctx, nil); err != nil {
		return err
	}
	return s.SetPendingUserID(ctx, "")
}

// SetPendingUserID records (or, with an empty id, forgets) the user id of
// a registration awaiting email verification.
func (s *Store) SetPendingUserID(ctx context.Context, id string) error {
	s.pending = id
	if id == "" {
		return s.repo().Delete(ctx, keyPendingUserID)
	}
	return s.repo().Set(ctx, keyPendingUserID, []byte(id))
}

// CompleteVerification installs the verified user and forgets the pending
// id in a single transaction, so a crash in between cannot leave both set.
func (s *Store) CompleteVerification(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyUser, data); err != nil {
			return err
		}
		return repo.Delete(ctx, keyPendingUserID)
	})
	if err != nil {
		return err
	}

	s.user = u
	s.pending = ""
	s.tokens.Set(u.Token)
	return nil
}

// Restore loads the persisted session on process start. A stored user
// that fails to parse is deleted and ignored: the client simply starts
// unauthenticated. Only storage-level failures are returned.
func (s *Store) Restore(ctx context.Context) error {
	repo := s.repo()

	data, err := repo.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		var u models.User
		if err := json.Unmarshal(data, &u); err != nil {
			_ = repo.Delete(ctx, keyUser)
		} else {
			s.user = &u
			s.tokens.Set(u.Token)
		}
	}

	pending, err := repo.Get(ctx, keyPendingUserID)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		s.pending = string(pending)
	}
	return nil
}
