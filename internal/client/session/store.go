// Package session owns the client's authenticated identity: the bearer
// token, the role and user id derived from it, and the tenant the requests
// are scoped to.
//
// There is one Store per running client. Each transition commits in a fixed
// order — durable storage first, then the in-memory session, then the shared
// request context — so a request issued concurrently with a transition never
// observes persisted state that is ahead of what it stamps onto the wire.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/smartuniversity/campusctl/internal/client/authctx"
	"github.com/smartuniversity/campusctl/internal/client/models"
	"github.com/smartuniversity/campusctl/internal/client/repositories/metadata"
	"github.com/smartuniversity/campusctl/internal/client/token"
	"github.com/smartuniversity/campusctl/internal/dbx"
	"github.com/smartuniversity/campusctl/internal/logging"
)

// Keys in the local metadata store. Absence of keyToken means "logged out".
const (
	keyToken  = "token"
	keyTenant = "tenant"
)

// Session is a snapshot of the identity state. Zero values mean "absent":
// Token is empty exactly when the client is unauthenticated.
type Session struct {
	Token  string
	Role   models.Role
	Tenant string
	UserID string
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Store is the single writer of both the persisted session keys and the
// shared request context.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	auth *authctx.Context
	log  logging.Logger
	cur  Session
}

func NewStore(db *sql.DB, auth *authctx.Context, log logging.Logger) *Store {
	return &Store{db: db, auth: auth, log: log.With("component", "session")}
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Restore loads a previously persisted session, if any. Without a persisted
// token the session stays unauthenticated and the request context keeps its
// default. Tenant precedence: persisted tenant, then tenant claim, then
// absent. A token that no longer decodes still restores as a bare token;
// role and user id simply stay absent.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo := metadata.NewSQLiteRepository(s.db)

	rawToken, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if len(rawToken) == 0 {
		return nil
	}
	rawTenant, err := repo.Get(ctx, keyTenant)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	next := sessionFromToken(string(rawToken), string(rawTenant))
	s.commit(next)
	s.log.Info(ctx, "session restored", "tenant", next.Tenant, "role", string(next.Role))
	return nil
}

// Login replaces the session wholesale with the given token. The tenant
// resolves by precedence: explicitTenant, then the token's tenant claim,
// then absent. The token is persisted unconditionally; the tenant only when
// it resolved to a concrete value.
func (s *Store) Login(ctx context.Context, bearerToken, explicitTenant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := sessionFromToken(bearerToken, explicitTenant)

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(next.Token)); err != nil {
			return err
		}
		if next.Tenant != "" {
			return repo.Set(ctx, keyTenant, []byte(next.Tenant))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.commit(next)
	s.log.Info(ctx, "logged in", "tenant", next.Tenant, "role", string(next.Role))
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyTenant)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.commit(Session{})
	s.log.Info(ctx, "logged out")
	return nil
}

// commit updates the in-memory session and then the request context, in that
// order. Callers hold s.mu and have already persisted.
func (s *Store) commit(next Session) {
	s.cur = next
	s.auth.Set(next.Token, next.Tenant)
}

// sessionFromToken derives a session from a bearer token and a tenant that
// takes precedence over the token's own tenant claim.
func sessionFromToken(bearerToken, preferredTenant string) Session {
	next := Session{Token: bearerToken, Tenant: preferredTenant}
	claims := token.Decode(bearerToken)
	if claims == nil {
		return next
	}
	next.Role = models.ParseRole(claims.Role)
	next.UserID = claims.Subject
	if next.Tenant == "" {
		next.Tenant = claims.Tenant
	}
	return next
}
