// Package session tracks the currently identified user across runs.
package session

import (
	"context"
	"fmt"

	"github.com/travelmap/pinmap/internal/utils"
)

// StorageKey is the single persisted slot holding the logged-in username.
const StorageKey = "user"

// Session is the identified user, or anonymous when the username is empty.
type Session struct {
	Username string
}

func (s Session) Anonymous() bool {
	return s.Username == ""
}

// Store is the key-value slot the session survives in between runs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend is the slice of the REST API the auth flow needs.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
}

// Auth owns the active session, restoring it from storage at startup and
// updating it on login/logout.
type Auth struct {
	backend Backend
	store   Store
	current Session
}

func New(backend Backend, store Store) *Auth {
	return &Auth{backend: backend, store: store}
}

// Current returns the active session.
func (a *Auth) Current() Session {
	return a.current
}

// Restore reads the persisted slot. An absent slot means anonymous; a store
// read error degrades to anonymous as well, logged only.
func (a *Auth) Restore(ctx context.Context) Session {
	username, err := a.store.Get(ctx, StorageKey)
	if err != nil {
		utils.Log.WithError(err).Warn("failed to restore session")
		a.current = Session{}
		return a.current
	}
	a.current = Session{Username: username}
	return a.current
}

// Login authenticates against the backend. On success the returned username
// is persisted and becomes the active session; on failure the session is
// left unchanged.
func (a *Auth) Login(ctx context.Context, username, password string) (Session, error) {
	name, err := a.backend.Login(ctx, username, password)
	if err != nil {
		return a.current, fmt.Errorf("login failed: %w", err)
	}

	if err := a.store.Set(ctx, StorageKey, name); err != nil {
		utils.Log.WithError(err).Warn("failed to persist session")
	}
	a.current = Session{Username: name}
	return a.current, nil
}

// Register creates a new account. A successful registration does not log
// the user in; they log in separately.
func (a *Auth) Register(ctx context.Context, username, email, password string) error {
	if err := a.backend.Register(ctx, username, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout clears the persisted slot and the active session. No backend call
// is involved, and logging out while anonymous is a no-op.
func (a *Auth) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, StorageKey); err != nil {
		return err
	}
	a.current = Session{}
	return nil
}
