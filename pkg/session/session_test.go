package session

import (
	"context"
	"errors"
	"testing"
)

type memStore map[string]string

func (m memStore) Get(ctx context.Context, key string) (string, error) {
	return m[key], nil
}

func (m memStore) Set(ctx context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memStore) Delete(ctx context.Context, key string) error {
	delete(m, key)
	return nil
}

type fakeBackend struct {
	loginName   string
	loginErr    error
	registerErr error
	loginCalls  int
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) (string, error) {
	f.loginCalls++
	return f.loginName, f.loginErr
}

func (f *fakeBackend) Register(ctx context.Context, username, email, password string) error {
	return f.registerErr
}

func TestRestoreAbsentSlotIsAnonymous(t *testing.T) {
	auth := New(&fakeBackend{}, memStore{})
	sess := auth.Restore(context.Background())

	if !sess.Anonymous() {
		t.Fatalf("expected anonymous session, got %#v", sess)
	}
}

func TestRestorePersistedUser(t *testing.T) {
	auth := New(&fakeBackend{}, memStore{StorageKey: "alice"})
	sess := auth.Restore(context.Background())

	if sess.Username != "alice" {
		t.Fatalf("restored username = %q, want alice", sess.Username)
	}
}

func TestLoginPersistsAndActivates(t *testing.T) {
	store := memStore{}
	auth := New(&fakeBackend{loginName: "bob"}, store)

	sess, err := auth.Login(context.Background(), "bob", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Username != "bob" || auth.Current().Username != "bob" {
		t.Fatalf("session not activated: %#v", auth.Current())
	}
	if store[StorageKey] != "bob" {
		t.Fatalf("slot = %q, want bob", store[StorageKey])
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	store := memStore{StorageKey: "alice"}
	auth := New(&fakeBackend{loginErr: errors.New("status code: 401")}, store)
	auth.Restore(context.Background())

	_, err := auth.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}
	if auth.Current().Username != "alice" {
		t.Fatalf("session changed on failed login: %#v", auth.Current())
	}
	if store[StorageKey] != "alice" {
		t.Fatalf("slot changed on failed login: %q", store[StorageKey])
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	auth := New(&fakeBackend{}, memStore{})

	if err := auth.Register(context.Background(), "carol", "carol@example.com", "hunter2"); err != nil {
		t.Fatal(err)
	}
	if !auth.Current().Anonymous() {
		t.Fatalf("registration logged the user in: %#v", auth.Current())
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := memStore{StorageKey: "alice"}
	auth := New(&fakeBackend{}, store)
	auth.Restore(context.Background())

	for i := 0; i < 2; i++ {
		if err := auth.Logout(context.Background()); err != nil {
			t.Fatalf("logout #%d failed: %v", i+1, err)
		}
		if !auth.Current().Anonymous() {
			t.Fatalf("session not anonymous after logout #%d", i+1)
		}
		if _, ok := store[StorageKey]; ok {
			t.Fatalf("slot still present after logout #%d", i+1)
		}
	}
}
