package testsupport

import (
	"context"
	"testing"

	"sctime/internal/config"
	"sctime/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

// NewSession creates a named session for tests using the provided store.
func NewSession(t testing.TB, s *store.Store, name string) *store.Session {
	t.Helper()

	session, err := s.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return session
}
