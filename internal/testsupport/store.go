package testsupport

import (
	"context"
	"testing"

	"scriptorium/internal/config"
	"scriptorium/internal/registry"
)

// MustOpenStore opens a registry.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *registry.Store {
	t.Helper()

	store, err := registry.Open(cfg)
	if err != nil {
		t.Fatalf("registry.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewRecord creates a manuscript record for tests using the provided store.
func NewRecord(t testing.TB, store *registry.Store, number string, mutate ...func(*registry.Record)) *registry.Record {
	t.Helper()

	rec := &registry.Record{
		Number:     number,
		Stage:      registry.StageReceipt,
		Department: registry.DepartmentRestoration,
		SLADays:    5,
	}
	for _, fn := range mutate {
		fn(rec)
	}
	created, err := store.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return created
}
