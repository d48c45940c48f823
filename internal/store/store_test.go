package store_test

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"sctime/internal/entrant"
	"sctime/internal/store"
	"sctime/internal/testsupport"
)

func TestCreateGetListDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	heat := testsupport.NewSession(t, s, "heat-1")
	if heat.ID == "" {
		t.Fatal("expected generated session id")
	}
	testsupport.NewSession(t, s, "heat-2")

	if _, err := s.Create(ctx, "heat-1"); !errors.Is(err, store.ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}
	if _, err := s.Create(ctx, "   "); err == nil {
		t.Fatal("expected error for blank name")
	}

	got, err := s.Get(ctx, "heat-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != heat.ID || got.Entrants != 0 {
		t.Fatalf("unexpected session %+v", got)
	}

	sessions, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	if err := s.Delete(ctx, heat.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "heat-1"); !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, heat.ID); !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for second delete, got %v", err)
	}
}

func TestEnsureCreatesOnce(t *testing.T) {
	s := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	first, created, err := s.Ensure(ctx, "practice")
	if err != nil || !created {
		t.Fatalf("Ensure first call: created=%v err=%v", created, err)
	}
	second, created, err := s.Ensure(ctx, "practice")
	if err != nil || created {
		t.Fatalf("Ensure second call: created=%v err=%v", created, err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same session, got %s and %s", first.ID, second.ID)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	session := testsupport.NewSession(t, s, "race")

	c := entrant.NewCollection(nil)
	c.Add("Red Team", 7)
	c.Add("Blue Team", 8)
	c.Add("Idle", 9)
	_ = c.AppendLap(0, 83.4)
	_ = c.AppendLap(0, 90)
	_ = c.AppendLap(1, 61.125)

	if err := s.Save(ctx, session.ID, c.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := entrant.NewCollection(nil)
	if err := s.LoadInto(ctx, session.ID, loaded); err != nil {
		t.Fatalf("LoadInto: %v", err)
	}
	want := c.Snapshot()
	got := loaded.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("expected %d entrants, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID() != want[i].ID() || got[i].Name() != want[i].Name() || got[i].Number() != want[i].Number() {
			t.Fatalf("entrant %d mismatch: got %q #%d id %d", i, got[i].Name(), got[i].Number(), got[i].ID())
		}
		if !slices.Equal(got[i].Laps(), want[i].Laps()) {
			t.Fatalf("entrant %d laps: got %v want %v", i, got[i].Laps(), want[i].Laps())
		}
		if !got[i].FirstLapAt().Equal(want[i].FirstLapAt()) {
			t.Fatalf("entrant %d first lap: got %v want %v", i, got[i].FirstLapAt(), want[i].FirstLapAt())
		}
	}

	if stored, err := s.Get(ctx, "race"); err != nil || stored.Entrants != 3 {
		t.Fatalf("expected 3 stored entrants, got %+v (%v)", stored, err)
	}
}

func TestSaveReplacesPreviousContents(t *testing.T) {
	s := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	session := testsupport.NewSession(t, s, "race")

	c := entrant.NewCollection(nil)
	c.Add("A", 1)
	c.Add("B", 2)
	_ = c.AppendLap(1, 60)
	if err := s.Save(ctx, session.ID, c.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := c.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Save(ctx, session.ID, c.Snapshot()); err != nil {
		t.Fatalf("Save after remove: %v", err)
	}

	loaded, err := s.Load(ctx, session.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name() != "B" || !slices.Equal(loaded[0].Laps(), []float64{60}) {
		t.Fatalf("unexpected loaded entrants %v", loaded)
	}
}

func TestSaveAndLoadUnknownSession(t *testing.T) {
	s := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	if err := s.Save(ctx, "missing", nil); !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("Save: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := s.Load(ctx, "missing"); !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("Load: expected ErrSessionNotFound, got %v", err)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = s.Close()

	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = db.Close()

	if _, err := store.Open(cfg); !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestAcquireLockIsExclusive(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	held, err := store.AcquireLock(context.Background(), cfg)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	if _, err := store.AcquireLock(ctx, cfg); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked while held, got %v", err)
	}

	if err := held.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := store.AcquireLock(context.Background(), cfg)
	if err != nil {
		t.Fatalf("AcquireLock after release: %v", err)
	}
	_ = again.Release()
}
