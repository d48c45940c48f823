package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when no session has the requested name or id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists is returned when creating a session whose name is taken.
	ErrSessionExists = errors.New("session already exists")
)

// Session describes a stored timing session.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Entrants  int
}

// Create inserts an empty session.
func (s *Store) Create(ctx context.Context, name string) (*Session, error) {
	ctx = ensureContext(ctx)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("session name is required")
	}
	now := time.Now().UTC()
	session := &Session{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM sessions WHERE name = ?", name).Scan(&count); err != nil {
			return fmt.Errorf("check session name: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrSessionExists, name)
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO sessions (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
			session.ID, session.Name, formatTime(now), formatTime(now),
		)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Ensure returns the named session, creating it when missing.
func (s *Store) Ensure(ctx context.Context, name string) (*Session, bool, error) {
	session, err := s.Get(ctx, name)
	if err == nil {
		return session, false, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, false, err
	}
	session, err = s.Create(ctx, name)
	if err != nil {
		return nil, false, err
	}
	return session, true, nil
}

const sessionColumns = `s.id, s.name, s.created_at, s.updated_at,
    (SELECT COUNT(1) FROM entrants e WHERE e.session_id = s.id)`

// Get returns the session with the given name.
func (s *Store) Get(ctx context.Context, name string) (*Session, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions s WHERE s.name = ?", strings.TrimSpace(name))
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// List returns all sessions, most recently updated first.
func (s *Store) List(ctx context.Context) ([]*Session, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions s ORDER BY s.updated_at DESC, s.name")
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session and everything stored for it.
func (s *Store) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := clearEntrants(ctx, tx, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var (
		session            Session
		created, updatedAt string
	)
	if err := row.Scan(&session.ID, &session.Name, &created, &updatedAt, &session.Entrants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	var err error
	if session.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if session.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &session, nil
}
