package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sctime/internal/entrant"
)

// Save replaces the stored entrants of a session with snapshot. Positions are
// taken from the snapshot order, which is identity order for a collection.
func (s *Store) Save(ctx context.Context, sessionID string, snapshot []*entrant.Entrant) error {
	ctx = ensureContext(ctx)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		now := formatTime(time.Now())
		res, err := tx.ExecContext(ctx, "UPDATE sessions SET updated_at = ? WHERE id = ?", now, sessionID)
		if err != nil {
			return fmt.Errorf("touch session: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		if err := clearEntrants(ctx, tx, sessionID); err != nil {
			return err
		}

		insertEntrant, err := tx.PrepareContext(ctx,
			"INSERT INTO entrants (session_id, position, name, number, first_lap_at) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("prepare entrant insert: %w", err)
		}
		defer insertEntrant.Close()
		insertLap, err := tx.PrepareContext(ctx,
			"INSERT INTO laps (session_id, position, lap_index, seconds) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("prepare lap insert: %w", err)
		}
		defer insertLap.Close()

		for position, e := range snapshot {
			var firstLapAt sql.NullString
			if t := e.FirstLapAt(); !t.IsZero() {
				firstLapAt = sql.NullString{String: formatTime(t), Valid: true}
			}
			if _, err := insertEntrant.ExecContext(ctx, sessionID, position, e.Name(), e.Number(), firstLapAt); err != nil {
				return fmt.Errorf("insert entrant %d: %w", position, err)
			}
			for index, seconds := range e.Laps() {
				if _, err := insertLap.ExecContext(ctx, sessionID, position, index, seconds); err != nil {
					return fmt.Errorf("insert lap %d of entrant %d: %w", index, position, err)
				}
			}
		}
		return nil
	})
}

// Load returns the stored entrants of a session in position order.
func (s *Store) Load(ctx context.Context, sessionID string) ([]*entrant.Entrant, error) {
	ctx = ensureContext(ctx)

	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM sessions WHERE id = ?", sessionID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	laps, err := s.loadLaps(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT position, name, number, first_lap_at FROM entrants WHERE session_id = ? ORDER BY position",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query entrants: %w", err)
	}
	defer rows.Close()

	var out []*entrant.Entrant
	for rows.Next() {
		var (
			position   int
			name       string
			number     int
			firstLapAt sql.NullString
		)
		if err := rows.Scan(&position, &name, &number, &firstLapAt); err != nil {
			return nil, fmt.Errorf("scan entrant: %w", err)
		}
		var first time.Time
		if firstLapAt.Valid {
			if first, err = parseTime(firstLapAt.String); err != nil {
				return nil, err
			}
		}
		e, err := entrant.Restore(name, number, laps[position], first)
		if err != nil {
			return nil, fmt.Errorf("restore entrant %d: %w", position, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entrants: %w", err)
	}
	return out, nil
}

func (s *Store) loadLaps(ctx context.Context, sessionID string) (map[int][]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT position, seconds FROM laps WHERE session_id = ? ORDER BY position, lap_index",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query laps: %w", err)
	}
	defer rows.Close()

	laps := make(map[int][]float64)
	for rows.Next() {
		var (
			position int
			seconds  float64
		)
		if err := rows.Scan(&position, &seconds); err != nil {
			return nil, fmt.Errorf("scan lap: %w", err)
		}
		laps[position] = append(laps[position], seconds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate laps: %w", err)
	}
	return laps, nil
}

// LoadInto adds the stored entrants of a session to c.
func (s *Store) LoadInto(ctx context.Context, sessionID string, c *entrant.Collection) error {
	entrants, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, e := range entrants {
		c.AddExisting(e)
	}
	return nil
}

func clearEntrants(ctx context.Context, tx *sql.Tx, sessionID string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM laps WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("clear laps: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM entrants WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("clear entrants: %w", err)
	}
	return nil
}
