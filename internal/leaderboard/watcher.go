package leaderboard

import (
	"log/slog"

	"sctime/internal/entrant"
	"sctime/internal/logging"
)

// Watcher recomputes standings after every collection change and hands them
// to a callback.
type Watcher struct {
	entrants *entrant.Collection
	onUpdate func([]Standing)
	cancel   func()
	logger   *slog.Logger
}

// NewWatcher subscribes to c and publishes the current standings once.
func NewWatcher(c *entrant.Collection, onUpdate func([]Standing), logger *slog.Logger) *Watcher {
	w := &Watcher{
		entrants: c,
		onUpdate: onUpdate,
		logger:   logging.NewComponentLogger(logger, "leaderboard"),
	}
	w.cancel = c.Subscribe(func(change entrant.Change) {
		w.logger.Debug("refreshing standings", logging.Cell(change.Row, change.Column)...)
		w.Refresh()
	})
	w.Refresh()
	return w
}

// Refresh publishes standings for a fresh snapshot.
func (w *Watcher) Refresh() {
	if w.onUpdate == nil {
		return
	}
	w.onUpdate(Standings(w.entrants.Snapshot()))
}

// Close unsubscribes from the collection.
func (w *Watcher) Close() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}
