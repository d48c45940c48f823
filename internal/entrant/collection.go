package entrant

import (
	"fmt"
	"log/slog"

	"sctime/internal/logging"
)

// Change identifies the grid coordinate affected by a mutation: Column is the
// entrant identity and Row the lap index.
type Change struct {
	Column int
	Row    int
}

// Collection is the ordered, identity-indexed set of entrants in a session.
type Collection struct {
	entrants []*Entrant
	nextID   int

	subscribers map[int]func(Change)
	order       []int
	nextSub     int

	logger *slog.Logger
}

// NewCollection returns an empty collection. A nil logger discards output.
func NewCollection(logger *slog.Logger) *Collection {
	return &Collection{
		subscribers: make(map[int]func(Change)),
		logger:      logging.NewComponentLogger(logger, "entrants"),
	}
}

// Subscribe registers fn for every change. Subscribers run synchronously in
// registration order. The returned function removes the subscription.
func (c *Collection) Subscribe(fn func(Change)) (cancel func()) {
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.order = append(c.order, id)
	return func() {
		if _, ok := c.subscribers[id]; !ok {
			return
		}
		delete(c.subscribers, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Collection) emit(col, row int) {
	change := Change{Column: col, Row: row}
	for _, id := range append([]int(nil), c.order...) {
		if fn, ok := c.subscribers[id]; ok {
			fn(change)
		}
	}
}

// Add creates an entrant with the next identity and returns a copy of it.
func (c *Collection) Add(name string, number int) *Entrant {
	return c.attach(New(c.nextID, name, number))
}

// AddExisting takes ownership of a copy of e, assigning it the next identity.
// Later changes to e itself do not reach the collection.
func (c *Collection) AddExisting(e *Entrant) *Entrant {
	owned := e.Clone()
	owned.setID(c.nextID)
	return c.attach(owned)
}

func (c *Collection) attach(e *Entrant) *Entrant {
	if e.now == nil {
		e.now = timeNow
	}
	e.onLap = func(owner *Entrant, lap int) {
		c.emit(owner.id, lap)
	}
	c.entrants = append(c.entrants, e)
	c.nextID++
	c.logger.Debug("entrant added",
		logging.Int(logging.FieldEntrantID, e.id),
		logging.String("name", e.name),
		logging.Int("number", e.number),
		logging.Int("laps", len(e.laps)),
	)
	c.emit(e.id, 0)
	return e.Clone()
}

// Remove deletes the entrant with the given identity. Every later entrant
// takes the identity of its new position, so identities stay 0..Count()-1.
func (c *Collection) Remove(id int) error {
	if id < 0 || id >= len(c.entrants) {
		return fmt.Errorf("remove entrant %d: %w", id, ErrNotFound)
	}
	lastColumn := len(c.entrants) - 1

	removed := c.entrants[id]
	removed.onLap = nil
	c.entrants = append(c.entrants[:id], c.entrants[id+1:]...)
	c.reindex(id)

	c.logger.Debug("entrant removed",
		logging.Int(logging.FieldEntrantID, id),
		logging.String("name", removed.name),
	)
	for col := id; col <= lastColumn; col++ {
		c.emit(col, 0)
	}
	return nil
}

func (c *Collection) reindex(from int) {
	for pos := from; pos < len(c.entrants); pos++ {
		c.entrants[pos].setID(pos)
	}
	c.nextID = len(c.entrants)
}

func (c *Collection) get(id int) (*Entrant, error) {
	if id < 0 || id >= len(c.entrants) {
		return nil, fmt.Errorf("entrant %d: %w", id, ErrNotFound)
	}
	return c.entrants[id], nil
}

// AppendLap records the next lap for an entrant.
func (c *Collection) AppendLap(id int, d float64) error {
	e, err := c.get(id)
	if err != nil {
		return err
	}
	return e.AppendLap(d)
}

// EditLap replaces an existing lap of an entrant.
func (c *Collection) EditLap(id, lap int, d float64) error {
	e, err := c.get(id)
	if err != nil {
		return err
	}
	return e.EditLap(lap, d)
}

// RemoveLap deletes a lap of an entrant.
func (c *Collection) RemoveLap(id, lap int) error {
	e, err := c.get(id)
	if err != nil {
		return err
	}
	return e.RemoveLap(lap)
}

// ByID returns a copy of the entrant with the given identity.
func (c *Collection) ByID(id int) (*Entrant, error) {
	e, err := c.get(id)
	if err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// ByNumber returns a copy of the first entrant with the vehicle number.
// Numbers are not required to be unique.
func (c *Collection) ByNumber(number int) (*Entrant, error) {
	for _, e := range c.entrants {
		if e.number == number {
			return e.Clone(), nil
		}
	}
	return nil, fmt.Errorf("number %d: %w", number, ErrNotFound)
}

// ByName returns a copy of the first entrant with exactly this name.
// Names are not required to be unique.
func (c *Collection) ByName(name string) (*Entrant, error) {
	for _, e := range c.entrants {
		if e.name == name {
			return e.Clone(), nil
		}
	}
	return nil, fmt.Errorf("name %q: %w", name, ErrNotFound)
}

// Snapshot returns independent copies of all entrants in identity order.
func (c *Collection) Snapshot() []*Entrant {
	out := make([]*Entrant, len(c.entrants))
	for i, e := range c.entrants {
		out[i] = e.Clone()
	}
	return out
}

// Count returns the number of entrants.
func (c *Collection) Count() int { return len(c.entrants) }

// NextID returns the identity the next added entrant will receive.
func (c *Collection) NextID() int { return c.nextID }

// LapCount returns the lap count of one entrant without copying it.
func (c *Collection) LapCount(id int) (int, error) {
	e, err := c.get(id)
	if err != nil {
		return 0, err
	}
	return len(e.laps), nil
}

// Lap returns one lap duration without copying the entrant.
func (c *Collection) Lap(id, lap int) (float64, bool) {
	e, err := c.get(id)
	if err != nil {
		return 0, false
	}
	return e.Lap(lap)
}

// HighestLapCount returns the largest lap count of any entrant, 0 when empty.
func (c *Collection) HighestLapCount() int {
	highest := 0
	for _, e := range c.entrants {
		highest = max(highest, len(e.laps))
	}
	return highest
}

// Names returns entrant names in identity order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.entrants))
	for i, e := range c.entrants {
		names[i] = e.name
	}
	return names
}
