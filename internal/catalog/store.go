package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davicapacle05/Restaurante/internal/enum"
	"github.com/davicapacle05/Restaurante/internal/persist"
)

// Store errors.
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
)

// NotifyFunc receives the snapshot key and the new full JSON value after
// every mutation. Used to fan the change out to other sessions.
type NotifyFunc func(key string, snapshot json.RawMessage)

// Store is the single authoritative catalog for the process. Mutations go
// through the defined operations only; each one persists a full snapshot
// and notifies subscribers.
type Store struct {
	mu     sync.RWMutex
	items  []Item
	port   persist.Port
	notify NotifyFunc
	log    *slog.Logger
}

// NewStore loads the catalog snapshot from the port. A missing or unreadable
// snapshot falls back to the built-in default menu; load failure is never
// fatal.
func NewStore(port persist.Port, notify NotifyFunc, log *slog.Logger) *Store {
	s := &Store{port: port, notify: notify, log: log}

	data, err := port.Load(enum.SnapshotKeyItems)
	if err == nil {
		var items []Item
		uerr := json.Unmarshal(data, &items)
		if uerr == nil {
			s.items = items
			return s
		}
		log.Warn("catalog snapshot corrupt, using defaults", "error", uerr)
	} else if !errors.Is(err, persist.ErrNotFound) {
		log.Warn("catalog snapshot unreadable, using defaults", "error", err)
	}
	s.items = DefaultItems()
	return s
}

// List returns a copy of every item, including inactive ones.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ListActive returns only the items visible on the totem.
func (s *Store) ListActive() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Item
	for _, it := range s.items {
		if it.Active {
			out = append(out, it)
		}
	}
	return out
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// Update replaces one item by id. The replacement is validated first; an
// invalid item leaves the catalog untouched.
func (s *Store) Update(item Item) (Item, error) {
	if err := item.Validate(); err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == item.ID {
			s.items[i] = item
			s.persistLocked()
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// Create validates the new item, assigns a fresh id and appends it.
func (s *Store) Create(item Item) (Item, error) {
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	item.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.persistLocked()
	return item, nil
}

// AddStock raises an item's bin capacity by delta. This models receiving
// more physical supply; it never touches the restock checkpoint, which is
// what restarts the consumption counter.
func (s *Store) AddStock(id string, delta float64) (Item, error) {
	if delta <= 0 {
		return Item{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			it.Capacity += delta
			s.items[i] = it
			s.persistLocked()
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// SetRestockCheckpoint stamps an item's restock checkpoint. Capacity is
// unchanged; consumption before ts stops counting against the bin.
func (s *Store) SetRestockCheckpoint(id string, ts time.Time) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			it.RestockCheckpoint = &ts
			s.items[i] = it
			s.persistLocked()
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// ResetDefaults replaces the whole catalog with the built-in menu.
func (s *Store) ResetDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = DefaultItems()
	s.persistLocked()
}

// persistLocked snapshots the catalog and notifies subscribers. Persistence
// is fire-and-forget: a failed save is logged, never propagated.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("marshal catalog snapshot", "error", err)
		return
	}
	if err := s.port.Save(enum.SnapshotKeyItems, data); err != nil {
		s.log.Error(fmt.Sprintf("save %s snapshot", enum.SnapshotKeyItems), "error", err)
	}
	if s.notify != nil {
		s.notify(enum.SnapshotKeyItems, data)
	}
}
