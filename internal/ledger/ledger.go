// Package ledger is the append-only record of committed orders.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/davicapacle05/Restaurante/internal/enum"
	"github.com/davicapacle05/Restaurante/internal/persist"
)

// NotifyFunc receives the snapshot key and the new full JSON value after
// every mutation.
type NotifyFunc func(key string, snapshot json.RawMessage)

// Ledger holds orders most-recent-first. Stock reconciliation is
// position-independent and relies only on timestamps; the ordering is for
// display.
type Ledger struct {
	mu     sync.RWMutex
	orders []Order
	port   persist.Port
	notify NotifyFunc
	log    *slog.Logger
}

// NewLedger loads the orders snapshot from the port, falling back to an
// empty ledger when it is absent or unreadable.
func NewLedger(port persist.Port, notify NotifyFunc, log *slog.Logger) *Ledger {
	l := &Ledger{port: port, notify: notify, log: log}

	data, err := port.Load(enum.SnapshotKeyOrders)
	if err == nil {
		var orders []Order
		uerr := json.Unmarshal(data, &orders)
		if uerr == nil {
			l.orders = orders
			return l
		}
		log.Warn("orders snapshot corrupt, starting empty", "error", uerr)
	} else if !errors.Is(err, persist.ErrNotFound) {
		log.Warn("orders snapshot unreadable, starting empty", "error", err)
	}
	return l
}

// Append prepends the order so the newest entry is first.
func (l *Ledger) Append(o Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]Order{o}, l.orders...)
	l.persistLocked()
}

// List returns a copy of the full ledger, newest first.
func (l *Ledger) List() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len reports the number of committed orders.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// Reset clears all order history. This is the single administrative bulk
// delete; individual orders are never removed.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = nil
	l.persistLocked()
}

func (l *Ledger) persistLocked() {
	orders := l.orders
	if orders == nil {
		orders = []Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		l.log.Error("marshal orders snapshot", "error", err)
		return
	}
	if err := l.port.Save(enum.SnapshotKeyOrders, data); err != nil {
		l.log.Error(fmt.Sprintf("save %s snapshot", enum.SnapshotKeyOrders), "error", err)
	}
	if l.notify != nil {
		l.notify(enum.SnapshotKeyOrders, data)
	}
}
