// Package stock derives remaining stock for every catalog item from the
// order ledger and per-item restock checkpoints. Nothing here keeps a
// running counter: the view is recomputed from catalog + ledger on demand,
// so there is no second source of truth to drift.
package stock

import (
	"fmt"
	"time"

	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/ledger"
)

// restockEpsilon pushes a restock checkpoint strictly past "now" so an order
// committed in the same instant as the restock confirmation is still
// excluded from the reset counter.
const restockEpsilon = time.Millisecond

// Status is the reconciled stock position of one item.
type Status struct {
	ItemID           string  `json:"item_id"`
	Consumed         float64 `json:"consumed"`
	Remaining        float64 `json:"remaining"`
	Capacity         float64 `json:"capacity"`
	PercentRemaining float64 `json:"percent_remaining"`
	LowStock         bool    `json:"low_stock"`
	Critical         bool    `json:"critical"`
}

// ComputeView reconciles every item against the full ledger. A line item
// whose id is no longer in the catalog contributes nothing; an order at or
// before an item's restock checkpoint is excluded, which is how a restock
// zeroes the counter without deleting history. Pure function of its inputs.
func ComputeView(items []catalog.Item, orders []ledger.Order) map[string]Status {
	consumed := make(map[string]float64, len(items))
	checkpoint := make(map[string]time.Time, len(items))
	for _, it := range items {
		consumed[it.ID] = 0
		checkpoint[it.ID] = it.RestockedAt()
	}

	for _, o := range orders {
		for _, line := range o.LineItems {
			cp, ok := checkpoint[line.ID]
			if !ok {
				continue
			}
			if o.Timestamp.After(cp) {
				consumed[line.ID] += line.PortionSize
			}
		}
	}

	view := make(map[string]Status, len(items))
	for _, it := range items {
		used := consumed[it.ID]
		remaining := it.Capacity - used
		if remaining < 0 {
			remaining = 0
		}

		var pct float64
		if it.Capacity > 0 {
			pct = remaining / it.Capacity * 100
			if pct < 0 {
				pct = 0
			} else if pct > 100 {
				pct = 100
			}
		}

		view[it.ID] = Status{
			ItemID:           it.ID,
			Consumed:         used,
			Remaining:        remaining,
			Capacity:         it.Capacity,
			PercentRemaining: pct,
			LowStock:         remaining <= it.MinAlertThreshold,
			Critical:         remaining == 0,
		}
	}
	return view
}

// Engine binds the reconciliation to the live catalog and ledger and owns
// the restock operations.
type Engine struct {
	catalog *catalog.Store
	ledger  *ledger.Ledger
}

func NewEngine(cat *catalog.Store, led *ledger.Ledger) *Engine {
	return &Engine{catalog: cat, ledger: led}
}

// View reconciles the current catalog against the current ledger.
func (e *Engine) View() map[string]Status {
	return ComputeView(e.catalog.List(), e.ledger.List())
}

// RequestRestock is the first half of the two-phase restock: it returns a
// human-readable confirmation for the caller to present, without mutating
// anything. The caller follows up with ConfirmRestock.
func (e *Engine) RequestRestock(itemID string) (string, error) {
	it, err := e.catalog.Get(itemID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Confirmar reposição de %s? O estoque voltará para %g%s (100%%).",
		it.Name, it.Capacity, it.Unit), nil
}

// ConfirmRestock restarts the item's consumption counter by stamping a
// checkpoint strictly after now. Capacity is untouched and no history is
// deleted.
func (e *Engine) ConfirmRestock(itemID string, now time.Time) (catalog.Item, error) {
	return e.catalog.SetRestockCheckpoint(itemID, now.Add(restockEpsilon))
}

// AddStock raises the item's bin capacity. Distinct from ConfirmRestock:
// this receives more supply (a bigger denominator) while ConfirmRestock
// resets the counter at the existing one.
func (e *Engine) AddStock(itemID string, delta float64) (catalog.Item, error) {
	return e.catalog.AddStock(itemID, delta)
}
