// Package builder is the order composition state machine: one meal is
// assembled under size-dependent category quotas, committed to the cart,
// and the builder resets for the next one. Extras and drinks bypass the
// quotas through a per-item counter on the cart.
package builder

import (
	"errors"

	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/enum"
)

// Validation errors surfaced to the operator. Every rejection leaves the
// builder state exactly as it was.
var (
	ErrNoSizeSelected = errors.New("no size selected")
	ErrQuotaExceeded  = errors.New("quota exceeded for category")
	ErrEmptySelection = errors.New("no items selected")
)

// Builder accumulates the current meal selection. It owns this transient
// state exclusively until CommitToCart hands a finished line to the cart.
type Builder struct {
	quotas    QuotaTable
	size      *catalog.Item
	selection []catalog.Item
}

// NewBuilder creates an idle builder. A nil table means the default quotas.
func NewBuilder(quotas QuotaTable) *Builder {
	if quotas == nil {
		quotas = DefaultQuotas()
	}
	return &Builder{quotas: quotas}
}

// Size returns the currently selected size, if any.
func (b *Builder) Size() (catalog.Item, bool) {
	if b.size == nil {
		return catalog.Item{}, false
	}
	return *b.size, true
}

// Selection returns a copy of the chosen non-size items.
func (b *Builder) Selection() []catalog.Item {
	out := make([]catalog.Item, len(b.selection))
	copy(out, b.selection)
	return out
}

// SelectSize picks the meal size. Re-selecting the size already held is a
// no-op; switching sizes discards every non-size selection, because the
// quotas depend on the size and a stale pick could silently violate the new
// limits.
func (b *Builder) SelectSize(size catalog.Item) {
	if b.size != nil && b.size.ID == size.ID {
		return
	}
	b.size = &size
	b.selection = nil
}

// ToggleCategoryItem selects or deselects one quota-governed item.
// Deselection is always allowed; selection requires a size and free quota
// in the item's category.
func (b *Builder) ToggleCategoryItem(item catalog.Item) error {
	if item.Category == enum.CategorySize {
		b.SelectSize(item)
		return nil
	}
	if b.size == nil {
		return ErrNoSizeSelected
	}

	for i, sel := range b.selection {
		if sel.ID == item.ID {
			b.selection = append(b.selection[:i], b.selection[i+1:]...)
			return nil
		}
	}

	count := 0
	for _, sel := range b.selection {
		if sel.Category == item.Category {
			count++
		}
	}
	if count >= b.quotas.QuotaFor(b.size.ID, item.Category) {
		return ErrQuotaExceeded
	}

	b.selection = append(b.selection, item)
	return nil
}

// QuotaFor returns the category limit under the current size, 0 while no
// size is selected.
func (b *Builder) QuotaFor(category string) int {
	if b.size == nil {
		return 0
	}
	return b.quotas.QuotaFor(b.size.ID, category)
}

// CommitToCart snapshots the full selection (size first) into one MEAL line
// at quantity 1, appends it to the cart and resets the builder for the next
// meal. Fails without touching anything when no size or no item is chosen.
func (b *Builder) CommitToCart(cart *Cart) error {
	if b.size == nil {
		return ErrNoSizeSelected
	}
	if len(b.selection) == 0 {
		return ErrEmptySelection
	}

	items := make([]catalog.Item, 0, len(b.selection)+1)
	items = append(items, *b.size)
	items = append(items, b.selection...)
	cart.addMealLine(b.size.Name, items)

	b.size = nil
	b.selection = nil
	return nil
}
