package catalog

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/enum"
)

// Validation errors for catalog items.
var (
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrNegativePrice      = errors.New("price must be >= 0")
	ErrInvalidPortionSize = errors.New("portion_size must be > 0")
	ErrNegativeCapacity   = errors.New("capacity must be >= 0")
	ErrNegativeThreshold  = errors.New("min_alert_threshold must be >= 0")
)

// Item is one catalog entry. A price of zero means "included in the meal
// price, not separately charged". Capacity is the current bin size used as
// the denominator for remaining stock, not a running counter.
type Item struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	StockName         string          `json:"stock_name,omitempty"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	PortionSize       float64         `json:"portion_size"`
	Unit              string          `json:"unit"`
	Capacity          float64         `json:"capacity"`
	MinAlertThreshold float64         `json:"min_alert_threshold"`
	Active            bool            `json:"active"`
	RestockCheckpoint *time.Time      `json:"restock_checkpoint,omitempty"`
	HasDelay          bool            `json:"has_delay,omitempty"`
}

// Validate checks the structural invariants. ID is checked by the store, not
// here, so the same code validates create requests that carry no id yet.
func (i Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyName
	}
	if !enum.IsValidCategory(i.Category) {
		return ErrInvalidCategory
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	if i.PortionSize <= 0 {
		return ErrInvalidPortionSize
	}
	if i.Capacity < 0 {
		return ErrNegativeCapacity
	}
	if i.MinAlertThreshold < 0 {
		return ErrNegativeThreshold
	}
	return nil
}

// RestockedAt returns the restock checkpoint, or the zero time when the item
// was never restocked. Orders at or before this instant are excluded from
// consumption totals.
func (i Item) RestockedAt() time.Time {
	if i.RestockCheckpoint == nil {
		return time.Time{}
	}
	return *i.RestockCheckpoint
}
