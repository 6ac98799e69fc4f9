// Package checkout converts a finished cart into one order ledger entry.
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/builder"
	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/enum"
	"github.com/davicapacle05/Restaurante/internal/ledger"
)

// Validation errors. A failed commit changes nothing.
var (
	ErrNothingToCheckout = errors.New("cart is empty")
	ErrNoPaymentMethod   = errors.New("payment method is required")
	ErrInvalidPayment    = errors.New("invalid payment method")
)

// DefaultCustomerName is used for walk-up orders with no name given.
const DefaultCustomerName = "Cliente Balcão"

// Finalizer commits carts to the order ledger.
type Finalizer struct {
	ledger *ledger.Ledger
}

func NewFinalizer(led *ledger.Ledger) *Finalizer {
	return &Finalizer{ledger: led}
}

// Commit flattens the cart into one order and appends it to the ledger.
// Each line's item group is repeated quantity times, so a meal of three
// components at quantity two contributes six snapshots. Capacity is never
// decremented here; remaining stock is derived lazily by the stock engine.
// On success the cart is cleared.
func (f *Finalizer) Commit(cart *builder.Cart, customerName, paymentMethod string, now time.Time) (ledger.Order, error) {
	if cart.Len() == 0 {
		return ledger.Order{}, ErrNothingToCheckout
	}
	if paymentMethod == "" {
		return ledger.Order{}, ErrNoPaymentMethod
	}
	if !enum.IsValidPaymentMethod(paymentMethod) {
		return ledger.Order{}, ErrInvalidPayment
	}
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	var flattened []catalog.Item
	total := decimal.Zero
	for _, line := range cart.Lines() {
		for rep := 0; rep < line.Quantity; rep++ {
			for _, it := range line.Items {
				flattened = append(flattened, it)
				total = total.Add(it.Price)
			}
		}
	}

	order := ledger.Order{
		ID:            uuid.NewString(),
		CustomerName:  customerName,
		LineItems:     flattened,
		PaymentMethod: paymentMethod,
		Timestamp:     now,
		TotalValue:    total,
	}
	f.ledger.Append(order)
	cart.Clear()
	return order, nil
}
