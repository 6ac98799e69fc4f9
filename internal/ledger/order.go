package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/catalog"
)

// Order is one immutable ledger entry. LineItems are value snapshots of the
// catalog items at commit time, so later catalog edits never rewrite
// history. Once appended an order is only ever removed by the bulk reset.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	LineItems     []catalog.Item  `json:"line_items"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
