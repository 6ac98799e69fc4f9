package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/davicapacle05/Restaurante/internal/builder"
	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/enum"
	"github.com/davicapacle05/Restaurante/internal/ledger"
)

// OrderLedger defines the ledger methods needed by order handlers.
// Satisfied by *ledger.Ledger.
type OrderLedger interface {
	List() []ledger.Order
	Reset()
}

// Finalizer commits carts; satisfied by *checkout.Finalizer.
type Finalizer interface {
	Commit(cart *builder.Cart, customerName, paymentMethod string, now time.Time) (ledger.Order, error)
}

// OrderHandler handles order history and checkout. Checkout rebuilds the
// submitted cart through the composition builder, so the size quotas hold
// at the trust boundary no matter what the client sent.
type OrderHandler struct {
	catalog   CatalogStore
	ledger    OrderLedger
	finalizer Finalizer
	quotas    builder.QuotaTable
	now       func() time.Time
}

func NewOrderHandler(cat CatalogStore, led OrderLedger, fin Finalizer, quotas builder.QuotaTable) *OrderHandler {
	return &OrderHandler{
		catalog:   cat,
		ledger:    led,
		finalizer: fin,
		quotas:    quotas,
		now:       time.Now,
	}
}

// RegisterPublicRoutes registers history listing and checkout.
func (h *OrderHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/orders", h.List)
	r.Post("/checkout", h.Checkout)
}

// RegisterAdminRoutes registers the destructive ledger reset.
func (h *OrderHandler) RegisterAdminRoutes(r chi.Router) {
	r.Delete("/orders", h.ResetLedger)
}

// --- Request / Response types ---

type checkoutLineRequest struct {
	Kind     string   `json:"kind"`
	ItemIDs  []string `json:"item_ids"` // MEAL: size + chosen items
	ItemID   string   `json:"item_id"`  // EXTRA: the counted item
	Quantity int      `json:"quantity"`
}

type checkoutRequest struct {
	CustomerName  string                `json:"customer_name"`
	PaymentMethod string                `json:"payment_method"`
	Lines         []checkoutLineRequest `json:"lines"`
}

type orderResponse struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customer_name"`
	LineItems     []itemResponse `json:"line_items"`
	PaymentMethod string         `json:"payment_method"`
	Timestamp     time.Time      `json:"timestamp"`
	TotalValue    string         `json:"total_value"`
}

func toOrderResponse(o ledger.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		LineItems:     toItemResponses(o.LineItems),
		PaymentMethod: o.PaymentMethod,
		Timestamp:     o.Timestamp,
		TotalValue:    o.TotalValue.StringFixed(2),
	}
}

// --- Handlers ---

// List handles GET /orders. Line items render from the snapshots embedded
// in each order, so history stays faithful even for items that no longer
// exist in the catalog.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.ledger.List()
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

// Checkout handles POST /checkout.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.rebuildCart(req.Lines)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	order, err := h.finalizer.Commit(cart, req.CustomerName, req.PaymentMethod, h.now())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// rebuildCart replays the submitted lines through the builder so that size
// quotas and selection rules are enforced server-side.
func (h *OrderHandler) rebuildCart(lines []checkoutLineRequest) (*builder.Cart, error) {
	cart := builder.NewCart()
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, errors.New("quantity must be > 0")
		}
		switch line.Kind {
		case enum.CartLineMeal:
			if err := h.rebuildMeal(cart, line); err != nil {
				return nil, err
			}
		case enum.CartLineExtra:
			item, err := h.lookupActive(line.ItemID)
			if err != nil {
				return nil, err
			}
			cart.AdjustExtraQuantity(item, 1)
			if line.Quantity > 1 {
				cart.AdjustExtraQuantity(item, line.Quantity-1)
			}
		default:
			return nil, errors.New("invalid line kind")
		}
	}
	return cart, nil
}

func (h *OrderHandler) rebuildMeal(cart *builder.Cart, line checkoutLineRequest) error {
	b := builder.NewBuilder(h.quotas)

	var size *catalog.Item
	var rest []catalog.Item
	for _, id := range line.ItemIDs {
		item, err := h.lookupActive(id)
		if err != nil {
			return err
		}
		if item.Category == enum.CategorySize {
			if size != nil {
				return errors.New("meal has more than one size")
			}
			it := item
			size = &it
			continue
		}
		rest = append(rest, item)
	}
	if size == nil {
		return builder.ErrNoSizeSelected
	}

	b.SelectSize(*size)
	for _, item := range rest {
		if err := b.ToggleCategoryItem(item); err != nil {
			return err
		}
	}
	if err := b.CommitToCart(cart); err != nil {
		return err
	}

	// The builder commits at quantity 1; bump to the requested count.
	if line.Quantity > 1 {
		lines := cart.Lines()
		last := lines[len(lines)-1]
		if err := cart.AdjustLineQuantity(last.ID, line.Quantity-1); err != nil {
			return err
		}
	}
	return nil
}

func (h *OrderHandler) lookupActive(id string) (catalog.Item, error) {
	item, err := h.catalog.Get(id)
	if err != nil {
		return catalog.Item{}, errors.New("item not available: " + id)
	}
	if !item.Active {
		return catalog.Item{}, errors.New("item not available: " + id)
	}
	return item, nil
}

// ResetLedger handles DELETE /orders: the single administrative bulk clear.
func (h *OrderHandler) ResetLedger(w http.ResponseWriter, r *http.Request) {
	h.ledger.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
