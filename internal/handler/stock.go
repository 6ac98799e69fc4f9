package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/stock"
)

// StockEngine defines the reconciliation methods needed by stock handlers.
// Satisfied by *stock.Engine.
type StockEngine interface {
	View() map[string]stock.Status
	RequestRestock(itemID string) (string, error)
	ConfirmRestock(itemID string, now time.Time) (catalog.Item, error)
	AddStock(itemID string, delta float64) (catalog.Item, error)
}

// StockHandler exposes the reconciled stock view and the restock flow.
type StockHandler struct {
	engine StockEngine
	now    func() time.Time
}

func NewStockHandler(engine StockEngine) *StockHandler {
	return &StockHandler{engine: engine, now: time.Now}
}

// RegisterPublicRoutes registers the read-only kitchen view.
func (h *StockHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/stock", h.View)
}

// RegisterAdminRoutes registers the restock and add-stock mutations.
func (h *StockHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/items/{id}/stock", h.AddStock)
	r.Post("/items/{id}/restock/request", h.RequestRestock)
	r.Post("/items/{id}/restock/confirm", h.ConfirmRestock)
}

// --- Request / Response types ---

type addStockRequest struct {
	Quantity float64 `json:"quantity"`
}

type restockRequestResponse struct {
	ItemID       string `json:"item_id"`
	Confirmation string `json:"confirmation"`
}

// --- Handlers ---

// View handles GET /stock: the full reconciled view, recomputed from the
// catalog and ledger on every call.
func (h *StockHandler) View(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.View())
}

// AddStock handles POST /items/{id}/stock: receive more physical supply.
func (h *StockHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.engine.AddStock(chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// RequestRestock handles POST /items/{id}/restock/request: first half of
// the two-phase restock, returns the confirmation text without mutating.
func (h *StockHandler) RequestRestock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	desc, err := h.engine.RequestRestock(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, restockRequestResponse{ItemID: id, Confirmation: desc})
}

// ConfirmRestock handles POST /items/{id}/restock/confirm: stamps the
// checkpoint and restarts the consumption counter.
func (h *StockHandler) ConfirmRestock(w http.ResponseWriter, r *http.Request) {
	item, err := h.engine.ConfirmRestock(chi.URLParam(r, "id"), h.now())
	if err != nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}
