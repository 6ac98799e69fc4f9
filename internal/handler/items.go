package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/catalog"
)

// CatalogStore defines the catalog methods needed by item handlers.
// Satisfied by *catalog.Store; narrow interface for testability.
type CatalogStore interface {
	List() []catalog.Item
	ListActive() []catalog.Item
	Get(id string) (catalog.Item, error)
	Update(item catalog.Item) (catalog.Item, error)
	Create(item catalog.Item) (catalog.Item, error)
	ResetDefaults()
}

// ItemHandler handles catalog endpoints: the totem listing plus the admin
// mutation interface.
type ItemHandler struct {
	store CatalogStore
}

func NewItemHandler(store CatalogStore) *ItemHandler {
	return &ItemHandler{store: store}
}

// RegisterPublicRoutes registers the read-only totem endpoints.
func (h *ItemHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/items", h.ListActive)
	r.Get("/items/{id}", h.Get)
}

// RegisterAdminRoutes registers the manager-only mutation endpoints.
func (h *ItemHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/items/all", h.ListAll)
	r.Post("/items", h.Create)
	r.Put("/items/{id}", h.Update)
	r.Post("/items/reset", h.ResetCatalog)
}

// --- Request / Response types ---

type itemRequest struct {
	Name              string     `json:"name"`
	StockName         string     `json:"stock_name"`
	Category          string     `json:"category"`
	Price             string     `json:"price"`
	PortionSize       float64    `json:"portion_size"`
	Unit              string     `json:"unit"`
	Capacity          float64    `json:"capacity"`
	MinAlertThreshold float64    `json:"min_alert_threshold"`
	Active            bool       `json:"active"`
	RestockCheckpoint *time.Time `json:"restock_checkpoint"`
	HasDelay          bool       `json:"has_delay"`
}

type itemResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	StockName         string     `json:"stock_name,omitempty"`
	Category          string     `json:"category"`
	Price             string     `json:"price"`
	PortionSize       float64    `json:"portion_size"`
	Unit              string     `json:"unit"`
	Capacity          float64    `json:"capacity"`
	MinAlertThreshold float64    `json:"min_alert_threshold"`
	Active            bool       `json:"active"`
	RestockCheckpoint *time.Time `json:"restock_checkpoint,omitempty"`
	HasDelay          bool       `json:"has_delay"`
}

func (req itemRequest) toItem() (catalog.Item, error) {
	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.NewFromString(req.Price)
		if err != nil {
			return catalog.Item{}, errors.New("invalid price")
		}
	}
	return catalog.Item{
		Name:              req.Name,
		StockName:         req.StockName,
		Category:          req.Category,
		Price:             price,
		PortionSize:       req.PortionSize,
		Unit:              req.Unit,
		Capacity:          req.Capacity,
		MinAlertThreshold: req.MinAlertThreshold,
		Active:            req.Active,
		RestockCheckpoint: req.RestockCheckpoint,
		HasDelay:          req.HasDelay,
	}, nil
}

func toItemResponse(it catalog.Item) itemResponse {
	return itemResponse{
		ID:                it.ID,
		Name:              it.Name,
		StockName:         it.StockName,
		Category:          it.Category,
		Price:             it.Price.StringFixed(2),
		PortionSize:       it.PortionSize,
		Unit:              it.Unit,
		Capacity:          it.Capacity,
		MinAlertThreshold: it.MinAlertThreshold,
		Active:            it.Active,
		RestockCheckpoint: it.RestockCheckpoint,
		HasDelay:          it.HasDelay,
	}
}

func toItemResponses(items []catalog.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

// --- Handlers ---

// ListActive handles GET /items (totem view: visible items only).
func (h *ItemHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toItemResponses(h.store.ListActive()))
}

// ListAll handles GET /items/all (admin view, inactive included).
func (h *ItemHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toItemResponses(h.store.List()))
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Create handles POST /items: assigns a fresh id to the new item.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := req.toItem()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.store.Create(item)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// Update handles PUT /items/{id}: replaces one item wholesale.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := req.toItem()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = chi.URLParam(r, "id")

	updated, err := h.store.Update(item)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// ResetCatalog handles POST /items/reset: restores the built-in menu.
func (h *ItemHandler) ResetCatalog(w http.ResponseWriter, r *http.Request) {
	h.store.ResetDefaults()
	writeJSON(w, http.StatusOK, toItemResponses(h.store.List()))
}
