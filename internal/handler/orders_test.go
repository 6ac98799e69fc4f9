package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/builder"
	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/checkout"
	"github.com/davicapacle05/Restaurante/internal/enum"
	"github.com/davicapacle05/Restaurante/internal/handler"
	"github.com/davicapacle05/Restaurante/internal/ledger"
	"github.com/davicapacle05/Restaurante/internal/persist"
	"github.com/davicapacle05/Restaurante/internal/stock"
)

// kioskFixture wires real stores over an in-memory port so checkout and
// stock reconciliation run end to end.
func kioskFixture(t *testing.T, items []catalog.Item, quotas builder.QuotaTable) (chi.Router, *ledger.Ledger) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	port := persist.NewMemPort()
	seed, err := json.Marshal(items)
	if err != nil {
		t.Fatal(err)
	}
	port.Seed(enum.SnapshotKeyItems, seed)

	cat := catalog.NewStore(port, nil, log)
	led := ledger.NewLedger(port, nil, log)
	fin := checkout.NewFinalizer(led)
	engine := stock.NewEngine(cat, led)

	r := chi.NewRouter()
	oh := handler.NewOrderHandler(cat, led, fin, quotas)
	oh.RegisterPublicRoutes(r)
	oh.RegisterAdminRoutes(r)
	sh := handler.NewStockHandler(engine)
	sh.RegisterPublicRoutes(r)
	return r, led
}

func marmitaItems() []catalog.Item {
	return []catalog.Item{
		{ID: "tamanho_p", Name: "Marmita P", Category: enum.CategorySize, Price: decimal.RequireFromString("18.00"), PortionSize: 1, Unit: "un", Capacity: 50, MinAlertThreshold: 10, Active: true},
		{ID: "arroz", Name: "Arroz", Category: enum.CategoryStarchSide, Price: decimal.Zero, PortionSize: 200, Unit: "g", Capacity: 1000, MinAlertThreshold: 200, Active: true},
		{ID: "bife", Name: "Bife", Category: enum.CategoryProtein, Price: decimal.Zero, PortionSize: 1, Unit: "un", Capacity: 40, MinAlertThreshold: 5, Active: true},
		{ID: "frango", Name: "Frango", Category: enum.CategoryProtein, Price: decimal.Zero, PortionSize: 1, Unit: "un", Capacity: 40, MinAlertThreshold: 5, Active: true},
		{ID: "coca", Name: "Coca", Category: enum.CategoryDrink, Price: decimal.RequireFromString("6.00"), PortionSize: 1, Unit: "un", Capacity: 48, MinAlertThreshold: 12, Active: true},
		{ID: "oculto", Name: "Oculto", Category: enum.CategoryProtein, Price: decimal.Zero, PortionSize: 1, Unit: "un", Capacity: 10, MinAlertThreshold: 1, Active: false},
	}
}

func marmitaQuotas() builder.QuotaTable {
	return builder.QuotaTable{
		"tamanho_p": {enum.CategoryStarchSide: 2, enum.CategoryVegetableSide: 2, enum.CategoryProtein: 1},
	}
}

func postCheckout(r chi.Router, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body)))
	return rec
}

func TestCheckoutFlattensAndTotals(t *testing.T) {
	r, led := kioskFixture(t, marmitaItems(), marmitaQuotas())

	body := `{
		"customer_name": "Maria",
		"payment_method": "PIX",
		"lines": [
			{"kind":"MEAL","item_ids":["tamanho_p","arroz","bife"],"quantity":2},
			{"kind":"EXTRA","item_id":"coca","quantity":3}
		]
	}`
	rec := postCheckout(r, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		LineItems  []map[string]any `json:"line_items"`
		TotalValue string           `json:"total_value"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.LineItems) != 9 {
		t.Errorf("expected 9 flattened snapshots, got %d", len(got.LineItems))
	}
	// 2 * 18.00 + 3 * 6.00
	if got.TotalValue != "54.00" {
		t.Errorf("expected total 54.00, got %s", got.TotalValue)
	}
	if led.Len() != 1 {
		t.Errorf("expected 1 ledger entry, got %d", led.Len())
	}
}

func TestCheckoutEnforcesQuotasAtTheBoundary(t *testing.T) {
	r, led := kioskFixture(t, marmitaItems(), marmitaQuotas())

	// Two proteins under a size allowing one.
	body := `{
		"payment_method": "CASH",
		"lines": [{"kind":"MEAL","item_ids":["tamanho_p","bife","frango"],"quantity":1}]
	}`
	rec := postCheckout(r, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if led.Len() != 0 {
		t.Error("rejected checkout must not touch the ledger")
	}
}

func TestCheckoutValidation(t *testing.T) {
	r, _ := kioskFixture(t, marmitaItems(), marmitaQuotas())

	cases := []struct {
		name string
		body string
	}{
		{"empty cart", `{"payment_method":"CASH","lines":[]}`},
		{"no payment", `{"lines":[{"kind":"MEAL","item_ids":["tamanho_p","bife"],"quantity":1}]}`},
		{"meal without size", `{"payment_method":"CASH","lines":[{"kind":"MEAL","item_ids":["bife"],"quantity":1}]}`},
		{"inactive item", `{"payment_method":"CASH","lines":[{"kind":"MEAL","item_ids":["tamanho_p","oculto"],"quantity":1}]}`},
		{"unknown item", `{"payment_method":"CASH","lines":[{"kind":"EXTRA","item_id":"nope","quantity":1}]}`},
		{"zero quantity", `{"payment_method":"CASH","lines":[{"kind":"EXTRA","item_id":"coca","quantity":0}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postCheckout(r, tc.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRepeatedCheckoutsDrainTheBin(t *testing.T) {
	r, _ := kioskFixture(t, marmitaItems(), marmitaQuotas())

	body := `{
		"payment_method": "CASH",
		"lines": [{"kind":"MEAL","item_ids":["tamanho_p","arroz"],"quantity":1}]
	}`

	readStock := func() map[string]stock.Status {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stock", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("stock view: expected 200, got %d", rec.Code)
		}
		var view map[string]stock.Status
		if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
			t.Fatal(err)
		}
		return view
	}

	if rec := postCheckout(r, body); rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d", rec.Code)
	}
	st := readStock()["arroz"]
	if st.Consumed != 200 || st.Remaining != 800 || st.LowStock {
		t.Fatalf("after one meal: unexpected status %+v", st)
	}

	for i := 0; i < 4; i++ {
		if rec := postCheckout(r, body); rec.Code != http.StatusCreated {
			t.Fatalf("checkout %d: expected 201, got %d", i+2, rec.Code)
		}
	}
	st = readStock()["arroz"]
	if st.Consumed != 1000 || st.Remaining != 0 || !st.Critical {
		t.Fatalf("after five meals: unexpected status %+v", st)
	}
}

func TestOrderHistoryRendersSnapshots(t *testing.T) {
	r, led := kioskFixture(t, marmitaItems(), marmitaQuotas())

	body := `{
		"payment_method": "CASH",
		"lines": [{"kind":"MEAL","item_ids":["tamanho_p","bife"],"quantity":1}]
	}`
	if rec := postCheckout(r, body); rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d", rec.Code)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var orders []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	delRec := httptest.NewRecorder()
	r.ServeHTTP(delRec, httptest.NewRequest(http.MethodDelete, "/orders", nil))
	if delRec.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", delRec.Code)
	}
	if led.Len() != 0 {
		t.Error("reset must clear the ledger")
	}
}
