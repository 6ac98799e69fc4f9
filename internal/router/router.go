package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/davicapacle05/Restaurante/internal/auth"
	"github.com/davicapacle05/Restaurante/internal/config"
	"github.com/davicapacle05/Restaurante/internal/handler"
	"github.com/davicapacle05/Restaurante/internal/logging"
	mw "github.com/davicapacle05/Restaurante/internal/middleware"
	"github.com/davicapacle05/Restaurante/internal/ws"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth  *handler.AuthHandler
	Items *handler.ItemHandler
	Order *handler.OrderHandler
	Stock *handler.StockHandler
}

// New creates the chi router. Totem and kitchen endpoints are public;
// mutations sit behind the manager token.
func New(cfg *config.Config, h Handlers, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	h.Auth.RegisterRoutes(r)

	wsLog := logging.New("ws")
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, wsLog, w, r)
	})

	// Public kiosk surface: totem listing, checkout, history, stock view
	h.Items.RegisterPublicRoutes(r)
	h.Order.RegisterPublicRoutes(r)
	h.Stock.RegisterPublicRoutes(r)

	// Admin mutation interface
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))
		r.Use(mw.RequireRole(auth.RoleManager))

		h.Items.RegisterAdminRoutes(r)
		h.Order.RegisterAdminRoutes(r)
		h.Stock.RegisterAdminRoutes(r)
	})

	return r
}
