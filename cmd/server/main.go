package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/davicapacle05/Restaurante/internal/auth"
	"github.com/davicapacle05/Restaurante/internal/builder"
	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/checkout"
	"github.com/davicapacle05/Restaurante/internal/config"
	"github.com/davicapacle05/Restaurante/internal/enum"
	"github.com/davicapacle05/Restaurante/internal/handler"
	"github.com/davicapacle05/Restaurante/internal/ledger"
	"github.com/davicapacle05/Restaurante/internal/logging"
	"github.com/davicapacle05/Restaurante/internal/persist"
	"github.com/davicapacle05/Restaurante/internal/router"
	"github.com/davicapacle05/Restaurante/internal/stock"
	"github.com/davicapacle05/Restaurante/internal/ws"
)

func main() {
	cfgPath := os.Getenv("KIOSK_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logging.Base().Error("load config", "error", err)
		os.Exit(1)
	}

	log := logging.Init("kiosk", cfg.LogPath)

	if cfg.ManagerPasswordHash == "" {
		hash, herr := auth.HashPassword(config.DevManagerPassword)
		if herr != nil {
			log.Error("derive dev manager password", "error", herr)
			os.Exit(1)
		}
		cfg.ManagerPasswordHash = hash
		log.Warn("no manager_password_hash configured, using development password")
	}

	port, err := persist.NewFilePort(cfg.DataDir)
	if err != nil {
		log.Error("open data dir", "error", err)
		os.Exit(1)
	}

	hub := ws.NewHub()
	go hub.Run()

	notify := func(key string, snapshot json.RawMessage) {
		hub.Broadcast(ws.Event{Type: enum.EventSnapshotChanged, Key: key, Payload: snapshot})
	}

	cat := catalog.NewStore(port, notify, logging.New("catalog"))
	led := ledger.NewLedger(port, notify, logging.New("ledger"))
	engine := stock.NewEngine(cat, led)
	finalizer := checkout.NewFinalizer(led)

	r := router.New(cfg, router.Handlers{
		Auth:  handler.NewAuthHandler(cfg.ManagerPasswordHash, cfg.JWTSecret),
		Items: handler.NewItemHandler(cat),
		Order: handler.NewOrderHandler(cat, led, finalizer, builder.DefaultQuotas()),
		Stock: handler.NewStockHandler(engine),
	}, hub)

	log.Info("starting server", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
