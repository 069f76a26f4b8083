package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/brewboard/brewboard/config"
	"github.com/brewboard/brewboard/internal/auth"
	handler "github.com/brewboard/brewboard/internal/handler/http"
	"github.com/brewboard/brewboard/internal/logger"
	"github.com/brewboard/brewboard/internal/pickup"
	"github.com/brewboard/brewboard/internal/repository"
	"github.com/brewboard/brewboard/internal/repository/postgres"
	"github.com/brewboard/brewboard/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// capabilityKey returns the configured signing key, or a fresh random
// one when none is configured. A random key means issued capabilities
// do not survive a restart.
func capabilityKey(cfg *config.Config) ([]byte, error) {
	if cfg.CapabilityKey != "" {
		return hex.DecodeString(cfg.CapabilityKey)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	logger.Log.Warn("no capability key configured, using a per-process random key")
	return key, nil
}

// pickupPolicy builds the configured pickup policy. The enumerated
// policy takes its labels from the time_slots table.
func pickupPolicy(ctx context.Context, cfg *config.Config, slots *repository.SlotRepository, loc *time.Location) (pickup.Policy, error) {
	if cfg.PickupMode != "slots" {
		return pickup.NewASAPOnly(), nil
	}

	rows, err := slots.ListActiveSlots(ctx)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label)
	}

	return pickup.NewEnumerated(labels, loc), nil
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Log.Fatal("Error loading timezone", zap.Error(err))
	}

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	key, err := capabilityKey(cfg)
	if err != nil {
		logger.Log.Fatal("Error extracting capability key", zap.Error(err))
	}
	token := auth.NewCapabilityToken(key, cfg.CapabilityTTL)

	// dependency injection
	// menu catalog
	menuRepo := repository.NewMenuRepository(db)
	menuService := service.NewMenuService(menuRepo)
	if err := menuService.EnsureSeeded(ctx); err != nil {
		logger.Log.Fatal("Error seeding menu catalog", zap.Error(err))
	}
	menuHandler := handler.NewMenuHandler(menuService)

	// pickup
	slotRepo := repository.NewSlotRepository(db)
	policy, err := pickupPolicy(ctx, cfg, slotRepo, loc)
	if err != nil {
		logger.Log.Fatal("Error loading pickup slots", zap.Error(err))
	}
	slotsHandler := handler.NewSlotsHandler(policy)

	// orders
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, menuService, policy)
	orderHandler := handler.NewOrderHandler(orderService)

	// display
	displayHandler := handler.NewDisplayHandler(orderService, loc)

	// export
	exportService := service.NewExportService(orderService)
	exportHandler := handler.NewExportHandler(exportService)

	// access gate
	gate := service.NewAccessGate(cfg.StaffPasscode, token)
	authHandler := handler.NewAuthHandler(gate, cfg.CapabilityTTL)

	router := chi.NewRouter()

	router.Use(handler.Logging(logger.Log))

	router.Post("/order", orderHandler.SubmitOrder())
	router.Get("/menu/{category}", menuHandler.ListMenu())
	router.Get("/display", displayHandler.Board())
	router.Get("/pickup-slots", slotsHandler.Slots())
	router.Post("/auth", authHandler.Authenticate())

	// routes that require a capability
	router.Group(func(group chi.Router) {
		group.Use(handler.Capability(gate))
		group.Get("/orders", orderHandler.ListOrders())
		group.Patch("/order/{id}", orderHandler.UpdateOrderStatus())
		group.Get("/orders/export", exportHandler.ExportOrders())
		group.Get("/catalog/{category}", menuHandler.ListCatalog())
		group.Post("/menu", menuHandler.AddMenuItem())
		group.Patch("/menu/{id}", menuHandler.UpdateMenuItem())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
