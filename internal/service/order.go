package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brewboard/brewboard/internal/lifecycle"
	"github.com/brewboard/brewboard/internal/logger"
	"github.com/brewboard/brewboard/internal/models"
	"github.com/brewboard/brewboard/internal/pickup"
	"go.uber.org/zap"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uint64) (*models.Order, error)
	// ListOrders returns all orders, newest first
	ListOrders(ctx context.Context) ([]models.Order, error)
	// UpdateOrderStatus writes status for the given order id
	UpdateOrderStatus(ctx context.Context, id uint64, status string) error
}

// Catalog is the menu surface the order intake validates against.
type Catalog interface {
	// ListActive returns active labels of a category, placeholders excluded
	ListActive(ctx context.Context, category string) ([]string, error)
	// ListActiveFlavorsForDrink returns active flavors compatible with the drink
	ListActiveFlavorsForDrink(ctx context.Context, drinkLabel string) ([]string, error)
}

// OrderService owns order intake and status progression
type OrderService struct {
	repo    OrderRepository
	catalog Catalog
	slots   pickup.Policy
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, catalog Catalog, slots pickup.Policy) *OrderService {
	return &OrderService{
		repo:    repo,
		catalog: catalog,
		slots:   slots,
	}
}

// Submit validates a draft against the active catalog and the pickup
// policy, then persists it with status pending. The stored order comes
// back with its assigned id and creation time.
func (os *OrderService) Submit(ctx context.Context, draft *models.Order) (*models.Order, error) {
	draft.CustomerName = strings.TrimSpace(draft.CustomerName)
	draft.DrinkType = strings.TrimSpace(draft.DrinkType)

	if draft.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name", models.ErrValidation)
	}
	if draft.DrinkType == "" {
		return nil, fmt.Errorf("%w: drink type", models.ErrValidation)
	}

	drinks, err := os.catalog.ListActive(ctx, models.CategoryDrink)
	if err != nil {
		return nil, err
	}
	if !contains(drinks, draft.DrinkType) {
		return nil, fmt.Errorf("%w: unknown drink %q", models.ErrValidation, draft.DrinkType)
	}

	if draft.MilkType != "" {
		milks, err := os.catalog.ListActive(ctx, models.CategoryMilk)
		if err != nil {
			return nil, err
		}
		if !contains(milks, draft.MilkType) {
			return nil, fmt.Errorf("%w: unknown milk %q", models.ErrValidation, draft.MilkType)
		}
	}

	if draft.Flavor != "" {
		flavors, err := os.catalog.ListActiveFlavorsForDrink(ctx, draft.DrinkType)
		if err != nil {
			return nil, err
		}
		if !contains(flavors, draft.Flavor) {
			return nil, fmt.Errorf("%w: flavor %q is not offered for %q", models.ErrValidation, draft.Flavor, draft.DrinkType)
		}
	}

	if draft.DrizzleType != "" {
		drizzles, err := os.catalog.ListActive(ctx, models.CategoryDrizzle)
		if err != nil {
			return nil, err
		}
		if !contains(drizzles, draft.DrizzleType) {
			return nil, fmt.Errorf("%w: unknown drizzle %q", models.ErrValidation, draft.DrizzleType)
		}
	}

	if draft.PickupTime == "" {
		draft.PickupTime = models.PickupASAP
	}
	if !pickup.Offered(os.slots, draft.PickupTime, time.Now()) {
		return nil, fmt.Errorf("%w: pickup time %q is no longer available", models.ErrValidation, draft.PickupTime)
	}

	draft.Status = models.OrderStatusPending

	order, err := os.repo.CreateOrder(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("order submitted",
		zap.Uint64("id", order.ID),
		zap.String("drink", order.DrinkType))

	return order, nil
}

// List returns all orders, newest first
func (os *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return os.repo.ListOrders(ctx)
}

// UpdateStatus advances an order to target through the lifecycle engine
// and returns the updated order.
func (os *OrderService) UpdateStatus(ctx context.Context, id uint64, target string) (*models.Order, error) {
	order, err := os.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Advance(order.Status, target); err != nil {
		return nil, err
	}

	if err := os.repo.UpdateOrderStatus(ctx, id, target); err != nil {
		return nil, err
	}

	order.Status = target

	logger.Log.Info("order status updated",
		zap.Uint64("id", id),
		zap.String("status", target))

	return order, nil
}

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
