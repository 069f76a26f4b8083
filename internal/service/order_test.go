package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/brewboard/brewboard/internal/pickup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepo is an in-memory OrderRepository with the store's
// guarantees: monotonic unique ids and atomic writes.
type stubOrderRepo struct {
	mu     sync.Mutex
	nextID uint64
	orders map[uint64]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[uint64]*models.Order{}}
}

func (s *stubOrderRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	order.ID = s.nextID
	order.CreatedAt = time.Now().UTC()

	stored := *order
	s.orders[order.ID] = &stored
	return order, nil
}

func (s *stubOrderRepo) GetOrderByID(_ context.Context, id uint64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *stubOrderRepo) ListOrders(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// newest first, ids are monotonic
	orders := []models.Order{}
	for id := s.nextID; id >= 1; id-- {
		if order, ok := s.orders[id]; ok {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (s *stubOrderRepo) UpdateOrderStatus(_ context.Context, id uint64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

// stubCatalog serves a fixed active option set.
type stubCatalog struct{}

func (stubCatalog) ListActive(_ context.Context, category string) ([]string, error) {
	switch category {
	case models.CategoryDrink:
		return []string{"Latte", "Cold Brew", "Tea"}, nil
	case models.CategoryMilk:
		return []string{"Whole", "Oat", "None"}, nil
	case models.CategoryDrizzle:
		return []string{"Caramel", "None"}, nil
	}
	return []string{}, nil
}

func (stubCatalog) ListActiveFlavorsForDrink(_ context.Context, drinkLabel string) ([]string, error) {
	if strings.EqualFold(drinkLabel, "Cold Brew") {
		return []string{"Caramel", "Mocha"}, nil
	}
	return []string{"Caramel", "Mocha", "Hazelnut"}, nil
}

func newTestOrderService(repo *stubOrderRepo) *OrderService {
	return NewOrderService(repo, stubCatalog{}, pickup.NewASAPOnly())
}

func TestOrderService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.Order
		wantErr error
	}{
		{
			name:  "valid_full_draft",
			draft: models.Order{CustomerName: "Ana", DrinkType: "Latte", MilkType: "Oat", Flavor: "Mocha", DrizzleType: "None"},
		},
		{
			name:  "valid_minimal_draft",
			draft: models.Order{CustomerName: "Bo", DrinkType: "Tea"},
		},
		{
			name:    "missing_name",
			draft:   models.Order{DrinkType: "Latte"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "blank_name",
			draft:   models.Order{CustomerName: "   ", DrinkType: "Latte"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "missing_drink",
			draft:   models.Order{CustomerName: "Ana"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "inactive_drink",
			draft:   models.Order{CustomerName: "Ana", DrinkType: "Frappe"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "unknown_milk",
			draft:   models.Order{CustomerName: "Ana", DrinkType: "Latte", MilkType: "Soy"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "flavor_not_in_drink_family",
			draft:   models.Order{CustomerName: "Ana", DrinkType: "Cold Brew", Flavor: "Hazelnut"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "unknown_drizzle",
			draft:   models.Order{CustomerName: "Ana", DrinkType: "Latte", DrizzleType: "Honey"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "pickup_slot_not_offered",
			draft:   models.Order{CustomerName: "Ana", DrinkType: "Latte", PickupTime: "9:30"},
			wantErr: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubOrderRepo()
			svc := newTestOrderService(repo)

			order, err := svc.Submit(context.Background(), &tt.draft)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				orders, _ := repo.ListOrders(context.Background())
				assert.Empty(t, orders, "failed submission must not persist a row")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(1), order.ID)
			assert.Equal(t, models.OrderStatusPending, order.Status)
			assert.False(t, order.CreatedAt.IsZero())
			assert.Equal(t, models.PickupASAP, order.PickupTime)
		})
	}
}

func TestOrderService_SubmitConcurrentDistinctIDs(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo)

	const n = 8
	ids := make(chan uint64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			draft := models.Order{CustomerName: "Ana", DrinkType: "Latte"}
			order, err := svc.Submit(context.Background(), &draft)
			if assert.NoError(t, err) {
				ids <- order.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate order id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	orders, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, n)
	for i := 1; i < len(orders); i++ {
		assert.Greater(t, orders[i-1].ID, orders[i].ID, "orders must come back newest first")
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, svc *OrderService) uint64 {
		draft := models.Order{CustomerName: "Ana", DrinkType: "Latte"}
		order, err := svc.Submit(ctx, &draft)
		require.NoError(t, err)
		return order.ID
	}

	t.Run("full_progression", func(t *testing.T) {
		svc := newTestOrderService(newStubOrderRepo())
		id := submit(t, svc)

		for _, target := range []string{
			models.OrderStatusInProgress,
			models.OrderStatusReady,
			models.OrderStatusComplete,
		} {
			order, err := svc.UpdateStatus(ctx, id, target)
			require.NoError(t, err)
			assert.Equal(t, target, order.Status)
		}
	})

	t.Run("strict_policy_rejects_jump", func(t *testing.T) {
		svc := newTestOrderService(newStubOrderRepo())
		id := submit(t, svc)

		_, err := svc.UpdateStatus(ctx, id, models.OrderStatusComplete)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("terminal_rejects_everything", func(t *testing.T) {
		svc := newTestOrderService(newStubOrderRepo())
		id := submit(t, svc)

		_, err := svc.UpdateStatus(ctx, id, models.OrderStatusCancelled)
		require.NoError(t, err)

		for _, target := range []string{
			models.OrderStatusPending,
			models.OrderStatusInProgress,
			models.OrderStatusReady,
			models.OrderStatusComplete,
			models.OrderStatusCancelled,
		} {
			_, err := svc.UpdateStatus(ctx, id, target)
			assert.ErrorIs(t, err, models.ErrInvalidTransition)
		}
	})

	t.Run("unknown_order", func(t *testing.T) {
		svc := newTestOrderService(newStubOrderRepo())

		_, err := svc.UpdateStatus(ctx, 42, models.OrderStatusInProgress)
		assert.ErrorIs(t, err, models.ErrOrderNotFound)
	})

	t.Run("unknown_target_status", func(t *testing.T) {
		svc := newTestOrderService(newStubOrderRepo())
		id := submit(t, svc)

		_, err := svc.UpdateStatus(ctx, id, "brewing")
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	})
}

func TestOrderService_CompletedOrderLeavesDisplay(t *testing.T) {
	ctx := context.Background()
	svc := newTestOrderService(newStubOrderRepo())

	draft := models.Order{CustomerName: "Ana", DrinkType: "Latte", MilkType: "Oat", Flavor: "Mocha", DrizzleType: "None"}
	order, err := svc.Submit(ctx, &draft)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), order.ID)

	for _, target := range []string{
		models.OrderStatusInProgress,
		models.OrderStatusReady,
		models.OrderStatusComplete,
	} {
		_, err := svc.UpdateStatus(ctx, order.ID, target)
		require.NoError(t, err)
	}

	orders, err := svc.List(ctx)
	require.NoError(t, err)

	board := ProjectDisplay(orders, time.UTC)
	assert.Empty(t, board.Ordered)
	assert.Empty(t, board.Preparing)
	assert.Empty(t, board.Ready)
}
