package repository

import (
	"context"
	"errors"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/brewboard/brewboard/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
)

const (
	insertOrderQuery = `
						INSERT INTO orders (customer_name, drink_type, milk_type, flavor, drizzle_type, pickup_time, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING id, customer_name, drink_type, milk_type, flavor, drizzle_type, pickup_time, status, created_at
`
	selectOrderByIDQuery = `
						SELECT id, customer_name, drink_type, milk_type, flavor, drizzle_type, pickup_time, status, created_at FROM orders
						WHERE id = $1
`
	selectOrdersQuery = `
						SELECT id, customer_name, drink_type, milk_type, flavor, drizzle_type, pickup_time, status, created_at FROM orders
						ORDER BY created_at DESC, id DESC
`
	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $1
						WHERE id = $2
`
)

// OrderRepository persists orders
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database. The id and created_at are
// assigned by the database atomically with the insert.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery,
		order.CustomerName,
		order.DrinkType,
		nullable(order.MilkType),
		nullable(order.Flavor),
		nullable(order.DrizzleType),
		nullable(order.PickupTime),
		order.Status,
	).Scan(
		&order.ID,
		&order.CustomerName,
		&order.DrinkType,
		scanNullable(&order.MilkType),
		scanNullable(&order.Flavor),
		scanNullable(&order.DrizzleType),
		scanNullable(&order.PickupTime),
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.DrinkType,
		scanNullable(&order.MilkType),
		scanNullable(&order.Flavor),
		scanNullable(&order.DrizzleType),
		scanNullable(&order.PickupTime),
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

// ListOrders returns all orders, newest first, ties broken by id descending
func (or *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.DrinkType,
			scanNullable(&order.MilkType),
			scanNullable(&order.Flavor),
			scanNullable(&order.DrizzleType),
			scanNullable(&order.PickupTime),
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus writes status for the given order id. It is a raw
// write: transition legality is the lifecycle engine's concern.
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, id uint64, status string) error {
	cmd, err := or.db.Exec(ctx, updateOrderStatusQuery, status, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}

	return nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullString scans a nullable text column into a plain string,
// treating NULL as empty.
type nullString struct {
	dst *string
}

func scanNullable(dst *string) *nullString {
	return &nullString{dst: dst}
}

func (n *nullString) Scan(src any) error {
	if src == nil {
		*n.dst = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*n.dst = v
	case []byte:
		*n.dst = string(v)
	default:
		return errors.New("nullString: source is not a string")
	}
	return nil
}
