package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/brewboard/brewboard/internal/models"
)

// OrderLister is the read surface the export consumes.
type OrderLister interface {
	List(ctx context.Context) ([]models.Order, error)
}

// ExportService writes the reporting snapshot of all orders.
type ExportService struct {
	orders OrderLister
}

// NewExportService creates new ExportService instance
func NewExportService(orders OrderLister) *ExportService {
	return &ExportService{orders: orders}
}

var exportHeader = []string{
	"id", "customer_name", "drink_type", "milk_type", "flavor",
	"drizzle_type", "pickup_time", "status", "created_at",
}

// WriteCSV streams every order as CSV: all columns, no filtering,
// timestamps in RFC3339 UTC.
func (es *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	orders, err := es.orders.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, order := range orders {
		record := []string{
			strconv.FormatUint(order.ID, 10),
			order.CustomerName,
			order.DrinkType,
			order.MilkType,
			order.Flavor,
			order.DrizzleType,
			order.PickupTime,
			order.Status,
			order.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
