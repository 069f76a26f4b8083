package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	orders []models.Order
}

func (s stubLister) List(context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func TestExportService_WriteCSV(t *testing.T) {
	placed := time.Date(2025, time.January, 12, 15, 4, 5, 0, time.UTC)

	lister := stubLister{orders: []models.Order{
		{
			ID:           2,
			CustomerName: "Bo",
			DrinkType:    "Cold Brew",
			PickupTime:   "ASAP",
			Status:       models.OrderStatusComplete,
			CreatedAt:    placed,
		},
		{
			ID:           1,
			CustomerName: "Ana",
			DrinkType:    "Latte",
			MilkType:     "Oat",
			Flavor:       "Mocha",
			DrizzleType:  "None",
			PickupTime:   "ASAP",
			Status:       models.OrderStatusPending,
			CreatedAt:    placed,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewExportService(lister).WriteCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"id", "customer_name", "drink_type", "milk_type", "flavor", "drizzle_type", "pickup_time", "status", "created_at"},
		{"2", "Bo", "Cold Brew", "", "", "", "ASAP", "complete", "2025-01-12T15:04:05Z"},
		{"1", "Ana", "Latte", "Oat", "Mocha", "None", "ASAP", "pending", "2025-01-12T15:04:05Z"},
	}

	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExportService_WriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExportService(stubLister{}).WriteCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
