package service

import (
	"testing"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDisplay(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// 15:04 UTC is 9:04 AM in Chicago (CST)
	placed := time.Date(2025, time.January, 12, 15, 4, 0, 0, time.UTC)

	orders := []models.Order{
		{ID: 1, CustomerName: "Ana", DrinkType: "Latte", Status: models.OrderStatusPending, CreatedAt: placed},
		{ID: 2, CustomerName: "Bo", DrinkType: "Tea", Status: models.OrderStatusInProgress, CreatedAt: placed},
		{ID: 3, CustomerName: "Cy", DrinkType: "Cold Brew", Status: models.OrderStatusReady, CreatedAt: placed},
		{ID: 4, CustomerName: "Di", DrinkType: "Latte", Status: models.OrderStatusComplete, CreatedAt: placed},
		{ID: 5, CustomerName: "Ed", DrinkType: "Latte", Status: models.OrderStatusCancelled, CreatedAt: placed},
	}

	board := ProjectDisplay(orders, chicago)

	want := DisplayBoard{
		Ordered:   []DisplayEntry{{CustomerName: "Ana", DrinkType: "Latte", PlacedAt: "9:04 AM"}},
		Preparing: []DisplayEntry{{CustomerName: "Bo", DrinkType: "Tea", PlacedAt: "9:04 AM"}},
		Ready:     []DisplayEntry{{CustomerName: "Cy", DrinkType: "Cold Brew", PlacedAt: "9:04 AM"}},
	}

	if diff := cmp.Diff(want, board); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectDisplayEmpty(t *testing.T) {
	board := ProjectDisplay(nil, time.UTC)

	// buckets marshal as empty arrays, never null
	assert.NotNil(t, board.Ordered)
	assert.NotNil(t, board.Preparing)
	assert.NotNil(t, board.Ready)
	assert.Empty(t, board.Ordered)
}

func TestProjectDisplayNilLocationFallsBackToUTC(t *testing.T) {
	placed := time.Date(2025, time.January, 12, 15, 4, 0, 0, time.UTC)
	orders := []models.Order{
		{CustomerName: "Ana", DrinkType: "Latte", Status: models.OrderStatusPending, CreatedAt: placed},
	}

	board := ProjectDisplay(orders, nil)

	require.Len(t, board.Ordered, 1)
	assert.Equal(t, "3:04 PM", board.Ordered[0].PlacedAt)
}
