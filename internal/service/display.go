package service

import (
	"time"

	"github.com/brewboard/brewboard/internal/models"
)

// DisplayEntry is one row on the public board
type DisplayEntry struct {
	CustomerName string `json:"customer_name"`
	DrinkType    string `json:"drink_type"`
	PlacedAt     string `json:"placed_at"`
}

// DisplayBoard groups active orders by progress for the public display
type DisplayBoard struct {
	Ordered   []DisplayEntry `json:"ordered"`
	Preparing []DisplayEntry `json:"preparing"`
	Ready     []DisplayEntry `json:"ready"`
}

// ProjectDisplay buckets orders for the public board. Completed and
// cancelled orders are dropped. Pure function, recomputed on every read.
func ProjectDisplay(orders []models.Order, loc *time.Location) DisplayBoard {
	if loc == nil {
		loc = time.UTC
	}

	board := DisplayBoard{
		Ordered:   []DisplayEntry{},
		Preparing: []DisplayEntry{},
		Ready:     []DisplayEntry{},
	}

	for _, order := range orders {
		entry := DisplayEntry{
			CustomerName: order.CustomerName,
			DrinkType:    order.DrinkType,
			PlacedAt:     order.CreatedAt.In(loc).Format("3:04 PM"),
		}

		switch order.Status {
		case models.OrderStatusPending:
			board.Ordered = append(board.Ordered, entry)
		case models.OrderStatusInProgress:
			board.Preparing = append(board.Preparing, entry)
		case models.OrderStatusReady:
			board.Ready = append(board.Ready, entry)
		}
	}

	return board
}
