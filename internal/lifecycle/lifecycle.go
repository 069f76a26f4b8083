// Package lifecycle owns the order status state machine. Every status
// mutation goes through Advance; the repository write itself is raw.
package lifecycle

import (
	"fmt"

	"github.com/brewboard/brewboard/internal/models"
)

// transitions holds the allowed next statuses for each non-terminal
// status. Progression is strictly linear, with cancellation reachable
// from any non-terminal status.
var transitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusInProgress, models.OrderStatusCancelled},
	models.OrderStatusInProgress: {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:      {models.OrderStatusComplete, models.OrderStatusCancelled},
}

// Allowed reports whether an order in status from may move to status to.
func Allowed(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Advance validates the transition from -> to. It returns an error
// wrapping models.ErrInvalidTransition when the move is illegal,
// including any move out of a terminal status.
func Advance(from, to string) error {
	if !models.IsKnownStatus(to) {
		return fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, to)
	}
	if models.IsTerminalStatus(from) {
		return fmt.Errorf("%w: order is already %s", models.ErrInvalidTransition, from)
	}
	if !Allowed(from, to) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, from, to)
	}
	return nil
}
