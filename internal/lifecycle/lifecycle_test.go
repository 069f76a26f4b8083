package lifecycle

import (
	"testing"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{name: "pending_to_in_progress", from: models.OrderStatusPending, to: models.OrderStatusInProgress},
		{name: "in_progress_to_ready", from: models.OrderStatusInProgress, to: models.OrderStatusReady},
		{name: "ready_to_complete", from: models.OrderStatusReady, to: models.OrderStatusComplete},
		{name: "pending_to_cancelled", from: models.OrderStatusPending, to: models.OrderStatusCancelled},
		{name: "in_progress_to_cancelled", from: models.OrderStatusInProgress, to: models.OrderStatusCancelled},
		{name: "ready_to_cancelled", from: models.OrderStatusReady, to: models.OrderStatusCancelled},

		// jumps the permissive UI allowed, rejected here
		{name: "pending_to_ready_rejected", from: models.OrderStatusPending, to: models.OrderStatusReady, wantErr: true},
		{name: "pending_to_complete_rejected", from: models.OrderStatusPending, to: models.OrderStatusComplete, wantErr: true},
		{name: "in_progress_to_complete_rejected", from: models.OrderStatusInProgress, to: models.OrderStatusComplete, wantErr: true},

		{name: "no_backwards_move", from: models.OrderStatusReady, to: models.OrderStatusInProgress, wantErr: true},
		{name: "no_external_pending", from: models.OrderStatusInProgress, to: models.OrderStatusPending, wantErr: true},

		{name: "complete_is_terminal", from: models.OrderStatusComplete, to: models.OrderStatusCancelled, wantErr: true},
		{name: "cancelled_is_terminal", from: models.OrderStatusCancelled, to: models.OrderStatusInProgress, wantErr: true},
		{name: "terminal_self_move_rejected", from: models.OrderStatusComplete, to: models.OrderStatusComplete, wantErr: true},

		{name: "unknown_target_rejected", from: models.OrderStatusPending, to: "brewing", wantErr: true},
		{name: "unknown_source_rejected", from: "queued", to: models.OrderStatusInProgress, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Advance(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(models.OrderStatusPending, models.OrderStatusInProgress))
	assert.False(t, Allowed(models.OrderStatusComplete, models.OrderStatusCancelled))
	assert.False(t, Allowed(models.OrderStatusPending, models.OrderStatusPending))
}
