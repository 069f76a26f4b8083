package models

import "time"

// order status
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusReady      = "ready"
	OrderStatusComplete   = "complete"
	OrderStatusCancelled  = "cancelled"
)

// PickupASAP is the sentinel pickup time accepted under every slot policy.
const PickupASAP = "ASAP"

// Order is order entity
type Order struct {
	ID           uint64
	CustomerName string
	DrinkType    string
	MilkType     string
	Flavor       string
	DrizzleType  string
	PickupTime   string
	Status       string
	CreatedAt    time.Time
}

// IsTerminalStatus reports whether status permits no further transition.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusComplete || status == OrderStatusCancelled
}

// IsKnownStatus reports whether status is one of the defined order statuses.
func IsKnownStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusReady,
		OrderStatusComplete, OrderStatusCancelled:
		return true
	}
	return false
}
