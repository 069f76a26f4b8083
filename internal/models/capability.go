package models

import "time"

// CapabilityPayload is the verified content of a capability token.
// Holding one proves a successful passcode authentication and unlocks
// status mutation, order listing/export and catalog editing.
type CapabilityPayload struct {
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
