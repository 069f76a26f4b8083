// Package pickup computes which pickup times an order form may offer.
package pickup

import (
	"time"

	"github.com/brewboard/brewboard/internal/logger"
	"github.com/brewboard/brewboard/internal/models"
	"go.uber.org/zap"
)

// Policy yields the pickup labels still valid at the given moment.
type Policy interface {
	Available(now time.Time) []string
}

// ASAPOnly offers no timed slots: pickup is always "ASAP".
type ASAPOnly struct{}

// NewASAPOnly creates the default pickup policy
func NewASAPOnly() ASAPOnly {
	return ASAPOnly{}
}

func (ASAPOnly) Available(time.Time) []string {
	return []string{models.PickupASAP}
}

// slot label formats seen in practice: "9:30", "10"
var slotLayouts = []string{"15:04", "15"}

// Enumerated offers a fixed sequence of timed labels plus the perpetual
// "ASAP" sentinel. A timed label is kept only while its same-day
// wall-clock time in loc has not yet passed.
type Enumerated struct {
	labels []string
	loc    *time.Location
}

// NewEnumerated creates a slot policy over the given labels
func NewEnumerated(labels []string, loc *time.Location) Enumerated {
	if loc == nil {
		loc = time.UTC
	}
	return Enumerated{labels: labels, loc: loc}
}

func (e Enumerated) Available(now time.Time) []string {
	local := now.In(e.loc)
	out := []string{models.PickupASAP}

	for _, label := range e.labels {
		t, err := parseSlot(label)
		if err != nil {
			// malformed label, skip it
			logger.Log.Warn("skipping unparsable pickup slot", zap.String("label", label), zap.Error(err))
			continue
		}
		slot := time.Date(local.Year(), local.Month(), local.Day(), t.Hour(), t.Minute(), 0, 0, e.loc)
		if !slot.Before(local) {
			out = append(out, label)
		}
	}

	return out
}

func parseSlot(label string) (time.Time, error) {
	var lastErr error
	for _, layout := range slotLayouts {
		t, err := time.Parse(layout, label)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Offered reports whether label is currently offered by the policy.
func Offered(p Policy, label string, now time.Time) bool {
	for _, slot := range p.Available(now) {
		if slot == label {
			return true
		}
	}
	return false
}
