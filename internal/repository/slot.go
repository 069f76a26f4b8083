package repository

import (
	"context"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/brewboard/brewboard/internal/repository/postgres"
)

const selectActiveSlotsQuery = `
						SELECT id, label, active FROM time_slots
						WHERE active = TRUE
						ORDER BY id
`

// SlotRepository reads the configured pickup time slots
type SlotRepository struct {
	db *postgres.DB
}

// NewSlotRepository creates new SlotRepository instance
func NewSlotRepository(db *postgres.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// ListActiveSlots returns active slots in insertion order
func (sr *SlotRepository) ListActiveSlots(ctx context.Context) ([]models.TimeSlot, error) {
	rows, err := sr.db.Query(ctx, selectActiveSlotsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []models.TimeSlot{}

	for rows.Next() {
		slot := models.TimeSlot{}
		if err := rows.Scan(&slot.ID, &slot.Label, &slot.Active); err != nil {
			continue
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
