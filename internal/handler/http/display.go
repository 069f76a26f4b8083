package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/brewboard/brewboard/internal/pickup"
	"github.com/brewboard/brewboard/internal/service"
)

// OrderReader is the read-only order surface for the public board.
type OrderReader interface {
	List(ctx context.Context) ([]models.Order, error)
}

// DisplayHandler serves the public status board
type DisplayHandler struct {
	orders OrderReader
	loc    *time.Location
}

// NewDisplayHandler creates new DisplayHandler instance
func NewDisplayHandler(orders OrderReader, loc *time.Location) *DisplayHandler {
	return &DisplayHandler{orders: orders, loc: loc}
}

// Board projects active orders into the three display buckets
// 200 — board with ordered/preparing/ready buckets;
// 500 — internal error.
func (dh *DisplayHandler) Board() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := dh.orders.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		board := service.ProjectDisplay(orders, dh.loc)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(board)
	}
}

// SlotsHandler serves the pickup times the order form may offer
type SlotsHandler struct {
	policy pickup.Policy
}

// NewSlotsHandler creates new SlotsHandler instance
func NewSlotsHandler(policy pickup.Policy) *SlotsHandler {
	return &SlotsHandler{policy: policy}
}

type slotsResp struct {
	Slots []string `json:"slots"`
}

// Slots returns the currently available pickup labels
func (sh *SlotsHandler) Slots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(slotsResp{Slots: sh.policy.Available(time.Now())})
	}
}
