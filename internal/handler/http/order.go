package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/go-chi/chi/v5"
)

// OrderService is the order surface the HTTP layer exposes.
type OrderService interface {
	// Submit validates a draft and persists it with status pending
	Submit(ctx context.Context, draft *models.Order) (*models.Order, error)
	// List returns all orders, newest first
	List(ctx context.Context) ([]models.Order, error)
	// UpdateStatus advances an order to target through the lifecycle engine
	UpdateStatus(ctx context.Context, id uint64, target string) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type submitOrderReq struct {
	CustomerName string `json:"customer_name"`
	DrinkType    string `json:"drink_type"`
	MilkType     string `json:"milk_type"`
	Flavor       string `json:"flavor"`
	DrizzleType  string `json:"drizzle_type"`
	PickupTime   string `json:"pickup_time"`
}

type submitOrderResp struct {
	OrderID uint64 `json:"order_id"`
}

// SubmitOrder accepts a customer order
// 201 — order accepted, body carries the assigned id;
// 400 — malformed body or validation failure;
// 500 — internal error.
func (oh *OrderHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitOrderReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		draft := models.Order{
			CustomerName: req.CustomerName,
			DrinkType:    req.DrinkType,
			MilkType:     req.MilkType,
			Flavor:       req.Flavor,
			DrizzleType:  req.DrizzleType,
			PickupTime:   req.PickupTime,
		}

		order, err := oh.svc.Submit(r.Context(), &draft)
		if err != nil {
			if errors.Is(err, models.ErrValidation) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(submitOrderResp{OrderID: order.ID})
	}
}

type orderResp struct {
	ID           uint64 `json:"id"`
	CustomerName string `json:"customer_name"`
	DrinkType    string `json:"drink_type"`
	MilkType     string `json:"milk_type,omitempty"`
	Flavor       string `json:"flavor,omitempty"`
	DrizzleType  string `json:"drizzle_type,omitempty"`
	PickupTime   string `json:"pickup_time,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

func toOrderResp(order models.Order) orderResp {
	return orderResp{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		DrinkType:    order.DrinkType,
		MilkType:     order.MilkType,
		Flavor:       order.Flavor,
		DrizzleType:  order.DrizzleType,
		PickupTime:   order.PickupTime,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListOrders returns all orders for the staff view
// 200 — orders, newest first;
// 401 — capability missing or invalid;
// 500 — internal error.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getCapabilityPayload(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orders, err := oh.svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]orderResp, 0, len(orders))
		for _, order := range orders {
			resp = append(resp, toOrderResp(order))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateOrderStatus advances an order
// 200 — status updated, body carries the updated order;
// 400 — missing status field or malformed id;
// 401 — capability missing or invalid;
// 404 — unknown order id;
// 409 — transition not allowed from the current status;
// 500 — internal error.
func (oh *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getCapabilityPayload(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		var req updateStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			http.Error(w, "missing status field", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidTransition):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toOrderResp(*order))
	}
}
