package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/go-chi/chi/v5"
)

// MenuService is the catalog surface the HTTP layer exposes.
type MenuService interface {
	// ListActive returns active labels of a category, placeholders excluded
	ListActive(ctx context.Context, category string) ([]string, error)
	// ListActiveFlavorsForDrink returns active flavors compatible with the drink
	ListActiveFlavorsForDrink(ctx context.Context, drinkLabel string) ([]string, error)
	// ListCatalog returns every row of a category for editing
	ListCatalog(ctx context.Context, category string) ([]models.MenuItem, error)
	// AddItem adds a new active catalog item
	AddItem(ctx context.Context, category, label string) (*models.MenuItem, error)
	// SetActive toggles a catalog item
	SetActive(ctx context.Context, id uint64, active bool) error
	// SetFlavorFlags sets the drink-family compatibility flags
	SetFlavorFlags(ctx context.Context, id uint64, espresso, coldBrew bool) error
}

// MenuHandler represents HTTP handler for catalog-related requests
type MenuHandler struct {
	svc MenuService
}

// NewMenuHandler creates new MenuHandler instance
func NewMenuHandler(svc MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

type menuResp struct {
	Category string   `json:"category"`
	Labels   []string `json:"labels"`
}

// ListMenu returns the active options of a category for the order form.
// For flavors, an optional drink query parameter restricts the list to
// the drink's family.
// 200 — labels in presentation order;
// 400 — unknown category;
// 500 — internal error.
func (mh *MenuHandler) ListMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		drink := r.URL.Query().Get("drink")

		var labels []string
		var err error
		if category == models.CategoryFlavor && drink != "" {
			labels, err = mh.svc.ListActiveFlavorsForDrink(r.Context(), drink)
		} else {
			labels, err = mh.svc.ListActive(r.Context(), category)
		}
		if err != nil {
			if errors.Is(err, models.ErrValidation) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(menuResp{Category: category, Labels: labels})
	}
}

type menuItemResp struct {
	ID              uint64 `json:"id"`
	Category        string `json:"category"`
	Label           string `json:"label"`
	Active          bool   `json:"active"`
	SortOrder       int    `json:"sort_order"`
	EspressoEnabled bool   `json:"espresso_enabled"`
	ColdBrewEnabled bool   `json:"cold_brew_enabled"`
}

func toMenuItemResp(item models.MenuItem) menuItemResp {
	return menuItemResp{
		ID:              item.ID,
		Category:        item.Category,
		Label:           item.Label,
		Active:          item.Active,
		SortOrder:       item.SortOrder,
		EspressoEnabled: item.EspressoEnabled,
		ColdBrewEnabled: item.ColdBrewEnabled,
	}
}

// ListCatalog returns every row of a category for the editing view
// 200 — rows in presentation order;
// 400 — unknown category;
// 401 — capability missing or invalid;
// 500 — internal error.
func (mh *MenuHandler) ListCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getCapabilityPayload(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := mh.svc.ListCatalog(r.Context(), chi.URLParam(r, "category"))
		if err != nil {
			if errors.Is(err, models.ErrValidation) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := make([]menuItemResp, 0, len(items))
		for _, item := range items {
			resp = append(resp, toMenuItemResp(item))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

type addMenuItemReq struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// AddMenuItem adds a catalog item
// 201 — item created, body carries the stored row;
// 400 — malformed body, unknown category or empty label;
// 401 — capability missing or invalid;
// 409 — (category, label) already exists;
// 500 — internal error.
func (mh *MenuHandler) AddMenuItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getCapabilityPayload(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addMenuItemReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		item, err := mh.svc.AddItem(r.Context(), req.Category, req.Label)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrValidation):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrDuplicateMenuItem):
				http.Error(w, "menu item already exists", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toMenuItemResp(*item))
	}
}

type updateMenuItemReq struct {
	Active          *bool `json:"active"`
	EspressoEnabled *bool `json:"espresso_enabled"`
	ColdBrewEnabled *bool `json:"cold_brew_enabled"`
}

// UpdateMenuItem toggles activation or the flavor family flags.
// Family flags must be set together.
// 200 — update applied;
// 400 — malformed body or id, or no recognized field present;
// 401 — capability missing or invalid;
// 404 — unknown item id;
// 500 — internal error.
func (mh *MenuHandler) UpdateMenuItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getCapabilityPayload(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad item id", http.StatusBadRequest)
			return
		}

		var req updateMenuItemReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		switch {
		case req.Active != nil:
			err = mh.svc.SetActive(r.Context(), id, *req.Active)
		case req.EspressoEnabled != nil && req.ColdBrewEnabled != nil:
			err = mh.svc.SetFlavorFlags(r.Context(), id, *req.EspressoEnabled, *req.ColdBrewEnabled)
		default:
			http.Error(w, "nothing to update", http.StatusBadRequest)
			return
		}

		if err != nil {
			if errors.Is(err, models.ErrMenuItemNotFound) {
				http.Error(w, "menu item not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
