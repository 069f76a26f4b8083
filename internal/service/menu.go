package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/brewboard/brewboard/internal/logger"
	"github.com/brewboard/brewboard/internal/models"
	"go.uber.org/zap"
)

// coldBrewLabel classifies a drink into the cold-brew family when its
// lowercase form matches; every other drink is espresso-family.
const coldBrewLabel = "cold brew"

// MenuRepository is interface for interacting with catalog data
type MenuRepository interface {
	// CreateItem inserts a new catalog item, appending it to the category ordering
	CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	// ListByCategory returns all rows of a category
	ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	// ListActiveByCategory returns active rows of a category
	ListActiveByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	// SetActive toggles item activation
	SetActive(ctx context.Context, id uint64, active bool) error
	// SetFlavorFlags sets the drink-family compatibility flags
	SetFlavorFlags(ctx context.Context, id uint64, espresso, coldBrew bool) error
	// CountItems returns the total number of catalog rows
	CountItems(ctx context.Context) (int64, error)
	// SeedDefaults inserts items with explicit sort orders in one transaction
	SeedDefaults(ctx context.Context, items []models.MenuItem) error
}

// MenuService owns the configurable option catalog
type MenuService struct {
	repo MenuRepository
}

// NewMenuService creates new MenuService instance
func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// EnsureSeeded populates an empty catalog with the default option set.
// Each category gets a placeholder row at sort order zero so the form
// layer can force an explicit choice. A non-empty catalog is left alone.
func (ms *MenuService) EnsureSeeded(ctx context.Context) error {
	count, err := ms.repo.CountItems(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := ms.repo.SeedDefaults(ctx, defaultCatalog()); err != nil {
		return err
	}

	logger.Log.Info("seeded default menu catalog")
	return nil
}

func defaultCatalog() []models.MenuItem {
	item := func(category, label string, sortOrder int) models.MenuItem {
		return models.MenuItem{
			Category:        category,
			Label:           label,
			Active:          true,
			SortOrder:       sortOrder,
			EspressoEnabled: true,
			ColdBrewEnabled: true,
		}
	}
	flavor := func(label string, sortOrder int, espresso, coldBrew bool) models.MenuItem {
		return models.MenuItem{
			Category:        models.CategoryFlavor,
			Label:           label,
			Active:          true,
			SortOrder:       sortOrder,
			EspressoEnabled: espresso,
			ColdBrewEnabled: coldBrew,
		}
	}

	return []models.MenuItem{
		item(models.CategoryDrink, "Choose a drink", 0),
		item(models.CategoryDrink, "Latte", 1),
		item(models.CategoryDrink, "Cappuccino", 2),
		item(models.CategoryDrink, "Drip Coffee", 3),
		item(models.CategoryDrink, "Tea", 4),
		item(models.CategoryDrink, "Cold Brew", 5),

		item(models.CategoryMilk, "Choose a milk", 0),
		item(models.CategoryMilk, "Whole", 1),
		item(models.CategoryMilk, "Oat", 2),
		item(models.CategoryMilk, "Fairlife Milk", 3),
		item(models.CategoryMilk, "None", 4),

		flavor("Choose a flavor", 0, true, true),
		flavor("Caramel", 1, true, true),
		flavor("Mocha", 2, true, true),
		flavor("Hazelnut", 3, true, false),
		flavor("Seasonal", 4, true, true),

		item(models.CategoryDrizzle, "Choose a drizzle", 0),
		item(models.CategoryDrizzle, "Caramel", 1),
		item(models.CategoryDrizzle, "Chocolate", 2),
		item(models.CategoryDrizzle, "None", 3),
	}
}

// ListActive returns active labels of a category in presentation order,
// placeholder rows excluded.
func (ms *MenuService) ListActive(ctx context.Context, category string) ([]string, error) {
	if !models.IsKnownCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrValidation, category)
	}

	items, err := ms.repo.ListActiveByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	labels := []string{}
	for _, item := range items {
		if item.IsPlaceholder() {
			continue
		}
		labels = append(labels, item.Label)
	}

	return labels, nil
}

// ListActiveFlavorsForDrink returns active flavor labels compatible with
// the drink's family.
func (ms *MenuService) ListActiveFlavorsForDrink(ctx context.Context, drinkLabel string) ([]string, error) {
	coldBrew := strings.ToLower(drinkLabel) == coldBrewLabel

	items, err := ms.repo.ListActiveByCategory(ctx, models.CategoryFlavor)
	if err != nil {
		return nil, err
	}

	labels := []string{}
	for _, item := range items {
		if item.IsPlaceholder() {
			continue
		}
		if coldBrew && !item.ColdBrewEnabled {
			continue
		}
		if !coldBrew && !item.EspressoEnabled {
			continue
		}
		labels = append(labels, item.Label)
	}

	return labels, nil
}

// ListCatalog returns every row of a category, inactive and placeholder
// rows included, for the catalog editing view.
func (ms *MenuService) ListCatalog(ctx context.Context, category string) ([]models.MenuItem, error) {
	if !models.IsKnownCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrValidation, category)
	}
	return ms.repo.ListByCategory(ctx, category)
}

// AddItem adds a new active catalog item at the end of the category
// ordering. The (category, label) pair must be unique; the match is
// case-sensitive, mirroring the store constraint.
func (ms *MenuService) AddItem(ctx context.Context, category, label string) (*models.MenuItem, error) {
	if !models.IsKnownCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrValidation, category)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: label", models.ErrValidation)
	}

	item := models.MenuItem{
		Category:        category,
		Label:           label,
		Active:          true,
		EspressoEnabled: true,
		ColdBrewEnabled: true,
	}

	created, err := ms.repo.CreateItem(ctx, &item)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("menu item added",
		zap.String("category", category),
		zap.String("label", label))

	return created, nil
}

// SetActive toggles a catalog item. Deactivation removes the item from
// new submissions only; orders already referencing the label keep it.
func (ms *MenuService) SetActive(ctx context.Context, id uint64, active bool) error {
	return ms.repo.SetActive(ctx, id, active)
}

// SetFlavorFlags sets which drink families a flavor is offered for.
func (ms *MenuService) SetFlavorFlags(ctx context.Context, id uint64, espresso, coldBrew bool) error {
	return ms.repo.SetFlavorFlags(ctx, id, espresso, coldBrew)
}
