package repository

import (
	"context"

	"github.com/brewboard/brewboard/internal/models"
	"github.com/brewboard/brewboard/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	insertMenuItemQuery = `
						INSERT INTO menu_options (category, label, active, sort_order, espresso_enabled, cold_brew_enabled)
						VALUES ($1, $2, $3, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM menu_options WHERE category = $1), $4, $5)
						RETURNING id, category, label, active, sort_order, espresso_enabled, cold_brew_enabled
`
	insertSeedItemQuery = `
						INSERT INTO menu_options (category, label, active, sort_order, espresso_enabled, cold_brew_enabled)
						VALUES ($1, $2, $3, $4, $5, $6)
`
	selectMenuByCategoryQuery = `
						SELECT id, category, label, active, sort_order, espresso_enabled, cold_brew_enabled FROM menu_options
						WHERE category = $1
						ORDER BY sort_order, label
`
	selectActiveMenuByCategoryQuery = `
						SELECT id, category, label, active, sort_order, espresso_enabled, cold_brew_enabled FROM menu_options
						WHERE category = $1 AND active = TRUE
						ORDER BY sort_order, label
`
	updateMenuActiveQuery = `
						UPDATE menu_options
						SET active = $1
						WHERE id = $2
`
	updateFlavorFlagsQuery = `
						UPDATE menu_options
						SET espresso_enabled = $1, cold_brew_enabled = $2
						WHERE id = $3
`
	countMenuItemsQuery = `
						SELECT COUNT(*) FROM menu_options
`
)

// MenuRepository persists catalog options
type MenuRepository struct {
	db *postgres.DB
}

// NewMenuRepository creates new MenuRepository instance
func NewMenuRepository(db *postgres.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// CreateItem inserts a new catalog item. Its sort_order is computed in
// the same statement as max within the category plus one, so new items
// append to the end of the category ordering even under concurrent adds.
func (mr *MenuRepository) CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	err := mr.db.QueryRow(ctx, insertMenuItemQuery,
		item.Category, item.Label, item.Active, item.EspressoEnabled, item.ColdBrewEnabled,
	).Scan(
		&item.ID, &item.Category, &item.Label, &item.Active,
		&item.SortOrder, &item.EspressoEnabled, &item.ColdBrewEnabled,
	)
	if err != nil {
		if errCode := mr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrDuplicateMenuItem
		}
		return nil, err
	}

	return item, nil
}

// ListByCategory returns all catalog rows of a category, ordered by
// sort_order then label.
func (mr *MenuRepository) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return mr.list(ctx, selectMenuByCategoryQuery, category)
}

// ListActiveByCategory returns only active rows of a category, ordered by
// sort_order then label.
func (mr *MenuRepository) ListActiveByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return mr.list(ctx, selectActiveMenuByCategoryQuery, category)
}

func (mr *MenuRepository) list(ctx context.Context, query, category string) ([]models.MenuItem, error) {
	rows, err := mr.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}

	for rows.Next() {
		item := models.MenuItem{}
		err = rows.Scan(
			&item.ID, &item.Category, &item.Label, &item.Active,
			&item.SortOrder, &item.EspressoEnabled, &item.ColdBrewEnabled,
		)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// SetActive toggles item activation
func (mr *MenuRepository) SetActive(ctx context.Context, id uint64, active bool) error {
	cmd, err := mr.db.Exec(ctx, updateMenuActiveQuery, active, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrMenuItemNotFound
	}

	return nil
}

// SetFlavorFlags sets the drink-family compatibility flags
func (mr *MenuRepository) SetFlavorFlags(ctx context.Context, id uint64, espresso, coldBrew bool) error {
	cmd, err := mr.db.Exec(ctx, updateFlavorFlagsQuery, espresso, coldBrew, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrMenuItemNotFound
	}

	return nil
}

// CountItems returns the total number of catalog rows
func (mr *MenuRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64
	if err := mr.db.QueryRow(ctx, countMenuItemsQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SeedDefaults inserts the given items in one transaction, preserving
// their explicit sort_order values. Used only on an empty catalog.
func (mr *MenuRepository) SeedDefaults(ctx context.Context, items []models.MenuItem) error {
	tx, err := mr.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		_, err := tx.Exec(ctx, insertSeedItemQuery,
			item.Category, item.Label, item.Active, item.SortOrder,
			item.EspressoEnabled, item.ColdBrewEnabled,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
