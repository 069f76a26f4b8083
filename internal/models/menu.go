package models

// menu category
const (
	CategoryDrink   = "drink"
	CategoryMilk    = "milk"
	CategoryFlavor  = "flavor"
	CategoryDrizzle = "drizzle"
)

// MenuItem is a selectable option within one catalog category.
// Items are never deleted, only deactivated, so labels referenced
// by historical orders always stay resolvable.
type MenuItem struct {
	ID       uint64
	Category string
	Label    string
	Active   bool
	// SortOrder controls presentation order within the category.
	// 0 is reserved for the category placeholder row.
	SortOrder int
	// family flags, meaningful for flavor rows only
	EspressoEnabled bool
	ColdBrewEnabled bool
}

// IsPlaceholder reports whether the item is the category's
// "not a real selection" sentinel.
func (m MenuItem) IsPlaceholder() bool {
	return m.SortOrder == 0
}

// IsKnownCategory reports whether category is one of the catalog categories.
func IsKnownCategory(category string) bool {
	switch category {
	case CategoryDrink, CategoryMilk, CategoryFlavor, CategoryDrizzle:
		return true
	}
	return false
}

// TimeSlot is a pickup slot offered by the enumerated pickup policy.
type TimeSlot struct {
	ID     uint64
	Label  string
	Active bool
}
