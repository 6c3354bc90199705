package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingListItem represents a row of the shopping_list table.
// Price is kept in its text encoding so values such as "13.00" round-trip unchanged.
type ShoppingListItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	DateAdded time.Time `json:"date_added"`
	Checked   bool      `json:"checked"`
	Category  string    `json:"category"`
}

// NewShoppingListItem carries the fields supplied on insert.
// Empty strings and nil pointers are treated as not supplied; the store applies its defaults
// (date_added, checked) or rejects the row (name, price, category).
type NewShoppingListItem struct {
	Name      string     `json:"name"`
	Price     string     `json:"price"`
	Category  string     `json:"category"`
	DateAdded *time.Time `json:"date_added,omitempty"`
	Checked   *bool      `json:"checked,omitempty"`
}

// ShoppingListItemUpdate is a partial update. Nil fields keep their stored value.
type ShoppingListItemUpdate struct {
	Name      *string    `json:"name,omitempty"`
	Price     *string    `json:"price,omitempty"`
	Category  *string    `json:"category,omitempty"`
	DateAdded *time.Time `json:"date_added,omitempty"`
	Checked   *bool      `json:"checked,omitempty"`
}

// IsEmpty reports whether no field is set.
func (u ShoppingListItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Category == nil && u.DateAdded == nil && u.Checked == nil
}

// ItemSummary is the reduced projection returned by date-filtered reports.
type ItemSummary struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
}

// CategoryTotal is the summed price of every item in a category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
