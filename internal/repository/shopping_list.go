package repository

import (
	"context"
	"errors"

	"shoppinglist/internal/model"
)

// ErrNoFields is returned by Update when the update sets no column.
var ErrNoFields = errors.New("no fields to update")

// ShoppingListRepository defines data access for the shopping_list table.
// Every method issues exactly one parameterized statement. No business logic here.
type ShoppingListRepository interface {
	// List returns every item ordered by id. An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]model.ShoppingListItem, error)

	// FindByID returns the item with the given id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.ShoppingListItem, error)

	// Create inserts the supplied columns and returns the stored row, including the generated id.
	Create(ctx context.Context, item model.NewShoppingListItem) (*model.ShoppingListItem, error)

	// Update applies a partial update. Updating a missing id affects zero rows and is not an error.
	Update(ctx context.Context, id int64, fields model.ShoppingListItemUpdate) error

	// Delete removes the item by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error

	// SearchByName returns items whose name contains term, case-insensitively.
	SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error)

	// ListPage returns one page of items ordered by id.
	ListPage(ctx context.Context, pq PageQuery) ([]model.ShoppingListItem, error)

	// AddedWithinDays returns items whose date_added is later than now minus days.
	AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error)

	// SumByCategory returns the summed price per category, ordered by category.
	SumByCategory(ctx context.Context) ([]model.CategoryTotal, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
