package service

import (
	"context"
	"database/sql"
	"errors"

	"shoppinglist/internal/model"
	"shoppinglist/internal/repository"
)

var ErrNotFound = errors.New("shopping list item not found")

// ShoppingListService defines the CRUD use cases over the shopping list.
// Each call issues one statement against the caller-owned store; store errors are returned as-is.
type ShoppingListService interface {
	// GetAllItems returns every item; an empty table yields an empty slice.
	GetAllItems(ctx context.Context) ([]model.ShoppingListItem, error)

	// GetByID returns a single item, or ErrNotFound when no row has that id.
	GetByID(ctx context.Context, id int64) (*model.ShoppingListItem, error)

	// InsertItem stores a new item and returns it with its generated id.
	// Missing required fields surface as store constraint errors.
	InsertItem(ctx context.Context, item model.NewShoppingListItem) (*model.ShoppingListItem, error)

	// UpdateItem applies a partial update. Updating a missing id silently succeeds;
	// callers confirm with GetByID.
	UpdateItem(ctx context.Context, id int64, fields model.ShoppingListItemUpdate) error

	// DeleteItem removes an item. Deleting a missing id is a no-op.
	DeleteItem(ctx context.Context, id int64) error
}

type shoppingListService struct {
	repo repository.ShoppingListRepository
}

// NewShoppingListService constructs a new ShoppingListService.
func NewShoppingListService(repo repository.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{repo: repo}
}

func (s *shoppingListService) GetAllItems(ctx context.Context) ([]model.ShoppingListItem, error) {
	return s.repo.List(ctx)
}

func (s *shoppingListService) GetByID(ctx context.Context, id int64) (*model.ShoppingListItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *shoppingListService) InsertItem(ctx context.Context, item model.NewShoppingListItem) (*model.ShoppingListItem, error) {
	return s.repo.Create(ctx, item)
}

func (s *shoppingListService) UpdateItem(ctx context.Context, id int64, fields model.ShoppingListItemUpdate) error {
	return s.repo.Update(ctx, id, fields)
}

func (s *shoppingListService) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
