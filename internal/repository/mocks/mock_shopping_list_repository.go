package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shoppinglist/internal/model"
	"shoppinglist/internal/repository"
)

type MockShoppingListRepository struct {
	mock.Mock
}

var _ repository.ShoppingListRepository = (*MockShoppingListRepository)(nil)

func (m *MockShoppingListRepository) List(ctx context.Context) ([]model.ShoppingListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepository) FindByID(ctx context.Context, id int64) (*model.ShoppingListItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepository) Create(ctx context.Context, item model.NewShoppingListItem) (*model.ShoppingListItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepository) Update(ctx context.Context, id int64, fields model.ShoppingListItemUpdate) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockShoppingListRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShoppingListRepository) SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepository) ListPage(ctx context.Context, pq repository.PageQuery) ([]model.ShoppingListItem, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepository) AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemSummary), args.Error(1)
}

func (m *MockShoppingListRepository) SumByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryTotal), args.Error(1)
}
