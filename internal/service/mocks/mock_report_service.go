package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shoppinglist/internal/model"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingListItem), args.Error(1)
}

func (m *MockReportService) Page(ctx context.Context, pageNumber int) ([]model.ShoppingListItem, error) {
	args := m.Called(ctx, pageNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingListItem), args.Error(1)
}

func (m *MockReportService) AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemSummary), args.Error(1)
}

func (m *MockReportService) CategoryTotals(ctx context.Context) ([]model.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryTotal), args.Error(1)
}
