package service

import (
	"context"

	"shoppinglist/internal/model"
	"shoppinglist/internal/repository"
)

// ItemsPerPage is the fixed page size used by ReportService.Page.
const ItemsPerPage = 6

// ReportService defines the read-only analytical queries over the shopping list.
type ReportService interface {
	// SearchByName returns items whose name contains term, ignoring case.
	SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error)

	// Page returns the 1-indexed page of ItemsPerPage items.
	Page(ctx context.Context, pageNumber int) ([]model.ShoppingListItem, error)

	// AddedWithinDays returns items added during the last days days.
	AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error)

	// CategoryTotals returns the summed price per category.
	CategoryTotals(ctx context.Context) ([]model.CategoryTotal, error)
}

type reportService struct {
	repo repository.ShoppingListRepository
}

// NewReportService constructs a new ReportService.
func NewReportService(repo repository.ShoppingListRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error) {
	return s.repo.SearchByName(ctx, term)
}

// Page treats page numbers below 1 as the first page.
func (s *reportService) Page(ctx context.Context, pageNumber int) ([]model.ShoppingListItem, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	return s.repo.ListPage(ctx, repository.PageQuery{
		Limit:  ItemsPerPage,
		Offset: ItemsPerPage * (pageNumber - 1),
	})
}

func (s *reportService) AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error) {
	if days < 0 {
		days = 0
	}
	return s.repo.AddedWithinDays(ctx, days)
}

func (s *reportService) CategoryTotals(ctx context.Context) ([]model.CategoryTotal, error) {
	return s.repo.SumByCategory(ctx)
}
