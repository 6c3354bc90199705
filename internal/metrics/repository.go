package metrics

import (
	"context"
	"time"

	"shoppinglist/internal/model"
	"shoppinglist/internal/repository"
)

// InstrumentedRepository decorates a ShoppingListRepository with query metrics.
// Results and errors from the wrapped repository are returned untouched.
type InstrumentedRepository struct {
	next    repository.ShoppingListRepository
	metrics *QueryMetrics
}

// Instrument wraps next so that every call is counted and timed.
func Instrument(next repository.ShoppingListRepository, m *QueryMetrics) *InstrumentedRepository {
	return &InstrumentedRepository{next: next, metrics: m}
}

var _ repository.ShoppingListRepository = (*InstrumentedRepository)(nil)

func (r *InstrumentedRepository) List(ctx context.Context) ([]model.ShoppingListItem, error) {
	start := time.Now()
	items, err := r.next.List(ctx)
	r.metrics.Observe("list", start, err)
	return items, err
}

func (r *InstrumentedRepository) FindByID(ctx context.Context, id int64) (*model.ShoppingListItem, error) {
	start := time.Now()
	item, err := r.next.FindByID(ctx, id)
	r.metrics.Observe("find_by_id", start, err)
	return item, err
}

func (r *InstrumentedRepository) Create(ctx context.Context, item model.NewShoppingListItem) (*model.ShoppingListItem, error) {
	start := time.Now()
	out, err := r.next.Create(ctx, item)
	r.metrics.Observe("create", start, err)
	return out, err
}

func (r *InstrumentedRepository) Update(ctx context.Context, id int64, fields model.ShoppingListItemUpdate) error {
	start := time.Now()
	err := r.next.Update(ctx, id, fields)
	r.metrics.Observe("update", start, err)
	return err
}

func (r *InstrumentedRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := r.next.Delete(ctx, id)
	r.metrics.Observe("delete", start, err)
	return err
}

func (r *InstrumentedRepository) SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error) {
	start := time.Now()
	items, err := r.next.SearchByName(ctx, term)
	r.metrics.Observe("search_by_name", start, err)
	return items, err
}

func (r *InstrumentedRepository) ListPage(ctx context.Context, pq repository.PageQuery) ([]model.ShoppingListItem, error) {
	start := time.Now()
	items, err := r.next.ListPage(ctx, pq)
	r.metrics.Observe("list_page", start, err)
	return items, err
}

func (r *InstrumentedRepository) AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error) {
	start := time.Now()
	items, err := r.next.AddedWithinDays(ctx, days)
	r.metrics.Observe("added_within_days", start, err)
	return items, err
}

func (r *InstrumentedRepository) SumByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	start := time.Now()
	totals, err := r.next.SumByCategory(ctx)
	r.metrics.Observe("sum_by_category", start, err)
	return totals, err
}
