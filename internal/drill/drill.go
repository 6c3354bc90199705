// Package drill runs the ad-hoc shopping list queries and logs what they return.
package drill

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"shoppinglist/internal/service"
)

// Options selects the inputs of each drill query.
type Options struct {
	SearchTerm string
	Page       int
	DaysAgo    int
}

// DefaultOptions mirrors the inputs the drills were written against.
func DefaultOptions() Options {
	return Options{SearchTerm: "urk", Page: 3, DaysAgo: 6}
}

// Run executes search, page, days-ago and category totals in that order.
// It stops at the first failing query.
func Run(ctx context.Context, reports service.ReportService, opts Options, log zerolog.Logger) error {
	found, err := reports.SearchByName(ctx, opts.SearchTerm)
	if err != nil {
		return fmt.Errorf("search by name: %w", err)
	}
	log.Info().Str("drill", "search_by_name").Str("term", opts.SearchTerm).
		Int("rows", len(found)).Interface("items", found).Msg("drill_result")

	page, err := reports.Page(ctx, opts.Page)
	if err != nil {
		return fmt.Errorf("paginate items: %w", err)
	}
	log.Info().Str("drill", "paginate").Int("page", opts.Page).
		Int("rows", len(page)).Interface("items", page).Msg("drill_result")

	recent, err := reports.AddedWithinDays(ctx, opts.DaysAgo)
	if err != nil {
		return fmt.Errorf("items added days ago: %w", err)
	}
	log.Info().Str("drill", "added_within_days").Int("days", opts.DaysAgo).
		Int("rows", len(recent)).Interface("items", recent).Msg("drill_result")

	totals, err := reports.CategoryTotals(ctx)
	if err != nil {
		return fmt.Errorf("category total cost: %w", err)
	}
	log.Info().Str("drill", "category_totals").
		Int("rows", len(totals)).Interface("totals", totals).Msg("drill_result")

	return nil
}
