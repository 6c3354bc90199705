package postgres

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"shoppinglist/internal/model"
	"shoppinglist/internal/repository"
)

const table = "shopping_list"

var (
	itemColumns    = []string{"id", "name", "price", "date_added", "checked", "category"}
	summaryColumns = []string{"name", "price", "category", "checked"}

	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// ShoppingListPostgres is a PostgreSQL implementation of repository.ShoppingListRepository.
// Statements are built with squirrel and always parameterized.
type ShoppingListPostgres struct {
	db repository.Querier
}

// NewShoppingListPostgres creates a new ShoppingListPostgres repository over a caller-owned handle.
func NewShoppingListPostgres(db repository.Querier) *ShoppingListPostgres {
	return &ShoppingListPostgres{db: db}
}

var _ repository.ShoppingListRepository = (*ShoppingListPostgres)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (model.ShoppingListItem, error) {
	var it model.ShoppingListItem
	err := s.Scan(
		&it.ID,
		&it.Name,
		&it.Price,
		&it.DateAdded,
		&it.Checked,
		&it.Category,
	)
	return it, err
}

// List returns all items ordered by id.
func (r *ShoppingListPostgres) List(ctx context.Context) ([]model.ShoppingListItem, error) {
	return r.queryItems(ctx, psql.Select(itemColumns...).From(table).OrderBy("id"))
}

// FindByID fetches a single item. sql.ErrNoRows is returned unchanged when the id does not exist.
func (r *ShoppingListPostgres) FindByID(ctx context.Context, id int64) (*model.ShoppingListItem, error) {
	q, args, err := psql.Select(itemColumns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	it, err := scanItem(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create inserts the supplied columns and returns the stored row.
func (r *ShoppingListPostgres) Create(ctx context.Context, item model.NewShoppingListItem) (*model.ShoppingListItem, error) {
	returning := "RETURNING " + strings.Join(itemColumns, ", ")
	cols := insertColumns(item)

	var (
		q    string
		args []any
		err  error
	)
	if len(cols) == 0 {
		// squirrel refuses an INSERT without values; let the store reject the row instead.
		q = "INSERT INTO " + table + " DEFAULT VALUES " + returning
	} else {
		q, args, err = psql.Insert(table).SetMap(cols).Suffix(returning).ToSql()
		if err != nil {
			return nil, err
		}
	}
	out, err := scanItem(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sets the supplied columns on the row with the given id.
func (r *ShoppingListPostgres) Update(ctx context.Context, id int64, fields model.ShoppingListItemUpdate) error {
	if fields.IsEmpty() {
		return repository.ErrNoFields
	}
	q, args, err := psql.Update(table).
		SetMap(updateColumns(fields)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	// Rows affected is ignored: a missing id is a silent no-op.
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// Delete removes an item by id. It does not return an error if the row does not exist.
func (r *ShoppingListPostgres) Delete(ctx context.Context, id int64) error {
	q, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// SearchByName matches name against %term% with ILIKE. Wildcards inside term match literally.
func (r *ShoppingListPostgres) SearchByName(ctx context.Context, term string) ([]model.ShoppingListItem, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return r.queryItems(ctx, psql.Select(itemColumns...).
		From(table).
		Where(sq.ILike{"name": pattern}).
		OrderBy("id"))
}

// ListPage returns items using LIMIT/OFFSET pagination.
func (r *ShoppingListPostgres) ListPage(ctx context.Context, pq repository.PageQuery) ([]model.ShoppingListItem, error) {
	return r.queryItems(ctx, psql.Select(itemColumns...).
		From(table).
		OrderBy("id").
		Limit(uint64(pq.Limit)).
		Offset(uint64(pq.Offset)))
}

// AddedWithinDays returns summaries of items added after now() minus the given number of days.
func (r *ShoppingListPostgres) AddedWithinDays(ctx context.Context, days int) ([]model.ItemSummary, error) {
	q, args, err := psql.Select(summaryColumns...).
		From(table).
		Where(sq.Expr("date_added > now() - make_interval(days => ?)", days)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ItemSummary, 0)
	for rows.Next() {
		var s model.ItemSummary
		if err := rows.Scan(&s.Name, &s.Price, &s.Category, &s.Checked); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SumByCategory returns SUM(price) grouped by category.
func (r *ShoppingListPostgres) SumByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	q, args, err := psql.Select("category", "SUM(price) AS total").
		From(table).
		GroupBy("category").
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]model.CategoryTotal, 0)
	for rows.Next() {
		var ct model.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *ShoppingListPostgres) queryItems(ctx context.Context, b sq.SelectBuilder) ([]model.ShoppingListItem, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ShoppingListItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// insertColumns omits unsupplied fields so store defaults and NOT NULL constraints apply.
func insertColumns(item model.NewShoppingListItem) map[string]any {
	cols := make(map[string]any, 5)
	if item.Name != "" {
		cols["name"] = item.Name
	}
	if item.Price != "" {
		cols["price"] = item.Price
	}
	if item.Category != "" {
		cols["category"] = item.Category
	}
	if item.DateAdded != nil {
		cols["date_added"] = *item.DateAdded
	}
	if item.Checked != nil {
		cols["checked"] = *item.Checked
	}
	return cols
}

func updateColumns(fields model.ShoppingListItemUpdate) map[string]any {
	cols := make(map[string]any, 5)
	if fields.Name != nil {
		cols["name"] = *fields.Name
	}
	if fields.Price != nil {
		cols["price"] = *fields.Price
	}
	if fields.Category != nil {
		cols["category"] = *fields.Category
	}
	if fields.DateAdded != nil {
		cols["date_added"] = *fields.DateAdded
	}
	if fields.Checked != nil {
		cols["checked"] = *fields.Checked
	}
	return cols
}
