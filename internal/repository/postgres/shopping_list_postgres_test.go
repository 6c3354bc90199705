package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppinglist/internal/model"
	"shoppinglist/internal/repository"
)

var columns = []string{"id", "name", "price", "date_added", "checked", "category"}

func newMock(t *testing.T) (*ShoppingListPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewShoppingListPostgres(db), mock
}

func ptr[T any](v T) *T { return &v }

func TestShoppingListPostgres_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rows in id order", func(t *testing.T) {
		repo, mock := newMock(t)
		added := time.Date(2029, 1, 22, 16, 28, 32, 0, time.UTC)
		rows := sqlmock.NewRows(columns).
			AddRow(1, "First Test Item", "13.00", added, false, "Main").
			AddRow(2, "Second Test Item", "9.00", added, true, "Lunch")

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, price, date_added, checked, category FROM shopping_list ORDER BY id",
		)).WillReturnRows(rows)

		items, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, model.ShoppingListItem{
			ID: 1, Name: "First Test Item", Price: "13.00", DateAdded: added, Checked: false, Category: "Main",
		}, items[0])
		assert.Equal(t, int64(2), items[1].ID)
		assert.True(t, items[1].Checked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("FROM shopping_list").WillReturnRows(sqlmock.NewRows(columns))

		items, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("store error propagates unchanged", func(t *testing.T) {
		repo, mock := newMock(t)
		storeErr := errors.New("connection refused")
		mock.ExpectQuery("FROM shopping_list").WillReturnError(storeErr)

		items, err := repo.List(ctx)

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, items)
	})
}

func TestShoppingListPostgres_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMock(t)
	query := regexp.QuoteMeta("FROM shopping_list WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(3, "Third Test Item", "25.00", time.Now(), false, "Breakfast")
		mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnRows(rows)

		item, err := repo.FindByID(ctx, 3)

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, int64(3), item.ID)
		assert.Equal(t, "25.00", item.Price)
		assert.False(t, item.Checked)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows(columns))

		item, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, item)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingListPostgres_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("all fields supplied", func(t *testing.T) {
		repo, mock := newMock(t)
		added := time.Date(2020, 6, 6, 0, 0, 0, 0, time.UTC)
		item := model.NewShoppingListItem{
			Name:      "Test New Name",
			Price:     "6.45",
			Category:  "Snack",
			DateAdded: &added,
			Checked:   ptr(true),
		}

		rows := sqlmock.NewRows(columns).AddRow(1, "Test New Name", "6.45", added, true, "Snack")
		// Columns are emitted in sorted order: category, checked, date_added, name, price.
		mock.ExpectQuery("INSERT INTO shopping_list (.+) RETURNING id, name, price, date_added, checked, category").
			WithArgs("Snack", true, added, "Test New Name", "6.45").
			WillReturnRows(rows)

		got, err := repo.Create(ctx, item)

		require.NoError(t, err)
		assert.Equal(t, &model.ShoppingListItem{
			ID: 1, Name: "Test New Name", Price: "6.45", DateAdded: added, Checked: true, Category: "Snack",
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("optional fields left to store defaults", func(t *testing.T) {
		repo, mock := newMock(t)
		now := time.Now().UTC()
		rows := sqlmock.NewRows(columns).AddRow(7, "Milk", "1.20", now, false, "Breakfast")
		mock.ExpectQuery("INSERT INTO shopping_list (.+) RETURNING").
			WithArgs("Breakfast", "Milk", "1.20").
			WillReturnRows(rows)

		got, err := repo.Create(ctx, model.NewShoppingListItem{Name: "Milk", Price: "1.20", Category: "Breakfast"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.False(t, got.Checked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing supplied defers to store constraints", func(t *testing.T) {
		repo, mock := newMock(t)
		constraintErr := errors.New(`null value in column "name" violates not-null constraint`)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shopping_list DEFAULT VALUES RETURNING")).
			WillReturnError(constraintErr)

		got, err := repo.Create(ctx, model.NewShoppingListItem{})

		assert.ErrorIs(t, err, constraintErr)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShoppingListPostgres_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("sets only supplied columns", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec("UPDATE shopping_list SET (.+) WHERE id = ").
			WithArgs(true, "Updated Title", "50.00", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, 3, model.ShoppingListItemUpdate{
			Name:    ptr("Updated Title"),
			Price:   ptr("50.00"),
			Checked: ptr(true),
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec("UPDATE shopping_list").
			WithArgs("Lunch", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, 42, model.ShoppingListItemUpdate{Category: ptr("Lunch")})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update never reaches the store", func(t *testing.T) {
		repo, mock := newMock(t)

		err := repo.Update(ctx, 3, model.ShoppingListItemUpdate{})

		assert.ErrorIs(t, err, repository.ErrNoFields)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShoppingListPostgres_Delete(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMock(t)
	query := regexp.QuoteMeta("DELETE FROM shopping_list WHERE id = $1")

	mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, 3))

	mock.ExpectExec(query).WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, repo.Delete(ctx, 404))

	mock.ExpectExec(query).WithArgs(int64(5)).WillReturnError(sql.ErrConnDone)
	assert.ErrorIs(t, repo.Delete(ctx, 5), sql.ErrConnDone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingListPostgres_SearchByName(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMock(t)
	query := regexp.QuoteMeta("FROM shopping_list WHERE name ILIKE $1 ORDER BY id")

	t.Run("wraps term in wildcards", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).AddRow(4, "Turkey Sandwich", "8.50", time.Now(), false, "Lunch")
		mock.ExpectQuery(query).WithArgs("%urk%").WillReturnRows(rows)

		items, err := repo.SearchByName(ctx, "urk")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Turkey Sandwich", items[0].Name)
	})

	t.Run("escapes like metacharacters", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(`%50\%\_off%`).WillReturnRows(sqlmock.NewRows(columns))

		items, err := repo.SearchByName(ctx, "50%_off")

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingListPostgres_ListPage(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMock(t)

	rows := sqlmock.NewRows(columns).AddRow(13, "Fish Tacos", "12.00", time.Now(), false, "Main")
	mock.ExpectQuery(regexp.QuoteMeta("FROM shopping_list ORDER BY id LIMIT 6 OFFSET 12")).
		WillReturnRows(rows)

	items, err := repo.ListPage(ctx, repository.PageQuery{Limit: 6, Offset: 12})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(13), items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingListPostgres_AddedWithinDays(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"name", "price", "category", "checked"}).
		AddRow("Bagels", "3.10", "Breakfast", true)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT name, price, category, checked FROM shopping_list WHERE date_added > now() - make_interval(days => $1)",
	)).WithArgs(6).WillReturnRows(rows)

	items, err := repo.AddedWithinDays(ctx, 6)

	require.NoError(t, err)
	assert.Equal(t, []model.ItemSummary{{Name: "Bagels", Price: "3.10", Category: "Breakfast", Checked: true}}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingListPostgres_SumByCategory(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"category", "total"}).
		AddRow("Breakfast", "25.89").
		AddRow("Lunch", "9.00")
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT category, SUM(price) AS total FROM shopping_list GROUP BY category ORDER BY category",
	)).WillReturnRows(rows)

	totals, err := repo.SumByCategory(ctx)

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "Breakfast", totals[0].Category)
	assert.True(t, decimal.RequireFromString("25.89").Equal(totals[0].Total))
	assert.True(t, decimal.RequireFromString("9").Equal(totals[1].Total))
	assert.NoError(t, mock.ExpectationsWereMet())
}
