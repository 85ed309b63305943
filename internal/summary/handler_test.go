package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikrishnach4/financial/internal/transactions"
)

type MockLister struct {
	FindRangeFunc func(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error)
}

func (m *MockLister) FindRange(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
	if m.FindRangeFunc != nil {
		return m.FindRangeFunc(ctx, userID, w, typ)
	}
	return nil, nil
}

const testUserID = "11111111-1111-1111-1111-111111111111"

func newTestApp(repo Lister, authenticated bool) *fiber.App {
	app := fiber.New()
	if authenticated {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user_id", testUserID)
			return c.Next()
		})
	}
	h := NewHandler(repo)
	app.Get("/transactions/summary/:year/:month", h.Monthly)
	app.Get("/transactions/summary/:year/:month/week/:week", h.Weekly)
	app.Get("/transactions/summary/:year/:month/:day", h.Daily)
	app.Get("/transactions/summery/:year/:month", h.MonthlySpending)
	return app
}

func TestMonthly_Totals(t *testing.T) {
	repo := &MockLister{
		FindRangeFunc: func(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "", typ)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.Start)
			assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), w.End)
			return []transactions.Transaction{
				tx(transactions.TypeExpense, "Food", "50"),
			}, nil
		},
	}
	app := newTestApp(repo, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/2024/3", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out Totals
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.TotalIncome.IsZero())
	assert.True(t, dec("50").Equal(out.TotalExpenses))
}

func TestMonthly_BadMonth(t *testing.T) {
	app := newTestApp(&MockLister{}, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/2024/13", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMonthly_Unauthenticated(t *testing.T) {
	app := newTestApp(&MockLister{}, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/2024/3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDaily_SpendingShape(t *testing.T) {
	repo := &MockLister{
		FindRangeFunc: func(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
			assert.Equal(t, transactions.TypeExpense, typ)
			assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), w.Start)
			assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), w.End)
			return []transactions.Transaction{
				tx(transactions.TypeExpense, "Food", "50"),
				tx(transactions.TypeExpense, "Travel", "20"),
				tx(transactions.TypeExpense, "Food", "5"),
			}, nil
		},
	}
	app := newTestApp(repo, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/2024/3/15", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out Spending
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, dec("75").Equal(out.TotalSpending))
	require.Len(t, out.SpendingByCategory, 2)
	assert.Equal(t, "Food", out.SpendingByCategory[0].CategoryName)
	assert.True(t, dec("55").Equal(out.SpendingByCategory[0].Amount))
}

func TestWeekly_RoutesBeforeDaily(t *testing.T) {
	var got Window
	repo := &MockLister{
		FindRangeFunc: func(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
			got = w
			return nil, nil
		},
	}
	app := newTestApp(repo, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/2024/2/week/6", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC), got.Start)
}

func TestWeekly_DisjointWeekIsEmptySummary(t *testing.T) {
	called := false
	repo := &MockLister{
		FindRangeFunc: func(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
			called = true
			return nil, nil
		},
	}
	app := newTestApp(repo, true)

	// Week 6 of 2024 lies entirely in February.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/2024/1/week/6", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, called, "empty windows skip the store")

	var out Spending
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.TotalSpending.IsZero())
	assert.Empty(t, out.SpendingByCategory)
}

func TestMonthlySpending_AlternatePath(t *testing.T) {
	repo := &MockLister{
		FindRangeFunc: func(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
			assert.Equal(t, transactions.TypeExpense, typ)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.Start)
			return []transactions.Transaction{
				tx(transactions.TypeExpense, "Rent", "400"),
			}, nil
		},
	}
	app := newTestApp(repo, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summery/2024/3", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out Spending
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, dec("400").Equal(out.TotalSpending))
}

func TestYearParamMustBeNumeric(t *testing.T) {
	app := newTestApp(&MockLister{}, true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transactions/summary/abcd/3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
