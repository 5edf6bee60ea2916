package expense

import (
	"context"
	"testing"
	"time"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/expensetracker/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExpenseRepository implements expense.Repository with function
// fields so each test overrides only what it needs
type fakeExpenseRepository struct {
	findAllFn  func(ctx context.Context, filter expense.Filter) ([]expense.Expense, error)
	findByIDFn func(ctx context.Context, id uint) (*expense.Expense, error)
	createFn   func(ctx context.Context, e *expense.Expense) error
	updateFn   func(ctx context.Context, e *expense.Expense) error
	deleteFn   func(ctx context.Context, id uint) error
	countFn    func(ctx context.Context, filter expense.Filter) (int64, error)
}

func (f *fakeExpenseRepository) FindAll(ctx context.Context, filter expense.Filter) ([]expense.Expense, error) {
	return f.findAllFn(ctx, filter)
}

func (f *fakeExpenseRepository) FindByID(ctx context.Context, id uint) (*expense.Expense, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	return f.createFn(ctx, e)
}

func (f *fakeExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	return f.updateFn(ctx, e)
}

func (f *fakeExpenseRepository) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeExpenseRepository) Count(ctx context.Context, filter expense.Filter) (int64, error) {
	return f.countFn(ctx, filter)
}

func validCreateRequest() CreateExpenseRequest {
	return CreateExpenseRequest{
		Title:       "Groceries",
		Amount:      decimal.RequireFromString("12.50"),
		Category:    "Food & Dining",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "weekly shop",
	}
}

func TestExpenseService_Create(t *testing.T) {
	t.Run("persists valid expense and returns stored record", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			createFn: func(ctx context.Context, e *expense.Expense) error {
				e.ID = 7
				e.CreatedAt = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
				return nil
			},
		}
		service := NewExpenseService(repo)

		resp, err := service.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, uint(7), resp.ID)
		assert.Equal(t, "Groceries", resp.Title)
		assert.Equal(t, "Food & Dining", resp.Category)
		assert.True(t, resp.Amount.Equal(decimal.RequireFromString("12.50")))
		assert.False(t, resp.CreatedAt.IsZero())
	})

	t.Run("collects all validation violations without touching storage", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			createFn: func(ctx context.Context, e *expense.Expense) error {
				t.Fatal("Create must not be called for an invalid draft")
				return nil
			},
		}
		service := NewExpenseService(repo)

		req := CreateExpenseRequest{
			Title:    "",
			Amount:   decimal.Zero,
			Category: "Groceries",
		}

		resp, err := service.Create(context.Background(), req)

		assert.Nil(t, resp)
		var validationErr *shared.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Violations, 4)
	})
}

func TestExpenseService_GetByID(t *testing.T) {
	t.Run("returns not found from repository", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*expense.Expense, error) {
				return nil, shared.ErrNotFound
			},
		}
		service := NewExpenseService(repo)

		resp, err := service.GetByID(context.Background(), 99)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestExpenseService_List(t *testing.T) {
	t.Run("computes exact grand total over the returned set", func(t *testing.T) {
		date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		repo := &fakeExpenseRepository{
			findAllFn: func(ctx context.Context, filter expense.Filter) ([]expense.Expense, error) {
				return []expense.Expense{
					{ID: 3, Title: "A", Amount: decimal.RequireFromString("10.10"), Category: expense.CategoryOthers, Date: date},
					{ID: 2, Title: "B", Amount: decimal.RequireFromString("10.20"), Category: expense.CategoryOthers, Date: date},
					{ID: 1, Title: "C", Amount: decimal.RequireFromString("10.30"), Category: expense.CategoryOthers, Date: date},
				}, nil
			},
		}
		service := NewExpenseService(repo)

		resp, err := service.List(context.Background(), ListFilter{})

		require.NoError(t, err)
		assert.Equal(t, 3, resp.Count)
		assert.True(t, resp.GrandTotal.Equal(decimal.RequireFromString("30.60")),
			"expected 30.60, got %s", resp.GrandTotal)
		assert.Len(t, resp.Categories, 10)
	})

	t.Run("passes filter criteria through to repository", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		var captured expense.Filter
		repo := &fakeExpenseRepository{
			findAllFn: func(ctx context.Context, filter expense.Filter) ([]expense.Expense, error) {
				captured = filter
				return nil, nil
			},
		}
		service := NewExpenseService(repo)

		_, err := service.List(context.Background(), ListFilter{
			Category:  "Transportation",
			StartDate: &start,
		})

		require.NoError(t, err)
		require.NotNil(t, captured.Category)
		assert.Equal(t, expense.CategoryTransportation, *captured.Category)
		require.NotNil(t, captured.StartDate)
		assert.True(t, captured.StartDate.Equal(start))
		assert.Nil(t, captured.EndDate)
	})

	t.Run("empty listing has zero grand total", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			findAllFn: func(ctx context.Context, filter expense.Filter) ([]expense.Expense, error) {
				return nil, nil
			},
		}
		service := NewExpenseService(repo)

		resp, err := service.List(context.Background(), ListFilter{})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
		assert.True(t, resp.GrandTotal.IsZero())
	})
}

func TestExpenseService_Update(t *testing.T) {
	existing := func() *expense.Expense {
		return &expense.Expense{
			ID:        7,
			Title:     "Groceries",
			Amount:    decimal.RequireFromString("12.50"),
			Category:  expense.CategoryFoodDining,
			Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		}
	}

	validUpdateRequest := func() UpdateExpenseRequest {
		return UpdateExpenseRequest{
			Title:    "Groceries and household",
			Amount:   decimal.RequireFromString("15.00"),
			Category: "Shopping",
			Date:     time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("rejects payload ID that differs from path ID", func(t *testing.T) {
		service := NewExpenseService(&fakeExpenseRepository{})

		mismatched := uint(8)
		req := validUpdateRequest()
		req.ID = &mismatched

		resp, err := service.Update(context.Background(), 7, req)

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	})

	t.Run("preserves creation timestamp across edits", func(t *testing.T) {
		var saved *expense.Expense
		repo := &fakeExpenseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*expense.Expense, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, e *expense.Expense) error {
				saved = e
				return nil
			},
		}
		service := NewExpenseService(repo)

		resp, err := service.Update(context.Background(), 7, validUpdateRequest())

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(7), saved.ID)
		assert.Equal(t, "Groceries and household", saved.Title)
		assert.Equal(t, existing().CreatedAt, saved.CreatedAt)
		assert.Equal(t, existing().CreatedAt, resp.CreatedAt)
	})

	t.Run("surfaces write conflict as not found", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*expense.Expense, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, e *expense.Expense) error {
				return shared.ErrNotFound
			},
		}
		service := NewExpenseService(repo)

		resp, err := service.Update(context.Background(), 7, validUpdateRequest())

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("re-validates all fields on update", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*expense.Expense, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, e *expense.Expense) error {
				t.Fatal("Update must not be called for an invalid draft")
				return nil
			},
		}
		service := NewExpenseService(repo)

		req := validUpdateRequest()
		req.Amount = decimal.RequireFromString("1000000.01")

		resp, err := service.Update(context.Background(), 7, req)

		assert.Nil(t, resp)
		var validationErr *shared.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestExpenseService_Delete(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		var deleted uint
		repo := &fakeExpenseRepository{
			deleteFn: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		service := NewExpenseService(repo)

		err := service.Delete(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), deleted)
	})
}
