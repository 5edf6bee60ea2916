package expense

import (
	"strings"
	"testing"
	"time"

	"github.com/expensetracker/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Title:       "Groceries",
		Amount:      decimal.RequireFromString("42.50"),
		Category:    CategoryFoodDining,
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local),
		Description: "Weekly shopping",
	}
}

func violationsByField(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	byField := make(map[string]string, len(ve.Violations))
	for _, v := range ve.Violations {
		byField[v.Field] = v.Message
	}
	return byField
}

func TestCategory_IsValid(t *testing.T) {
	t.Run("accepts every fixed category", func(t *testing.T) {
		for _, c := range Categories() {
			assert.True(t, c.IsValid(), "category %q should be valid", c)
		}
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		assert.False(t, Category("Groceries").IsValid())
		assert.False(t, Category("").IsValid())
	})
}

func TestCategories_FixedSet(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 10)
	assert.Equal(t, CategoryFoodDining, cats[0])
	assert.Equal(t, CategoryOthers, cats[9])
}

func TestDraft_Validate(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		assert.NoError(t, validDraft().Validate())
	})

	t.Run("zero amount fails with range message", func(t *testing.T) {
		d := validDraft()
		d.Amount = decimal.Zero

		byField := violationsByField(t, d.Validate())
		assert.Equal(t, "Amount must be between 0.01 and 1,000,000", byField["amount"])
	})

	t.Run("amount above one million fails", func(t *testing.T) {
		d := validDraft()
		d.Amount = decimal.RequireFromString("1000000.01")

		byField := violationsByField(t, d.Validate())
		assert.Contains(t, byField["amount"], "between 0.01 and 1,000,000")
	})

	t.Run("amount of exactly one million passes", func(t *testing.T) {
		d := validDraft()
		d.Amount = decimal.NewFromInt(1_000_000)
		assert.NoError(t, d.Validate())
	})

	t.Run("amount of exactly one cent passes", func(t *testing.T) {
		d := validDraft()
		d.Amount = decimal.RequireFromString("0.01")
		assert.NoError(t, d.Validate())
	})

	t.Run("title of 101 characters fails with length message", func(t *testing.T) {
		d := validDraft()
		d.Title = strings.Repeat("a", TitleMaxLength+1)

		byField := violationsByField(t, d.Validate())
		assert.Equal(t, "Title cannot exceed 100 characters", byField["title"])
	})

	t.Run("title of exactly 100 characters passes", func(t *testing.T) {
		d := validDraft()
		d.Title = strings.Repeat("a", TitleMaxLength)
		assert.NoError(t, d.Validate())
	})

	t.Run("missing title fails", func(t *testing.T) {
		d := validDraft()
		d.Title = ""

		byField := violationsByField(t, d.Validate())
		assert.Equal(t, "Title is required", byField["title"])
	})

	t.Run("unknown category fails", func(t *testing.T) {
		d := validDraft()
		d.Category = Category("Groceries")

		byField := violationsByField(t, d.Validate())
		assert.Contains(t, byField["category"], "allowed categories")
	})

	t.Run("missing category fails as required", func(t *testing.T) {
		d := validDraft()
		d.Category = ""

		byField := violationsByField(t, d.Validate())
		assert.Equal(t, "Category is required", byField["category"])
	})

	t.Run("missing date fails", func(t *testing.T) {
		d := validDraft()
		d.Date = time.Time{}

		byField := violationsByField(t, d.Validate())
		assert.Equal(t, "Date is required", byField["date"])
	})

	t.Run("description over 500 characters fails", func(t *testing.T) {
		d := validDraft()
		d.Description = strings.Repeat("x", DescriptionMaxLength+1)

		byField := violationsByField(t, d.Validate())
		assert.Equal(t, "Description cannot exceed 500 characters", byField["description"])
	})

	t.Run("empty description passes", func(t *testing.T) {
		d := validDraft()
		d.Description = ""
		assert.NoError(t, d.Validate())
	})

	t.Run("all violations are collected, not just the first", func(t *testing.T) {
		d := Draft{
			Title:       strings.Repeat("a", 101),
			Amount:      decimal.Zero,
			Category:    Category("Bogus"),
			Date:        time.Time{},
			Description: strings.Repeat("x", 501),
		}

		byField := violationsByField(t, d.Validate())
		assert.Len(t, byField, 5)
		assert.Contains(t, byField, "title")
		assert.Contains(t, byField, "amount")
		assert.Contains(t, byField, "category")
		assert.Contains(t, byField, "date")
		assert.Contains(t, byField, "description")
	})
}

func TestNew(t *testing.T) {
	t.Run("builds expense from valid draft", func(t *testing.T) {
		d := validDraft()

		e, err := New(d)

		require.NoError(t, err)
		assert.Equal(t, uint(0), e.ID)
		assert.True(t, e.CreatedAt.IsZero())
		assert.Equal(t, d.Title, e.Title)
		assert.True(t, d.Amount.Equal(e.Amount))
		assert.Equal(t, d.Category, e.Category)
	})

	t.Run("rejects invalid draft", func(t *testing.T) {
		d := validDraft()
		d.Amount = decimal.Zero

		e, err := New(d)

		assert.Error(t, err)
		assert.Nil(t, e)
	})
}

func TestExpense_Apply(t *testing.T) {
	t.Run("replaces mutable fields and preserves id and created_at", func(t *testing.T) {
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		e := &Expense{
			ID:        7,
			Title:     "Old",
			Amount:    decimal.NewFromInt(10),
			Category:  CategoryShopping,
			Date:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
			CreatedAt: created,
		}

		d := validDraft()
		require.NoError(t, e.Apply(d))

		assert.Equal(t, uint(7), e.ID)
		assert.Equal(t, created, e.CreatedAt)
		assert.Equal(t, d.Title, e.Title)
		assert.Equal(t, d.Category, e.Category)
	})

	t.Run("invalid draft leaves expense unchanged", func(t *testing.T) {
		e := &Expense{ID: 7, Title: "Old", Amount: decimal.NewFromInt(10), Category: CategoryShopping}

		bad := validDraft()
		bad.Title = ""

		assert.Error(t, e.Apply(bad))
		assert.Equal(t, "Old", e.Title)
	})
}
