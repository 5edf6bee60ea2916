package report

import (
	"testing"
	"time"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anExpense(amount, category string, date time.Time) expense.Expense {
	return expense.Expense{
		Title:    "test",
		Amount:   decimal.RequireFromString(amount),
		Category: expense.Category(category),
		Date:     date,
	}
}

func TestAggregationService_SummarizeByCategory(t *testing.T) {
	service := NewAggregationService()
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("groups with exact totals ordered by descending total", func(t *testing.T) {
		summaries := service.SummarizeByCategory([]expense.Expense{
			anExpense("12.50", "Food & Dining", march),
			anExpense("7.25", "Food & Dining", march),
			anExpense("40.00", "Transportation", march),
		})

		require.Len(t, summaries, 2)

		assert.Equal(t, "Transportation", summaries[0].Category)
		assert.True(t, summaries[0].Total.Equal(decimal.RequireFromString("40.00")))
		assert.Equal(t, 1, summaries[0].Count)

		assert.Equal(t, "Food & Dining", summaries[1].Category)
		assert.True(t, summaries[1].Total.Equal(decimal.RequireFromString("19.75")),
			"expected 19.75, got %s", summaries[1].Total)
		assert.Equal(t, 2, summaries[1].Count)
	})

	t.Run("breaks total ties alphabetically", func(t *testing.T) {
		summaries := service.SummarizeByCategory([]expense.Expense{
			anExpense("5.00", "Travel", march),
			anExpense("5.00", "Education", march),
			anExpense("5.00", "Shopping", march),
		})

		require.Len(t, summaries, 3)
		assert.Equal(t, "Education", summaries[0].Category)
		assert.Equal(t, "Shopping", summaries[1].Category)
		assert.Equal(t, "Travel", summaries[2].Category)
	})

	t.Run("sums without floating point drift", func(t *testing.T) {
		summaries := service.SummarizeByCategory([]expense.Expense{
			anExpense("10.10", "Others", march),
			anExpense("10.20", "Others", march),
			anExpense("10.30", "Others", march),
		})

		require.Len(t, summaries, 1)
		assert.True(t, summaries[0].Total.Equal(decimal.RequireFromString("30.60")),
			"expected exactly 30.60, got %s", summaries[0].Total)
	})

	t.Run("empty input yields empty summary", func(t *testing.T) {
		assert.Empty(t, service.SummarizeByCategory(nil))
	})
}

func TestAggregationService_SummarizeByMonth(t *testing.T) {
	service := NewAggregationService()

	t.Run("groups by calendar month in chronological order", func(t *testing.T) {
		months := service.SummarizeByMonth([]expense.Expense{
			anExpense("5.00", "Others", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
			anExpense("10.00", "Others", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
			anExpense("20.00", "Others", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)),
		})

		require.Len(t, months, 2)

		assert.Equal(t, 2024, months[0].Month.Year())
		assert.Equal(t, time.January, months[0].Month.Month())
		assert.True(t, months[0].Total.Equal(decimal.RequireFromString("30.00")))

		assert.Equal(t, time.February, months[1].Month.Month())
		assert.True(t, months[1].Total.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("same month across years stays separate", func(t *testing.T) {
		months := service.SummarizeByMonth([]expense.Expense{
			anExpense("1.00", "Others", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
			anExpense("2.00", "Others", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)),
		})

		require.Len(t, months, 2)
		assert.Equal(t, 2023, months[0].Month.Year())
		assert.Equal(t, 2024, months[1].Month.Year())
	})
}

func TestCurrentMonthWindow(t *testing.T) {
	t.Run("covers the whole containing month", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

		start, end := CurrentMonthWindow(now)

		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), end)
	})

	t.Run("handles year boundary in December", func(t *testing.T) {
		now := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

		start, end := CurrentMonthWindow(now)

		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC), end)
	})
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	start, end := TrailingWindow(now, 6)

	assert.Equal(t, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)
}
