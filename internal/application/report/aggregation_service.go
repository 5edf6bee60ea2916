package report

import (
	"sort"
	"time"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// CategorySummary is the per-category rollup of a set of expenses
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthlyTotal is the rollup of a set of expenses for one calendar
// month. Month is the first instant of the month in local time.
type MonthlyTotal struct {
	Month time.Time       `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// AggregationService computes rollups over expense sets in memory.
// All methods are pure; exact decimal arithmetic throughout.
type AggregationService struct{}

// NewAggregationService creates a new AggregationService
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// SummarizeByCategory groups expenses by category with exact totals and
// counts, ordered by descending total. Categories with equal totals are
// ordered alphabetically so the output is deterministic.
func (s *AggregationService) SummarizeByCategory(expenses []expense.Expense) []CategorySummary {
	totals := make(map[string]*CategorySummary)
	for i := range expenses {
		category := expenses[i].Category.String()
		summary, exists := totals[category]
		if !exists {
			summary = &CategorySummary{Category: category, Total: decimal.Zero}
			totals[category] = summary
		}
		summary.Total = summary.Total.Add(expenses[i].Amount)
		summary.Count++
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for _, summary := range totals {
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Total.Equal(summaries[j].Total) {
			return summaries[i].Total.GreaterThan(summaries[j].Total)
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// SummarizeByMonth groups expenses by calendar month with exact totals,
// ordered chronologically
func (s *AggregationService) SummarizeByMonth(expenses []expense.Expense) []MonthlyTotal {
	type monthKey struct {
		year  int
		month time.Month
	}

	totals := make(map[monthKey]decimal.Decimal)
	for i := range expenses {
		key := monthKey{year: expenses[i].Date.Year(), month: expenses[i].Date.Month()}
		totals[key] = totals[key].Add(expenses[i].Amount)
	}

	months := make([]MonthlyTotal, 0, len(totals))
	for key, total := range totals {
		months = append(months, MonthlyTotal{
			Month: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.Local),
			Total: total,
		})
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})
	return months
}

// CurrentMonthWindow returns the inclusive range covering the calendar
// month containing now
func CurrentMonthWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// TrailingWindow returns the inclusive range covering the given number
// of months up to now
func TrailingWindow(now time.Time, months int) (start, end time.Time) {
	return now.AddDate(0, -months, 0), now
}
