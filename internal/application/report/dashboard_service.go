package report

import (
	"context"
	"time"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// trendMonths is how far back the dashboard's monthly trend reaches
const trendMonths = 6

// Dashboard is the view model for the spending overview
type Dashboard struct {
	Month             string            `json:"month"`
	MonthlyTotal      decimal.Decimal   `json:"monthly_total"`
	TransactionCount  int               `json:"transaction_count"`
	CategorySummaries []CategorySummary `json:"category_summaries"`
	MonthlyTrend      []MonthlyTotal    `json:"monthly_trend"`
}

// DashboardService assembles the spending overview from the current
// month's expenses plus a trailing trend window
type DashboardService struct {
	expenseRepo expense.Repository
	aggregation *AggregationService
	now         func() time.Time
}

// DashboardServiceOption is a functional option for configuring the service
type DashboardServiceOption func(*DashboardService)

// WithClock overrides the time source, used by tests to pin the month
func WithClock(now func() time.Time) DashboardServiceOption {
	return func(s *DashboardService) {
		s.now = now
	}
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(expenseRepo expense.Repository, aggregation *AggregationService, opts ...DashboardServiceOption) *DashboardService {
	s := &DashboardService{
		expenseRepo: expenseRepo,
		aggregation: aggregation,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overview computes the dashboard for the current calendar month
func (s *DashboardService) Overview(ctx context.Context) (*Dashboard, error) {
	now := s.now()

	start, end := CurrentMonthWindow(now)
	monthExpenses, err := s.expenseRepo.FindAll(ctx, expense.Filter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	monthlyTotal := decimal.Zero
	for i := range monthExpenses {
		monthlyTotal = monthlyTotal.Add(monthExpenses[i].Amount)
	}

	trendStart, trendEnd := TrailingWindow(now, trendMonths)
	trendExpenses, err := s.expenseRepo.FindAll(ctx, expense.Filter{
		StartDate: &trendStart,
		EndDate:   &trendEnd,
	})
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Month:             now.Format("January 2006"),
		MonthlyTotal:      monthlyTotal,
		TransactionCount:  len(monthExpenses),
		CategorySummaries: s.aggregation.SummarizeByCategory(monthExpenses),
		MonthlyTrend:      s.aggregation.SummarizeByMonth(trendExpenses),
	}, nil
}
