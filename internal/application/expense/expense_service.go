package expense

import (
	"context"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/expensetracker/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense-related business operations
type ExpenseService struct {
	expenseRepo expense.Repository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo expense.Repository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
	}
}

// Create validates and records a new expense. Validation collects every
// violation before failing so the caller can surface them all at once.
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	e, err := expense.New(expense.Draft{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    expense.Category(req.Category),
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	return toResponse(e), nil
}

// GetByID returns a single expense
func (s *ExpenseService) GetByID(ctx context.Context, id uint) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// List returns expenses matching the filter, most recent first, with
// the exact grand total over the returned set. An unknown filter
// category simply matches nothing.
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) (*ExpenseListResponse, error) {
	domainFilter := expense.Filter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	if filter.Category != "" {
		category := expense.Category(filter.Category)
		domainFilter.Category = &category
	}

	expenses, err := s.expenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	grandTotal := decimal.Zero
	for i := range expenses {
		responses[i] = *toResponse(&expenses[i])
		grandTotal = grandTotal.Add(expenses[i].Amount)
	}

	return &ExpenseListResponse{
		Expenses:   responses,
		Count:      len(responses),
		GrandTotal: grandTotal,
		Categories: CategoryNames(),
	}, nil
}

// Update re-validates and persists changes to an existing expense.
// The creation timestamp is preserved; only the user-editable fields
// change.
func (s *ExpenseService) Update(ctx context.Context, id uint, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	if req.ID != nil && *req.ID != id {
		return nil, shared.NewDomainError("BAD_REQUEST", "Expense ID in payload does not match the request path")
	}

	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.Apply(expense.Draft{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    expense.Category(req.Category),
		Date:        req.Date,
		Description: req.Description,
	}); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	return toResponse(e), nil
}

// Delete removes an expense. Deleting an absent expense succeeds.
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	return s.expenseRepo.Delete(ctx, id)
}
