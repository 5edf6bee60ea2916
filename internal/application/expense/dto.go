package expense

import (
	"time"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest represents the payload for recording an expense
type CreateExpenseRequest struct {
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// UpdateExpenseRequest represents the payload for editing an expense.
// The ID is optional; when present it must match the path ID.
type UpdateExpenseRequest struct {
	ID          *uint           `json:"id,omitempty"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// ListFilter narrows the expense listing. All criteria are optional
// and combine conjunctively.
type ListFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseListResponse carries the filtered listing plus the grand total
// over the returned set and the fixed category enumeration the client
// needs to render filter controls.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Count      int               `json:"count"`
	GrandTotal decimal.Decimal   `json:"grand_total"`
	Categories []string          `json:"categories"`
}

func toResponse(e *expense.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category.String(),
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// CategoryNames returns the fixed category enumeration as strings
func CategoryNames() []string {
	categories := expense.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return names
}
