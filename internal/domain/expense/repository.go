package expense

import (
	"context"
	"time"
)

// Filter narrows a listing to a category and/or an inclusive date range.
// Omitted fields impose no constraint; supplied predicates combine with AND.
type Filter struct {
	Category  *Category
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository defines persistence operations for expenses.
//
// FindAll returns matches ordered by date descending with a stable
// tiebreak. FindByID returns shared.ErrNotFound when no record has the
// id. Update resolves a write against a vanished record to
// shared.ErrNotFound. Delete is idempotent: deleting an absent id is a
// no-op, not an error.
type Repository interface {
	FindAll(ctx context.Context, filter Filter) ([]Expense, error)
	FindByID(ctx context.Context, id uint) (*Expense, error)
	Create(ctx context.Context, e *Expense) error
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter Filter) (int64, error)
}
