package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/expensetracker/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field constraints for an expense draft
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// Amount bounds; amounts outside (0, 1,000,000] are rejected
var (
	MinAmount = decimal.RequireFromString("0.01")
	MaxAmount = decimal.NewFromInt(1_000_000)
)

// Expense is the sole persisted entity: a single recorded expense.
// ID and CreatedAt are assigned by storage at insertion time and
// immutable afterwards.
type Expense struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Draft is the caller-supplied field set for creating or updating an
// expense, prior to validation and id/timestamp assignment.
type Draft struct {
	Title       string          `validate:"required,max=100"`
	Amount      decimal.Decimal `validate:"-"`
	Category    Category        `validate:"required"`
	Date        time.Time       `validate:"required"`
	Description string          `validate:"omitempty,max=500"`
}

var validate = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(draftStructLevel, Draft{})
	return v
}

// draftStructLevel reports the constraints field tags cannot express:
// the decimal amount range and category set membership.
func draftStructLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(Draft)

	if d.Amount.LessThan(MinAmount) || d.Amount.GreaterThan(MaxAmount) {
		sl.ReportError(d.Amount, "Amount", "Amount", "amountrange", "")
	}
	if d.Category != "" && !d.Category.IsValid() {
		sl.ReportError(d.Category, "Category", "Category", "category", "")
	}
}

// Validate checks the draft against every field constraint and returns a
// ValidationError carrying all violations, not just the first.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := shared.NewValidationError()
	for _, fe := range fieldErrs {
		ve.Add(strings.ToLower(fe.Field()), violationMessage(fe))
	}
	return ve
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " cannot exceed " + fe.Param() + " characters"
	case "amountrange":
		return "Amount must be between 0.01 and 1,000,000"
	case "category":
		return "Category must be one of the allowed categories"
	default:
		return fe.Field() + " is invalid"
	}
}

// New validates the draft and returns a new expense ready for insertion.
// Storage assigns ID and CreatedAt.
func New(d Draft) (*Expense, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Expense{
		Title:       d.Title,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        d.Date,
		Description: d.Description,
	}, nil
}

// Apply validates the draft and replaces every mutable field of the
// expense. ID and CreatedAt are preserved.
func (e *Expense) Apply(d Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	e.Title = d.Title
	e.Amount = d.Amount
	e.Category = d.Category
	e.Date = d.Date
	e.Description = d.Description
	return nil
}
