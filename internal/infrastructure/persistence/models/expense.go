package models

import (
	"time"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence mapping of the expense entity.
// The amount is stored as NUMERIC text so decimal values round-trip
// without binary floating-point loss.
type ExpenseModel struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string          `gorm:"column:title;size:100;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Category    string          `gorm:"column:category;size:50;not null;index"`
	Date        time.Time       `gorm:"column:date;not null;index"`
	Description string          `gorm:"column:description;size:500"`
	CreatedAt   time.Time       `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName returns the table name for ExpenseModel
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to the domain entity
func (m *ExpenseModel) ToDomain() *expense.Expense {
	return &expense.Expense{
		ID:          m.ID,
		Title:       m.Title,
		Amount:      m.Amount,
		Category:    expense.Category(m.Category),
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseModelFromDomain builds a persistence model from the domain entity
func ExpenseModelFromDomain(e *expense.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
