package persistence

import (
	"context"
	"errors"

	"github.com/expensetracker/backend/internal/domain/expense"
	"github.com/expensetracker/backend/internal/domain/shared"
	"github.com/expensetracker/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements expense.Repository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindAll finds all expenses matching the filter, most recent first.
// Rows sharing a date are ordered by descending ID so pagination of the
// listing stays stable across requests.
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter expense.Filter) ([]expense.Expense, error) {
	var expenseModels []models.ExpenseModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ExpenseModel{}), filter)

	if err := query.Order("date DESC, id DESC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]expense.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uint) (*expense.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists a new expense and writes the generated ID and
// creation timestamp back to the entity
func (r *GormExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	model := models.ExpenseModelFromDomain(e)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	return nil
}

// Update persists changes to an existing expense. Only the mutable
// columns are written; ID and created_at never change after creation.
// Returns shared.ErrNotFound if no row matches the entity's ID.
func (r *GormExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&models.ExpenseModel{}).
		Where("id = ?", e.ID).
		Select("title", "amount", "category", "date", "description").
		Updates(models.ExpenseModelFromDomain(e))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an expense by ID. Deleting an absent row is a no-op.
func (r *GormExpenseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id).Error
}

// Count counts expenses matching the filter
func (r *GormExpenseRepository) Count(ctx context.Context, filter expense.Filter) (int64, error) {
	var count int64
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ExpenseModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func applyFilter(query *gorm.DB, filter expense.Filter) *gorm.DB {
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}
