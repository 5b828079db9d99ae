package persistence

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/expense"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id int64) (*expense.Expense, error) {
	var e expense.Expense
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAll lists expenses, newest first
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.ListPage[expense.Expense], error) {
	query := r.db.WithContext(ctx).Model(&expense.Expense{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.ListPage[expense.Expense]{}, err
	}

	var expenses []expense.Expense
	if err := applyWindow(query, filter).Find(&expenses).Error; err != nil {
		return shared.ListPage[expense.Expense]{}, err
	}
	return shared.ListPage[expense.Expense]{Items: expenses, Total: total}, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, e *expense.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ expense.ExpenseRepository = (*GormExpenseRepository)(nil)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id int64) (*expense.Employee, error) {
	var e expense.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByUserID finds the employee linked to a user login
func (r *GormEmployeeRepository) FindByUserID(ctx context.Context, userID int64) (*expense.Employee, error) {
	var e expense.Employee
	if err := r.db.WithContext(ctx).First(&e, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ expense.EmployeeRepository = (*GormEmployeeRepository)(nil)
