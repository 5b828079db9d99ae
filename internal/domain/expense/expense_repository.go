package expense

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by its ID
	FindByID(ctx context.Context, id int64) (*Expense, error)

	// FindAll lists expenses, newest first
	FindAll(ctx context.Context, filter shared.Filter) (shared.ListPage[Expense], error)

	// Save creates or updates an expense
	Save(ctx context.Context, e *Expense) error
}

// EmployeeRepository defines the interface for employee lookups
type EmployeeRepository interface {
	// FindByID finds an employee by its ID
	FindByID(ctx context.Context, id int64) (*Employee, error)

	// FindByUserID finds the employee linked to a user login
	FindByUserID(ctx context.Context, userID int64) (*Employee, error)
}
