package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	date := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	t.Run("derives total from quantity and price", func(t *testing.T) {
		e, err := NewExpense("Taxi", 3, date, decimal.NewFromInt(2), decimal.NewFromInt(25), PaymentModeOwnAccount)

		require.NoError(t, err)
		assert.Equal(t, int64(3), e.EmployeeID)
		assert.Equal(t, ExpenseStateDraft, e.State)
		assert.True(t, e.TotalAmount.Equal(decimal.NewFromInt(50)))
		assert.True(t, e.TotalAmountCurrency.Equal(decimal.NewFromInt(50)))
	})

	t.Run("defaults quantity, date, and payment mode", func(t *testing.T) {
		e, err := NewExpense("Lunch", 3, time.Time{}, decimal.Zero, decimal.NewFromInt(12), "")

		require.NoError(t, err)
		assert.True(t, e.Quantity.Equal(decimal.NewFromInt(1)))
		assert.False(t, e.Date.IsZero())
		assert.Equal(t, PaymentModeOwnAccount, e.PaymentMode)
	})

	t.Run("fails without name", func(t *testing.T) {
		e, err := NewExpense("", 3, date, decimal.Zero, decimal.Zero, PaymentModeOwnAccount)

		assert.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("fails without employee", func(t *testing.T) {
		e, err := NewExpense("Taxi", 0, date, decimal.Zero, decimal.Zero, PaymentModeOwnAccount)

		assert.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "employee_id is required")
	})

	t.Run("fails with unknown payment mode", func(t *testing.T) {
		_, err := NewExpense("Taxi", 3, date, decimal.Zero, decimal.Zero, "credit")
		assert.Error(t, err)
	})
}

func TestExpenseSetTotal(t *testing.T) {
	t.Run("unit quantity keeps price in sync", func(t *testing.T) {
		e, err := NewExpense("Hotel", 3, time.Now(), decimal.NewFromInt(1), decimal.NewFromInt(80), PaymentModeOwnAccount)
		require.NoError(t, err)

		e.SetTotal(decimal.NewFromInt(95))
		assert.True(t, e.TotalAmount.Equal(decimal.NewFromInt(95)))
		assert.True(t, e.PriceUnit.Equal(decimal.NewFromInt(95)))
	})

	t.Run("multi-quantity keeps the unit price", func(t *testing.T) {
		e, err := NewExpense("Meals", 3, time.Now(), decimal.NewFromInt(3), decimal.NewFromInt(10), PaymentModeOwnAccount)
		require.NoError(t, err)

		e.SetTotal(decimal.NewFromInt(35))
		assert.True(t, e.TotalAmount.Equal(decimal.NewFromInt(35)))
		assert.True(t, e.PriceUnit.Equal(decimal.NewFromInt(10)))
	})
}
