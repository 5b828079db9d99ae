package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpenseCategory(t *testing.T) {
	t.Run("creates expensable service product", func(t *testing.T) {
		p, err := NewExpenseCategory("Travel", "")

		require.NoError(t, err)
		assert.Equal(t, "Travel", p.Name)
		assert.Equal(t, ProductTypeService, p.Type)
		assert.Equal(t, DefaultUoM, p.UoM)
		assert.True(t, p.CanBeExpensed)
		assert.True(t, p.PurchaseOK)
		assert.True(t, p.Active)
	})

	t.Run("accepts an explicit product type", func(t *testing.T) {
		p, err := NewExpenseCategory("Office supplies", ProductTypeConsumable)

		require.NoError(t, err)
		assert.Equal(t, ProductTypeConsumable, p.Type)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		p, err := NewExpenseCategory("", ProductTypeService)

		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("fails with unknown product type", func(t *testing.T) {
		_, err := NewExpenseCategory("Travel", "digital")
		assert.Error(t, err)
	})
}
