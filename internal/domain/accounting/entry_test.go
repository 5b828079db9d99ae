package accounting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates draft entry with zero totals", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeInInvoice, 7, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, MoveTypeInInvoice, entry.MoveType)
		assert.Equal(t, int64(7), entry.PartnerID)
		assert.Equal(t, EntryStateDraft, entry.State)
		assert.Equal(t, PaymentStateNotPaid, entry.PaymentState)
		assert.True(t, entry.AmountTotal.IsZero())
	})

	t.Run("defaults zero date to now", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeOutInvoice, 1, time.Time{})

		require.NoError(t, err)
		assert.False(t, entry.Date.IsZero())
	})

	t.Run("fails with unknown move type", func(t *testing.T) {
		entry, err := NewEntry("entry", 1, time.Now())

		assert.Error(t, err)
		assert.Nil(t, entry)
		assert.Contains(t, err.Error(), "Invalid move type")
	})

	t.Run("fails without partner", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeInInvoice, 0, time.Now())

		assert.Error(t, err)
		assert.Nil(t, entry)
		assert.Contains(t, err.Error(), "partner_id is required")
	})
}

func TestEntryComputeTotals(t *testing.T) {
	vat, err := NewTax("VAT 21%", decimal.NewFromInt(21), TaxAmountTypePercent, TaxUsePurchase, 0)
	require.NoError(t, err)

	t.Run("sums lines and per-line taxes", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
		require.NoError(t, err)

		require.NoError(t, entry.AddLine(EntryLine{
			Name:      "Paper",
			Quantity:  decimal.NewFromInt(2),
			PriceUnit: decimal.NewFromInt(50),
			Taxes:     []Tax{*vat},
		}))
		require.NoError(t, entry.AddLine(EntryLine{
			Name:      "Toner",
			Quantity:  decimal.NewFromInt(1),
			PriceUnit: decimal.NewFromInt(100),
		}))

		assert.True(t, entry.AmountUntaxed.Equal(decimal.NewFromInt(200)), "untaxed %s", entry.AmountUntaxed)
		assert.True(t, entry.AmountTax.Equal(decimal.NewFromInt(21)), "tax %s", entry.AmountTax)
		assert.True(t, entry.AmountTotal.Equal(decimal.NewFromInt(221)), "total %s", entry.AmountTotal)
		assert.True(t, entry.AmountResidual.Equal(entry.AmountTotal))
	})

	t.Run("fixed taxes ignore the base", func(t *testing.T) {
		stamp, err := NewTax("Stamp duty", decimal.NewFromInt(5), TaxAmountTypeFixed, TaxUsePurchase, 0)
		require.NoError(t, err)

		entry, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
		require.NoError(t, err)
		require.NoError(t, entry.AddLine(EntryLine{
			Quantity:  decimal.NewFromInt(1),
			PriceUnit: decimal.NewFromInt(1000),
			Taxes:     []Tax{*stamp},
		}))

		assert.True(t, entry.AmountTax.Equal(decimal.NewFromInt(5)))
		assert.True(t, entry.AmountTotal.Equal(decimal.NewFromInt(1005)))
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
		require.NoError(t, err)

		err = entry.AddLine(EntryLine{Quantity: decimal.NewFromInt(-1)})
		assert.Error(t, err)
		assert.Empty(t, entry.Lines)
	})
}

func TestEntryPost(t *testing.T) {
	t.Run("posts a draft entry", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
		require.NoError(t, err)

		require.NoError(t, entry.Post())
		assert.Equal(t, EntryStatePosted, entry.State)
	})

	t.Run("rejects double posting", func(t *testing.T) {
		entry, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
		require.NoError(t, err)
		require.NoError(t, entry.Post())

		err = entry.Post()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot post entry in state posted")
	})
}

func TestEntryMarkUploaded(t *testing.T) {
	entry, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
	require.NoError(t, err)

	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	entry.MarkUploaded(first)
	require.True(t, entry.DocsAIUploaded)
	require.NotNil(t, entry.DocsAIUploadDate)
	assert.Equal(t, first, *entry.DocsAIUploadDate)

	// flag is one-way, the original timestamp survives later calls
	entry.MarkUploaded(first.Add(time.Hour))
	assert.Equal(t, first, *entry.DocsAIUploadDate)
}

func TestEntryIsVendorBill(t *testing.T) {
	bill, err := NewEntry(MoveTypeInInvoice, 1, time.Now())
	require.NoError(t, err)
	assert.True(t, bill.IsVendorBill())

	receipt, err := NewEntry(MoveTypeInReceipt, 1, time.Now())
	require.NoError(t, err)
	assert.False(t, receipt.IsVendorBill())

	invoice, err := NewEntry(MoveTypeOutInvoice, 1, time.Now())
	require.NoError(t, err)
	assert.False(t, invoice.IsVendorBill())
}
