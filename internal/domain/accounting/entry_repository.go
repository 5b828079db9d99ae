package accounting

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryRepository defines the interface for accounting entry persistence
type EntryRepository interface {
	// FindByID finds an entry with its lines
	FindByID(ctx context.Context, id int64) (*Entry, error)

	// FindByMoveTypes lists entries whose move type is in the given set, newest first
	FindByMoveTypes(ctx context.Context, moveTypes []MoveType, filter shared.Filter) (shared.ListPage[Entry], error)

	// Save creates or updates an entry with its lines
	Save(ctx context.Context, entry *Entry) error

	// NextSequence returns the next document number for a move type, e.g. BILL/2026/0042
	NextSequence(ctx context.Context, moveType MoveType) (string, error)
}

// TaxRepository defines the interface for tax persistence
type TaxRepository interface {
	// FindByID finds a tax with its repartition lines
	FindByID(ctx context.Context, id int64) (*Tax, error)

	// FindByUse lists taxes, optionally restricted to one tax use
	FindByUse(ctx context.Context, use TaxUse, filter shared.Filter) (shared.ListPage[Tax], error)

	// FindByAmountAndUse finds an active percentage tax by rate and use
	FindByAmountAndUse(ctx context.Context, amount decimal.Decimal, use TaxUse) (*Tax, error)

	// FirstByUse returns any active tax for the given use, or shared.ErrNotFound
	FirstByUse(ctx context.Context, use TaxUse) (*Tax, error)

	// Save creates or updates a tax
	Save(ctx context.Context, tax *Tax) error
}

// CurrencyRepository defines the interface for currency persistence
type CurrencyRepository interface {
	// FindByID finds a currency by raw id, active or not
	FindByID(ctx context.Context, id int64) (*Currency, error)

	// FindByCode finds a currency by name or symbol, inactive included
	FindByCode(ctx context.Context, code string) (*Currency, error)

	// Save creates or updates a currency
	Save(ctx context.Context, c *Currency) error
}

// AccountRepository defines the interface for ledger account lookups
type AccountRepository interface {
	// FindByID finds an account by its ID
	FindByID(ctx context.Context, id int64) (*Account, error)

	// FirstByType returns any account of the given type, or shared.ErrNotFound
	FirstByType(ctx context.Context, accountType AccountType) (*Account, error)
}
