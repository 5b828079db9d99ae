package shared

import "context"

const (
	// DefaultLimit bounds list queries when the caller does not pass one.
	DefaultLimit = 100
	// DefaultOffset is the start of a list query.
	DefaultOffset = 0
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Filter represents query window and field filters for list operations
type Filter struct {
	Limit   int
	Offset  int
	Filters map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Limit:   DefaultLimit,
		Offset:  DefaultOffset,
		Filters: make(map[string]interface{}),
	}
}

// WithFilter sets a field filter and returns the filter for chaining
func (f Filter) WithFilter(key string, value interface{}) Filter {
	if f.Filters == nil {
		f.Filters = make(map[string]interface{})
	}
	f.Filters[key] = value
	return f
}

// ListPage is a window of a larger result set
type ListPage[T any] struct {
	Items []T
	Total int64
}

// Count returns the number of items in the window
func (p ListPage[T]) Count() int {
	return len(p.Items)
}
