package content

import "context"

// Source is a keyed-record store queried by data source ID.
type Source interface {
	Query(ctx context.Context, dataSource string, sort Sort) ([]Record, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, dataSource string, sort Sort) ([]Record, error)

// Query calls f.
func (f SourceFunc) Query(ctx context.Context, dataSource string, sort Sort) ([]Record, error) {
	return f(ctx, dataSource, sort)
}
