package interfaces

import (
	"context"

	"github.com/inboundaero/conference-agent/internal/types"
)

// Gateway is a generic interface to the collection store. Storage failures
// propagate to the caller unwrapped of any recovery; recovery policy belongs
// to the caller.
type Gateway interface {
	// Query returns the rows of a collection matching the given options, in
	// the requested order.
	Query(ctx context.Context, collection string, opts types.QueryOptions) ([]types.Record, error)

	// QuerySingle returns the first matching row, or nil when no row matches.
	// Zero matches is not an error.
	QuerySingle(ctx context.Context, collection string, opts types.QueryOptions) (types.Record, error)
}
