// Package supabase implements the collection-store gateway on top of the
// Supabase PostgREST API.
package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/inboundaero/conference-agent/internal/config"
	"github.com/inboundaero/conference-agent/internal/errors"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

type gateway struct {
	client *supabase.Client
}

// New creates a store gateway. URL and key are required.
func New(cfg config.SupabaseConfig) (interfaces.Gateway, error) {
	if cfg.URL == "" || cfg.Key == "" {
		return nil, fmt.Errorf("supabase url and key are required: %w", errors.ErrInvalidConfig)
	}

	client, err := supabase.NewClient(cfg.URL, cfg.Key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &gateway{client: client}, nil
}

// isJSONPath reports whether a filter key addresses a nested JSON field
// (e.g. "details->>registration_id") rather than a plain column.
func isJSONPath(key string) bool {
	return strings.Contains(key, "->")
}

func (g *gateway) Query(ctx context.Context, collection string, opts types.QueryOptions) ([]types.Record, error) {
	sel := opts.Select
	if sel == "" {
		sel = "*"
	}

	q := g.client.From(collection).Select(sel, "", false)

	for key, value := range opts.Filters {
		if isJSONPath(key) {
			q = q.Filter(key, "eq", value)
		} else {
			q = q.Eq(key, value)
		}
	}

	for _, order := range opts.Order {
		q = q.Order(order.Column, &postgrest.OrderOpts{Ascending: order.Ascending})
	}

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit, "")
	}

	var rows []types.Record
	if _, err := q.ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	return rows, nil
}

// QuerySingle returns the first matching row or nil. It caps the query at one
// row instead of using the PostgREST single-object mode, which rejects empty
// result sets.
func (g *gateway) QuerySingle(ctx context.Context, collection string, opts types.QueryOptions) (types.Record, error) {
	opts.Limit = 1
	rows, err := g.Query(ctx, collection, opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Compile-time check that gateway implements the Gateway interface.
var _ interfaces.Gateway = (*gateway)(nil)
