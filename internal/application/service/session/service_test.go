package session

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboundaero/conference-agent/internal/errors"
	"github.com/inboundaero/conference-agent/internal/types"
)

type fakeGateway struct {
	rows map[string][]types.Record
	err  error
}

func (f *fakeGateway) Query(_ context.Context, collection string, opts types.QueryOptions) ([]types.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.Record
	for _, row := range f.rows[collection] {
		match := true
		for key, value := range opts.Filters {
			var got string
			if path, ok := strings.CutPrefix(key, "details->>"); ok {
				got = types.DetailString(row, path)
			} else {
				got = types.StringField(row, key)
			}
			if got != value {
				match = false
				break
			}
		}
		if match {
			out = append(out, row)
		}
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (f *fakeGateway) QuerySingle(ctx context.Context, collection string, opts types.QueryOptions) (types.Record, error) {
	opts.Limit = 1
	rows, err := f.Query(ctx, collection, opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func userFixture() *fakeGateway {
	return &fakeGateway{rows: map[string][]types.Record{
		types.CollectionUsers: {
			{
				"id": "u1",
				"details": map[string]any{
					"registration_id": "REG-001",
					"user_name":       "Mina Patel",
					"email":           "mina@aeroparts.example",
				},
			},
		},
	}}
}

func TestLoadContextWithoutRegistrationID(t *testing.T) {
	svc := NewContextService(userFixture(), "Aviation Tech Summit 2025")

	ctx := svc.LoadContext(context.Background(), "")
	require.NotNil(t, ctx)
	assert.False(t, ctx.IsConferenceAttendee)
	assert.Empty(t, ctx.UserID)
}

func TestLoadContextHit(t *testing.T) {
	svc := NewContextService(userFixture(), "Aviation Tech Summit 2025")

	ctx := svc.LoadContext(context.Background(), "REG-001")
	assert.Equal(t, "u1", ctx.UserID)
	assert.Equal(t, "REG-001", ctx.RegistrationID)
	assert.Equal(t, "Mina Patel", ctx.UserName)
	assert.Equal(t, "mina@aeroparts.example", ctx.Email)
	assert.True(t, ctx.IsConferenceAttendee)
	assert.Equal(t, "Aviation Tech Summit 2025", ctx.ConferenceName)
}

// The attendee flag is true iff a user record resolved; a miss keeps it
// false and never fails the request.
func TestLoadContextMiss(t *testing.T) {
	svc := NewContextService(userFixture(), "Aviation Tech Summit 2025")

	ctx := svc.LoadContext(context.Background(), "does-not-exist")
	require.NotNil(t, ctx)
	assert.False(t, ctx.IsConferenceAttendee)
	assert.Empty(t, ctx.UserID)
	assert.Empty(t, ctx.ConferenceName)
}

func TestLoadContextSwallowsLookupFailure(t *testing.T) {
	svc := NewContextService(&fakeGateway{err: stderrors.New("store unreachable")}, "Aviation Tech Summit 2025")

	ctx := svc.LoadContext(context.Background(), "REG-001")
	require.NotNil(t, ctx)
	assert.False(t, ctx.IsConferenceAttendee)
}

func TestGetUserByRegistrationID(t *testing.T) {
	svc := NewContextService(userFixture(), "Aviation Tech Summit 2025")

	user, err := svc.GetUserByRegistrationID(context.Background(), "REG-001")
	require.NoError(t, err)
	assert.Equal(t, "u1", types.StringField(user, "id"))
}

func TestGetUserByRegistrationIDNotFound(t *testing.T) {
	svc := NewContextService(userFixture(), "Aviation Tech Summit 2025")

	_, err := svc.GetUserByRegistrationID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestGetUserByRegistrationIDFailure(t *testing.T) {
	svc := NewContextService(&fakeGateway{err: stderrors.New("store unreachable")}, "Aviation Tech Summit 2025")

	_, err := svc.GetUserByRegistrationID(context.Background(), "REG-001")
	require.Error(t, err)
	assert.False(t, errors.IsNotFound(err))
}
