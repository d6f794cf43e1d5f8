// Package session hydrates per-request session context from the user
// collection.
package session

import (
	"context"
	"fmt"

	"github.com/inboundaero/conference-agent/internal/errors"
	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

const registrationIDPath = "details->>registration_id"

type contextService struct {
	gateway        interfaces.Gateway
	conferenceName string
}

// NewContextService creates a context service bound to a store gateway.
func NewContextService(gateway interfaces.Gateway, conferenceName string) interfaces.ContextService {
	return &contextService{
		gateway:        gateway,
		conferenceName: conferenceName,
	}
}

// LoadContext builds the session context for a request. The user lookup is
// best-effort: a miss or a store failure leaves the context partially
// populated with the attendee flag false.
func (s *contextService) LoadContext(ctx context.Context, registrationID string) *types.SessionContext {
	sessionCtx := types.NewSessionContext()

	if registrationID == "" {
		return sessionCtx
	}

	user, err := s.gateway.QuerySingle(ctx, types.CollectionUsers, types.QueryOptions{
		Select:  "id, details",
		Filters: map[string]string{registrationIDPath: registrationID},
	})
	if err != nil {
		logger.Errorf(ctx, "failed to load user context for registration_id %s: %v", registrationID, err)
		return sessionCtx
	}
	if user == nil {
		logger.Warnf(ctx, "no user found for registration_id: %s", registrationID)
		return sessionCtx
	}

	sessionCtx.UserID = types.StringField(user, "id")
	sessionCtx.RegistrationID = registrationID
	sessionCtx.UserName = types.DetailString(user, "user_name")
	sessionCtx.Email = types.DetailString(user, "email")
	sessionCtx.IsConferenceAttendee = true
	sessionCtx.ConferenceName = s.conferenceName

	logger.Infof(ctx, "loaded session context for registration_id: %s", registrationID)
	return sessionCtx
}

// GetUserByRegistrationID resolves a user row by registration id for the user
// endpoint. Unlike LoadContext this propagates failures, and a miss is
// reported as ErrNotFound so the handler can answer 404.
func (s *contextService) GetUserByRegistrationID(ctx context.Context, registrationID string) (types.Record, error) {
	user, err := s.gateway.QuerySingle(ctx, types.CollectionUsers, types.QueryOptions{
		Select:  "id, details",
		Filters: map[string]string{registrationIDPath: registrationID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, errors.ErrNotFound
	}
	return user, nil
}
