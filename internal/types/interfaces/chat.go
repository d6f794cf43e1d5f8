package interfaces

import (
	"context"

	"github.com/inboundaero/conference-agent/internal/types"
)

// ContextService hydrates per-request session state from the user collection.
type ContextService interface {
	// LoadContext builds a session context for an optional registration id.
	// The lookup is best-effort: misses and failures yield the context
	// populated so far, never an error.
	LoadContext(ctx context.Context, registrationID string) *types.SessionContext

	// GetUserByRegistrationID resolves a user row by registration id. Returns
	// errors.ErrNotFound when no user matches.
	GetUserByRegistrationID(ctx context.Context, registrationID string) (types.Record, error)
}

// ScheduleService exposes the schedule-domain aggregators. Each aggregator
// renders display text; lookup failures come back as formatted error text,
// never as an error value.
type ScheduleService interface {
	GetConferenceSessions(ctx context.Context, filter types.SessionFilter) string
	GetAllSpeakers(ctx context.Context) string
	GetAllTracks(ctx context.Context) string
	GetAllRooms(ctx context.Context) string
	SearchSessionsBySpeaker(ctx context.Context, speakerName string) string
	SearchSessionsByTopic(ctx context.Context, topicKeyword string) string
	GetSessionCount(ctx context.Context) string
	GetSpeakerCount(ctx context.Context) string
}

// NetworkingService exposes the networking-domain aggregators. Same failure
// policy as ScheduleService.
type NetworkingService interface {
	SearchBusinesses(ctx context.Context, filter types.BusinessFilter) string
	GetUserBusinesses(ctx context.Context, userID string) string
	GetBusinessCount(ctx context.Context) string
	GetUserCount(ctx context.Context) string
	SearchUsersByName(ctx context.Context, searchTerm string, limit int) string
	GetIndustryBreakdown(ctx context.Context) string
}

// AgentRunner is the delegated agent-execution facility. Implementations may
// call out to an LLM; the chat service falls back to local dispatch when the
// runner is absent or fails.
type AgentRunner interface {
	Run(ctx context.Context, agentName string, message string, sessionCtx *types.SessionContext) (string, error)
}

// ChatService composes the response envelope for one inbound message.
type ChatService interface {
	Handle(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error)
}
