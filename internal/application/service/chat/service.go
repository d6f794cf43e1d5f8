// Package chat composes the response envelope for one inbound message. It
// routes the message to an agent, dispatches it in two tiers (delegated
// runner first, local deterministic dispatch second), and attaches the
// session context, customer summary and static agent topology.
package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/inboundaero/conference-agent/internal/application/service/intent"
	"github.com/inboundaero/conference-agent/internal/application/service/triage"
	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

type service struct {
	contextSvc     interfaces.ContextService
	router         *intent.Router
	runner         interfaces.AgentRunner // nil when delegation is disabled
	schedule       interfaces.ScheduleService
	networking     interfaces.NetworkingService
	triage         *triage.Responder
	conferenceName string
}

// NewService creates the chat service. runner may be nil; the service then
// always uses local dispatch.
func NewService(
	contextSvc interfaces.ContextService,
	router *intent.Router,
	runner interfaces.AgentRunner,
	schedule interfaces.ScheduleService,
	networking interfaces.NetworkingService,
	conferenceName string,
) interfaces.ChatService {
	return &service{
		contextSvc:     contextSvc,
		router:         router,
		runner:         runner,
		schedule:       schedule,
		networking:     networking,
		triage:         triage.NewResponder(conferenceName),
		conferenceName: conferenceName,
	}
}

// Handle runs the full request flow: context load, routing, dispatch,
// customer summary, envelope assembly. All lookups are read-only.
func (s *service) Handle(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	logger.Infof(ctx, "received message: %s", req.Message)

	sessionCtx := s.contextSvc.LoadContext(ctx, req.RegistrationID)
	if req.UserID != "" {
		// Caller-asserted id; kept out of the fixed fields because it was
		// never verified against the store.
		sessionCtx.Set("requested_user_id", req.UserID)
	}

	agentName := s.router.Route(req.Message)
	logger.Infof(ctx, "selected agent: %s", agentName)

	content := s.dispatch(ctx, agentName, req.Message, sessionCtx)
	customerInfo := s.customerInfo(ctx, req.RegistrationID)

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	return &types.ChatResponse{
		ConversationID: conversationID,
		CurrentAgent:   agentName,
		Messages: []types.AgentMessage{
			{Content: content, Agent: agentName},
		},
		Events:       []any{},
		Context:      sessionCtx.ToMap(),
		Agents:       types.AgentDescriptors(),
		Guardrails:   []any{},
		CustomerInfo: customerInfo,
	}, nil
}

// dispatch runs the two-tier dispatch: delegate to the runner when present,
// fall back to the deterministic local phrase table when it is absent or
// fails.
func (s *service) dispatch(ctx context.Context, agentName, message string, sessionCtx *types.SessionContext) string {
	if s.runner != nil {
		content, err := s.runner.Run(ctx, agentName, message, sessionCtx)
		if err == nil {
			return content
		}
		logger.Warnf(ctx, "agent runner failed, using local dispatch: %v", err)
	}
	return s.localDispatch(ctx, agentName, message, sessionCtx)
}

func (s *service) localDispatch(ctx context.Context, agentName, message string, sessionCtx *types.SessionContext) string {
	switch agentName {
	case types.AgentSchedule:
		return s.scheduleDispatch(ctx, message)
	case types.AgentNetworking:
		return s.networkingDispatch(ctx, message, sessionCtx)
	default:
		return s.triage.Respond(message)
	}
}

// remainderAfter extracts the trailing argument of a "phrase <arg>" message.
func remainderAfter(message, phrase string) string {
	lower := strings.ToLower(message)
	idx := strings.Index(lower, phrase)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(message[idx+len(phrase):], "?!. "))
}

// scheduleDispatch maps literal phrases to schedule aggregators; count
// phrases take precedence over search phrases, and anything unrecognized
// lists the default session block.
func (s *service) scheduleDispatch(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "how many sessions") || strings.Contains(lower, "session count"):
		return s.schedule.GetSessionCount(ctx)
	case strings.Contains(lower, "how many speakers") || strings.Contains(lower, "speaker count"):
		return s.schedule.GetSpeakerCount(ctx)
	case strings.Contains(lower, "sessions by "):
		if name := remainderAfter(message, "sessions by "); name != "" {
			return s.schedule.SearchSessionsBySpeaker(ctx, name)
		}
	case strings.Contains(lower, "sessions about "):
		if keyword := remainderAfter(message, "sessions about "); keyword != "" {
			return s.schedule.SearchSessionsByTopic(ctx, keyword)
		}
	case strings.Contains(lower, "all speakers") || strings.Contains(lower, "list speakers"):
		return s.schedule.GetAllSpeakers(ctx)
	case strings.Contains(lower, "all tracks") || strings.Contains(lower, "list tracks"):
		return s.schedule.GetAllTracks(ctx)
	case strings.Contains(lower, "all rooms") || strings.Contains(lower, "list rooms"):
		return s.schedule.GetAllRooms(ctx)
	}

	return s.schedule.GetConferenceSessions(ctx, types.SessionFilter{})
}

// networkingDispatch maps literal phrases to networking aggregators,
// defaulting to an unfiltered business search.
func (s *service) networkingDispatch(ctx context.Context, message string, sessionCtx *types.SessionContext) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "how many businesses") || strings.Contains(lower, "business count"):
		return s.networking.GetBusinessCount(ctx)
	case strings.Contains(lower, "how many users") || strings.Contains(lower, "user count"):
		return s.networking.GetUserCount(ctx)
	case strings.Contains(lower, "industry breakdown"):
		return s.networking.GetIndustryBreakdown(ctx)
	case strings.Contains(lower, "my businesses"):
		if sessionCtx != nil && sessionCtx.UserID != "" {
			return s.networking.GetUserBusinesses(ctx, sessionCtx.UserID)
		}
	case strings.Contains(lower, "find user "):
		if term := remainderAfter(message, "find user "); term != "" {
			return s.networking.SearchUsersByName(ctx, term, 0)
		}
	case strings.Contains(lower, "businesses in "):
		if location := remainderAfter(message, "businesses in "); location != "" {
			return s.networking.SearchBusinesses(ctx, types.BusinessFilter{Location: location})
		}
	}

	return s.networking.SearchBusinesses(ctx, types.BusinessFilter{})
}

// customerInfo builds the optional customer summary from a second
// best-effort lookup; any failure leaves the block absent.
func (s *service) customerInfo(ctx context.Context, registrationID string) *types.CustomerInfo {
	if registrationID == "" {
		return nil
	}

	user, err := s.contextSvc.GetUserByRegistrationID(ctx, registrationID)
	if err != nil {
		logger.Errorf(ctx, "failed to fetch customer info: %v", err)
		return nil
	}

	details := types.DetailsBag(user)
	name, _ := details["user_name"].(string)
	if name == "" {
		first, _ := details["firstName"].(string)
		last, _ := details["lastName"].(string)
		name = strings.TrimSpace(first + " " + last)
	}
	email, _ := details["email"].(string)

	return &types.CustomerInfo{
		Customer: types.Customer{
			Name:                 name,
			Email:                email,
			RegistrationID:       registrationID,
			IsConferenceAttendee: true,
			ConferenceName:       s.conferenceName,
		},
		Bookings: []any{},
	}
}
